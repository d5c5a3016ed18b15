package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewCreatesFileAndDefaultsToWarn(t *testing.T) {
	os.Unsetenv(EnvVar)
	path := filepath.Join(t.TempDir(), "television.log")

	logger, f, err := New(path)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer f.Close()

	if logger.GetLevel() != log.WarnLevel {
		t.Fatalf("level = %v, want %v", logger.GetLevel(), log.WarnLevel)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
}

func TestNewHonorsEnvVar(t *testing.T) {
	os.Setenv(EnvVar, "debug")
	defer os.Unsetenv(EnvVar)

	path := filepath.Join(t.TempDir(), "television.log")
	logger, f, err := New(path)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer f.Close()

	if logger.GetLevel() != log.DebugLevel {
		t.Fatalf("level = %v, want %v", logger.GetLevel(), log.DebugLevel)
	}
}
