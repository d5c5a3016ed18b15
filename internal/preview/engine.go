package preview

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"

	"github.com/televisionhq/television/internal/crashlog"
	tvEntry "github.com/televisionhq/television/internal/entry"
)

// DefaultConcurrency is N_preview, the ceiling on in-flight preview tasks
// (spec §3 invariant: "At most N concurrent preview tasks run").
const DefaultConcurrency = 2

// DefaultTimeout is T_preview, the per-command execution budget.
const DefaultTimeout = 3 * time.Second

// completionQueueCapacity bounds the lock-free completion queue; it only
// ever needs to hold as many pending completions as DefaultConcurrency
// allows in flight, rounded up generously.
const completionQueueCapacity = 64

// CompletionMsg notifies the controller that a preview artifact finished
// computing. The controller drains these once per frame without reading the
// payload: the artifact is already in the cache, and the next Preview call
// for the current selection returns it from there.
type CompletionMsg struct {
	Artifact *Artifact
}

// Engine is the single authority on preview concurrency and caching (spec
// §4.3). It is the Go equivalent of television-previewers' CommandPreviewer.
type Engine struct {
	cache       *Cache
	ceiling     int32
	timeout     time.Duration
	delimiter   string
	shell       string
	inFlight    atomic.Int32
	lastArtifact atomic.Pointer[Artifact]

	completions *lfq.MPSC[CompletionMsg]
}

// Option configures an Engine.
type Option func(*Engine)

// WithConcurrency overrides N_preview.
func WithConcurrency(n int) Option {
	return func(e *Engine) { e.ceiling = int32(n) }
}

// WithTimeout overrides T_preview.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) { e.timeout = d }
}

// WithDelimiter overrides the default field delimiter used by {N} template
// substitutions (spec §6: previewers.file... / cable_channel.preview_delimiter).
func WithDelimiter(d string) Option {
	return func(e *Engine) { e.delimiter = d }
}

// WithShell overrides the shell used to run preview commands.
func WithShell(shell string) Option {
	return func(e *Engine) { e.shell = shell }
}

// WithCacheCapacity overrides the preview cache capacity.
func WithCacheCapacity(n int) Option {
	return func(e *Engine) { e.cache = NewCache(n) }
}

// New creates a preview Engine with the given defaults, overridable via
// Option.
func New(opts ...Option) *Engine {
	e := &Engine{
		cache:       NewCache(DefaultCacheCapacity),
		ceiling:     DefaultConcurrency,
		timeout:     DefaultTimeout,
		delimiter:   " ",
		completions: lfq.NewMPSC[CompletionMsg](completionQueueCapacity),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.lastArtifact.Store(Placeholder())
	return e
}

// Completions returns the channel the controller drains once per frame tick
// for finished preview artifacts.
func (e *Engine) Completions() *lfq.MPSC[CompletionMsg] {
	return e.completions
}

// Preview returns the cached artifact for entry if present; otherwise, if
// under the concurrency ceiling, it spawns a background task to compute one
// and returns the last-produced artifact as an immediate placeholder (spec
// §4.3's concurrency policy). It never blocks.
//
// Preview is only ever called from the controller's single event-loop
// goroutine (spec §4.5: the controller is the sole mutator), so the
// check-then-increment on inFlight below cannot race with itself.
func (e *Engine) Preview(ent tvEntry.Entry, template string) *Artifact {
	if a, ok := e.cache.Get(ent.Key()); ok {
		return a
	}

	if e.inFlight.Load() >= e.ceiling {
		return e.lastArtifact.Load()
	}

	e.inFlight.Add(1)
	crashlog.SafeGo("", "preview-run:"+ent.Key(), func() { e.run(ent, template) })

	return e.lastArtifact.Load()
}

func (e *Engine) run(ent tvEntry.Entry, template string) {
	defer e.inFlight.Add(-1)

	artifact := e.execute(ent, template)
	e.cache.Insert(ent.Key(), artifact)
	if artifact.Status == StatusOK {
		e.lastArtifact.Store(artifact)
	}

	e.publish(CompletionMsg{Artifact: artifact})
}

func (e *Engine) execute(ent tvEntry.Entry, template string) *Artifact {
	shell := e.shell
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "sh"
	}

	command := expandTemplate(template, ent, e.delimiter)

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, shell, "-c", command)
	cmd.Cancel = func() error {
		return cmd.Process.Kill()
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return &Artifact{Key: ent.Key(), Title: ent.Display, Status: StatusNotSupported}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return &Artifact{Key: ent.Key(), Title: ent.Display, Status: StatusNotSupported}
	}

	if err := cmd.Start(); err != nil {
		return &Artifact{Key: ent.Key(), Title: ent.Display, Status: StatusNotSupported}
	}

	// stdout and stderr must be drained concurrently: a command that
	// interleaves enough output on both to fill the OS pipe buffers would
	// otherwise deadlock (child blocked writing stderr while this goroutine
	// is still blocked reading stdout to EOF), per the standard os/exec
	// two-pipe pattern.
	var outLines, errLines []Line
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); outLines = readLines(stdout) }()
	go func() { defer wg.Done(); errLines = readLines(stderr) }()
	wg.Wait()

	waitErr := cmd.Wait()

	if ctx.Err() == context.DeadlineExceeded {
		return &Artifact{
			Key:    ent.Key(),
			Title:  ent.Display,
			Status: StatusTimeout,
			Body:   []Line{{Text: "preview timed out"}},
		}
	}

	if waitErr != nil {
		return &Artifact{
			Key:        ent.Key(),
			Title:      ent.Display,
			Status:     StatusOK,
			Body:       errLines,
			TotalLines: len(errLines),
		}
	}

	if len(outLines) == 0 {
		return &Artifact{Key: ent.Key(), Title: ent.Display, Status: StatusEmpty}
	}

	return &Artifact{
		Key:        ent.Key(),
		Title:      ent.Display,
		Status:     StatusOK,
		Body:       outLines,
		TotalLines: len(outLines),
	}
}

func readLines(r io.Reader) []Line {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	var lines []Line
	for scanner.Scan() {
		lines = append(lines, Line{Text: scanner.Text(), Styled: true})
	}
	return lines
}

func (e *Engine) publish(msg CompletionMsg) {
	backoff := iox.Backoff{}
	for attempts := 0; attempts < 8; attempts++ {
		if err := e.completions.Enqueue(&msg); err == nil {
			return
		} else if lfq.IsWouldBlock(err) {
			backoff.Wait()
			continue
		} else {
			return
		}
	}
}
