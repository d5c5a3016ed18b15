package controller

import tea "github.com/charmbracelet/bubbletea"

// Keymap maps a bubbletea key string (tea.KeyMsg.String()) to an Action.
// Keys not present fall through to rune input handling.
type Keymap map[string]Action

// DefaultKeymap is television's default binding set, adapted to bubbletea's
// key-string representation.
func DefaultKeymap() Keymap {
	return Keymap{
		"up":        ActionSelectPrevEntry,
		"ctrl+p":    ActionSelectPrevEntry,
		"down":      ActionSelectNextEntry,
		"ctrl+n":    ActionSelectNextEntry,
		"enter":     ActionSelectAndExit,
		"tab":       ActionToggleSelection,
		"esc":       ActionQuit,
		"ctrl+c":    ActionQuit,
		"backspace": ActionDeletePrevChar,
		"delete":    ActionDeleteNextChar,
		"left":      ActionGoToPrevChar,
		"right":     ActionGoToNextChar,
		"home":      ActionGoToInputStart,
		"ctrl+a":    ActionGoToInputStart,
		"end":       ActionGoToInputEnd,
		"ctrl+e":    ActionGoToInputEnd,
		"ctrl+r":    ActionToggleRemoteControl,
		"ctrl+h":    ActionHelp,
		"ctrl+u":    ActionScrollPreviewHalfPageUp,
		"ctrl+d":    ActionScrollPreviewHalfPageDown,
		"pgup":      ActionScrollPreviewHalfPageUp,
		"pgdown":    ActionScrollPreviewHalfPageDown,
		"ctrl+k":    ActionScrollPreviewUp,
		"ctrl+j":    ActionScrollPreviewDown,
	}
}

// MergeUserBindings overlays cfgBindings (action name -> key strings, as
// loaded from the TOML [keybindings] table) onto the default keymap. One
// action may bind multiple keys.
func MergeUserBindings(base Keymap, cfgBindings map[string][]string) Keymap {
	byName := actionsByName()

	merged := make(Keymap, len(base))
	for k, v := range base {
		merged[k] = v
	}
	for name, keys := range cfgBindings {
		action, ok := byName[name]
		if !ok {
			continue
		}
		for _, key := range keys {
			merged[key] = action
		}
	}
	return merged
}

func actionsByName() map[string]Action {
	all := []Action{
		ActionAddInputChar, ActionDeletePrevChar, ActionDeleteNextChar,
		ActionGoToPrevChar, ActionGoToNextChar, ActionGoToInputStart, ActionGoToInputEnd,
		ActionSelectEntry, ActionSelectAndExit, ActionSelectNextEntry, ActionSelectPrevEntry,
		ActionToggleSelection, ActionScrollPreviewUp, ActionScrollPreviewDown,
		ActionScrollPreviewHalfPageUp, ActionScrollPreviewHalfPageDown,
		ActionQuit, ActionHelp, ActionToggleRemoteControl,
	}
	m := make(map[string]Action, len(all))
	for _, a := range all {
		m[a.String()] = a
	}
	return m
}

// Translate maps a bubbletea key message to an Action using km, falling
// back to ActionAddInputChar for single printable runes and ActionNoOp for
// anything else unrecognised.
func (km Keymap) Translate(msg tea.KeyMsg) Action {
	if action, ok := km[msg.String()]; ok {
		return action
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		return ActionAddInputChar
	}
	return ActionNoOp
}
