package controller

// Action is the abstract command the controller's Update loop operates on,
// translated from raw terminal events. Grounded on
// _examples/original_source/crates/television/action.rs's Action enum.
type Action int

const (
	ActionNoOp Action = iota

	// input actions
	ActionAddInputChar
	ActionDeletePrevChar
	ActionDeleteNextChar
	ActionGoToPrevChar
	ActionGoToNextChar
	ActionGoToInputStart
	ActionGoToInputEnd

	// results actions
	ActionSelectEntry
	ActionSelectAndExit
	ActionSelectNextEntry
	ActionSelectPrevEntry
	ActionToggleSelection

	// preview actions
	ActionScrollPreviewUp
	ActionScrollPreviewDown
	ActionScrollPreviewHalfPageUp
	ActionScrollPreviewHalfPageDown

	// application actions
	ActionTick
	ActionRender
	ActionResize
	ActionQuit
	ActionHelp
	ActionError

	// channel actions
	ActionToggleRemoteControl
)

// String names an Action for logging.
func (a Action) String() string {
	switch a {
	case ActionNoOp:
		return "NoOp"
	case ActionAddInputChar:
		return "AddInputChar"
	case ActionDeletePrevChar:
		return "DeletePrevChar"
	case ActionDeleteNextChar:
		return "DeleteNextChar"
	case ActionGoToPrevChar:
		return "GoToPrevChar"
	case ActionGoToNextChar:
		return "GoToNextChar"
	case ActionGoToInputStart:
		return "GoToInputStart"
	case ActionGoToInputEnd:
		return "GoToInputEnd"
	case ActionSelectEntry:
		return "SelectEntry"
	case ActionSelectAndExit:
		return "SelectAndExit"
	case ActionSelectNextEntry:
		return "SelectNextEntry"
	case ActionSelectPrevEntry:
		return "SelectPrevEntry"
	case ActionToggleSelection:
		return "ToggleSelection"
	case ActionScrollPreviewUp:
		return "ScrollPreviewUp"
	case ActionScrollPreviewDown:
		return "ScrollPreviewDown"
	case ActionScrollPreviewHalfPageUp:
		return "ScrollPreviewHalfPageUp"
	case ActionScrollPreviewHalfPageDown:
		return "ScrollPreviewHalfPageDown"
	case ActionTick:
		return "Tick"
	case ActionRender:
		return "Render"
	case ActionResize:
		return "Resize"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	case ActionError:
		return "Error"
	case ActionToggleRemoteControl:
		return "ToggleRemoteControl"
	default:
		return "Unknown"
	}
}
