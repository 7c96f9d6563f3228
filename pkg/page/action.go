package page

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is returned by ParseAction for names outside Actions.
var ErrUnknownAction = errors.New("page: unknown action")

// Action is a toolbar command.
type Action string

const (
	ActionNew     Action = "new"
	ActionSave    Action = "save"
	ActionFind    Action = "find"
	ActionRefresh Action = "refresh"
	ActionPreview Action = "preview"
	ActionPDF     Action = "pdf"
	ActionClose   Action = "close"
)

// Actions lists the toolbar commands in button order.
func Actions() []Action {
	return []Action{ActionNew, ActionSave, ActionFind, ActionRefresh, ActionPreview, ActionPDF, ActionClose}
}

// Label is the button caption.
func (a Action) Label() string {
	switch a {
	case ActionNew:
		return "New"
	case ActionSave:
		return "Save"
	case ActionFind:
		return "Find"
	case ActionRefresh:
		return "Refresh"
	case ActionPreview:
		return "Preview"
	case ActionPDF:
		return "PDF"
	case ActionClose:
		return "Close"
	default:
		return string(a)
	}
}

// ParseAction resolves an action name.
func ParseAction(name string) (Action, error) {
	for _, action := range Actions() {
		if string(action) == name {
			return action, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, name)
}
