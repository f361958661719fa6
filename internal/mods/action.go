package mods

import (
	"fmt"
	"strings"
)

// Action tells the upgrader client what to do with an Item's file.
// The zero value is ActionAdd.
type Action int

const (
	ActionAdd Action = iota
	ActionDelete
	ActionUpdate
)

// Actions lists every valid Action in prompt order.
var Actions = []Action{ActionAdd, ActionDelete, ActionUpdate}

// String returns the canonical uppercase form used on the console and in the emitted list.
func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "ADD"
	case ActionDelete:
		return "DELETE"
	case ActionUpdate:
		return "UPDATE"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// InvalidActionError is returned by ParseAction when the text names no known action.
type InvalidActionError struct {
	Text string
}

func (e *InvalidActionError) Error() string {
	return "invalid action: " + e.Text
}

// ParseAction matches text case-insensitively against the canonical action names.
func ParseAction(text string) (Action, error) {
	for _, a := range Actions {
		if strings.EqualFold(text, a.String()) {
			return a, nil
		}
	}
	return ActionAdd, &InvalidActionError{Text: text}
}

// MarshalText implements encoding.TextMarshaler; encoding/json uses it for the "action" key.
func (a Action) MarshalText() ([]byte, error) {
	switch a {
	case ActionAdd, ActionDelete, ActionUpdate:
		return []byte(a.String()), nil
	default:
		return nil, fmt.Errorf("cannot marshal %s", a)
	}
}

// MarshalYAML renders the action as its canonical string rather than the underlying int.
func (a Action) MarshalYAML() (any, error) {
	text, err := a.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}
