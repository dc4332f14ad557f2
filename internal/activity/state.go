package activity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownState is returned when a state name cannot be parsed.
var ErrUnknownState = errors.New("unknown activity state")

// Kind identifies which variant a State holds.
type Kind int

const (
	KindReady Kind = iota
	KindActive
	KindSuccess
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindReady:
		return "ready"
	case KindActive:
		return "active"
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// State is the indicator state. Tick is only meaningful for KindActive.
type State struct {
	Kind Kind
	Tick uint
}

// Ready is the state before any progress has been reported.
func Ready() State { return State{Kind: KindReady} }

// Active is the in-progress state at the given tick.
func Active(tick uint) State { return State{Kind: KindActive, Tick: tick} }

// Success is the terminal state for a completed task.
func Success() State { return State{Kind: KindSuccess} }

// Failure is the terminal state for a failed task.
func Failure() State { return State{Kind: KindFailure} }

// Next advances an active state by one tick. Other states are returned as is.
func (s State) Next() State {
	if s.Kind != KindActive {
		return s
	}
	return Active(s.Tick + 1)
}

func (s State) String() string {
	if s.Kind == KindActive {
		return fmt.Sprintf("active(%d)", s.Tick)
	}
	return s.Kind.String()
}

// ParseState converts a state name into a State. tick is used only for the
// active state.
func ParseState(name string, tick uint) (State, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ready":
		return Ready(), nil
	case "active":
		return Active(tick), nil
	case "success", "done":
		return Success(), nil
	case "failure", "failed":
		return Failure(), nil
	default:
		return State{}, fmt.Errorf("%w %q (valid: ready, active, success, failure)", ErrUnknownState, name)
	}
}
