package activity

import (
	"errors"
	"testing"
)

func TestState_Next(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  State
	}{
		{name: "active advances", state: Active(4), want: Active(5)},
		{name: "ready stays", state: Ready(), want: Ready()},
		{name: "success stays", state: Success(), want: Success()},
		{name: "failure stays", state: Failure(), want: Failure()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Next(); got != tt.want {
				t.Errorf("%v.Next() = %v, want %v", tt.state, got, tt.want)
			}
		})
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Ready(), "ready"},
		{Active(3), "active(3)"},
		{Success(), "success"},
		{Failure(), "failure"},
		{State{Kind: Kind(42)}, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseState(t *testing.T) {
	tests := []struct {
		input string
		tick  uint
		want  State
	}{
		{"ready", 9, Ready()},
		{"active", 9, Active(9)},
		{" Active ", 0, Active(0)},
		{"success", 1, Success()},
		{"done", 1, Success()},
		{"failure", 1, Failure()},
		{"FAILED", 1, Failure()},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseState(tt.input, tt.tick)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseState(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseState_Unknown(t *testing.T) {
	_, err := ParseState("paused", 0)
	if !errors.Is(err, ErrUnknownState) {
		t.Fatalf("expected ErrUnknownState, got %v", err)
	}
}
