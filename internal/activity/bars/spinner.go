package bars

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/x/ansi"
	"github.com/pablasso/tickbar/internal/text"
)

// SpinnerBar shows one spinner frame per tick: [⣾]
type SpinnerBar struct {
	frames []string
}

// NewSpinnerBar creates a SpinnerBar from a bubbles spinner definition.
func NewSpinnerBar(s spinner.Spinner) SpinnerBar {
	frames := make([]string, 0, len(s.Frames))
	for _, f := range s.Frames {
		// Some frame sets pad with a trailing space for inline use.
		if f = strings.TrimRight(f, " "); f != "" {
			frames = append(frames, f)
		}
	}
	return SpinnerBar{frames: frames}
}

var spinnerKinds = map[string]spinner.Spinner{
	"dot":     spinner.Dot,
	"line":    spinner.Line,
	"minidot": spinner.MiniDot,
	"jump":    spinner.Jump,
	"pulse":   spinner.Pulse,
	"points":  spinner.Points,
	"meter":   spinner.Meter,
}

// RenderActiveBar implements activity.BarRenderer. Frames wider than width
// collapse to empty brackets.
func (s SpinnerBar) RenderActiveBar(tick uint, width int) text.Text {
	if len(s.frames) == 0 {
		return text.NewPlain("[]")
	}
	frame := s.frames[tick%uint(len(s.frames))]
	if ansi.StringWidth(frame) > width {
		return text.NewPlain("[]")
	}
	return text.NewPlain("[").Append(text.New(frame, text.Info), text.NewPlain("]"))
}
