// Package activity renders a single-line activity indicator:
//
//	Title [=======              ]
//
// The bar for the active state comes from a BarRenderer; the ready, success
// and failure states use fixed markers. Indicator.Render fits the title and
// bar into the terminal width, truncating the title with an ellipsis when
// both do not fit.
package activity

import "github.com/pablasso/tickbar/internal/text"

const (
	// Columns kept free for brackets and spacing when sizing the bar.
	barReserve = 4
	ellipsis   = "… "
)

// BarRenderer draws the bar for the active state. tick increments on every
// refresh and can be used to animate the bar. The result should be at most
// width+2 cells wide (the bar plus its brackets).
type BarRenderer interface {
	RenderActiveBar(tick uint, width int) text.Text
}

// BarRendererFunc adapts a function to BarRenderer.
type BarRendererFunc func(tick uint, width int) text.Text

// RenderActiveBar calls f(tick, width).
func (f BarRendererFunc) RenderActiveBar(tick uint, width int) text.Text {
	return f(tick, width)
}

// Indicator pairs a title with a bar renderer. The renderer may be shared by
// several indicators.
type Indicator struct {
	Title string
	Bar   BarRenderer
}

// NewIndicator creates an Indicator.
func NewIndicator(title string, bar BarRenderer) Indicator {
	return Indicator{Title: title, Bar: bar}
}

// MaxBarWidth returns the width handed to the bar renderer: the configured
// width, capped so barReserve columns stay free, and never negative.
func MaxBarWidth(terminalWidth, configuredBarWidth int) int {
	return max(min(configuredBarWidth, terminalWidth-barReserve), 0)
}

// RenderBar returns the bar fragment for state.
func (ind Indicator) RenderBar(state State, maxBarWidth int) text.Text {
	switch state.Kind {
	case KindActive:
		if ind.Bar == nil {
			return text.NewPlain("[]")
		}
		return ind.Bar.RenderActiveBar(state.Tick, maxBarWidth)
	case KindSuccess:
		return text.New("[Done]", text.Success)
	case KindFailure:
		return text.New("[Failed]", text.Error)
	default:
		return text.NewPlain("[]")
	}
}

// Render composes the indicator line for a terminal of terminalWidth columns.
// The title is truncated with an ellipsis when title and bar do not fit. If
// the terminal is narrower than the bar itself the line can still overflow.
func (ind Indicator) Render(state State, terminalWidth, configuredBarWidth int) text.Text {
	bar := ind.RenderBar(state, MaxBarWidth(terminalWidth, configuredBarWidth))

	// One column separates the title from the bar.
	textWidth := terminalWidth - (bar.Len() + 1)
	if text.NewPlain(ind.Title).Len() <= textWidth {
		return text.NewPlain(ind.Title + " ").Append(bar)
	}
	return text.NewPlain(text.Prefix(ind.Title, max(0, textWidth-1)) + ellipsis).Append(bar)
}
