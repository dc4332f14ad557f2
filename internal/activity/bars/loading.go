// Package bars provides BarRenderer implementations for the active state of
// an activity indicator.
package bars

import (
	"strings"

	"github.com/pablasso/tickbar/internal/text"
)

const loadingSegment = "<=>"

// LoadingBar sweeps a short segment back and forth across the bar:
//
//	[   <=>        ]
type LoadingBar struct{}

// NewLoadingBar creates a LoadingBar.
func NewLoadingBar() LoadingBar {
	return LoadingBar{}
}

// RenderActiveBar implements activity.BarRenderer.
func (LoadingBar) RenderActiveBar(tick uint, width int) text.Text {
	if width <= 0 {
		return text.NewPlain("[]")
	}
	segLen := len(loadingSegment)
	if width < segLen {
		return text.NewPlain("[").Append(
			text.New(strings.Repeat("=", width), text.Info),
			text.NewPlain("]"),
		)
	}

	pos := sweepPosition(tick, width-segLen)
	return text.NewPlain("["+strings.Repeat(" ", pos)).Append(
		text.New(loadingSegment, text.Info),
		text.NewPlain(strings.Repeat(" ", width-segLen-pos)+"]"),
	)
}

// sweepPosition maps tick onto 0..last and back down again.
func sweepPosition(tick uint, last int) int {
	if last <= 0 {
		return 0
	}
	period := uint(2 * last)
	pos := int(tick % period)
	if pos > last {
		pos = int(period) - pos
	}
	return pos
}
