package bars

import (
	"fmt"
	"math"
	"strings"

	"github.com/pablasso/tickbar/internal/text"
)

const (
	filledChar = "■"
	emptyChar  = "□"

	// Below this width the percentage is dropped and every cell is bar.
	minPercentWidth = 8
	// Worst case percentage suffix: " 100%".
	percentWidth = 5
)

// ProgressBar renders a filled bar like: [■■■■□□□□] 50%
type ProgressBar struct {
	// Fraction reports completion in [0, 1]. Out of range values are clamped.
	Fraction func() float64
}

// NewProgressBar creates a ProgressBar reading completion from fraction.
func NewProgressBar(fraction func() float64) ProgressBar {
	return ProgressBar{Fraction: fraction}
}

// Fixed returns a fraction func that always reports f.
func Fixed(f float64) func() float64 {
	return func() float64 { return f }
}

// RenderActiveBar implements activity.BarRenderer. The tick is ignored; the
// fill level comes from Fraction.
func (p ProgressBar) RenderActiveBar(_ uint, width int) text.Text {
	if width <= 0 {
		return text.NewPlain("[]")
	}

	fraction := 0.0
	if p.Fraction != nil {
		fraction = p.Fraction()
	}
	// Clamp to valid range
	if fraction < 0 || math.IsNaN(fraction) {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	cells := width
	showPercent := width >= minPercentWidth
	if showPercent {
		cells = width - percentWidth
	}

	// Fill follows the floored percentage: the bar is full only at 100%.
	percent := int(math.Floor(fraction * 100))
	filled := (percent * cells) / 100
	bar := text.NewPlain("[").Append(
		text.New(strings.Repeat(filledChar, filled), text.Info),
		text.New(strings.Repeat(emptyChar, cells-filled), text.Subtle),
		text.NewPlain("]"),
	)
	if !showPercent {
		return bar
	}
	return bar.Append(text.NewPlain(fmt.Sprintf(" %d%%", percent)))
}
