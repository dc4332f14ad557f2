package text

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tickbar/internal/styles"
)

// Theme maps semantic styles to lipgloss styles. The zero Theme renders
// content untouched.
type Theme struct {
	styles map[Style]lipgloss.Style
}

// DefaultTheme returns the colored theme used on terminals.
func DefaultTheme() Theme {
	return Theme{styles: map[Style]lipgloss.Style{
		Plain:   styles.PlainStyle,
		Info:    styles.InfoStyle,
		Subtle:  styles.SubtleStyle,
		Success: styles.SuccessStyle,
		Error:   styles.ErrorStyle,
	}}
}

// NoColorTheme returns a theme that emits content without escape sequences.
func NoColorTheme() Theme {
	return Theme{}
}

func (th Theme) render(f Fragment) string {
	st, ok := th.styles[f.Style]
	if !ok {
		return f.Content
	}
	return st.Render(f.Content)
}
