// Package text provides styled terminal text whose length is measured on
// content only, independent of any styling applied when it is rendered.
package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Style tags a fragment with a semantic style. Themes decide how each style
// looks on screen.
type Style int

const (
	Plain Style = iota
	Info
	Subtle
	Success
	Error
)

func (s Style) String() string {
	switch s {
	case Plain:
		return "plain"
	case Info:
		return "info"
	case Subtle:
		return "subtle"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Fragment is a run of content sharing one style.
type Fragment struct {
	Content string
	Style   Style
}

// Text is an ordered sequence of styled fragments.
type Text []Fragment

// New creates a single-fragment Text.
func New(s string, style Style) Text {
	if s == "" {
		return nil
	}
	return Text{{Content: s, Style: style}}
}

// NewPlain creates an unstyled Text.
func NewPlain(s string) Text {
	return New(s, Plain)
}

// Len returns the display width of the content in terminal cells.
func (t Text) Len() int {
	n := 0
	for _, f := range t {
		n += ansi.StringWidth(f.Content)
	}
	return n
}

// Append returns the concatenation of t and others. The receiver is never
// modified.
func (t Text) Append(others ...Text) Text {
	size := len(t)
	for _, o := range others {
		size += len(o)
	}
	out := make(Text, 0, size)
	out = append(out, t...)
	for _, o := range others {
		for _, f := range o {
			if f.Content == "" {
				continue
			}
			out = append(out, f)
		}
	}
	return out
}

// String returns the plain content without styling.
func (t Text) String() string {
	var b strings.Builder
	for _, f := range t {
		b.WriteString(f.Content)
	}
	return b.String()
}

// Render returns the content with each fragment styled by the theme.
func (t Text) Render(th Theme) string {
	var b strings.Builder
	for _, f := range t {
		b.WriteString(th.render(f))
	}
	return b.String()
}

// Prefix returns the leading part of s that fits in width cells. A width of
// zero or less yields an empty string.
func Prefix(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "")
}
