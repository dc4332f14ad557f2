// Package console writes indicator lines to a terminal or plain writer.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/x/term"
	"github.com/pablasso/tickbar/internal/activity"
	"github.com/pablasso/tickbar/internal/text"
)

// DefaultWidth is used when the terminal size cannot be determined.
const DefaultWidth = 80

var _ activity.Console = (*Terminal)(nil)

type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// Terminal is an activity.Console over an io.Writer. On a TTY each line
// replaces the previous one in place; otherwise every line is printed on its
// own.
type Terminal struct {
	mu       sync.Mutex
	writer   io.Writer
	isTTY    bool
	width    int // fixed width override, 0 means query the terminal
	theme    text.Theme
	lastLine string
	open     bool // an in-place line is pending a newline
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithWidth fixes the reported width instead of querying the terminal.
func WithWidth(width int) Option {
	return func(t *Terminal) { t.width = width }
}

// WithTheme overrides the theme picked from TTY detection.
func WithTheme(th text.Theme) Option {
	return func(t *Terminal) { t.theme = th }
}

// WithNoColor disables styling.
func WithNoColor() Option {
	return WithTheme(text.NoColorTheme())
}

// New creates a Terminal writing to w. Color is enabled only when w is a
// terminal and NO_COLOR is unset.
func New(w io.Writer, opts ...Option) *Terminal {
	t := &Terminal{
		writer: w,
		isTTY:  isTerminal(w),
	}
	if t.isTTY && os.Getenv("NO_COLOR") == "" {
		t.theme = text.DefaultTheme()
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(f.Fd())
}

// IsTTY reports whether output goes to an interactive terminal.
func (t *Terminal) IsTTY() bool {
	return t.isTTY
}

// Width returns the terminal width, the fixed override when set, or
// DefaultWidth when the size cannot be read.
func (t *Terminal) Width() int {
	if t.width > 0 {
		return t.width
	}
	if !t.isTTY {
		return DefaultWidth
	}
	f := t.writer.(fdWriter)
	w, _, err := term.GetSize(f.Fd())
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// Output writes line. On a TTY the previous line is cleared first and
// identical consecutive lines are skipped to reduce flicker.
func (t *Terminal) Output(line text.Text) {
	rendered := line.Render(t.theme)

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.isTTY {
		fmt.Fprintln(t.writer, rendered)
		return
	}
	if t.open && rendered == t.lastLine {
		return
	}
	t.lastLine = rendered
	t.open = true
	// Move to start of line, clear it, write new content
	fmt.Fprintf(t.writer, "\r\033[K%s", rendered)
}

// Finish ends a pending in-place line so later output starts on a fresh
// line.
func (t *Terminal) Finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.open {
		return
	}
	t.open = false
	t.lastLine = ""
	fmt.Fprintln(t.writer)
}
