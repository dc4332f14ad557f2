package console

import (
	"sync"

	"github.com/pablasso/tickbar/internal/activity"
	"github.com/pablasso/tickbar/internal/text"
)

var _ activity.Console = (*Recorder)(nil)

// Recorder is an activity.Console with a fixed width that keeps every line
// it receives. It is meant for tests and previews.
type Recorder struct {
	mu    sync.Mutex
	width int
	lines []text.Text
}

// NewRecorder creates a Recorder reporting the given width.
func NewRecorder(width int) *Recorder {
	return &Recorder{width: width}
}

// Width returns the fixed width.
func (r *Recorder) Width() int {
	return r.width
}

// Output records line.
func (r *Recorder) Output(line text.Text) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

// Lines returns the plain content of every recorded line.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	for i, l := range r.lines {
		out[i] = l.String()
	}
	return out
}
