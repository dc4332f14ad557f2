package activity

import (
	"reflect"
	"sync"

	"github.com/pablasso/tickbar/internal/text"
)

// DefaultBarWidth is the bar width used when a console has no setting.
const DefaultBarWidth = 25

// Console is the output target for an indicator line.
type Console interface {
	// Width returns the terminal width in columns.
	Width() int
	// Output writes one composed indicator line.
	Output(line text.Text)
}

// BarWidths holds the configured bar width per console, keyed by the console
// value. Consoles whose value cannot be used as a map key (for example a
// struct holding a slice) cannot carry a setting and always get
// DefaultBarWidth.
type BarWidths struct {
	mu     sync.Mutex
	widths map[Console]int
}

// DefaultBarWidths is the table consulted by Output.
var DefaultBarWidths = NewBarWidths()

// NewBarWidths creates an empty table.
func NewBarWidths() *BarWidths {
	return &BarWidths{widths: make(map[Console]int)}
}

// Get returns the bar width configured for c, or DefaultBarWidth.
func (b *BarWidths) Get(c Console) int {
	if !keyable(c) {
		return DefaultBarWidth
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.widths[c]; ok {
		return w
	}
	return DefaultBarWidth
}

// Set configures the bar width for c. Negative widths are stored as given
// and clamped when rendering. Consoles that cannot be keyed are ignored.
func (b *BarWidths) Set(c Console, width int) {
	if !keyable(c) {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.widths[c] = width
}

// Reset removes the setting for c so it falls back to DefaultBarWidth.
func (b *BarWidths) Reset(c Console) {
	if !keyable(c) {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.widths, c)
}

// keyable reports whether c can be hashed as a map key without panicking.
// Interface fields are checked against their dynamic values.
func keyable(c Console) bool {
	return c != nil && reflect.ValueOf(c).Comparable()
}

// Output renders ind for state using the width configured for c and writes
// the line to c.
func (b *BarWidths) Output(c Console, ind Indicator, state State) {
	c.Output(ind.Render(state, c.Width(), b.Get(c)))
}

// Output renders ind for state on c using DefaultBarWidths.
func Output(c Console, ind Indicator, state State) {
	DefaultBarWidths.Output(c, ind, state)
}

// LegacyWidth always returns DefaultBarWidth.
//
// Deprecated: the value has no effect. Configure the width per console via
// BarWidths.Set instead.
func LegacyWidth() int {
	return DefaultBarWidth
}

// SetLegacyWidth ignores its argument.
//
// Deprecated: the value has no effect. Configure the width per console via
// BarWidths.Set instead.
func SetLegacyWidth(int) {}
