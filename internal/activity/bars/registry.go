package bars

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/pablasso/tickbar/internal/activity"
)

var (
	_ activity.BarRenderer = LoadingBar{}
	_ activity.BarRenderer = ProgressBar{}
	_ activity.BarRenderer = SpinnerBar{}
)

// ErrUnknownStyle is returned by ByName for unrecognized bar styles.
var ErrUnknownStyle = errors.New("unknown bar style")

// ByName returns the renderer for a style name: "loading", "progress",
// "spinner" or "spinner:<kind>". fraction feeds the progress style and may be
// nil for the others.
func ByName(name string, fraction func() float64) (activity.BarRenderer, error) {
	style, kind, _ := strings.Cut(strings.ToLower(strings.TrimSpace(name)), ":")
	switch style {
	case "loading", "":
		if kind != "" {
			break
		}
		return NewLoadingBar(), nil
	case "progress":
		if kind != "" {
			break
		}
		return NewProgressBar(fraction), nil
	case "spinner":
		if kind == "" {
			return NewSpinnerBar(spinner.Dot), nil
		}
		if s, ok := spinnerKinds[kind]; ok {
			return NewSpinnerBar(s), nil
		}
	}
	return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownStyle, name, strings.Join(Names(), ", "))
}

// Names lists the style names accepted by ByName.
func Names() []string {
	names := []string{"loading", "progress", "spinner"}
	kinds := make([]string, 0, len(spinnerKinds))
	for k := range spinnerKinds {
		kinds = append(kinds, "spinner:"+k)
	}
	sort.Strings(kinds)
	return append(names, kinds...)
}
