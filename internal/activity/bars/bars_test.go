package bars

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/pablasso/tickbar/internal/activity"
	"github.com/pablasso/tickbar/internal/text"
)

func TestLoadingBar_Sweep(t *testing.T) {
	bar := NewLoadingBar()
	tests := []struct {
		tick uint
		want string
	}{
		{0, "[<=>  ]"},
		{1, "[ <=> ]"},
		{2, "[  <=>]"},
		{3, "[ <=> ]"},
		{4, "[<=>  ]"},
		{5, "[ <=> ]"},
	}

	for _, tt := range tests {
		got := bar.RenderActiveBar(tt.tick, 5).String()
		if got != tt.want {
			t.Errorf("RenderActiveBar(%d, 5) = %q, want %q", tt.tick, got, tt.want)
		}
	}
}

func TestLoadingBar_NarrowWidths(t *testing.T) {
	bar := NewLoadingBar()
	tests := []struct {
		width int
		want  string
	}{
		{0, "[]"},
		{-1, "[]"},
		{1, "[=]"},
		{2, "[==]"},
		{3, "[<=>]"},
	}

	for _, tt := range tests {
		for tick := uint(0); tick < 4; tick++ {
			if got := bar.RenderActiveBar(tick, tt.width).String(); got != tt.want {
				t.Errorf("RenderActiveBar(%d, %d) = %q, want %q", tick, tt.width, got, tt.want)
			}
		}
	}
}

func TestProgressBar_View(t *testing.T) {
	tests := []struct {
		name     string
		fraction func() float64
		width    int
		expected string
	}{
		{"zero percent", Fixed(0), 13, "[□□□□□□□□] 0%"},
		{"fifty percent", Fixed(0.5), 13, "[■■■■□□□□] 50%"},
		{"hundred percent", Fixed(1), 13, "[■■■■■■■■] 100%"},
		{"thirty percent", Fixed(0.3), 15, "[■■■□□□□□□□] 30%"},
		{"almost done is not full", Fixed(0.999), 13, "[■■■■■■■□] 99%"},
		{"almost done without percent", Fixed(0.999), 4, "[■■■□]"},
		{"negative clamps to zero", Fixed(-2), 13, "[□□□□□□□□] 0%"},
		{"over one clamps to full", Fixed(7), 13, "[■■■■■■■■] 100%"},
		{"nil fraction", nil, 13, "[□□□□□□□□] 0%"},
		{"narrow drops percent", Fixed(0.5), 4, "[■■□□]"},
		{"smallest with percent", Fixed(0.5), 8, "[■□□] 50%"},
		{"zero width", Fixed(0.5), 0, "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewProgressBar(tt.fraction).RenderActiveBar(0, tt.width).String()
			if result != tt.expected {
				t.Errorf("RenderActiveBar(0, %d) = %q, want %q", tt.width, result, tt.expected)
			}
		})
	}
}

func TestProgressBar_Styles(t *testing.T) {
	bar := NewProgressBar(Fixed(0.5)).RenderActiveBar(0, 4)
	want := []text.Fragment{
		{Content: "[", Style: text.Plain},
		{Content: "■■", Style: text.Info},
		{Content: "□□", Style: text.Subtle},
		{Content: "]", Style: text.Plain},
	}
	if len(bar) != len(want) {
		t.Fatalf("got %d fragments, want %d: %#v", len(bar), len(want), bar)
	}
	for i := range want {
		if bar[i] != want[i] {
			t.Errorf("fragment %d = %#v, want %#v", i, bar[i], want[i])
		}
	}
}

func TestSpinnerBar_Frames(t *testing.T) {
	bar := NewSpinnerBar(spinner.Line)
	want := []string{"[|]", "[/]", "[-]", "[\\]", "[|]"}
	for tick, w := range want {
		if got := bar.RenderActiveBar(uint(tick), 10).String(); got != w {
			t.Errorf("tick %d: got %q, want %q", tick, got, w)
		}
	}
}

func TestSpinnerBar_TrimsPaddedFrames(t *testing.T) {
	bar := NewSpinnerBar(spinner.Spinner{Frames: []string{"⣾ ", "⣽ "}})
	if got := bar.RenderActiveBar(1, 5).String(); got != "[⣽]" {
		t.Errorf("got %q, want %q", got, "[⣽]")
	}
}

func TestSpinnerBar_TooNarrow(t *testing.T) {
	bar := NewSpinnerBar(spinner.Line)
	if got := bar.RenderActiveBar(0, 0).String(); got != "[]" {
		t.Errorf("got %q, want []", got)
	}
	empty := NewSpinnerBar(spinner.Spinner{})
	if got := empty.RenderActiveBar(3, 10).String(); got != "[]" {
		t.Errorf("empty spinner: got %q, want []", got)
	}
}

func TestRenderers_RespectBudget(t *testing.T) {
	renderers := map[string]activity.BarRenderer{
		"loading":  NewLoadingBar(),
		"progress": NewProgressBar(Fixed(1)),
		"half":     NewProgressBar(Fixed(0.5)),
		"dot":      NewSpinnerBar(spinner.Dot),
		"meter":    NewSpinnerBar(spinner.Meter),
	}

	for name, r := range renderers {
		for width := 0; width <= 40; width++ {
			for tick := uint(0); tick < 20; tick++ {
				got := r.RenderActiveBar(tick, width)
				if got.Len() > width+2 {
					t.Fatalf("%s: width %d tick %d: Len() = %d (%q)", name, width, tick, got.Len(), got.String())
				}
			}
		}
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want activity.BarRenderer
	}{
		{"loading", LoadingBar{}},
		{"", LoadingBar{}},
		{" Loading ", LoadingBar{}},
		{"spinner", NewSpinnerBar(spinner.Dot)},
		{"spinner:line", NewSpinnerBar(spinner.Line)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ByName(tt.name, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if a, b := got.RenderActiveBar(2, 10).String(), tt.want.RenderActiveBar(2, 10).String(); a != b {
				t.Errorf("ByName(%q) renders %q, want %q", tt.name, a, b)
			}
		})
	}
}

func TestByName_Progress(t *testing.T) {
	got, err := ByName("progress", Fixed(0.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := got.RenderActiveBar(0, 13).String(); s != "[■■■■□□□□] 50%" {
		t.Errorf("got %q", s)
	}
}

func TestByName_Unknown(t *testing.T) {
	for _, name := range []string{"rainbow", "spinner:nope", "loading:fast", "progress:x"} {
		if _, err := ByName(name, nil); !errors.Is(err, ErrUnknownStyle) {
			t.Errorf("ByName(%q): expected ErrUnknownStyle, got %v", name, err)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if names[0] != "loading" || names[1] != "progress" || names[2] != "spinner" {
		t.Errorf("unexpected leading names: %v", names)
	}
	if len(names) != 3+len(spinnerKinds) {
		t.Errorf("got %d names, want %d", len(names), 3+len(spinnerKinds))
	}
	for _, n := range names {
		if _, err := ByName(n, nil); err != nil {
			t.Errorf("listed name %q is rejected: %v", n, err)
		}
	}
}
