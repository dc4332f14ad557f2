package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pablasso/tickbar/internal/activity"
	"github.com/pablasso/tickbar/internal/activity/bars"
	"github.com/pablasso/tickbar/internal/config"
	"github.com/pablasso/tickbar/internal/console"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	Title    string
	State    string
	Tick     uint
	Frames   int
	Width    int // 0 queries the terminal
	BarWidth    int
	BarWidthSet bool // false uses the config file
	Style    string
	Fraction float64
	NoColor  bool
}

var renderOpts renderOptions

func init() {
	f := renderCmd.Flags()
	f.StringVar(&renderOpts.State, "state", "active", "Indicator state: ready, active, success, failure")
	f.UintVar(&renderOpts.Tick, "tick", 0, "Tick of the first active frame")
	f.IntVar(&renderOpts.Frames, "frames", 1, "Number of consecutive ticks to print, one per line")
	f.IntVar(&renderOpts.Width, "width", 0, "Terminal width override (default: detect)")
	f.IntVar(&renderOpts.BarWidth, "bar-width", 0, "Preferred bar width (default: from config)")
	f.StringVar(&renderOpts.Style, "style", "", "Bar style: loading, progress, spinner[:kind] (default: from config)")
	f.Float64Var(&renderOpts.Fraction, "fraction", 0, "Completion in [0, 1] for the progress style")
	f.BoolVar(&renderOpts.NoColor, "no-color", false, "Disable colored output")
}

var renderCmd = &cobra.Command{
	Use:   "render <title>",
	Short: "Render an activity indicator line",
	Long: `Render the indicator line for a title and state.

With --frames N the active state is advanced N times and every frame is
printed on its own line. Frames are printed immediately, not animated.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := renderOpts
		opts.Title = args[0]
		opts.BarWidthSet = cmd.Flags().Changed("bar-width")
		cfg, err := config.Load(resolveConfigPath())
		if err != nil {
			return err
		}
		return renderFrames(cmd.OutOrStdout(), opts, cfg, logger())
	},
}

func renderFrames(w io.Writer, opts renderOptions, cfg config.Config, log *slog.Logger) error {
	if opts.Frames < 1 {
		return fmt.Errorf("--frames must be at least 1, got %d", opts.Frames)
	}
	if opts.Width < 0 {
		return fmt.Errorf("--width must not be negative, got %d", opts.Width)
	}
	if opts.BarWidthSet && opts.BarWidth < 0 {
		return fmt.Errorf("--bar-width: %w: %d", config.ErrInvalidBarWidth, opts.BarWidth)
	}

	state, err := activity.ParseState(opts.State, opts.Tick)
	if err != nil {
		return err
	}

	style := cfg.Style
	if opts.Style != "" {
		style = opts.Style
	}
	bar, err := bars.ByName(style, bars.Fixed(opts.Fraction))
	if err != nil {
		return err
	}

	barWidth := cfg.BarWidth
	if opts.BarWidthSet {
		barWidth = opts.BarWidth
	}

	var consoleOpts []console.Option
	if opts.Width > 0 {
		consoleOpts = append(consoleOpts, console.WithWidth(opts.Width))
	}
	if opts.NoColor || !cfg.Color {
		consoleOpts = append(consoleOpts, console.WithNoColor())
	}
	term := console.New(w, consoleOpts...)

	activity.DefaultBarWidths.Set(term, barWidth)
	defer activity.DefaultBarWidths.Reset(term)

	log.Debug("rendering indicator",
		"state", state,
		"style", style,
		"width", term.Width(),
		"bar_width", barWidth,
		"max_bar_width", activity.MaxBarWidth(term.Width(), barWidth),
	)

	ind := activity.NewIndicator(opts.Title, bar)
	for i := 0; i < opts.Frames; i++ {
		activity.Output(term, ind, state)
		term.Finish()
		state = state.Next()
	}
	return nil
}
