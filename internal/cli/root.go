package cli

import (
	"github.com/pablasso/tickbar/internal/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:     "tickbar",
	Short:   "Render single-line activity indicators",
	Long:    `Tickbar renders a title and an activity bar on one terminal line, truncating the title when the line would not fit.`,
	Version: version.String(),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/tickbar/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log debug information to stderr")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
