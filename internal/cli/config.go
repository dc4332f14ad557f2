package cli

import (
	"fmt"
	"strconv"

	"github.com/pablasso/tickbar/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveConfigPath()
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", path, data)
		return nil
	},
}

var configSetBarWidthCmd = &cobra.Command{
	Use:   "set-bar-width <width>",
	Short: "Set the preferred bar width",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid width %q: %w", args[0], err)
		}
		path := resolveConfigPath()
		if err := setBarWidth(path, width); err != nil {
			return err
		}
		logger().Debug("saved config", "path", path, "bar_width", width)
		fmt.Fprintf(cmd.OutOrStdout(), "Bar width set to %d\n", width)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetBarWidthCmd)
}

func setBarWidth(path string, width int) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg.BarWidth = width
	return config.Save(path, cfg)
}
