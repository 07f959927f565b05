package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphkit/cxport/config"
	"github.com/graphkit/cxport/errors"
)

// ConfigCmd manages cxport configuration
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage cxport configuration",
	Long: `Manage cxport configuration.

Configuration lives in ~/.cxport/config.toml and can be overridden
with CXPORT_* environment variables (e.g. CXPORT_EXPORT_EDGE_DEFAULT).

Commands:
  cxport config show   # Print the effective configuration
  cxport config init   # Write the default configuration file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// ConfigShowCmd prints the effective configuration
var ConfigShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow()
	},
}

// ConfigInitCmd writes the default configuration file
var ConfigInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write the default configuration to ~/.cxport/config.toml.
Refuses to overwrite an existing file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInit()
	},
}

func init() {
	ConfigCmd.AddCommand(ConfigShowCmd)
	ConfigCmd.AddCommand(ConfigInitCmd)
}

func runConfigShow() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	text, err := config.Render(cfg)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}

func runConfigInit() error {
	path := config.DefaultPath()
	if path == "" {
		return errors.New("cannot resolve home directory for config path")
	}
	if _, err := os.Stat(path); err == nil {
		return errors.Newf("config file already exists at %s", path)
	}

	if err := config.Save(config.Default(), path); err != nil {
		return err
	}
	fmt.Printf("Wrote default config to %s\n", path)
	return nil
}
