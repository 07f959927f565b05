package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphkit/cxport/cmd/cxport/commands"
	"github.com/graphkit/cxport/config"
	"github.com/graphkit/cxport/logger"
)

var rootCmd = &cobra.Command{
	Use:   "cxport",
	Short: "cxport - Convert CX network documents to other graph formats",
	Long: `cxport - CX network exporter.

Reads a CX document (the JSON aspect-fragment interchange format used
by NDEx-style network stores) and converts it to an explicit-schema
graph format. GraphML output is accepted by Cytoscape-family tools.

Available commands:
  graphml - Convert CX on stdin to GraphML on stdout
  inspect - Summarize the aspects of a CX document
  config  - Manage cxport configuration
  version - Show build information

Examples:
  cxport graphml < network.cx > network.graphml
  cxport graphml -i network.cx -o network.graphml --watch
  cxport inspect -i network.cx
  cxport config init`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		jsonLogs := false
		if cfg, err := config.Load(); err == nil {
			jsonLogs = cfg.Log.JSON
		}

		if err := logger.Initialize(verbosity, jsonLogs); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")

	rootCmd.AddCommand(commands.GraphMLCmd)
	rootCmd.AddCommand(commands.InspectCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
