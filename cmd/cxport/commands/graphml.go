package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphkit/cxport/config"
	"github.com/graphkit/cxport/errors"
	"github.com/graphkit/cxport/export"
	"github.com/graphkit/cxport/logger"
)

// GraphMLCmd converts a CX document to GraphML
var GraphMLCmd = &cobra.Command{
	Use:   "graphml",
	Short: "Convert a CX document to GraphML",
	Long: `Convert a CX network document to GraphML XML.

Reads CX from stdin and writes GraphML to stdout unless --input and
--output name files. The produced GraphML declares every attribute key
up front (graph, node, and edge scope) and is accepted by
Cytoscape-family tools.

With --watch the command keeps running and re-exports whenever the
input file changes; this requires both --input and --output.

Examples:
  cxport graphml < network.cx > network.graphml
  cxport graphml -i network.cx -o network.graphml
  cxport graphml -i network.cx -o network.graphml --watch
  cxport graphml --edge-default undirected < network.cx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		edgeDefault, _ := cmd.Flags().GetString("edge-default")
		watch, _ := cmd.Flags().GetBool("watch")
		return runGraphML(input, output, edgeDefault, watch)
	},
}

func init() {
	GraphMLCmd.Flags().StringP("input", "i", "", "Input CX file (default: stdin)")
	GraphMLCmd.Flags().StringP("output", "o", "", "Output GraphML file (default: stdout)")
	GraphMLCmd.Flags().String("edge-default", "", "Value for the graph edgedefault attribute (overrides config)")
	GraphMLCmd.Flags().Bool("watch", false, "Re-export whenever the input file changes (requires --input and --output)")
}

func runGraphML(input, output, edgeDefault string, watch bool) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	exportCfg := cfg.Export
	if edgeDefault != "" {
		exportCfg.EdgeDefault = edgeDefault
	}

	factory, err := export.Lookup("graphml")
	if err != nil {
		return err
	}
	exporter := factory(exportCfg, logger.Logger)

	if watch {
		if input == "" || output == "" {
			return errors.WithHint(errors.New("--watch requires --input and --output"),
				"watch mode re-reads the input file on change, so it cannot run on stdin/stdout")
		}
		return watchAndExport(exporter, input, output)
	}

	return exportOnce(exporter, input, output)
}

// exportOnce runs a single conversion between the resolved streams
func exportOnce(exporter export.Exporter, input, output string) error {
	var r io.Reader = os.Stdin
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			return errors.Wrapf(err, "failed to open input %s", input)
		}
		defer f.Close()
		r = f
	}

	if output == "" {
		return exporter.Export(r, os.Stdout)
	}

	f, err := os.Create(output)
	if err != nil {
		return errors.Wrapf(err, "failed to create output %s", output)
	}
	if err := exporter.Export(r, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
