package commands

import (
	"io"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/graphkit/cxport/cx"
	"github.com/graphkit/cxport/errors"
	"github.com/graphkit/cxport/graphml"
)

// InspectCmd summarizes a CX document without exporting it
var InspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize the aspects of a CX document",
	Long: `Parse a CX document and print a summary of its aspects:
graph name, node and edge counts, attribute counts, and how many
detached attributes could not be matched to an owner.

Examples:
  cxport inspect < network.cx
  cxport inspect -i network.cx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		return runInspect(input)
	},
}

func init() {
	InspectCmd.Flags().StringP("input", "i", "", "Input CX file (default: stdin)")
}

func runInspect(input string) error {
	var r io.Reader = os.Stdin
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			return errors.Wrapf(err, "failed to open input %s", input)
		}
		defer f.Close()
		r = f
	}

	doc, err := cx.ParseDocument(r)
	if err != nil {
		return errors.Wrap(err, "failed to parse CX document")
	}

	nodeAttrs := len(doc.NodeAttributes)
	edgeAttrs := len(doc.EdgeAttributes)
	netAttrs := len(doc.NetworkAttributes)
	stats := doc.MergeAttributes()
	schema := graphml.BuildSchema(doc)

	pterm.Printf("Graph: %s\n\n", pterm.LightCyan(graphml.GraphName(doc)))

	table := pterm.TableData{
		{"ASPECT", "COUNT", "NOTES"},
		{"nodes", strconv.Itoa(len(doc.Nodes)), ""},
		{"edges", strconv.Itoa(len(doc.Edges)), ""},
		{"nodeAttributes", strconv.Itoa(nodeAttrs), dropNote(stats.DroppedNodeAttributes)},
		{"edgeAttributes", strconv.Itoa(edgeAttrs), dropNote(stats.DroppedEdgeAttributes)},
		{"networkAttributes", strconv.Itoa(netAttrs), ""},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(table).Render(); err != nil {
		return errors.Wrap(err, "failed to render summary table")
	}

	pterm.Printf("\nGraphML keys: %s graph, %s node, %s edge\n",
		pterm.Green(strconv.Itoa(len(schema.Graph))),
		pterm.Green(strconv.Itoa(len(schema.Node))),
		pterm.Green(strconv.Itoa(len(schema.Edge))))

	if stats.Dropped() > 0 {
		pterm.Warning.Printf("%d attribute(s) reference no known node/edge and would be dropped\n", stats.Dropped())
	}
	return nil
}

func dropNote(dropped int) string {
	if dropped == 0 {
		return ""
	}
	return strconv.Itoa(dropped) + " unresolvable"
}
