package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"promptcanvas/easel/internal/assemble"
	"promptcanvas/easel/internal/graph"
)

var (
	inspectJSON bool
	inspectTopN int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect canvas structure: totals, types, sinks, orphans, dead branches",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := OpenDatabase()
		if err != nil {
			return err
		}
		defer d.Close()

		snap, err := graph.SnapshotFromStore(d)
		if err != nil {
			return fmt.Errorf("loading graph: %w", err)
		}

		config := graph.DefaultInspectConfig()
		config.SinkTypes = []string{assemble.TypeGenerate, assemble.TypePrompt}
		config.TopN = inspectTopN

		report := graph.Inspect(snap, config)

		if inspectJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		printInspectReport(report, snap)
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Output as JSON")
	inspectCmd.Flags().IntVar(&inspectTopN, "top-n", 20, "Number of IDs to list per section")
	rootCmd.AddCommand(inspectCmd)
}

func printInspectReport(report *graph.InspectReport, snap *graph.Snapshot) {
	fmt.Println("\n  CANVAS")
	fmt.Println("  ────────────────────────────────────────")
	fmt.Printf("  Nodes: %d  Edges: %d  Components: %d\n",
		report.TotalNodes, report.TotalEdges, report.Components)

	if len(report.TypeCounts) > 0 {
		fmt.Println("\n  Node types:")
		for _, tc := range report.TypeCounts {
			fmt.Printf("    %-12s %4d\n", tc.NodeType, tc.Count)
		}
	}

	if len(report.SinkIDs) > 0 {
		fmt.Printf("\n  Sinks: %d\n", len(report.SinkIDs))
		for _, id := range report.SinkIDs {
			node := snap.Nodes[id]
			fmt.Printf("    %s [%s] %s\n", truncID(id), node.NodeType, truncTitle(node.Title, 40))
		}
	}

	if report.OrphanCount > 0 {
		fmt.Printf("\n  Orphans: %d disconnected node(s)\n", report.OrphanCount)
		for _, id := range report.OrphanIDs {
			node := snap.Nodes[id]
			fmt.Printf("    %s [%s] %s\n", truncID(id), node.NodeType, truncTitle(node.Title, 40))
		}
	}

	if len(report.Unreachable) > 0 {
		fmt.Printf("\n  Feeding no sink: %d node(s) contribute nothing\n", len(report.Unreachable))
		for _, id := range report.Unreachable {
			node := snap.Nodes[id]
			fmt.Printf("    %s [%s] %s\n", truncID(id), node.NodeType, truncTitle(node.Title, 40))
		}
	}

	fmt.Println()
}
