package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var nodesJSON bool

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "List all nodes on the canvas",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := OpenDatabase()
		if err != nil {
			return err
		}
		defer d.Close()

		nodes, err := d.AllNodes()
		if err != nil {
			return fmt.Errorf("listing nodes: %w", err)
		}

		if nodesJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(nodes)
		}

		if len(nodes) == 0 {
			fmt.Println("No nodes. Use 'easel add-node' to create one.")
			return nil
		}
		for _, n := range nodes {
			fmt.Printf("  %s  %-11s %s\n", truncID(n.ID), n.NodeType, truncTitle(n.Title, 50))
		}
		fmt.Printf("\n%d node(s)\n", len(nodes))
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <node>",
	Short: "Show one node: payload, connections, attached images",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := OpenDatabase()
		if err != nil {
			return err
		}
		defer d.Close()

		node, err := ResolveNode(d, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s [%s] %s\n", node.ID, node.NodeType, node.Title)

		var payload map[string]any
		if err := json.Unmarshal([]byte(node.Payload), &payload); err == nil && len(payload) > 0 {
			pretty, _ := json.MarshalIndent(payload, "  ", "  ")
			fmt.Printf("  payload: %s\n", pretty)
		}

		incoming, err := d.EdgesInto(node.ID)
		if err != nil {
			return fmt.Errorf("loading edges: %w", err)
		}
		for _, e := range incoming {
			source, _ := d.GetNode(e.SourceID)
			title := "?"
			if source != nil {
				title = truncTitle(source.Title, 40)
			}
			fmt.Printf("  <- %s (%s) via %s\n", truncID(e.SourceID), title, e.TargetHandle)
		}

		outgoing, err := d.EdgesFrom(node.ID)
		if err != nil {
			return fmt.Errorf("loading edges: %w", err)
		}
		for _, e := range outgoing {
			target, _ := d.GetNode(e.TargetID)
			title := "?"
			if target != nil {
				title = truncTitle(target.Title, 40)
			}
			fmt.Printf("  -> %s (%s) via %s\n", truncID(e.TargetID), title, e.TargetHandle)
		}

		images, err := d.ImagesForNode(node.ID)
		if err != nil {
			return fmt.Errorf("loading images: %w", err)
		}
		for _, img := range images {
			fmt.Printf("  image %s model=%s\n", truncID(img.ID), img.Model)
		}

		return nil
	},
}

func init() {
	nodesCmd.Flags().BoolVar(&nodesJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(nodesCmd)
	rootCmd.AddCommand(showCmd)
}
