package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"promptcanvas/easel/internal/assemble"
	"promptcanvas/easel/internal/graph"
	"promptcanvas/easel/internal/render"
)

var (
	generateDryRun  bool
	generateTimeout time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate <node>",
	Short: "Assemble a generate node and request images from the provider",
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
		if node.NodeType != assemble.TypeGenerate {
			return fmt.Errorf("node %s is a %s node, not a generate node", truncID(node.ID), node.NodeType)
		}

		settings, err := LoadSettings()
		if err != nil {
			return err
		}

		snap, err := graph.SnapshotFromStore(d)
		if err != nil {
			return fmt.Errorf("loading graph: %w", err)
		}

		result := assemble.Assemble(node.ID, snap, assemble.Defaults{
			Model:       settings.Defaults.Model,
			AspectRatio: settings.Defaults.AspectRatio,
		})

		if generateDryRun {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		client, err := render.NewClient(d, settings)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()

		imageIDs, err := client.Generate(ctx, node.ID, result)
		for _, id := range imageIDs {
			fmt.Println(id)
		}
		if err != nil {
			return fmt.Errorf("generating: %w", err)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Print the assembled request without calling the provider")
	generateCmd.Flags().DurationVar(&generateTimeout, "timeout", 2*time.Minute, "Overall timeout for provider calls")
	rootCmd.AddCommand(generateCmd)
}
