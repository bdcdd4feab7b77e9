package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"promptcanvas/easel/internal/assemble"
	"promptcanvas/easel/internal/graph"
)

var assembleJSON bool

var assembleCmd = &cobra.Command{
	Use:   "assemble <node>",
	Short: "Assemble the generation request for a sink or prompt node",
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
		if !assemble.IsSinkType(node.NodeType) {
			return fmt.Errorf("node %s is a %s node; assembly starts from a generate or prompt node",
				truncID(node.ID), node.NodeType)
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

		// A prompt node tracks the assembled value in its override state:
		// reconcile and persist, preserving any user edit.
		if node.NodeType == assemble.TypePrompt {
			var state assemble.Intercept
			_ = json.Unmarshal([]byte(node.Payload), &state)
			state.Reassemble(result)
			if err := d.UpdateNodePayload(node.ID, state); err != nil {
				return err
			}
			return printInterceptResult(result, state)
		}

		if assembleJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}
		printResult(result)
		return nil
	},
}

func init() {
	assembleCmd.Flags().BoolVar(&assembleJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(assembleCmd)
}

func printResult(result assemble.Result) {
	prompt := result.Prompt
	if prompt == "" {
		prompt = "(empty)"
	}
	fmt.Printf("  prompt:   %s\n", prompt)
	if result.NegativePrompt != "" {
		fmt.Printf("  negative: %s\n", result.NegativePrompt)
	}
	p := result.Params
	fmt.Printf("  params:   model=%s aspect=%s", p.Model, p.AspectRatio)
	if p.Seed != nil {
		fmt.Printf(" seed=%d", *p.Seed)
	}
	if p.Temperature != nil {
		fmt.Printf(" temp=%.2f", *p.Temperature)
	}
	if p.ImageCount != nil {
		fmt.Printf(" count=%d", *p.ImageCount)
	}
	fmt.Println()
	for _, ref := range result.References {
		fmt.Printf("  ref:      image %s (%s)\n", truncID(ref.ImageID), ref.Category)
	}
}

func printInterceptResult(result assemble.Result, state assemble.Intercept) error {
	if assembleJSON {
		output := struct {
			Result assemble.Result    `json:"result"`
			State  assemble.Intercept `json:"override"`
		}{result, state}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	printResult(result)
	printField := func(name string, f assemble.Field) {
		if f.IsEdited {
			fmt.Printf("  %s override: %q (edited; baseline %q)\n", name, f.Edited, f.Assembled)
		} else {
			fmt.Printf("  %s override: auto\n", name)
		}
	}
	printField("prompt", state.Prompt)
	printField("negative", state.Negative)
	return nil
}
