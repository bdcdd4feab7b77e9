package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"promptcanvas/easel/internal/assemble"
	"promptcanvas/easel/internal/graph"
)

var (
	promptEdit         string
	promptEditNegative string
	promptReset        bool
	promptRefresh      bool
)

var promptCmd = &cobra.Command{
	Use:   "prompt <node>",
	Short: "Show or edit a prompt node's override state",
	Long: `Show or edit a prompt node's override state.

With no flags, prints the current state. --edit and --edit-negative apply a
user edit to the respective field; editing back to the assembled text returns
the field to auto. --reset discards edits; --refresh reassembles from the
graph and resets both fields.`,
	Args: cobra.ExactArgs(1),
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
		if node.NodeType != assemble.TypePrompt {
			return fmt.Errorf("node %s is a %s node, not a prompt node", truncID(node.ID), node.NodeType)
		}

		var state assemble.Intercept
		_ = json.Unmarshal([]byte(node.Payload), &state)

		changed := false
		if promptRefresh {
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
			state.Refresh(result)
			changed = true
		}
		if promptReset {
			state.Prompt.Reset()
			state.Negative.Reset()
			changed = true
		}
		if cmd.Flags().Changed("edit") {
			state.Prompt.UserEdit(promptEdit)
			changed = true
		}
		if cmd.Flags().Changed("edit-negative") {
			state.Negative.UserEdit(promptEditNegative)
			changed = true
		}

		if changed {
			if err := d.UpdateNodePayload(node.ID, state); err != nil {
				return err
			}
		}

		printOverrideField("prompt", state.Prompt)
		printOverrideField("negative", state.Negative)
		return nil
	},
}

func printOverrideField(name string, f assemble.Field) {
	mode := "auto"
	if f.IsEdited {
		mode = "edited"
	}
	fmt.Printf("  %-8s [%s] %q\n", name, mode, f.Effective())
	if f.IsEdited {
		fmt.Printf("           baseline %q\n", f.Assembled)
	}
}

func init() {
	promptCmd.Flags().StringVar(&promptEdit, "edit", "", "Set the prompt field to this text")
	promptCmd.Flags().StringVar(&promptEditNegative, "edit-negative", "", "Set the negative field to this text")
	promptCmd.Flags().BoolVar(&promptReset, "reset", false, "Discard edits and return both fields to auto")
	promptCmd.Flags().BoolVar(&promptRefresh, "refresh", false, "Reassemble from the graph and reset both fields")
	rootCmd.AddCommand(promptCmd)
}
