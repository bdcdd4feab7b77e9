package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptcanvas/easel/internal/db"
)

var (
	addNodeType    string
	addNodeTitle   string
	addNodePayload string
	addNodeX       float64
	addNodeY       float64
	addEdgeHandle  string
)

var addNodeCmd = &cobra.Command{
	Use:   "add-node",
	Short: "Create a node",
	RunE: func(cmd *cobra.Command, args []string) error {
		if addNodeType == "" {
			return fmt.Errorf("--type is required")
		}
		d, err := OpenDatabase()
		if err != nil {
			return err
		}
		defer d.Close()

		id, err := d.CreateNode(addNodeType, addNodeTitle, db.CreateNodeOpts{
			Payload: addNodePayload,
			PosX:    addNodeX,
			PosY:    addNodeY,
		})
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

var addEdgeCmd = &cobra.Command{
	Use:   "add-edge <from> <to>",
	Short: "Connect two nodes (handle: in, ref, or config)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := OpenDatabase()
		if err != nil {
			return err
		}
		defer d.Close()

		source, err := ResolveNode(d, args[0])
		if err != nil {
			return err
		}
		target, err := ResolveNode(d, args[1])
		if err != nil {
			return err
		}

		id, err := d.CreateEdge(source.ID, "out", target.ID, addEdgeHandle)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

var (
	moveX float64
	moveY float64
)

var moveCmd = &cobra.Command{
	Use:   "move <node>",
	Short: "Set a node's canvas position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("x") && !cmd.Flags().Changed("y") {
			return fmt.Errorf("--x or --y is required")
		}
		d, err := OpenDatabase()
		if err != nil {
			return err
		}
		defer d.Close()

		node, err := ResolveNode(d, args[0])
		if err != nil {
			return err
		}
		x, y := node.PosX, node.PosY
		if cmd.Flags().Changed("x") {
			x = moveX
		}
		if cmd.Flags().Changed("y") {
			y = moveY
		}
		return d.SetNodePosition(node.ID, x, y)
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <node>",
	Short: "Delete a node and its edges",
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
		if err := d.DeleteNode(node.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted %s [%s] %s\n", truncID(node.ID), node.NodeType, node.Title)
		return nil
	},
}

func init() {
	addNodeCmd.Flags().StringVar(&addNodeType, "type", "", "Node type (character, shot, parameters, generate, ...)")
	addNodeCmd.Flags().StringVar(&addNodeTitle, "title", "", "Node title shown on the canvas")
	addNodeCmd.Flags().StringVar(&addNodePayload, "payload", "", "Type-specific payload as a JSON document")
	addNodeCmd.Flags().Float64Var(&addNodeX, "x", 0, "Canvas X position")
	addNodeCmd.Flags().Float64Var(&addNodeY, "y", 0, "Canvas Y position")
	addEdgeCmd.Flags().StringVar(&addEdgeHandle, "handle", "in", "Target handle: in (narrative), ref, or config")
	moveCmd.Flags().Float64Var(&moveX, "x", 0, "Canvas X position")
	moveCmd.Flags().Float64Var(&moveY, "y", 0, "Canvas Y position")
	rootCmd.AddCommand(addNodeCmd)
	rootCmd.AddCommand(addEdgeCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(rmCmd)
}
