package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"promptcanvas/easel/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create an empty .easel.db in the given directory (default: cwd)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		path := filepath.Join(dir, ".easel.db")
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("database already exists: %s", path)
		}

		d, err := db.OpenDB(path)
		if err != nil {
			return err
		}
		defer d.Close()

		fmt.Printf("Created %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
