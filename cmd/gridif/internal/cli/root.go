// Package cli wires the cobra command tree for the gridif binary.
package cli

import "github.com/spf13/cobra"

// Execute builds and runs the root command.
func Execute() error {
	root := &cobra.Command{
		Use:   "gridif",
		Short: "N-1/N-2 influence factor analysis for transmission grids",
	}
	root.AddCommand(newRunCommand())
	return root.Execute()
}
