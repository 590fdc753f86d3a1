package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/superna9999/libdtfs/dtfs"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <path>",
		Short: "Classify and print a single property",
		Long: `The get command reads one property, classifies its buffer, and prints
the decoded value.

Example:
  dtfstree get /proc/device-tree/model
  dtfstree get --json /proc/device-tree/soc/ranges`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.OutOrStdout(), args)
		},
	}
}

func runGet(w io.Writer, args []string) error {
	t := newTree()

	var prop dtfs.PropData
	if err := t.GetProp(args[0], "", prop.Visit); err != nil {
		return fmt.Errorf("get %s: %w", args[0], err)
	}

	return newPrinter(t, w).PrintProp(prop.Path, prop.Data)
}
