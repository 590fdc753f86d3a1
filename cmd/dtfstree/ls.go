package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/superna9999/libdtfs/dtfs"
)

var lsMax int

func init() {
	cmd := newLsCmd()
	cmd.Flags().IntVar(&lsMax, "max", 0, "Maximum entries to list (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [path]",
		Short: "List the children of one node",
		Long: `The ls command lists the immediate children of a single node, marking
child nodes with '+' and properties with '|'. It does not recurse.

Example:
  dtfstree ls
  dtfstree ls /proc/device-tree/soc
  dtfstree ls --max 10 /proc/device-tree/soc`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLs(cmd.OutOrStdout(), args)
		},
	}
}

func runLs(w io.Writer, args []string) error {
	base := dtfs.DefaultPath
	if len(args) > 0 {
		base = args[0]
	}

	t := newTree()

	list := dtfs.NameList{Max: lsMax}
	if err := t.ListChildren(base, "", list.Visit); err != nil {
		return fmt.Errorf("list %s: %w", base, err)
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"path":   base,
			"names":  list.Names,
			"missed": list.Missed,
		})
	}

	for _, name := range list.Names {
		marker := "|"
		if kind, err := t.CheckPath(base, name); err == nil && kind == dtfs.PathNode {
			marker = "+"
		}
		fmt.Fprintf(w, "%s %s\n", marker, name)
	}
	if list.Missed > 0 {
		fmt.Fprintf(w, "... %d more\n", list.Missed)
	}
	return nil
}
