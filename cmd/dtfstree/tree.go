package main

import (
	"io"

	"github.com/superna9999/libdtfs/dtfs"
)

func runTree(w io.Writer, args []string) error {
	base := dtfs.DefaultPath
	if len(args) > 0 {
		base = args[0]
	}

	printVerbose("Walking %s\n", base)

	return newPrinter(newTree(), w).PrintTree(base)
}
