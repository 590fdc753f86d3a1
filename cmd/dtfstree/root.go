package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/superna9999/libdtfs/dtfs"
	"github.com/superna9999/libdtfs/internal/printer"
)

var (
	// Global flags
	verbose bool
	jsonOut bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "dtfstree [base path]",
	Short: "Print a device-tree filesystem view",
	Long: `dtfstree walks a device-tree filesystem view (by default the one the
kernel exposes under /proc/device-tree) and prints every node and
property, classifying each property buffer as strings, words, or bytes.

Example:
  dtfstree
  dtfstree /sys/firmware/devicetree/base
  dtfstree --json /proc/device-tree`,
	Version:      "0.1.0",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTree(cmd.OutOrStdout(), args)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// -h prints usage on stderr and exits nonzero, preserving the
	// original dtfs_tree contract.
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprint(os.Stderr, cmd.UsageString())
		os.Exit(1)
	})
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// printVerbose prints a progress message if verbose mode is enabled.
func printVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// newTree builds the Tree every command runs against, with traversal
// diagnostics on stderr when --verbose is set.
func newTree() *dtfs.Tree {
	opts := dtfs.Options{}
	if verbose {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return dtfs.New(opts)
}

// newPrinter builds a printer honoring --json and --no-color. Color only
// engages on a terminal.
func newPrinter(t *dtfs.Tree, w io.Writer) *printer.Printer {
	opts := printer.DefaultOptions()
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	if f, ok := w.(*os.File); ok {
		opts.Color = !noColor && isatty.IsTerminal(f.Fd())
	}
	return printer.New(t, w, opts)
}
