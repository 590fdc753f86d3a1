// Package printer renders device-tree walk results as text or JSON.
//
// The text format matches the classic dtfs_tree output line for line:
// nodes as "+ <path>", properties as "| <path>" with shape-specific value
// rendering. The package makes no decisions of its own; it only consumes
// the dtfs traversal and decode operations.
package printer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/superna9999/libdtfs/dtfs"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text.
	FormatText Format = "text"

	// FormatJSON outputs a JSON array of entries.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// Color enables ANSI color on text output. JSON output is never
	// colored.
	// Default: false
	Color bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{Format: FormatText}
}

// Printer handles formatted output of device-tree structures.
type Printer struct {
	tree *dtfs.Tree
	w    io.Writer
	opts Options

	nodePath func(a ...any) string
	propPath func(a ...any) string
}

// New creates a Printer rendering tree content to w.
func New(tree *dtfs.Tree, w io.Writer, opts Options) *Printer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	p := &Printer{tree: tree, w: w, opts: opts}
	p.nodePath = fmt.Sprint
	p.propPath = fmt.Sprint
	if opts.Color {
		p.nodePath = color.New(color.FgGreen, color.Bold).Sprint
		p.propPath = color.New(color.FgCyan).Sprint
	}
	return p
}

// PrintTree walks the tree under base and renders every discovered node
// and property. Unreadable subtrees are skipped by the walk; a failure at
// base itself is returned.
func (p *Printer) PrintTree(base string) error {
	if p.opts.Format == FormatJSON {
		return p.printTreeJSON(base)
	}
	return p.printTreeText(base)
}

// PrintProp renders a single property buffer.
func (p *Printer) PrintProp(path string, data []byte) error {
	if p.opts.Format == FormatJSON {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(propEntry(path, data))
	}
	p.propLine(path, data)
	return nil
}
