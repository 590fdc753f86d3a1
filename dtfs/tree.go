package dtfs

import (
	"fmt"
	"io"
	"log/slog"
)

// PathKind is what an existing path refers to.
type PathKind int

const (
	// PathInvalid is the zero value; CheckPath never returns it without
	// an accompanying error.
	PathInvalid PathKind = iota
	// PathNode is a container with children.
	PathNode
	// PathProperty is a leaf holding a byte buffer.
	PathProperty
)

// String implements the Stringer interface for PathKind.
func (k PathKind) String() string {
	switch k {
	case PathNode:
		return "node"
	case PathProperty:
		return "property"
	default:
		return "invalid"
	}
}

// Options configures a Tree. The zero value reads the live filesystem and
// discards diagnostics.
type Options struct {
	// Store supplies metadata, directory entries, and file contents.
	// Nil means the OS filesystem.
	Store Store

	// Logger receives non-fatal traversal diagnostics (an unreadable
	// subdirectory during a walk, an entry that vanished between
	// enumeration and read). Nil discards them.
	Logger *slog.Logger
}

// Tree reads a device-tree hierarchy from a backing store. Trees hold no
// state beyond their configuration; every operation is a fresh query
// against the store.
type Tree struct {
	store Store
	log   *slog.Logger
}

// New returns a Tree over opts.Store.
//
// Example:
//
//	t := dtfs.New(dtfs.Options{})
//	kind, err := t.CheckPath(dtfs.DefaultPath, "model")
func New(opts Options) *Tree {
	t := &Tree{store: opts.Store, log: opts.Logger}
	if t.store == nil {
		t.store = OSStore{}
	}
	if t.log == nil {
		t.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return t
}

// CheckPath joins base and rel and classifies the result: a directory is
// a PathNode, a regular file a PathProperty. A failed join, a failed stat,
// or any other entry kind returns PathInvalid with the error.
func (t *Tree) CheckPath(base, rel string) (PathKind, error) {
	p, err := JoinPath(base, rel)
	if err != nil {
		return PathInvalid, err
	}
	info, err := t.store.Stat(p)
	if err != nil {
		return PathInvalid, storeErr("stat", p, err)
	}
	switch info.Kind {
	case EntryDir:
		return PathNode, nil
	case EntryFile:
		return PathProperty, nil
	default:
		return PathInvalid, fmt.Errorf("%s: %w", p, ErrBadPath)
	}
}
