package dtfs

import (
	"errors"
	"io/fs"
)

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInput    ErrKind = iota // bad arguments (empty base, nil visitor)
	ErrKindNotFound                // path missing from the backing store
	ErrKindType                    // path or buffer is not the requested kind
	ErrKindRange                   // element index out of range
	ErrKindStore                   // backing store failure (permission, I/O)
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels returned by this package.
var (
	// ErrEmptyBase indicates a missing or empty base path.
	ErrEmptyBase = &Error{Kind: ErrKindInput, Msg: "dtfs: empty base path"}
	// ErrNilVisitor indicates a traversal was requested without a visitor.
	ErrNilVisitor = &Error{Kind: ErrKindInput, Msg: "dtfs: nil visitor"}
	// ErrTypeMismatch indicates the buffer does not classify to the shape
	// the requested decoder expects.
	ErrTypeMismatch = &Error{Kind: ErrKindType, Msg: "dtfs: property has different shape"}
	// ErrIndexRange indicates an element index past the end of the buffer.
	ErrIndexRange = &Error{Kind: ErrKindRange, Msg: "dtfs: element index out of range"}
	// ErrNotProperty indicates the path does not refer to a property.
	ErrNotProperty = &Error{Kind: ErrKindType, Msg: "dtfs: path is not a property"}
	// ErrBadPath indicates the path exists but is neither a node nor a
	// property (sockets, symlink loops, device files).
	ErrBadPath = &Error{Kind: ErrKindType, Msg: "dtfs: path is neither node nor property"}
)

// storeErr wraps a backing-store failure, keeping not-found distinguishable
// from other store errors.
func storeErr(op, path string, err error) error {
	kind := ErrKindStore
	if errors.Is(err, fs.ErrNotExist) {
		kind = ErrKindNotFound
	}
	return &Error{Kind: kind, Msg: "dtfs: " + op + " " + path, Err: err}
}
