package dtfs

// EntryKind is the metadata kind a Store reports for a path.
type EntryKind int

const (
	// EntryOther is anything that is neither a directory nor a regular
	// file.
	EntryOther EntryKind = iota
	// EntryDir is a directory-like entry (a node).
	EntryDir
	// EntryFile is a regular-file-like entry (a property).
	EntryFile
)

// EntryInfo is store metadata for a single path.
type EntryInfo struct {
	Kind EntryKind
	Size int64
}

// Store is the backing hierarchical byte store a Tree reads from. It is
// treated as read-only; any call may fail with a not-found, permission,
// or I/O error.
//
// The default implementation is OSStore. Tests substitute in-memory
// stores.
type Store interface {
	// Stat returns metadata for path.
	Stat(path string) (EntryInfo, error)

	// List returns the names of the immediate children of the directory
	// at path, in whatever order the store yields them.
	List(path string) ([]string, error)

	// ReadAll returns the complete contents of the file at path.
	ReadAll(path string) ([]byte, error)
}
