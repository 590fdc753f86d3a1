package dtfs

import "strings"

// DefaultPath is the conventional mount point of the kernel's device-tree
// view.
const DefaultPath = "/proc/device-tree"

// JoinPath joins a base path and an optional relative path, inserting a
// '/' only when neither side already provides one. If both sides provide
// one the result keeps the doubled separator; the backing store treats the
// two spellings identically, so no normalization happens here.
//
// An empty base is an error. An empty rel returns base unchanged.
func JoinPath(base, rel string) (string, error) {
	if base == "" {
		return "", ErrEmptyBase
	}
	if rel == "" {
		return base, nil
	}
	if !strings.HasSuffix(base, "/") && !strings.HasPrefix(rel, "/") {
		return base + "/" + rel, nil
	}
	return base + rel, nil
}
