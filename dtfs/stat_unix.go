//go:build unix

package dtfs

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// Stat implements Store with a direct stat(2), skipping the os.FileInfo
// allocation on what is the hottest call of a walk.
func (OSStore) Stat(path string) (EntryInfo, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return EntryInfo{}, &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	info := EntryInfo{Size: st.Size}
	switch st.Mode & unix.S_IFMT {
	case unix.S_IFDIR:
		info.Kind = EntryDir
	case unix.S_IFREG:
		info.Kind = EntryFile
	}
	return info, nil
}
