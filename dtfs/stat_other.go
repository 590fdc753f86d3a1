//go:build !unix

package dtfs

import "os"

// Stat implements Store via os.Stat on platforms without a unix stat(2).
func (OSStore) Stat(path string) (EntryInfo, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return EntryInfo{}, err
	}
	info := EntryInfo{Size: fi.Size()}
	switch {
	case fi.IsDir():
		info.Kind = EntryDir
	case fi.Mode().IsRegular():
		info.Kind = EntryFile
	}
	return info, nil
}
