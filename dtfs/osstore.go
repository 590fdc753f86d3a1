package dtfs

import "os"

// OSStore reads the live filesystem. The zero value is ready to use.
//
// Stat has a platform split: unix builds issue a direct stat(2) via
// golang.org/x/sys (see stat_unix.go), other platforms go through os.Stat.
type OSStore struct{}

// List implements Store.
func (OSStore) List(path string) ([]string, error) {
	ents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(ents))
	for i, e := range ents {
		names[i] = e.Name()
	}
	return names, nil
}

// ReadAll implements Store.
func (OSStore) ReadAll(path string) ([]byte, error) {
	return os.ReadFile(path)
}
