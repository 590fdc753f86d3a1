package dtfs

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store for error-path coverage that a real
// filesystem cannot express deterministically.
type fakeStore struct {
	infos map[string]EntryInfo
	dirs  map[string][]string
	files map[string][]byte
	fail  map[string]error // per-path injected failure, any operation
}

func (s *fakeStore) Stat(path string) (EntryInfo, error) {
	if err := s.fail[path]; err != nil {
		return EntryInfo{}, err
	}
	info, ok := s.infos[path]
	if !ok {
		return EntryInfo{}, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return info, nil
}

func (s *fakeStore) List(path string) ([]string, error) {
	if err := s.fail[path]; err != nil {
		return nil, err
	}
	names, ok := s.dirs[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return names, nil
}

func (s *fakeStore) ReadAll(path string) ([]byte, error) {
	if err := s.fail[path]; err != nil {
		return nil, err
	}
	data, ok := s.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return data, nil
}

// newFakeStore builds a store holding one node with one property:
//
//	/dt/soc          (node)
//	/dt/soc/status   (property "okay\0")
func newFakeStore() *fakeStore {
	return &fakeStore{
		infos: map[string]EntryInfo{
			"/dt":            {Kind: EntryDir},
			"/dt/soc":        {Kind: EntryDir},
			"/dt/soc/status": {Kind: EntryFile, Size: 5},
			"/dt/sock":       {Kind: EntryOther},
		},
		dirs: map[string][]string{
			"/dt":     {"soc", "sock"},
			"/dt/soc": {"status"},
		},
		files: map[string][]byte{
			"/dt/soc/status": []byte("okay\x00"),
		},
		fail: map[string]error{},
	}
}

func TestCheckPath(t *testing.T) {
	tr := New(Options{Store: newFakeStore()})

	kind, err := tr.CheckPath("/dt", "soc")
	require.NoError(t, err)
	require.Equal(t, PathNode, kind)

	kind, err = tr.CheckPath("/dt/soc", "status")
	require.NoError(t, err)
	require.Equal(t, PathProperty, kind)

	kind, err = tr.CheckPath("/dt", "")
	require.NoError(t, err)
	require.Equal(t, PathNode, kind)
}

func TestCheckPath_Invalid(t *testing.T) {
	tr := New(Options{Store: newFakeStore()})

	kind, err := tr.CheckPath("/dt", "missing")
	require.Error(t, err)
	require.Equal(t, PathInvalid, kind)
	require.ErrorIs(t, err, fs.ErrNotExist)

	// exists but is neither a directory nor a regular file
	kind, err = tr.CheckPath("/dt", "sock")
	require.ErrorIs(t, err, ErrBadPath)
	require.Equal(t, PathInvalid, kind)

	kind, err = tr.CheckPath("", "soc")
	require.ErrorIs(t, err, ErrEmptyBase)
	require.Equal(t, PathInvalid, kind)
}

func TestCheckPath_NotFoundKind(t *testing.T) {
	tr := New(Options{Store: newFakeStore()})

	_, err := tr.CheckPath("/dt", "missing")
	var derr *Error
	require.ErrorAs(t, err, &derr)
	require.Equal(t, ErrKindNotFound, derr.Kind)
}

func TestPathKindString(t *testing.T) {
	require.Equal(t, "node", PathNode.String())
	require.Equal(t, "property", PathProperty.String())
	require.Equal(t, "invalid", PathInvalid.String())
}
