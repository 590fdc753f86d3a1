package printer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/superna9999/libdtfs/dtfs"
)

// writeFixture lays out a small tree. os.ReadDir yields sorted names, so
// text output over the OS store is deterministic.
func writeFixture(t *testing.T) string {
	t.Helper()
	base := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(base, "compatible"), []byte("test,root\x00"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "marker"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(base, "soc"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "soc", "raw"), []byte{0xde, 0xad, 0xbe}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "soc", "reg"), []byte{0, 0, 0, 1, 0, 0, 0, 2}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "status"), []byte("okay\x00"), 0o644))

	return base
}

func TestPrintTree_Text(t *testing.T) {
	base := writeFixture(t)
	var buf bytes.Buffer
	p := New(dtfs.New(dtfs.Options{}), &buf, DefaultOptions())

	require.NoError(t, p.PrintTree(base))

	want := fmt.Sprintf(`| %[1]s/compatible (1) = "test,root"
| %[1]s/marker
+ %[1]s/soc
| %[1]s/soc/raw (3) = [deadbe]
| %[1]s/soc/reg (2) = <0x00000001 0x00000002>
| %[1]s/status (1) = "okay"
`, base)
	require.Equal(t, want, buf.String())
}

func TestPrintTree_JSON(t *testing.T) {
	base := writeFixture(t)
	var buf bytes.Buffer
	p := New(dtfs.New(dtfs.Options{}), &buf, Options{Format: FormatJSON})

	require.NoError(t, p.PrintTree(base))

	var entries []Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 6)

	byPath := map[string]Entry{}
	for _, e := range entries {
		byPath[e.Path] = e
	}

	require.Equal(t, "node", byPath[base+"/soc"].Kind)
	require.Equal(t, "simple", byPath[base+"/marker"].Kind)

	status := byPath[base+"/status"]
	require.Equal(t, "strings", status.Kind)
	require.Equal(t, []string{"okay"}, status.Strings)

	reg := byPath[base+"/soc/reg"]
	require.Equal(t, "words", reg.Kind)
	require.Equal(t, []string{"0x00000001", "0x00000002"}, reg.Words)

	raw := byPath[base+"/soc/raw"]
	require.Equal(t, "bytes", raw.Kind)
	require.Equal(t, 3, raw.Count)
	require.Equal(t, "deadbe", raw.Bytes)
}

func TestPrintProp_Text(t *testing.T) {
	var buf bytes.Buffer
	p := New(dtfs.New(dtfs.Options{}), &buf, DefaultOptions())

	require.NoError(t, p.PrintProp("/dt/model", []byte("Test Board\x00")))
	require.Equal(t, "| /dt/model (1) = \"Test Board\"\n", buf.String())
}

func TestPrintProp_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := New(dtfs.New(dtfs.Options{}), &buf, Options{Format: FormatJSON})

	require.NoError(t, p.PrintProp("/dt/reg", []byte{0, 0, 0xf0, 0x0d}))

	var e Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &e))
	require.Equal(t, "words", e.Kind)
	require.Equal(t, []string{"0x0000F00D"}, e.Words)
}

func TestPrintTree_RootFailure(t *testing.T) {
	var buf bytes.Buffer
	p := New(dtfs.New(dtfs.Options{}), &buf, DefaultOptions())
	require.Error(t, p.PrintTree("/does/not/exist"))
}
