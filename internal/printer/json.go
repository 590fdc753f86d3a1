package printer

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/superna9999/libdtfs/dtfs"
)

// Entry is one node or property in JSON output.
type Entry struct {
	Path    string   `json:"path"`
	Kind    string   `json:"kind"` // node, simple, strings, words, bytes
	Count   int      `json:"count,omitempty"`
	Strings []string `json:"strings,omitempty"`
	Words   []string `json:"words,omitempty"`
	Bytes   string   `json:"bytes,omitempty"`
}

func propEntry(path string, data []byte) Entry {
	kind, count := dtfs.Classify(data)
	e := Entry{Path: path, Kind: kind.String(), Count: count}
	switch kind {
	case dtfs.PropStrings:
		for i := 0; i < count; i++ {
			s, err := dtfs.StringAt(data, i)
			if err != nil {
				continue
			}
			e.Strings = append(e.Strings, string(s))
		}
	case dtfs.PropWords:
		for i := 0; i < count; i++ {
			w, err := dtfs.WordAt(data, i)
			if err != nil {
				continue
			}
			e.Words = append(e.Words, fmt.Sprintf("0x%08X", w))
		}
	case dtfs.PropBytes:
		e.Bytes = hex.EncodeToString(data)
	}
	return e
}

func (p *Printer) printTreeJSON(base string) error {
	entries := []Entry{}
	err := p.tree.Walk(base, dtfs.WalkFuncs{
		Node: func(path, name string) {
			entries = append(entries, Entry{Path: path + "/" + name, Kind: "node"})
		},
		Prop: func(path string, data []byte) {
			entries = append(entries, propEntry(path, data))
		},
	})
	if err != nil {
		return err
	}
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
