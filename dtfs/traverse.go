package dtfs

import (
	"fmt"
	"strings"
)

// ChildVisitor receives one enumerated child of a node. path is the
// node's joined path and name the child's entry name; both strings are
// only valid for the duration of the call.
type ChildVisitor func(path, name string)

// PropVisitor receives a property buffer. data is nil for an empty
// property, which is a valid result, not an error. The buffer is released
// when the visitor returns; use PropData to keep a copy.
type PropVisitor func(path string, data []byte)

// ListChildren enumerates the immediate children of the node at
// base+nodePath and invokes visit once per entry whose name does not start
// with '.'. Enumeration order follows the backing store and is
// unspecified.
//
// A failed join or a failed directory open is returned as an error; the
// failure is local to this one directory and a broader walk may continue
// past it.
func (t *Tree) ListChildren(base, nodePath string, visit ChildVisitor) error {
	if visit == nil {
		return ErrNilVisitor
	}
	p, err := JoinPath(base, nodePath)
	if err != nil {
		return err
	}
	names, err := t.store.List(p)
	if err != nil {
		return storeErr("list", p, err)
	}
	for _, name := range names {
		if strings.HasPrefix(name, ".") {
			continue
		}
		visit(p, name)
	}
	return nil
}

// GetProp reads the property at base+rel in a single pass and invokes
// visit exactly once with the full buffer. A zero-byte property invokes
// visit with nil data and is a success.
//
// The path is re-checked to be a PathProperty here rather than trusted
// from an earlier CheckPath; the store may have changed in between.
func (t *Tree) GetProp(base, rel string, visit PropVisitor) error {
	if visit == nil {
		return ErrNilVisitor
	}
	kind, err := t.CheckPath(base, rel)
	if err != nil {
		return err
	}
	if kind != PathProperty {
		p, _ := JoinPath(base, rel)
		return fmt.Errorf("%s is a %s: %w", p, kind, ErrNotProperty)
	}
	p, err := JoinPath(base, rel)
	if err != nil {
		return err
	}
	data, err := t.store.ReadAll(p)
	if err != nil {
		return storeErr("read", p, err)
	}
	if len(data) == 0 {
		visit(p, nil)
		return nil
	}
	visit(p, data)
	return nil
}
