package dtfs

// WalkFuncs receives walk events. Nil members are skipped; a WalkFuncs
// with a nil Prop still descends into nodes.
type WalkFuncs struct {
	// Node is called once per discovered child node, before its subtree
	// is entered. path is the parent's joined path and name the node's
	// entry name.
	Node func(path, name string)

	// Prop is called once per discovered property with its full buffer,
	// under the PropVisitor validity rules.
	Prop PropVisitor
}

// Walk traverses the tree under base in pre-order, composing ListChildren,
// CheckPath, and GetProp level by level.
//
// Failures below the root - an entry that cannot be classified, a
// subdirectory that cannot be opened, a property that cannot be read - are
// logged to the Tree's logger and the affected entry skipped; sibling
// subtrees still complete. A failure enumerating base itself is returned.
func (t *Tree) Walk(base string, fns WalkFuncs) error {
	return t.ListChildren(base, "", func(path, name string) {
		t.walkChild(path, name, fns)
	})
}

func (t *Tree) walkChild(path, name string, fns WalkFuncs) {
	kind, err := t.CheckPath(path, name)
	if err != nil {
		t.log.Warn("skipping entry", "path", path, "name", name, "err", err)
		return
	}
	switch kind {
	case PathNode:
		if fns.Node != nil {
			fns.Node(path, name)
		}
		err := t.ListChildren(path, name, func(p, n string) {
			t.walkChild(p, n, fns)
		})
		if err != nil {
			t.log.Warn("skipping node", "path", path, "name", name, "err", err)
		}
	case PathProperty:
		if fns.Prop == nil {
			return
		}
		if err := t.GetProp(path, name, fns.Prop); err != nil {
			t.log.Warn("skipping property", "path", path, "name", name, "err", err)
		}
	}
}
