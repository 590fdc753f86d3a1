package dtfs

// NameList collects child names from ListChildren. It is caller-owned:
// pass its Visit method as the visitor, then read Names afterwards.
//
// With Max > 0 the list is bounded; names past the bound are dropped and
// counted in Missed instead of grown. Max <= 0 means unbounded.
type NameList struct {
	Names  []string
	Max    int
	Missed int
}

// Visit is a ChildVisitor that records name.
func (l *NameList) Visit(path, name string) {
	if l.Max > 0 && len(l.Names) >= l.Max {
		l.Missed++
		return
	}
	l.Names = append(l.Names, name)
}

// PropData snapshots a property out of a GetProp callback. The buffer
// handed to the visitor is only valid during the call, so Visit stores a
// copy. Data stays nil for an empty property.
type PropData struct {
	Path string
	Data []byte
}

// Visit is a PropVisitor that captures the path and a copy of the buffer.
func (d *PropData) Visit(path string, data []byte) {
	d.Path = path
	d.Data = append([]byte(nil), data...)
}
