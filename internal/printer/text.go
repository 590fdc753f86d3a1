package printer

import (
	"fmt"
	"strings"

	"github.com/superna9999/libdtfs/dtfs"
)

func (p *Printer) printTreeText(base string) error {
	return p.tree.Walk(base, dtfs.WalkFuncs{
		Node: func(path, name string) {
			fmt.Fprintf(p.w, "+ %s\n", p.nodePath(path+"/"+name))
		},
		Prop: p.propLine,
	})
}

// propLine renders one property:
//
//	| <path>                              simple
//	| <path> (n) = "a", "b"               strings
//	| <path> (n) = <0x00000001 0x0000F00D> words
//	| <path> (n) = [0a1b2c]               bytes
func (p *Printer) propLine(path string, data []byte) {
	kind, count := dtfs.Classify(data)
	switch kind {
	case dtfs.PropSimple:
		fmt.Fprintf(p.w, "| %s\n", p.propPath(path))
	case dtfs.PropStrings:
		var b strings.Builder
		for i := 0; i < count; i++ {
			s, err := dtfs.StringAt(data, i)
			if err != nil {
				continue
			}
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('"')
			b.Write(s)
			b.WriteByte('"')
		}
		fmt.Fprintf(p.w, "| %s (%d) = %s\n", p.propPath(path), count, b.String())
	case dtfs.PropWords:
		var b strings.Builder
		for i := 0; i < count; i++ {
			w, err := dtfs.WordAt(data, i)
			if err != nil {
				continue
			}
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "0x%08X", w)
		}
		fmt.Fprintf(p.w, "| %s (%d) = <%s>\n", p.propPath(path), count, b.String())
	case dtfs.PropBytes:
		fmt.Fprintf(p.w, "| %s (%d) = [%x]\n", p.propPath(path), count, data)
	}
}
