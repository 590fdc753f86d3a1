package dtfs

import "fmt"

// PropKind is the classified shape of a property buffer.
type PropKind int

const (
	// PropSimple is a zero-length marker property; presence is the value.
	PropSimple PropKind = iota
	// PropStrings is a list of NUL-terminated printable strings that
	// exactly tile the buffer.
	PropStrings
	// PropWords is a sequence of big-endian 32-bit words.
	PropWords
	// PropBytes is an uninterpreted byte array.
	PropBytes
)

// String implements the Stringer interface for PropKind.
func (k PropKind) String() string {
	switch k {
	case PropSimple:
		return "simple"
	case PropStrings:
		return "strings"
	case PropWords:
		return "words"
	case PropBytes:
		return "bytes"
	default:
		return fmt.Sprintf("PropKind(%d)", int(k))
	}
}

// isPrintableStrings reports whether data is a well-formed string list:
// the final byte is NUL, every run between NULs is non-empty, and every
// run byte is printable ASCII.
func isPrintableStrings(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if data[len(data)-1] != 0 {
		return false
	}
	start := 0
	for i, b := range data {
		if b == 0 {
			if i == start {
				return false // empty run
			}
			start = i + 1
			continue
		}
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}

// Classify determines the shape of a property buffer and its element
// count: the number of strings for PropStrings, of words for PropWords,
// of bytes for PropBytes, and 0 for PropSimple.
//
// Classification is a pure function of the bytes. The string test runs
// before the word-alignment test on purpose: a printable string list whose
// length is a multiple of 4 is PropStrings, not PropWords.
func Classify(data []byte) (PropKind, int) {
	switch {
	case len(data) == 0:
		return PropSimple, 0
	case isPrintableStrings(data):
		n := 0
		for _, b := range data {
			if b == 0 {
				n++
			}
		}
		return PropStrings, n
	case len(data)%4 == 0:
		return PropWords, len(data) / 4
	default:
		return PropBytes, len(data)
	}
}
