package dtfs

import (
	"encoding/binary"
	"fmt"
)

// WordAt returns the n-th element of a PropWords buffer: the big-endian
// 32-bit word at byte offset 4n, converted to host order.
//
// The buffer is re-classified on every call; classification is cheap and
// the backing store may have changed since an earlier Classify.
func WordAt(data []byte, n int) (uint32, error) {
	if kind, _ := Classify(data); kind != PropWords {
		return 0, fmt.Errorf("word %d: %w", n, ErrTypeMismatch)
	}
	if n < 0 || (n+1)*4 > len(data) {
		return 0, fmt.Errorf("word %d of %d: %w", n, len(data)/4, ErrIndexRange)
	}
	return binary.BigEndian.Uint32(data[4*n:]), nil
}

// StringAt returns the n-th element of a PropStrings buffer, without its
// terminating NUL.
//
// The returned slice aliases data; it is valid only while data is. Run
// boundaries are walked from the start on every call, so access is O(n)
// per element. Property lists are small (tens of entries), so no index is
// kept.
func StringAt(data []byte, n int) ([]byte, error) {
	kind, count := Classify(data)
	if kind != PropStrings {
		return nil, fmt.Errorf("string %d: %w", n, ErrTypeMismatch)
	}
	if n < 0 || n >= count {
		return nil, fmt.Errorf("string %d of %d: %w", n, count, ErrIndexRange)
	}
	start := 0
	for cur := 0; ; cur++ {
		end := start
		for data[end] != 0 {
			end++
		}
		if cur == n {
			return data[start:end], nil
		}
		start = end + 1
	}
}
