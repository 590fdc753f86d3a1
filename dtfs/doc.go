// Package dtfs reads and decodes a device-tree filesystem view, the
// directory hierarchy the kernel exposes under /proc/device-tree.
//
// # Overview
//
// A device tree is surfaced by the operating system as a plain directory
// tree: every directory is a named node and every regular file is a named
// property holding an opaque byte buffer. The buffers carry no header or
// type tag, so this package classifies each one heuristically into one of
// four shapes and provides indexed decoders for the two structured shapes.
//
// # Key Types
//
//   - Tree: handle over a backing Store, providing path checks and traversal
//   - Store: the backing-store contract (stat, list, read); OSStore is the
//     live-filesystem implementation and the default
//   - PropKind: the classified shape of a property buffer
//   - PathKind: whether a path is a node or a property
//
// # Classification
//
// Classify inspects only the bytes and their length:
//
//   - an empty buffer is PropSimple (a marker property)
//   - a buffer of NUL-terminated runs of printable characters that exactly
//     tile it is PropStrings
//   - otherwise, a buffer whose length is a multiple of 4 is PropWords
//     (big-endian 32-bit words)
//   - anything else is PropBytes
//
// The string test deliberately runs before the word-alignment test: a
// printable string list whose length happens to be 4-aligned is still a
// string list.
//
// # Traversal
//
// ListChildren and GetProp are visitor-driven and single-level; recursive
// walking is composed on top of them (see Walk). Paths, names, and buffers
// handed to a visitor are only valid for the duration of that call. Use
// NameList and PropData to keep data beyond the callback.
//
// Example:
//
//	t := dtfs.New(dtfs.Options{})
//	err := t.Walk(dtfs.DefaultPath, dtfs.WalkFuncs{
//		Node: func(path, name string) { fmt.Println("+", path+"/"+name) },
//		Prop: func(path string, data []byte) {
//			kind, count := dtfs.Classify(data)
//			fmt.Println("|", path, kind, count)
//		},
//	})
//
// # Thread Safety
//
// All operations are synchronous and read-only. A Tree may be shared by
// multiple goroutines as long as its Store is safe for concurrent reads
// (OSStore is). A live backing store can change between an enumeration and
// a later read; such races surface as ordinary not-found errors.
package dtfs
