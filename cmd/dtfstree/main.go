// Command dtfstree walks a device-tree filesystem view and prints every
// node and property it finds.
package main

func main() {
	execute()
}
