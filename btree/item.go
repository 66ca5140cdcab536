package btree

/*
data item in a node.
key uniquely identifies a data item and used for sorting them.
val is an opaque payload; the tree stores it but never interprets it,
so it can later stand in for a disk-block reference.
*/
type item struct {
	key []byte
	val []byte
}
