package btree

import (
	"errors"
	"fmt"
)

// ErrDegreeTooSmall is returned by NewBTree for degrees below 2. A degree of 1
// would give a minimum occupancy of zero and degenerate split/merge math.
var ErrDegreeTooSmall = errors.New("btree: degree must be at least 2")

// ErrKeyNotFound is wrapped by Find when the key is absent from the tree.
var ErrKeyNotFound = errors.New("key not found")

/*
Btree only keeps a pointer to root node of the tree plus the degree it was
constructed with. A tree is made up of nodes. Each node contains data items.
The degree is fixed for the lifetime of the tree and bounds the occupancy of
every node: between degree-1 and 2*degree-1 items, the root's lower bound
excepted.
*/
type Btree struct {
	root   *node
	degree int
	size   int
}

// NewBTree creates an empty tree of the given degree.
func NewBTree(degree int) (*Btree, error) {
	if degree < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrDegreeTooSmall, degree)
	}
	return &Btree{degree: degree}, nil
}

// min data items a non-root node must hold (t-1)
func (t *Btree) minItems() int {
	return t.degree - 1
}

// max data items any node may hold (2t-1)
func (t *Btree) maxItems() int {
	return 2*t.degree - 1
}

// max child pointers any node may hold (2t)
func (t *Btree) maxChildren() int {
	return 2 * t.degree
}

// newNode allocates a node with full-capacity backing slices for this degree.
func (t *Btree) newNode() *node {
	return &node{
		items:    make([]*item, t.maxItems()),
		children: make([]*node, t.maxChildren()),
	}
}

// Searching the entire tree.
func (t *Btree) Find(key []byte) ([]byte, error) {
	for next := t.root; next != nil; {
		pos, found := next.search(key)
		if found {
			return next.items[pos].val, nil
		}
		if next.isLeaf() {
			break
		}
		next = next.children[pos]
	}
	return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
}

/*
Create a new root node.
The existing root then becomes the new root's left child.
The new node created after splitting the existing root becomes new root's right child.
This is the only way the tree ever grows in height.
*/
func (t *Btree) splitRoot() {
	newRoot := t.newNode()
	midItem, newNode := t.root.split()
	newRoot.insertItemAt(0, midItem)
	newRoot.insertChildAt(0, t.root)
	newRoot.insertChildAt(1, newNode)
	t.root = newRoot
}

// Insert adds the key/value pair to the tree. If the key is already present
// its value is overwritten in place and the tree keeps its shape.
func (t *Btree) Insert(key, val []byte) {
	it := &item{key, val}

	// The tree is empty, so initialize a new node.
	if t.root == nil {
		t.root = t.newNode()
	}

	// The tree root is full, so perform a split on the root.
	if t.root.numItems >= t.maxItems() {
		t.splitRoot()
	}

	// Begin insertion.
	if t.root.insert(it, t.maxItems()) {
		t.size++
	}
}

// Delete removes the key from the tree, reporting whether it was present.
// Deleting an absent key leaves the tree untouched.
func (t *Btree) Delete(key []byte) bool {
	if t.root == nil {
		return false
	}
	deletedItem := t.root.delete(key, t.minItems())

	// Deletion may leave the root without items. An internal root is then
	// replaced by its sole remaining child, shrinking the height by one; an
	// empty leaf root means the whole tree is empty.
	if t.root.numItems == 0 {
		if t.root.isLeaf() {
			t.root = nil
		} else {
			t.root = t.root.children[0]
		}
	}

	if deletedItem != nil {
		t.size--
		return true
	}
	return false
}

// Len returns the number of distinct keys stored in the tree.
func (t *Btree) Len() int {
	return t.size
}

// Degree returns the degree the tree was constructed with.
func (t *Btree) Degree() int {
	return t.degree
}

// Height returns the number of node levels; an empty tree has height 0.
// All leaves sit at the same depth, so following first children suffices.
func (t *Btree) Height() int {
	h := 0
	for n := t.root; n != nil; {
		h++
		if n.isLeaf() {
			break
		}
		n = n.children[0]
	}
	return h
}

func (t *Btree) String() string {
	return fmt.Sprintf("Btree(degree=%d size=%d height=%d)", t.degree, t.size, t.Height())
}
