package btree

import "bytes"

type node struct {
	// Backing slices are allocated to full capacity (2t-1 items, 2t children)
	// when the node is created, so insertions shift with copy instead of
	// growing the slice. The counters track actual occupancy, the way a
	// fixed-size on-disk layout would.
	items       []*item
	children    []*node
	numItems    int
	numChildren int
}

func (n *node) isLeaf() bool {
	return n.numChildren == 0
}

/*
If data item with key k is found in node n, return its index i.
Else, return the index j where the key would have resided if it was present in the node.
Basically, lower bound of the key in the node -- this coincides with position of the child pointer !!
So, we can continue the traversal down the tree if the returned boolean value is false.
*/
func (n *node) search(key []byte) (int, bool) {
	low, high := 0, n.numItems
	var mid int
	for low < high {
		mid = (low + high) / 2
		cmp := bytes.Compare(key, n.items[mid].key)
		switch {
		case cmp > 0:
			low = mid + 1
		case cmp < 0:
			high = mid
		case cmp == 0:
			return mid, true
		}
	}
	return low, false
}

// helper method to insert data item at an arbitrary position of a B-tree node
func (n *node) insertItemAt(pos int, it *item) {
	if pos < n.numItems {
		copy(n.items[pos+1:n.numItems+1], n.items[pos:n.numItems])
	}
	n.items[pos] = it
	n.numItems++
}

// helper method to insert child pointer at an arbitrary position of a B-tree node
func (n *node) insertChildAt(pos int, child *node) {
	if pos < n.numChildren {
		copy(n.children[pos+1:n.numChildren+1], n.children[pos:n.numChildren])
	}
	n.children[pos] = child
	n.numChildren++
}

// helper method to remove and return the data item at an arbitrary position
func (n *node) removeItemAt(pos int) *item {
	removed := n.items[pos]
	n.numItems--
	if pos < n.numItems {
		copy(n.items[pos:n.numItems], n.items[pos+1:n.numItems+1])
	}
	n.items[n.numItems] = nil
	return removed
}

// helper method to remove and return the child pointer at an arbitrary position
func (n *node) removeChildAt(pos int) *node {
	removed := n.children[pos]
	n.numChildren--
	if pos < n.numChildren {
		copy(n.children[pos:n.numChildren], n.children[pos+1:n.numChildren+1])
	}
	n.children[n.numChildren] = nil
	return removed
}

/*
we split as soon as we reach the parent of a child that is already full.
split() returns the middle item and newly created node, so we can link them to the parent.
The node is only ever split while completely full, so the middle sits at
numItems/2 = degree-1 and both halves end up with degree-1 items.
Note: This doesn't include splitting the root node. For that check splitRoot() in tree.go
*/
func (n *node) split() (*item, *node) {
	mid := n.numItems / 2
	midItem := n.items[mid]

	// Create a new node with the same capacity and move the upper half of the
	// items from the current node into it.
	newNode := &node{
		items:    make([]*item, len(n.items)),
		children: make([]*node, len(n.children)),
	}
	copy(newNode.items, n.items[mid+1:n.numItems])
	newNode.numItems = n.numItems - mid - 1

	// Except for leaf nodes, move the upper half of the child pointers too.
	if !n.isLeaf() {
		copy(newNode.children, n.children[mid+1:n.numChildren])
		newNode.numChildren = n.numChildren - mid - 1
	}

	// Clear out the items and child pointers that moved to the new node.
	for i := mid; i < n.numItems; i++ {
		n.items[i] = nil
		if !n.isLeaf() {
			n.children[i+1] = nil
		}
	}
	if !n.isLeaf() {
		n.numChildren = mid + 1
	}
	n.numItems = mid

	return midItem, newNode
}

/*
Returned value is true if we performed insertion. If key already exists, we just update its value and return false.
The algo will start traversing the tree from its root, recursively calling the insert() method until it reaches a
leaf node suitable for insertion. maxItems is the occupancy ceiling (2t-1) derived from the tree's degree.
*/
func (n *node) insert(it *item, maxItems int) bool {
	pos, found := n.search(it.key)

	// The data item already exists, so just update its value.
	if found {
		n.items[pos].val = it.val
		return false
	}

	// If we reach a leaf node -> it has sufficient space for the new item so, insert the new item
	if n.isLeaf() {
		n.insertItemAt(pos, it)
		return true
	}

	// If the next node on the traversal path is already full, split it
	if n.children[pos].numItems >= maxItems {
		midItem, newNode := n.children[pos].split()
		n.insertItemAt(pos, midItem)
		n.insertChildAt(pos+1, newNode)

		// We may need to change our direction after promoting the middle item to the parent, depending on its key.
		switch cmp := bytes.Compare(it.key, n.items[pos].key); {
		case cmp < 0:
			// The key we are looking for is still smaller than the key of the middle item that we took from the child,
			// so we can continue following the same direction.
		case cmp > 0:
			// The middle item that we took from the child has a key that is smaller than the one we are looking for,
			// so we need to change our direction.
			pos++
		default:
			// The middle item that we took from the child is the item we are searching for, so just update its value.
			n.items[pos].val = it.val
			return false
		}
	}

	// Continue with the insertion process
	return n.children[pos].insert(it, maxItems)
}

/*
delete removes the item with the given key from the subtree rooted at n and
returns it, or nil if the key is absent (deletion of an absent key is a no-op).
minItems is the occupancy floor (t-1). The caller guarantees that n holds more
than minItems items before the call, unless n is the root, so removing one item
from a leaf is always safe and internal nodes can always spare a separator.
*/
func (n *node) delete(key []byte, minItems int) *item {
	pos, found := n.search(key)
	if found {
		return n.deleteAt(pos, key, minItems)
	}
	if n.isLeaf() {
		return nil
	}
	return n.deleteFromChild(key, pos, minItems)
}

/*
deleteAt removes the item stored at position pos of n itself.
For a leaf the removal is direct. For an internal node the item is replaced by
its in-order predecessor or successor when the corresponding child can spare an
item; when both children sit at the occupancy floor, the item and both children
are merged into one node and deletion restarts one level down, where the key is
now guaranteed to live in a node safely above the floor.
*/
func (n *node) deleteAt(pos int, key []byte, minItems int) *item {
	if n.isLeaf() {
		return n.removeItemAt(pos)
	}

	removed := n.items[pos]
	left, right := n.children[pos], n.children[pos+1]
	switch {
	case left.numItems > minItems:
		n.items[pos] = left.deleteMax(minItems)
	case right.numItems > minItems:
		n.items[pos] = right.deleteMin(minItems)
	default:
		merged := n.mergeChildAt(pos)
		return merged.delete(key, minItems)
	}
	return removed
}

/*
deleteFromChild continues deletion inside children[pos], the only subtree whose
key range can contain the key. The child is topped up to more than minItems
items *before* descending, so every recursive call meets delete's precondition.
*/
func (n *node) deleteFromChild(key []byte, pos int, minItems int) *item {
	if n.children[pos].numItems <= minItems {
		pos = n.fillChildAt(pos, minItems)
	}
	return n.children[pos].delete(key, minItems)
}

/*
deleteMax removes and returns the largest item of the subtree rooted at n.
The descent repairs occupancy at every level, not just the first, so the
minimum-occupancy invariant holds along the whole rightmost path.
*/
func (n *node) deleteMax(minItems int) *item {
	if n.isLeaf() {
		return n.removeItemAt(n.numItems - 1)
	}
	if last := n.numChildren - 1; n.children[last].numItems <= minItems {
		n.fillChildAt(last, minItems)
	}
	// A merge in fillChildAt shrinks numChildren, so re-read the last index.
	return n.children[n.numChildren-1].deleteMax(minItems)
}

// deleteMin is the mirror image of deleteMax: it removes and returns the
// smallest item of the subtree, repairing the leftmost path as it descends.
func (n *node) deleteMin(minItems int) *item {
	if n.isLeaf() {
		return n.removeItemAt(0)
	}
	if n.children[0].numItems <= minItems {
		n.fillChildAt(0, minItems)
	}
	return n.children[0].deleteMin(minItems)
}

/*
fillChildAt brings children[pos] above the occupancy floor so deletion can
recurse into it. It first tries to borrow from a sibling holding more than
minItems items -- a rotation through the separating item in n -- preferring the
left sibling, and merges with a sibling (again left preferred) when neither can
spare anything. Returns the position of the surviving child, which shifts left
by one when the child is merged into its left sibling.
*/
func (n *node) fillChildAt(pos, minItems int) int {
	switch {
	case pos > 0 && n.children[pos-1].numItems > minItems:
		// Rotate right: the separator moves down to the front of the child and
		// the left sibling's last item moves up to replace it.
		left, child := n.children[pos-1], n.children[pos]
		child.insertItemAt(0, n.items[pos-1])
		n.items[pos-1] = left.removeItemAt(left.numItems - 1)
		if !left.isLeaf() {
			child.insertChildAt(0, left.removeChildAt(left.numChildren-1))
		}
	case pos < n.numChildren-1 && n.children[pos+1].numItems > minItems:
		// Rotate left: the separator moves down to the back of the child and
		// the right sibling's first item moves up to replace it.
		right, child := n.children[pos+1], n.children[pos]
		child.insertItemAt(child.numItems, n.items[pos])
		n.items[pos] = right.removeItemAt(0)
		if !right.isLeaf() {
			child.insertChildAt(child.numChildren, right.removeChildAt(0))
		}
	default:
		// Both siblings sit at the floor. Fold the child, a separator and a
		// sibling into a single node of 2t-1 items.
		if pos > 0 {
			pos--
		}
		n.mergeChildAt(pos)
	}
	return pos
}

/*
mergeChildAt folds the separator items[pos] and the whole of children[pos+1]
into children[pos], removing one item and one child pointer from n.
Both children hold at most minItems items when this is called, so the merged
node never exceeds the 2t-1 ceiling. Returns the merged node.
*/
func (n *node) mergeChildAt(pos int) *node {
	child, right := n.children[pos], n.children[pos+1]

	child.items[child.numItems] = n.items[pos]
	child.numItems++
	copy(child.items[child.numItems:], right.items[:right.numItems])
	child.numItems += right.numItems

	if !child.isLeaf() {
		copy(child.children[child.numChildren:], right.children[:right.numChildren])
		child.numChildren += right.numChildren
	}

	n.removeItemAt(pos)
	n.removeChildAt(pos + 1)
	return child
}
