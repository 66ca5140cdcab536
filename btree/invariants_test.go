package btree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants walks every reachable node and fails the test if any
// structural rule of the tree is violated: occupancy bounds, the child/item
// count relation, strict key ordering inside nodes, separator bounds for
// every subtree, uniform leaf depth and counter/capacity consistency.
func checkInvariants(tb testing.TB, tr *Btree) {
	tb.Helper()
	if tr.root == nil {
		require.Zero(tb, tr.size, "empty tree must report size 0")
		return
	}
	count, _ := verifyNode(tb, tr, tr.root, true, nil, nil)
	require.Equal(tb, tr.size, count, "size counter out of sync with stored items")
}

// verifyNode checks n and its subtree, with every key strictly between lower
// and upper (nil meaning unbounded). Returns the number of items stored in
// the subtree and its leaf depth.
func verifyNode(tb testing.TB, tr *Btree, n *node, isRoot bool, lower, upper []byte) (count, depth int) {
	tb.Helper()

	require.Len(tb, n.items, tr.maxItems(), "item slice not allocated to capacity")
	require.Len(tb, n.children, tr.maxChildren(), "child slice not allocated to capacity")
	require.LessOrEqual(tb, n.numItems, tr.maxItems(), "node above occupancy ceiling")
	if !isRoot {
		require.GreaterOrEqual(tb, n.numItems, tr.minItems(), "non-root node below occupancy floor")
	}
	if n.isLeaf() {
		require.Zero(tb, n.numChildren)
	} else {
		require.Equal(tb, n.numItems+1, n.numChildren, "internal node must have one more child than items")
	}
	for i := n.numItems; i < len(n.items); i++ {
		require.Nil(tb, n.items[i], "stale item beyond numItems")
	}
	for i := n.numChildren; i < len(n.children); i++ {
		require.Nil(tb, n.children[i], "stale child pointer beyond numChildren")
	}

	for i := 0; i < n.numItems; i++ {
		key := n.items[i].key
		if i > 0 {
			require.True(tb, bytes.Compare(n.items[i-1].key, key) < 0,
				"items not strictly increasing: %q before %q", n.items[i-1].key, key)
		}
		if lower != nil {
			require.True(tb, bytes.Compare(key, lower) > 0,
				"key %q at or below subtree lower bound %q", key, lower)
		}
		if upper != nil {
			require.True(tb, bytes.Compare(key, upper) < 0,
				"key %q at or above subtree upper bound %q", key, upper)
		}
	}

	count = n.numItems
	if n.isLeaf() {
		return count, 1
	}

	childDepth := -1
	for i := 0; i < n.numChildren; i++ {
		childLower, childUpper := lower, upper
		if i > 0 {
			childLower = n.items[i-1].key
		}
		if i < n.numItems {
			childUpper = n.items[i].key
		}
		c, d := verifyNode(tb, tr, n.children[i], false, childLower, childUpper)
		count += c
		if childDepth == -1 {
			childDepth = d
		}
		require.Equal(tb, childDepth, d, "leaves at unequal depth")
	}
	return count, childDepth + 1
}
