package btree

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestVisualizeEmptyTree(t *testing.T) {
	tree, err := NewBTree(2)
	require.NoError(t, err)

	v := &Visualizer{Tree: tree}
	require.Equal(t, "(empty tree)", v.Visualize())
}

func TestVisualizeRendersOneLinePerLevel(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	tree, err := NewBTree(2)
	require.NoError(t, err)
	for _, k := range []string{"10", "20", "30", "50"} {
		tree.Insert([]byte(k), []byte(k))
	}

	v := &Visualizer{Tree: tree}
	out := v.Visualize()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, tree.Height())
	require.Equal(t, "[20]", lines[0])
	require.Equal(t, "[10]  [30 50]", lines[1])
}
