package btree

import (
	"strings"

	"github.com/fatih/color"
)

/*
Visualizer renders the node structure of a Btree one line per level, root
first, so the effect of every insert and delete can be followed from a
terminal session. Each node shows its keys between brackets and every level
gets its own color.
*/
type Visualizer struct {
	Tree *Btree
}

var levelColors = []*color.Color{
	color.New(color.FgCyan),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgRed),
}

func (v *Visualizer) Visualize() string {
	if v.Tree == nil || v.Tree.root == nil {
		return "(empty tree)"
	}

	var sb strings.Builder
	level := []*node{v.Tree.root}
	for depth := 0; len(level) > 0; depth++ {
		c := levelColors[depth%len(levelColors)]
		var next []*node
		for i, n := range level {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(c.Sprint(formatNode(n)))
			next = append(next, n.children[:n.numChildren]...)
		}
		sb.WriteByte('\n')
		level = next
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatNode(n *node) string {
	keys := make([]string, 0, n.numItems)
	for i := 0; i < n.numItems; i++ {
		keys = append(keys, string(n.items[i].key))
	}
	return "[" + strings.Join(keys, " ") + "]"
}
