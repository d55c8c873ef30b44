// Package outline parses indentation-structured text into an ordered tree.
//
// One label per non-blank line; a line's nesting is given entirely by how
// many leading whitespace characters it carries. Lines indented deeper than
// the previous line nest under it, lines at the same or a shallower level
// close it.
package outline

import (
	"strings"
	"unicode"
)

// Node is one entry in a pick tree. The root returned by Parse is synthetic:
// its Label is empty and only its descendants are meaningful.
type Node struct {
	Label    string
	Children []*Node
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// ChildLabels returns the labels of the node's children in document order.
func (n *Node) ChildLabels() []string {
	labels := make([]string, len(n.Children))
	for i, c := range n.Children {
		labels[i] = c.Label
	}
	return labels
}

type openNode struct {
	node  *Node
	level int
}

// Parse builds a tree from raw outline text in a single forward pass.
//
// It keeps a stack of still-open ancestors as (node, indentation level)
// pairs, seeded with the synthetic root at level -1 so no real line can pop
// it. A line at the same level as the top of the stack closes it: equal
// indentation means sibling, never child. Blank and whitespace-only lines
// are skipped and leave the stack untouched.
//
// Indentation is counted in whitespace runes. Tabs and spaces are neither
// normalized nor distinguished, so a file mixing them disambiguates by
// count, not visual width.
func Parse(content []byte) *Node {
	stack := []openNode{{node: &Node{}, level: -1}}

	for _, line := range strings.Split(string(content), "\n") {
		level, label := splitIndent(strings.TrimSuffix(line, "\r"))
		if label == "" {
			continue
		}

		// Close everything that cannot be an ancestor of this line.
		for level <= stack[len(stack)-1].level {
			closed := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			top := stack[len(stack)-1]
			top.node.Children = append(top.node.Children, closed.node)
		}

		stack = append(stack, openNode{node: &Node{Label: label}, level: level})
	}

	// Flush still-open ancestors at end of input.
	for len(stack) > 1 {
		closed := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		top := stack[len(stack)-1]
		top.node.Children = append(top.node.Children, closed.node)
	}

	return stack[0].node
}

// splitIndent returns the count of leading whitespace runes and the rest of
// the line. The rest keeps any trailing whitespace verbatim; a line that is
// all whitespace yields an empty rest.
func splitIndent(line string) (int, string) {
	level := 0
	for i, r := range line {
		if !unicode.IsSpace(r) {
			return level, line[i:]
		}
		level++
	}
	return level, ""
}
