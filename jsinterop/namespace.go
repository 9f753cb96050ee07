package jsinterop

import "strings"

// NamespaceNode is one segment of a dotted JS package path. Children keep
// the order in which they were first seen.
type NamespaceNode struct {
	Name     string
	children []*NamespaceNode
	index    map[string]*NamespaceNode
}

func newNamespaceNode(name string) *NamespaceNode {
	return &NamespaceNode{Name: name, index: map[string]*NamespaceNode{}}
}

// Child returns the direct child with the given segment name.
func (n *NamespaceNode) Child(name string) (*NamespaceNode, bool) {
	c, ok := n.index[name]
	return c, ok
}

// Children returns the direct children in first-seen order.
func (n *NamespaceNode) Children() []*NamespaceNode {
	return n.children
}

func (n *NamespaceNode) child(name string) *NamespaceNode {
	if c, ok := n.index[name]; ok {
		return c
	}
	c := newNamespaceNode(name)
	n.index[name] = c
	n.children = append(n.children, c)
	return c
}

// BuildNamespaces builds the package tree of classes. The returned root is
// synthetic: its children are the top-level segments.
func BuildNamespaces(classes []ExportedClass) *NamespaceNode {
	root := newNamespaceNode("")
	for _, cls := range classes {
		if cls.Package == "" {
			continue
		}
		node := root
		for _, seg := range strings.Split(cls.Package, ".") {
			node = node.child(seg)
		}
	}
	return root
}

// Walk visits every node below n depth-first in pre-order, passing the
// dotted path of the node and its depth (0 for top-level segments).
func (n *NamespaceNode) Walk(fn func(path string, node *NamespaceNode, depth int)) {
	for _, c := range n.children {
		c.walk("", 0, fn)
	}
}

func (n *NamespaceNode) walk(prefix string, depth int, fn func(string, *NamespaceNode, int)) {
	path := n.Name
	if prefix != "" {
		path = prefix + "." + n.Name
	}
	fn(path, n, depth)
	for _, c := range n.children {
		c.walk(path, depth+1, fn)
	}
}

// Paths returns the dotted path of every node below n in pre-order.
func (n *NamespaceNode) Paths() []string {
	var out []string
	n.Walk(func(path string, _ *NamespaceNode, _ int) {
		out = append(out, path)
	})
	return out
}

// String renders the tree one segment per line, indented by depth.
func (n *NamespaceNode) String() string {
	var sb strings.Builder
	n.Walk(func(_ string, node *NamespaceNode, depth int) {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(node.Name)
		sb.WriteByte('\n')
	})
	return sb.String()
}
