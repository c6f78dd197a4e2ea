// Package graph turns a flat declaration set into a DependencyGraph.
//
// Nodes are resolved by exact name. The graph must be a rooted DAG: exactly
// one product type carries the root marker, every referenced type is
// declared, and no type reaches itself. Build reports the first defect it
// finds, in declaration order, so the same input always fails the same way.
package graph

import (
	"github.com/teranos/sculpt/decl"
)

// Node is one declared type
type Node struct {
	Name     string
	Kind     decl.Kind
	Shape    decl.Shape
	Fields   []decl.FieldRef
	Variants []decl.Variant
	Root     bool
	Decision bool
	Doc      string

	// Index is the position of the declaration in its declaration set
	Index int
}

// IsProduct reports whether the node is a product type
func (n *Node) IsProduct() bool { return n.Kind == decl.Product }

// IsSum reports whether the node is a sum type
func (n *Node) IsSum() bool { return n.Kind == decl.Sum }

// IsDecision reports whether the node is a sum type chosen by the driver
func (n *Node) IsDecision() bool { return n.Kind == decl.Sum && n.Decision }

// Variant returns the variant with the given tag
func (n *Node) Variant(tag string) (decl.Variant, bool) {
	for _, v := range n.Variants {
		if v.Tag == tag {
			return v, true
		}
	}
	return decl.Variant{}, false
}

// HasPayload reports whether any variant carries fields
func (n *Node) HasPayload() bool {
	for _, v := range n.Variants {
		if v.HasPayload() {
			return true
		}
	}
	return false
}

// references returns every type name the node refers to, in declaration order
func (n *Node) references() []decl.FieldRef {
	refs := append([]decl.FieldRef(nil), n.Fields...)
	for _, v := range n.Variants {
		refs = append(refs, v.Fields...)
	}
	return refs
}

// DependencyGraph is the resolved type graph of one declaration set
type DependencyGraph struct {
	// Root is the name of the root product type
	Root string

	nodes map[string]*Node
	order []*Node
}

// Node returns the node with the given name
func (g *DependencyGraph) Node(name string) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Nodes returns all nodes in declaration order
func (g *DependencyGraph) Nodes() []*Node {
	return append([]*Node(nil), g.order...)
}

// RootNode returns the root product node
func (g *DependencyGraph) RootNode() *Node {
	return g.nodes[g.Root]
}

// Len returns the number of nodes
func (g *DependencyGraph) Len() int {
	return len(g.order)
}

// Reachable returns the nodes reachable from the root (the root included),
// in declaration order.
func (g *DependencyGraph) Reachable() []*Node {
	seen := make(map[string]bool, len(g.order))
	var visit func(name string)
	visit = func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		for _, ref := range g.nodes[name].references() {
			visit(ref.Type)
		}
	}
	visit(g.Root)

	reachable := make([]*Node, 0, len(seen))
	for _, n := range g.order {
		if seen[n.Name] {
			reachable = append(reachable, n)
		}
	}
	return reachable
}

// Unreachable returns the nodes the root never reaches, in declaration order
func (g *DependencyGraph) Unreachable() []*Node {
	reachable := make(map[string]bool)
	for _, n := range g.Reachable() {
		reachable[n.Name] = true
	}
	var out []*Node
	for _, n := range g.order {
		if !reachable[n.Name] {
			out = append(out, n)
		}
	}
	return out
}
