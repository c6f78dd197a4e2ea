// Package resolve computes, for every decision point reachable from the root,
// the path that addresses its slot in the nested builder state and the
// resolved links that say which decision comes next.
//
// Resolution is two passes over the graph:
//
//  1. a pre-order walk of the root's fields in declaration order records one
//     Site per decision point occurrence, descending into expandable product
//     fields and into the payload variants of expandable decision fields;
//  2. a back-to-front pass over the same tree threads the continuation
//     through every scope, so each (site, variant) pair knows the first
//     decision of its payload or, failing that, the next decision after the
//     field that holds the site.
//
// The order in which a driver is asked for choices is therefore fixed by the
// static shape of the graph and never by runtime state.
package resolve

import (
	"strings"

	"github.com/teranos/sculpt/decl"
	"github.com/teranos/sculpt/errors"
	"github.com/teranos/sculpt/graph"
)

// SegmentKind distinguishes the two steps a Path can take
type SegmentKind int

const (
	// FieldStep crosses into a field of the owning type
	FieldStep SegmentKind = iota
	// VariantStep crosses into the fields of a chosen variant
	VariantStep
)

// Segment is one step of a Path
type Segment struct {
	Kind    SegmentKind
	Field   string // field label, FieldStep only
	Owner   string // type owning the field, FieldStep only
	Variant string // variant tag, VariantStep only
}

func (s Segment) String() string {
	if s.Kind == VariantStep {
		return s.Variant
	}
	return s.Field
}

// Path addresses one slot inside the nested builder state
type Path []Segment

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// append returns a new path; the receiver is never aliased.
func (p Path) append(s Segment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, s)
}

// Site is one occurrence of a decision point in the root's builder tree
type Site struct {
	// Name identifies the site in picker and callback names: the field's
	// alias when it has one, the decision type's name otherwise.
	Name     string
	Type     string
	Field    decl.FieldRef
	Path     Path
	Expanded bool

	// Tags lists the variants of Type in declaration order
	Tags []string

	// Index is the pre-order position of the site
	Index int

	links []Link
}

// Link is the resolved link for one variant of a site
type Link struct {
	Tag string
	// Next is the decision to ask for after Tag is chosen, nil when the
	// branch needs no further decision
	Next *Site
}

// EntryKind classifies a field inside a Scope
type EntryKind int

const (
	// Leaf fields hold a statically known value
	Leaf EntryKind = iota
	// Decision fields hold a Site
	Decision
	// Nested fields hold an expandable product with its own Scope
	Nested
)

// Entry is one field of a Scope
type Entry struct {
	Kind  EntryKind
	Field decl.FieldRef
	Path  Path

	Site *Site  // Decision
	Sub  *Scope // Nested

	// Variants holds one scope per payload variant of an expanded Decision
	// entry, in variant declaration order.
	Variants []*Scope
}

// Scope is the field list of a product type or of one variant under
// construction
type Scope struct {
	Type    string // owning type
	Variant string // variant tag, empty for products
	Shape   decl.Shape
	Path    Path
	Entries []*Entry
}

// Resolution is the result of path resolution for one graph
type Resolution struct {
	Graph *graph.DependencyGraph

	// Root is the scope of the root product
	Root *Scope

	// Sites lists every site in pre-order
	Sites []*Site

	// First is the first decision asked for, nil when the root has none
	First *Site
}

// Links returns the resolved links of a site in variant declaration order
func (r *Resolution) Links(s *Site) []Link {
	return append([]Link(nil), s.links...)
}

// Link returns the resolved link for one variant of a site
func (r *Resolution) Link(s *Site, tag string) (Link, bool) {
	for _, l := range s.links {
		if l.Tag == tag {
			return l, true
		}
	}
	return Link{}, false
}

// Site returns the site with the given name
func (r *Resolution) Site(name string) (*Site, bool) {
	for _, s := range r.Sites {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// DecisionTypes returns the decision types reached by at least one site, in
// declaration order.
func (r *Resolution) DecisionTypes() []*graph.Node {
	used := make(map[string]bool, len(r.Sites))
	for _, s := range r.Sites {
		used[s.Type] = true
	}
	var out []*graph.Node
	for _, n := range r.Graph.Nodes() {
		if used[n.Name] {
			out = append(out, n)
		}
	}
	return out
}

// Resolve computes the sites, paths and resolved links of g
func Resolve(g *graph.DependencyGraph) (*Resolution, error) {
	root := g.RootNode()
	if root == nil {
		return nil, errors.WithStack(errors.ErrNoRoot)
	}

	w := &walker{graph: g, names: make(map[string]*Site)}
	scope, err := w.scope(root.Name, "", root.Shape, root.Fields, nil)
	if err != nil {
		return nil, err
	}

	return &Resolution{
		Graph: g,
		Root:  scope,
		Sites: w.sites,
		First: link(scope, nil),
	}, nil
}

type walker struct {
	graph *graph.DependencyGraph
	sites []*Site
	names map[string]*Site
}

func (w *walker) scope(owner, variant string, shape decl.Shape, fields []decl.FieldRef, path Path) (*Scope, error) {
	sc := &Scope{Type: owner, Variant: variant, Shape: shape, Path: path}
	for _, f := range fields {
		e, err := w.entry(owner, f, path)
		if err != nil {
			return nil, err
		}
		sc.Entries = append(sc.Entries, e)
	}
	return sc, nil
}

func (w *walker) entry(owner string, f decl.FieldRef, parent Path) (*Entry, error) {
	n, ok := w.graph.Node(f.Type)
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnresolvedReference, "%s.%s references %s", owner, f.Label(), f.Type)
	}
	path := parent.append(Segment{Kind: FieldStep, Field: f.Label(), Owner: owner})
	e := &Entry{Kind: Leaf, Field: f, Path: path}

	if f.Alias != "" && !n.IsDecision() {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrInvalidFieldShape, "%s.%s has alias %s but %s is not a decision point", owner, f.Label(), f.Alias, f.Type),
			"aliases only rename decision sites")
	}

	switch {
	case n.IsDecision():
		site, err := w.site(n, f, path)
		if err != nil {
			return nil, err
		}
		e.Kind = Decision
		e.Site = site
		if !f.Expand {
			return e, nil
		}
		for _, v := range n.Variants {
			if !v.HasPayload() {
				continue
			}
			vs, err := w.scope(n.Name, v.Tag, v.Shape, v.Fields, path.append(Segment{Kind: VariantStep, Variant: v.Tag}))
			if err != nil {
				return nil, err
			}
			e.Variants = append(e.Variants, vs)
		}

	case f.Expand && n.IsProduct():
		sub, err := w.scope(n.Name, "", n.Shape, n.Fields, path)
		if err != nil {
			return nil, err
		}
		e.Kind = Nested
		e.Sub = sub

	case f.Expand:
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrInvalidFieldShape, "%s.%s is expandable but %s is a sum type without the decision marker", owner, f.Label(), f.Type),
			"mark the sum type as a decision point or drop the expand marker")
	}
	return e, nil
}

func (w *walker) site(n *graph.Node, f decl.FieldRef, path Path) (*Site, error) {
	name := n.Name
	if f.Alias != "" {
		name = f.Alias
	}
	if prev, dup := w.names[name]; dup {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrInvalidFieldShape, "decision point %s is reached at %s and at %s", name, prev.Path, path),
			"give each occurrence a distinct alias")
	}

	s := &Site{
		Name:     name,
		Type:     n.Name,
		Field:    f,
		Path:     path,
		Expanded: f.Expand,
		Tags:     variantTags(n),
		Index:    len(w.sites),
	}
	w.sites = append(w.sites, s)
	w.names[name] = s
	return s, nil
}

// link threads next through the scope back to front, filling the links of
// every site inside it, and returns the first decision of the scope (next
// when the scope holds none).
func link(sc *Scope, next *Site) *Site {
	cur := next
	for i := len(sc.Entries) - 1; i >= 0; i-- {
		e := sc.Entries[i]
		switch e.Kind {
		case Nested:
			cur = link(e.Sub, cur)
		case Decision:
			e.Site.links = e.Site.links[:0]
			for _, tag := range e.Site.Tags {
				target := cur
				if vs := e.variant(tag); vs != nil {
					target = link(vs, cur)
				}
				e.Site.links = append(e.Site.links, Link{Tag: tag, Next: target})
			}
			cur = e.Site
		}
	}
	return cur
}

func (e *Entry) variant(tag string) *Scope {
	for _, vs := range e.Variants {
		if vs.Variant == tag {
			return vs
		}
	}
	return nil
}

func variantTags(n *graph.Node) []string {
	tags := make([]string, len(n.Variants))
	for i, v := range n.Variants {
		tags[i] = v.Tag
	}
	return tags
}
