package graph

import (
	"strings"

	"github.com/teranos/sculpt/decl"
	"github.com/teranos/sculpt/errors"
	"github.com/teranos/sculpt/typegen/util"
)

// Build converts a flat list of declarations into a DependencyGraph.
//
// Failures, all wrapping a sentinel from the errors package:
//   - ErrNoRoot / ErrMultipleRoots when the root marker count is not exactly one
//   - ErrUnresolvedReference when a field names an undeclared type
//   - ErrInvalidFieldShape for shapes the compiler does not support
//   - ErrCycle when a type reaches itself
func Build(decls []decl.Decl) (*DependencyGraph, error) {
	g := &DependencyGraph{
		nodes: make(map[string]*Node, len(decls)),
		order: make([]*Node, 0, len(decls)),
	}

	for i, d := range decls {
		if d.Name == "" {
			return nil, errors.Wrapf(errors.ErrInvalidFieldShape, "declaration #%d has no name", i+1)
		}
		if err := checkIdentifiers(d); err != nil {
			return nil, err
		}
		if _, dup := g.nodes[d.Name]; dup {
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrInvalidFieldShape, "type %s is declared twice", d.Name),
				"type names must be unique within a declaration set")
		}
		n := &Node{
			Name:     d.Name,
			Kind:     d.Kind,
			Shape:    d.Shape,
			Fields:   d.Fields,
			Variants: d.Variants,
			Root:     d.Root,
			Decision: d.Decision,
			Doc:      d.Doc,
			Index:    i,
		}
		g.nodes[d.Name] = n
		g.order = append(g.order, n)
	}

	root, err := findRoot(g.order)
	if err != nil {
		return nil, err
	}
	g.Root = root.Name

	for _, n := range g.order {
		if err := checkShape(n); err != nil {
			return nil, err
		}
	}

	if err := checkReferences(g); err != nil {
		return nil, err
	}

	if err := checkAcyclic(g); err != nil {
		return nil, err
	}

	return g, nil
}

// checkIdentifiers rejects names that cannot become identifiers in emitted code.
// Type names are emitted verbatim and may not shadow Go's own names; field
// names, tags and aliases are cased or suffixed first and only need to
// survive that.
func checkIdentifiers(d decl.Decl) error {
	if util.IsIdentifier(d.Name) && util.IsReserved(d.Name) {
		return errors.WithHint(
			errors.Wrapf(errors.ErrInvalidFieldShape, "type %s collides with a Go keyword or predeclared identifier", d.Name),
			"rename the type")
	}
	names := []string{d.Name}
	for _, f := range d.Fields {
		names = append(names, f.Name, f.Type, f.Alias)
	}
	for _, v := range d.Variants {
		names = append(names, v.Tag)
		for _, f := range v.Fields {
			names = append(names, f.Name, f.Type, f.Alias)
		}
	}
	for _, name := range names {
		if name != "" && (!util.IsIdentifier(name) || util.IsBlank(name)) {
			return errors.WithHint(
				errors.Wrapf(errors.ErrInvalidFieldShape, "type %s uses %q as a name", d.Name, name),
				"names must be letters, digits and underscores, not starting with a digit or made of underscores only")
		}
	}
	return nil
}

func findRoot(nodes []*Node) (*Node, error) {
	var roots []*Node
	for _, n := range nodes {
		if n.Root {
			roots = append(roots, n)
		}
	}

	switch len(roots) {
	case 0:
		return nil, errors.WithHint(errors.WithStack(errors.ErrNoRoot),
			"mark exactly one product type with root: true")
	case 1:
	default:
		names := make([]string, len(roots))
		for i, r := range roots {
			names[i] = r.Name
		}
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrMultipleRoots, "%s", strings.Join(names, ", ")),
			"only one product type may carry the root marker")
	}

	root := roots[0]
	if !root.IsProduct() {
		return nil, errors.Wrapf(errors.ErrInvalidFieldShape, "root type %s must be a product type", root.Name)
	}
	if len(root.Fields) == 0 {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrInvalidFieldShape, "root type %s has no fields", root.Name),
			"the root is built field by field; declare at least one field")
	}
	for _, f := range root.Fields {
		if f.Positional() {
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrInvalidFieldShape, "root type %s has a positional field of type %s", root.Name, f.Type),
				"root fields must be named")
		}
	}
	return root, nil
}

func checkShape(n *Node) error {
	switch n.Kind {
	case decl.Product:
		if n.Decision {
			return errors.WithHint(
				errors.Wrapf(errors.ErrInvalidFieldShape, "product type %s carries the decision marker", n.Name),
				"only sum types can be decision points")
		}
		if err := checkFields(n.Name, n.Shape, n.Fields); err != nil {
			return err
		}
	case decl.Sum:
		if n.Root {
			return errors.Wrapf(errors.ErrInvalidFieldShape, "sum type %s carries the root marker", n.Name)
		}
		if len(n.Variants) == 0 {
			return errors.Wrapf(errors.ErrInvalidFieldShape, "sum type %s has no variants", n.Name)
		}
		tags := make(map[string]bool, len(n.Variants))
		for _, v := range n.Variants {
			if v.Tag == "" {
				return errors.Wrapf(errors.ErrInvalidFieldShape, "sum type %s has a variant without a tag", n.Name)
			}
			if tags[v.Tag] {
				return errors.Wrapf(errors.ErrInvalidFieldShape, "sum type %s declares variant %s twice", n.Name, v.Tag)
			}
			tags[v.Tag] = true
			if err := checkFields(n.Name+"."+v.Tag, v.Shape, v.Fields); err != nil {
				return err
			}
		}
	default:
		return errors.Wrapf(errors.ErrInvalidFieldShape, "type %s has unknown kind %s", n.Name, n.Kind)
	}
	return nil
}

// checkFields verifies a field list agrees with its declared shape
func checkFields(owner string, shape decl.Shape, fields []decl.FieldRef) error {
	if shape == decl.Empty && len(fields) > 0 {
		return errors.Wrapf(errors.ErrInvalidFieldShape, "%s is declared empty but has %d fields", owner, len(fields))
	}

	names := make(map[string]bool, len(fields))
	for i, f := range fields {
		if f.Type == "" {
			return errors.Wrapf(errors.ErrInvalidFieldShape, "%s field #%d has no type", owner, i+1)
		}
		switch shape {
		case decl.Named:
			if f.Positional() {
				return errors.WithHint(
					errors.Wrapf(errors.ErrInvalidFieldShape, "%s mixes named and positional fields (field #%d of type %s)", owner, i+1, f.Type),
					"name every field or none of them")
			}
		case decl.Positional:
			if !f.Positional() {
				return errors.WithHint(
					errors.Wrapf(errors.ErrInvalidFieldShape, "%s is positional but field %s is named", owner, f.Name),
					"name every field or none of them")
			}
		}
		if f.Name == "" {
			continue
		}
		if names[f.Name] {
			return errors.Wrapf(errors.ErrInvalidFieldShape, "%s declares field %s twice", owner, f.Name)
		}
		names[f.Name] = true
	}
	return nil
}

func checkReferences(g *DependencyGraph) error {
	for _, n := range g.order {
		for _, f := range n.Fields {
			if _, ok := g.nodes[f.Type]; !ok {
				return unresolved(n.Name, f)
			}
		}
		for _, v := range n.Variants {
			for _, f := range v.Fields {
				if _, ok := g.nodes[f.Type]; !ok {
					return unresolved(n.Name+"."+v.Tag, f)
				}
			}
		}
	}
	return nil
}

func unresolved(owner string, f decl.FieldRef) error {
	return errors.WithHint(
		errors.Wrapf(errors.ErrUnresolvedReference, "%s.%s references %s", owner, f.Label(), f.Type),
		"types are resolved by exact name within the declaration set")
}

// checkAcyclic walks every reference depth-first in declaration order and
// reports the first back edge as a cycle.
func checkAcyclic(g *DependencyGraph) error {
	const (
		white = iota
		grey
		black
	)
	color := make(map[string]int, len(g.order))
	var stack []string

	var visit func(name string) error
	visit = func(name string) error {
		color[name] = grey
		stack = append(stack, name)
		for _, ref := range g.nodes[name].references() {
			switch color[ref.Type] {
			case grey:
				cycle := cyclePath(stack, ref.Type)
				return errors.WithDetail(
					errors.Wrapf(errors.ErrCycle, "type %s reaches itself", ref.Type),
					strings.Join(cycle, " -> "))
			case white:
				if err := visit(ref.Type); err != nil {
					return err
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[name] = black
		return nil
	}

	for _, n := range g.order {
		if color[n.Name] == white {
			if err := visit(n.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func cyclePath(stack []string, start string) []string {
	for i, name := range stack {
		if name == start {
			return append(append([]string(nil), stack[i:]...), start)
		}
	}
	return []string{start, start}
}
