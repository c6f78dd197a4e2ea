package schema

import (
	"strconv"

	"github.com/teranos/sculpt/decl"
	"github.com/teranos/sculpt/errors"
	"github.com/teranos/sculpt/graph"
	"github.com/teranos/sculpt/resolve"
	"github.com/teranos/sculpt/typegen/util"
)

// Options configures Compile
type Options struct {
	// Package is the package clause of emitted code. Defaults to the root
	// type name in snake_case.
	Package string

	// Source names where the declarations came from
	Source string
}

type compiler struct {
	res   *resolve.Resolution
	graph *graph.DependencyGraph

	builders []*Builder
	names    map[string]*Builder

	// where each site's choice lives
	owners map[*resolve.Site]*Builder
	slots  map[*resolve.Site]*Slot
}

// Compile turns a resolution into a Schema
func Compile(res *resolve.Resolution, opts Options) (*Schema, error) {
	g := res.Graph
	root := g.RootNode()

	c := &compiler{
		res:    res,
		graph:  g,
		names:  make(map[string]*Builder),
		owners: make(map[*resolve.Site]*Builder),
		slots:  make(map[*resolve.Site]*Slot),
	}

	rootBuilder, err := c.scope(res.Root, ProductBuilder, []string{root.Name})
	if err != nil {
		return nil, err
	}

	s := &Schema{
		Package:     opts.Package,
		Source:      opts.Source,
		Root:        root.Name,
		Types:       g.Reachable(),
		RootBuilder: rootBuilder,
		Builders:    c.builders,
	}
	if s.Package == "" {
		s.Package = util.ToSnakeCase(root.Name)
	}

	for _, n := range res.DecisionTypes() {
		s.OptionSets = append(s.OptionSets, optionSet(n))
	}

	s.Callbacks = &Callbacks{Root: root.Name}
	for _, site := range res.Sites {
		set, _ := s.OptionSet(site.Type)
		owner, ok := c.owners[site]
		if !ok {
			return nil, errors.AssertionFailedf("site %s at %s has no owning builder", site.Name, site.Path)
		}
		p := &Picker{
			Site:    site,
			Options: set,
			Links:   res.Links(site),
			Owner:   owner,
			Slot:    c.slots[site],
		}
		s.Pickers = append(s.Pickers, p)
		s.Callbacks.Methods = append(s.Callbacks.Methods, p)
		if site == res.First {
			s.First = p
		}
	}

	if err := checkNames(s); err != nil {
		return nil, err
	}
	return s, nil
}

func optionSet(n *graph.Node) *OptionSet {
	o := &OptionSet{Type: n.Name}
	for i, v := range n.Variants {
		o.Options = append(o.Options, Option{Tag: v.Tag, Index: i, Payload: v.HasPayload()})
	}
	return o
}

func (c *compiler) register(b *Builder, parts []string) error {
	b.Name = util.JoinCamel(parts...) + "Builder"
	if prev, dup := c.names[b.Name]; dup {
		return errors.WithHint(
			errors.Wrapf(errors.ErrInvalidFieldShape, "builders for %q and %q would both be named %s", prev.Path, b.Path, b.Name),
			"rename one of the fields or variants")
	}
	c.names[b.Name] = b
	c.builders = append(c.builders, b)
	return nil
}

// scope compiles a product or variant scope into a builder
func (c *compiler) scope(sc *resolve.Scope, kind BuilderKind, parts []string) (*Builder, error) {
	b := &Builder{
		Path:    sc.Path,
		Kind:    kind,
		Type:    sc.Type,
		Variant: sc.Variant,
		Shape:   sc.Shape,
	}
	if err := c.register(b, parts); err != nil {
		return nil, err
	}

	for _, e := range sc.Entries {
		slot := &Slot{Field: e.Field, Path: e.Path}
		switch e.Kind {
		case resolve.Leaf:
			leaf, err := c.leaf(e.Field.Type, e.Path)
			if err != nil {
				return nil, err
			}
			slot.Kind = LeafSlot
			slot.Leaf = leaf

		case resolve.Nested:
			sub, err := c.scope(e.Sub, ProductBuilder, append(parts[:len(parts):len(parts)], e.Field.Label()))
			if err != nil {
				return nil, err
			}
			slot.Kind = SubSlot
			slot.Sub = sub

		case resolve.Decision:
			if !e.Site.Expanded {
				slot.Kind = ChoiceSlot
				slot.Site = e.Site
				c.owners[e.Site] = b
				c.slots[e.Site] = slot
				break
			}
			sub, err := c.decision(e, append(parts[:len(parts):len(parts)], e.Field.Label()))
			if err != nil {
				return nil, err
			}
			slot.Kind = SubSlot
			slot.Sub = sub
		}
		b.Slots = append(b.Slots, slot)
	}
	return b, nil
}

func (c *compiler) decision(e *resolve.Entry, parts []string) (*Builder, error) {
	b := &Builder{
		Path:  e.Path,
		Kind:  DecisionBuilder,
		Type:  e.Site.Type,
		Shape: decl.Empty,
		Site:  e.Site,
	}
	if err := c.register(b, parts); err != nil {
		return nil, err
	}
	c.owners[e.Site] = b

	for _, vs := range e.Variants {
		vb, err := c.scope(vs, VariantBuilder, append(parts[:len(parts):len(parts)], vs.Variant))
		if err != nil {
			return nil, err
		}
		b.Variants = append(b.Variants, vb)
	}
	return b, nil
}

// leaf computes the fixed value of a field that holds no decision
func (c *compiler) leaf(typ string, at resolve.Path) (*Leaf, error) {
	n, ok := c.graph.Node(typ)
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnresolvedReference, "%s references %s", at, typ)
	}

	switch {
	case n.IsDecision():
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrInvalidFieldShape, "decision point %s at %s sits under a field that is not expandable", n.Name, at),
			"mark every field on the way to it with expand: true")

	case n.IsSum():
		first := n.Variants[0]
		if first.HasPayload() {
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrInvalidFieldShape, "%s at %s has no default: its first variant %s carries fields", n.Name, at, first.Tag),
				"put a variant without fields first or make the sum a decision point")
		}
		return &Leaf{Type: n.Name, Kind: decl.Sum, Shape: decl.Empty, Variant: first.Tag}, nil

	default:
		l := &Leaf{Type: n.Name, Kind: decl.Product, Shape: n.Shape}
		for _, f := range n.Fields {
			v, err := c.leaf(f.Type, append(at[:len(at):len(at)], resolve.Segment{Kind: resolve.FieldStep, Field: f.Label(), Owner: n.Name}))
			if err != nil {
				return nil, err
			}
			l.Fields = append(l.Fields, LeafField{Field: f, Value: v})
		}
		return l, nil
	}
}

// checkNames rejects declarations whose names clash with identifiers the
// emitter derives from them.
func checkNames(s *Schema) error {
	owners := make(map[string]string)
	claim := func(name, owner string) error {
		if prev, dup := owners[name]; dup && prev != owner {
			return errors.WithHint(
				errors.Wrapf(errors.ErrInvalidFieldShape, "%s and %s both produce the identifier %s", prev, owner, name),
				"rename the type or give the site an alias")
		}
		owners[name] = owner
		return nil
	}

	// generated code imports fmt
	owners["fmt"] = "the fmt import"
	// receivers, parameters and locals of generated methods shadow types of the same name
	for _, local := range generatedLocals {
		owners[local] = "a local name of generated code"
	}

	for _, n := range s.Types {
		if err := claim(n.Name, "type "+n.Name); err != nil {
			return err
		}
	}
	for _, n := range s.Types {
		if err := checkFieldNames(n.Name, n.Fields); err != nil {
			return err
		}
		if err := checkTagNames(n.Name, n.Variants); err != nil {
			return err
		}
		for _, v := range n.Variants {
			if err := claim(VariantTypeName(n.Name, v.Tag), "variant "+n.Name+"."+v.Tag); err != nil {
				return err
			}
			if err := checkFieldNames(n.Name+"."+v.Tag, v.Fields); err != nil {
				return err
			}
		}
	}
	for _, o := range s.OptionSets {
		if err := claim(OptionTypeName(o.Type), "options of "+o.Type); err != nil {
			return err
		}
		if err := claim(o.Type+"Options", "options of "+o.Type); err != nil {
			return err
		}
		for _, opt := range o.Options {
			if err := claim(OptionTypeName(o.Type)+opt.Tag, "option "+o.Type+"."+opt.Tag); err != nil {
				return err
			}
		}
	}
	for _, p := range s.Pickers {
		if err := claim(PickerName(p.Site), "site "+p.Site.Name); err != nil {
			return err
		}
		if err := claim(util.JoinCamel(s.Root, p.Site.Name)+"Picker", "site "+p.Site.Name); err != nil {
			return err
		}
	}
	for _, b := range s.Builders {
		if err := claim(b.Name, "builder at "+b.Path.String()); err != nil {
			return err
		}
	}
	for _, name := range []string{CallbacksName(s.Root), "Default" + CallbacksName(s.Root), "Build" + s.Root, util.JoinCamel(s.Root) + "Wizard"} {
		if err := claim(name, "callbacks of "+s.Root); err != nil {
			return err
		}
	}
	return nil
}

// generatedLocals are the receiver, parameter and local variable names the
// emitted methods use
var generatedLocals = []string{"b", "o", "p", "v", "w", "callbacks", "choice", "picker", "slot"}

// checkFieldNames rejects fields whose Go name would shadow the String method
// every generated type carries, and pairs of fields that case to the same Go
// name (tool_kind and toolKind, or a positional Foo1 next to two Foo).
func checkFieldNames(owner string, fields []decl.FieldRef) error {
	seen := make(map[string]string, len(fields))
	for i, name := range FieldNames(fields) {
		label := fields[i].Label()
		if name == "String" {
			return errors.WithHint(
				errors.Wrapf(errors.ErrInvalidFieldShape, "%s.%s would shadow the String method", owner, label),
				"rename the field")
		}
		if prev, dup := seen[name]; dup {
			return errors.WithHint(
				errors.Wrapf(errors.ErrInvalidFieldShape, "%s.%s and %s.%s both produce the field %s", owner, prev, owner, label, name),
				"rename one of the fields")
		}
		seen[name] = label
	}
	return nil
}

// checkTagNames rejects tags of one sum type that case to the same builder field
func checkTagNames(owner string, variants []decl.Variant) error {
	seen := make(map[string]string, len(variants))
	for _, v := range variants {
		name := util.ToPascalCase(v.Tag)
		if prev, dup := seen[name]; dup {
			return errors.WithHint(
				errors.Wrapf(errors.ErrInvalidFieldShape, "%s.%s and %s.%s both produce the builder field on%s", owner, prev, owner, v.Tag, name),
				"rename one of the variants")
		}
		seen[name] = v.Tag
	}
	return nil
}

// VariantTypeName is the name of the struct carrying one variant of a sum
func VariantTypeName(sum, tag string) string { return sum + tag }

// OptionTypeName is the name of the enum listing the choices of a decision type
func OptionTypeName(typ string) string { return typ + "Option" }

// PickerName is the name of the picker contract of a site
func PickerName(s *resolve.Site) string { return s.Name + "Picker" }

// MethodName is the name of the callback method asking for a site's choice
func MethodName(s *resolve.Site) string { return "Pick" + s.Name }

// CallbacksName is the name of the callback contract of a root type
func CallbacksName(root string) string { return root + "Callbacks" }

// FieldNames returns the exported Go field names of a field list. Positional
// fields are named after their type, with their index appended when the same
// type appears more than once.
func FieldNames(fields []decl.FieldRef) []string {
	count := make(map[string]int, len(fields))
	for _, f := range fields {
		if f.Positional() {
			count[f.Type]++
		}
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		name := util.ToPascalCase(f.Label())
		if f.Positional() && count[f.Type] > 1 {
			name += strconv.Itoa(i)
		}
		names[i] = name
	}
	return names
}
