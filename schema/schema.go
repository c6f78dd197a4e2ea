// Package schema compiles a Resolution into the builder state machine that
// every emitter (and the in-process wizard) serializes or executes.
//
// A Schema has four parts:
//   - one OptionSet per decision type, listing its variants in declaration order
//   - one Picker per site: the options()/fulfill(choice) contract plus the
//     resolved links that decide which callback fulfill triggers next
//   - the Callbacks contract: one default method per picker
//   - the Builder tree: nested partial construction state addressed by the
//     resolver's paths, which collapses bottom-up into the root value
//
// Everything is stored in ordered slices so that emitting the same schema
// twice produces identical output.
package schema

import (
	"github.com/teranos/sculpt/decl"
	"github.com/teranos/sculpt/graph"
	"github.com/teranos/sculpt/resolve"
)

// Option is one choice of a decision type
type Option struct {
	Tag     string
	Index   int
	Payload bool
}

// OptionSet enumerates the choices of one decision type
type OptionSet struct {
	Type    string
	Options []Option
}

// Tags returns the option tags in declaration order
func (o *OptionSet) Tags() []string {
	tags := make([]string, len(o.Options))
	for i, opt := range o.Options {
		tags[i] = opt.Tag
	}
	return tags
}

// Option returns the option with the given tag
func (o *OptionSet) Option(tag string) (Option, bool) {
	for _, opt := range o.Options {
		if opt.Tag == tag {
			return opt, true
		}
	}
	return Option{}, false
}

// First returns the default choice
func (o *OptionSet) First() Option {
	return o.Options[0]
}

// BuilderKind classifies a Builder
type BuilderKind int

const (
	// ProductBuilder assembles a product type field by field
	ProductBuilder BuilderKind = iota
	// DecisionBuilder holds the choice of an expanded site and one variant
	// builder per payload variant
	DecisionBuilder
	// VariantBuilder assembles the payload of one variant
	VariantBuilder
)

func (k BuilderKind) String() string {
	switch k {
	case ProductBuilder:
		return "product"
	case DecisionBuilder:
		return "decision"
	case VariantBuilder:
		return "variant"
	default:
		return "unknown"
	}
}

// Builder is one node of the nested construction state
type Builder struct {
	// Name is a camelCase identifier derived from the builder's path
	Name string
	Path resolve.Path
	Kind BuilderKind

	// Type is the type the builder produces; for variant builders it is the
	// sum type and Variant names the tag
	Type    string
	Variant string
	Shape   decl.Shape

	// Slots holds the fields of product and variant builders in declaration order
	Slots []*Slot

	// Site is the choice a decision builder stores
	Site *resolve.Site
	// Variants holds the payload variant builders of a decision builder
	Variants []*Builder
}

// VariantBuilder returns the payload builder for tag, nil when the variant
// has no payload
func (b *Builder) VariantBuilder(tag string) *Builder {
	for _, v := range b.Variants {
		if v.Variant == tag {
			return v
		}
	}
	return nil
}

// SlotKind classifies how a Slot gets its value
type SlotKind int

const (
	// ChoiceSlot stores the option picked for a non-expanded site
	ChoiceSlot SlotKind = iota
	// SubSlot delegates to a nested builder
	SubSlot
	// LeafSlot holds a value known at generation time
	LeafSlot
)

func (k SlotKind) String() string {
	switch k {
	case ChoiceSlot:
		return "choice"
	case SubSlot:
		return "sub"
	case LeafSlot:
		return "leaf"
	default:
		return "unknown"
	}
}

// Slot is one field under construction
type Slot struct {
	Field decl.FieldRef
	Kind  SlotKind
	Path  resolve.Path

	Site *resolve.Site // ChoiceSlot
	Sub  *Builder      // SubSlot
	Leaf *Leaf         // LeafSlot
}

// Leaf is a value fixed at generation time: the first variant of a
// non-decision sum, or a decision-free product assembled from leaves
type Leaf struct {
	Type    string
	Kind    decl.Kind
	Shape   decl.Shape
	Variant string
	Fields  []LeafField
}

// LeafField is one field of a product leaf
type LeafField struct {
	Field decl.FieldRef
	Value *Leaf
}

// Picker is the options()/fulfill(choice) contract of one site
type Picker struct {
	Site    *resolve.Site
	Options *OptionSet
	Links   []resolve.Link

	// Owner is the builder that stores the choice: the decision builder of an
	// expanded site, the builder holding the ChoiceSlot otherwise
	Owner *Builder
	// Slot is the ChoiceSlot of a non-expanded site, nil when expanded
	Slot *Slot
}

// Next returns the site fulfill(tag) hands over to, nil when none
func (p *Picker) Next(tag string) *resolve.Site {
	for _, l := range p.Links {
		if l.Tag == tag {
			return l.Next
		}
	}
	return nil
}

// Expanded reports whether choosing a payload variant opens a variant builder
func (p *Picker) Expanded() bool {
	return p.Slot == nil
}

// Callbacks is the driver contract: one default decision per picker, in site order
type Callbacks struct {
	Root    string
	Methods []*Picker
}

// Schema is the compiled builder state machine of one declaration set
type Schema struct {
	Package string
	Source  string
	Root    string

	// Types lists the reachable declarations in declaration order
	Types []*graph.Node

	OptionSets []*OptionSet
	Pickers    []*Picker
	Callbacks  *Callbacks

	RootBuilder *Builder
	// Builders lists every builder in pre-order, the root first
	Builders []*Builder

	// First is the picker build starts with, nil when the root has no decisions
	First *Picker
}

// OptionSet returns the option set of a decision type
func (s *Schema) OptionSet(typ string) (*OptionSet, bool) {
	for _, o := range s.OptionSets {
		if o.Type == typ {
			return o, true
		}
	}
	return nil, false
}

// Picker returns the picker of the named site
func (s *Schema) Picker(site string) (*Picker, bool) {
	for _, p := range s.Pickers {
		if p.Site.Name == site {
			return p, true
		}
	}
	return nil, false
}

// Type returns the declaration with the given name
func (s *Schema) Type(name string) (*graph.Node, bool) {
	for _, n := range s.Types {
		if n.Name == name {
			return n, true
		}
	}
	return nil, false
}
