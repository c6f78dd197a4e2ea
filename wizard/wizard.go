// Package wizard executes a compiled schema in-process.
//
// Run follows the same call chain the generated code follows: it asks the
// driver for the first site, every Fulfill stores the choice and hands over
// to the site its resolved link names, and once the chain returns the builder
// tree collapses bottom-up into a Value. The generated wizard panics where
// this one returns errors.
package wizard

import (
	"github.com/teranos/sculpt/decl"
	"github.com/teranos/sculpt/errors"
	"github.com/teranos/sculpt/resolve"
	"github.com/teranos/sculpt/schema"
)

var (
	// ErrUnfulfilled indicates build finished with a slot nobody filled
	ErrUnfulfilled = errors.New("decision not fulfilled")

	// ErrInvalidChoice indicates Fulfill was called with a tag the site does not offer
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrAlreadyFulfilled indicates Fulfill was called twice for one site
	ErrAlreadyFulfilled = errors.New("decision already fulfilled")

	// ErrPayloadConversion indicates a variant with fields was chosen at a
	// site that cannot construct its payload
	ErrPayloadConversion = errors.New("variant needs its payload")
)

// Picker is the options()/fulfill(choice) contract of one site
type Picker interface {
	// Site is the name of the decision site
	Site() string
	// Type is the decision type being chosen
	Type() string
	// Path addresses the slot the choice fills
	Path() string
	// Options lists the tags in declaration order
	Options() []string
	// Fulfill stores the choice and asks for the next linked decision
	Fulfill(tag string) error
}

// Driver supplies choices. Pick must call Fulfill exactly once.
type Driver interface {
	Pick(p Picker) error
}

// Run builds the root value of s, asking d for every decision on the taken branches
func Run(s *schema.Schema, d Driver) (*Value, error) {
	r := &run{
		schema:  s,
		driver:  d,
		choices: make(map[*resolve.Site]string, len(s.Pickers)),
	}

	if s.First != nil {
		if err := r.ask(s.First); err != nil {
			return nil, err
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return r.product(s.RootBuilder)
}

type run struct {
	schema  *schema.Schema
	driver  Driver
	choices map[*resolve.Site]string

	// first misuse seen, kept even if the driver swallows the returned error
	err error
}

func (r *run) ask(p *schema.Picker) error {
	if err := r.driver.Pick(&picker{run: r, def: p}); err != nil {
		return errors.Wrapf(err, "pick %s", p.Site.Name)
	}
	return nil
}

func (r *run) fail(err error) error {
	if r.err == nil {
		r.err = err
	}
	return err
}

type picker struct {
	run *run
	def *schema.Picker
}

func (p *picker) Site() string      { return p.def.Site.Name }
func (p *picker) Type() string      { return p.def.Site.Type }
func (p *picker) Path() string      { return p.def.Site.Path.String() }
func (p *picker) Options() []string { return p.def.Options.Tags() }

func (p *picker) Fulfill(tag string) error {
	site := p.def.Site
	if _, ok := p.def.Options.Option(tag); !ok {
		return p.run.fail(errors.Wrapf(ErrInvalidChoice, "%s is not an option of %s", tag, site.Name))
	}
	if prev, done := p.run.choices[site]; done {
		return p.run.fail(errors.Wrapf(ErrAlreadyFulfilled, "%s was already fulfilled with %s", site.Name, prev))
	}
	p.run.choices[site] = tag

	next := p.def.Next(tag)
	if next == nil {
		return nil
	}
	np, ok := p.run.schema.Picker(next.Name)
	if !ok {
		return errors.AssertionFailedf("link %s/%s names unknown site %s", site.Name, tag, next.Name)
	}
	return p.run.ask(np)
}

func (r *run) choice(site *resolve.Site) (string, error) {
	tag, ok := r.choices[site]
	if !ok {
		return "", errors.Wrapf(ErrUnfulfilled, "%s at %s", site.Name, site.Path)
	}
	return tag, nil
}

// product collapses a product or variant builder
func (r *run) product(b *schema.Builder) (*Value, error) {
	v := &Value{Type: b.Type, Kind: decl.Product, Shape: b.Shape}
	if b.Kind == schema.VariantBuilder {
		v.Kind = decl.Sum
		v.Variant = b.Variant
	}

	for _, slot := range b.Slots {
		fv, err := r.slot(slot)
		if err != nil {
			return nil, err
		}
		v.Fields = append(v.Fields, Field{Name: slot.Field.Label(), Value: fv})
	}
	return v, nil
}

func (r *run) slot(slot *schema.Slot) (*Value, error) {
	switch slot.Kind {
	case schema.LeafSlot:
		return leafValue(slot.Leaf), nil

	case schema.ChoiceSlot:
		tag, err := r.choice(slot.Site)
		if err != nil {
			return nil, err
		}
		opt, _ := r.optionSet(slot.Site).Option(tag)
		if opt.Payload {
			return nil, errors.Wrapf(ErrPayloadConversion, "cannot turn %s into %s without its fields", tag, slot.Site.Type)
		}
		return &Value{Type: slot.Site.Type, Kind: decl.Sum, Shape: decl.Empty, Variant: tag}, nil

	case schema.SubSlot:
		if slot.Sub.Kind == schema.DecisionBuilder {
			return r.decision(slot.Sub)
		}
		return r.product(slot.Sub)
	}
	return nil, errors.AssertionFailedf("slot %s has unknown kind %s", slot.Path, slot.Kind)
}

// decision collapses a decision builder into the chosen variant
func (r *run) decision(b *schema.Builder) (*Value, error) {
	tag, err := r.choice(b.Site)
	if err != nil {
		return nil, err
	}
	if vb := b.VariantBuilder(tag); vb != nil {
		return r.product(vb)
	}
	return &Value{Type: b.Type, Kind: decl.Sum, Shape: decl.Empty, Variant: tag}, nil
}

func (r *run) optionSet(site *resolve.Site) *schema.OptionSet {
	o, _ := r.schema.OptionSet(site.Type)
	return o
}

func leafValue(l *schema.Leaf) *Value {
	v := &Value{Type: l.Type, Kind: l.Kind, Shape: l.Shape, Variant: l.Variant}
	for _, f := range l.Fields {
		v.Fields = append(v.Fields, Field{Name: f.Field.Label(), Value: leafValue(f.Value)})
	}
	return v
}
