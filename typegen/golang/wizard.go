package golang

import (
	"strings"

	"github.com/teranos/sculpt/decl"
	"github.com/teranos/sculpt/resolve"
	"github.com/teranos/sculpt/schema"
	"github.com/teranos/sculpt/typegen/util"
)

// options writes one enum per decision type
func (e *emitter) options() {
	for _, o := range e.s.OptionSets {
		typ := schema.OptionTypeName(o.Type)
		consts := make([]string, len(o.Options))
		for i, opt := range o.Options {
			consts[i] = optionConst(o.Type, opt.Tag)
		}

		e.blank()
		e.line("// %s enumerates the choices of %s.", typ, o.Type)
		e.line("type %s int", typ)
		e.blank()
		e.line("const (")
		for i, c := range consts {
			if i == 0 {
				e.line("\t%s %s = iota", c, typ)
				continue
			}
			e.line("\t%s", c)
		}
		e.line(")")

		e.blank()
		e.line("// %sOptions returns every %s in declaration order.", o.Type, typ)
		e.line("func %sOptions() []%s {", o.Type, typ)
		e.line("\treturn []%s{%s}", typ, strings.Join(consts, ", "))
		e.line("}")

		e.blank()
		e.line("func (o %s) String() string {", typ)
		e.line("\tswitch o {")
		for i, opt := range o.Options {
			e.line("\tcase %s:", consts[i])
			e.line("\t\treturn %s", quote(opt.Tag))
		}
		e.line("\t}")
		e.line("\treturn fmt.Sprintf(%s, int(o))", quote(typ+"(%d)"))
		e.line("}")

		e.blank()
		e.line("// Value converts o into the variant it names. It panics for variants")
		e.line("// that carry fields, which only the wizard can build.")
		e.line("func (o %s) Value() %s {", typ, o.Type)
		e.line("\tswitch o {")
		for i, opt := range o.Options {
			e.line("\tcase %s:", consts[i])
			if opt.Payload {
				e.line("\t\tpanic(%s)", quote("sculpt: cannot turn "+opt.Tag+" into "+o.Type+" without its fields"))
				continue
			}
			e.line("\t\treturn %s{}", schema.VariantTypeName(o.Type, opt.Tag))
		}
		e.line("\t}")
		e.line("\tpanic(fmt.Sprintf(%s, int(o)))", quote("sculpt: invalid "+typ+" %d"))
		e.line("}")
	}
}

// pickers writes one picker interface per site
func (e *emitter) pickers() {
	for _, p := range e.s.Pickers {
		typ := schema.OptionTypeName(p.Site.Type)
		e.blank()
		e.line("// %s chooses the %s at %s.", schema.PickerName(p.Site), p.Site.Type, p.Site.Path)
		e.line("type %s interface {", schema.PickerName(p.Site))
		e.line("\t// Options lists the choices in declaration order.")
		e.line("\tOptions() []%s", typ)
		e.line("\t// Fulfill records the choice. Call it exactly once.")
		e.line("\tFulfill(choice %s)", typ)
		e.line("}")
	}
}

// callbacks writes the callback contract and its first-option defaults
func (e *emitter) callbacks() {
	name := schema.CallbacksName(e.s.Root)
	def := "Default" + name

	e.blank()
	e.line("// %s is asked for every decision Build%s reaches. Embed", name, e.s.Root)
	e.line("// %s to keep the first option wherever a method is not", def)
	e.line("// overridden.")
	if len(e.s.Callbacks.Methods) == 0 {
		e.line("type %s interface{}", name)
	} else {
		e.line("type %s interface {", name)
		for _, p := range e.s.Callbacks.Methods {
			e.line("\t%s(picker %s)", schema.MethodName(p.Site), schema.PickerName(p.Site))
		}
		e.line("}")
	}

	e.blank()
	e.line("// %s picks the first option of every decision.", def)
	e.line("type %s struct{}", def)
	for _, p := range e.s.Callbacks.Methods {
		e.blank()
		e.line("func (%s) %s(picker %s) {", def, schema.MethodName(p.Site), schema.PickerName(p.Site))
		e.line("\tpicker.Fulfill(picker.Options()[0])")
		e.line("}")
	}
	e.blank()
	e.line("var _ %s = %s{}", name, def)
}

// builders writes the wizard state, the builder tree and the picker implementations
func (e *emitter) builders() {
	e.blank()
	e.line("type %s struct {", e.wizard)
	e.line("\tcallbacks %s", schema.CallbacksName(e.s.Root))
	e.line("\troot %s", e.s.RootBuilder.Name)
	e.line("}")

	e.address(e.s.RootBuilder, "p.w.root")

	for _, b := range e.s.Builders {
		e.builderType(b)
		e.buildMethod(b)
	}
	for _, p := range e.s.Pickers {
		e.pickerImplType(p)
	}
}

// address records the access expression of b and every builder under it
func (e *emitter) address(b *schema.Builder, expr string) {
	e.exprs[b] = expr
	if b.Kind == schema.DecisionBuilder {
		for _, v := range b.Variants {
			e.address(v, expr+"."+variantField(v.Variant))
		}
		return
	}
	names := slotNames(b)
	for i, slot := range b.Slots {
		if slot.Kind == schema.SubSlot {
			e.address(slot.Sub, expr+"."+names[i])
		}
	}
}

func (e *emitter) builderType(b *schema.Builder) {
	e.blank()
	if b.Kind == schema.DecisionBuilder {
		e.line("type %s struct {", b.Name)
		e.line("\tchoice *%s", schema.OptionTypeName(b.Type))
		for _, v := range b.Variants {
			e.line("\t%s %s", variantField(v.Variant), v.Name)
		}
		e.line("}")
		return
	}

	names := slotNames(b)
	var fields []string
	for i, slot := range b.Slots {
		switch slot.Kind {
		case schema.ChoiceSlot:
			fields = append(fields, names[i]+" *"+schema.OptionTypeName(slot.Site.Type))
		case schema.SubSlot:
			fields = append(fields, names[i]+" "+slot.Sub.Name)
		}
	}
	if len(fields) == 0 {
		e.line("type %s struct{}", b.Name)
		return
	}
	e.line("type %s struct {", b.Name)
	for _, f := range fields {
		e.line("\t%s", f)
	}
	e.line("}")
}

func (e *emitter) buildMethod(b *schema.Builder) {
	e.blank()
	switch b.Kind {
	case schema.DecisionBuilder:
		e.line("func (b *%s) build() %s {", b.Name, b.Type)
		e.unfulfilled("b.choice", b.Site)
		if len(b.Variants) > 0 {
			e.line("\tswitch *b.choice {")
			for _, v := range b.Variants {
				e.line("\tcase %s:", optionConst(b.Type, v.Variant))
				e.line("\t\treturn b.%s.build()", variantField(v.Variant))
			}
			e.line("\t}")
		}
		e.line("\treturn b.choice.Value()")
		e.line("}")

	case schema.ProductBuilder, schema.VariantBuilder:
		typ := b.Type
		if b.Kind == schema.VariantBuilder {
			typ = schema.VariantTypeName(b.Type, b.Variant)
		}
		names := slotNames(b)

		e.line("func (b *%s) build() %s {", b.Name, typ)
		for i, slot := range b.Slots {
			if slot.Kind == schema.ChoiceSlot {
				e.unfulfilled("b."+names[i], slot.Site)
			}
		}
		if len(b.Slots) == 0 {
			e.line("\treturn %s{}", typ)
			e.line("}")
			return
		}
		e.line("\treturn %s{", typ)
		for i, slot := range b.Slots {
			e.line("\t\t%s: %s,", names[i], e.slotValue(slot, "b."+names[i]))
		}
		e.line("\t}")
		e.line("}")

	default:
		e.fail("builder %s has unknown kind %s", b.Name, b.Kind)
	}
}

func (e *emitter) unfulfilled(expr string, site *resolve.Site) {
	e.line("\tif %s == nil {", expr)
	e.line("\t\tpanic(%s)", quote("sculpt: "+site.Name+" not fulfilled at "+site.Path.String()))
	e.line("\t}")
}

func (e *emitter) slotValue(slot *schema.Slot, expr string) string {
	switch slot.Kind {
	case schema.ChoiceSlot:
		return expr + ".Value()"
	case schema.SubSlot:
		return expr + ".build()"
	case schema.LeafSlot:
		return leafValue(slot.Leaf)
	}
	e.fail("slot %s has unknown kind %s", slot.Path, slot.Kind)
	return ""
}

// leafValue spells a value fixed at generation time as a composite literal
func leafValue(l *schema.Leaf) string {
	if l.Kind == decl.Sum {
		return schema.VariantTypeName(l.Type, l.Variant) + "{}"
	}
	if len(l.Fields) == 0 {
		return l.Type + "{}"
	}
	refs := make([]decl.FieldRef, len(l.Fields))
	for i, f := range l.Fields {
		refs[i] = f.Field
	}
	names := schema.FieldNames(refs)
	parts := make([]string, len(l.Fields))
	for i, f := range l.Fields {
		parts[i] = names[i] + ": " + leafValue(f.Value)
	}
	return l.Type + "{" + strings.Join(parts, ", ") + "}"
}

func (e *emitter) pickerImplType(p *schema.Picker) {
	name := e.pickerImpl(p)
	typ := schema.OptionTypeName(p.Site.Type)

	slot, ok := e.choiceSlot(p)
	if !ok {
		return
	}

	e.blank()
	e.line("type %s struct{ w *%s }", name, e.wizard)
	e.blank()
	e.line("func (p %s) Options() []%s { return %sOptions() }", name, typ, p.Site.Type)
	e.blank()
	e.line("func (p %s) Fulfill(choice %s) {", name, typ)
	e.line("\tslot := &%s", slot)
	e.line("\tif *slot != nil {")
	e.line("\t\tpanic(%s)", quote("sculpt: "+p.Site.Name+" fulfilled twice"))
	e.line("\t}")
	e.line("\tif choice < 0 || int(choice) >= len(%sOptions()) {", p.Site.Type)
	e.line("\t\tpanic(fmt.Sprintf(%s, int(choice)))", quote("sculpt: invalid "+typ+" %d"))
	e.line("\t}")
	e.line("\t*slot = &choice")
	e.handOver(p)
	e.line("}")
}

// choiceSlot returns the expression of the slot a picker stores its choice in
func (e *emitter) choiceSlot(p *schema.Picker) (string, bool) {
	owner, ok := e.exprs[p.Owner]
	if !ok {
		e.fail("picker %s has no addressable owner %s", p.Site.Name, p.Owner.Name)
		return "", false
	}
	if p.Expanded() {
		return owner + ".choice", true
	}
	names := slotNames(p.Owner)
	for i, slot := range p.Owner.Slots {
		if slot == p.Slot {
			return owner + "." + names[i], true
		}
	}
	e.fail("picker %s: slot not found in %s", p.Site.Name, p.Owner.Name)
	return "", false
}

// handOver writes the calls fulfill makes after storing a choice, grouping
// tags that link to the same site
func (e *emitter) handOver(p *schema.Picker) {
	type group struct {
		next *resolve.Site
		tags []string
	}
	var groups []*group
	for _, l := range p.Links {
		var g *group
		for _, existing := range groups {
			if existing.next == l.Next {
				g = existing
				break
			}
		}
		if g == nil {
			g = &group{next: l.Next}
			groups = append(groups, g)
		}
		g.tags = append(g.tags, optionConst(p.Site.Type, l.Tag))
	}

	if len(groups) == 1 {
		if next := groups[0].next; next != nil {
			e.line("\t%s", e.call(next))
		}
		return
	}

	e.line("\tswitch choice {")
	for _, g := range groups {
		if g.next == nil {
			continue
		}
		e.line("\tcase %s:", strings.Join(g.tags, ", "))
		e.line("\t\t%s", e.call(g.next))
	}
	e.line("\t}")
}

func (e *emitter) call(site *resolve.Site) string {
	next, ok := e.s.Picker(site.Name)
	if !ok {
		e.fail("link names unknown site %s", site.Name)
		return ""
	}
	return "p.w.callbacks." + schema.MethodName(site) + "(" + e.pickerImpl(next) + "{w: p.w})"
}

func (e *emitter) pickerImpl(p *schema.Picker) string {
	return util.JoinCamel(e.s.Root, p.Site.Name) + "Picker"
}

func optionConst(typ, tag string) string {
	return schema.OptionTypeName(typ) + tag
}

func variantField(tag string) string {
	return "on" + util.ToPascalCase(tag)
}

func slotNames(b *schema.Builder) []string {
	fields := make([]decl.FieldRef, len(b.Slots))
	for i, s := range b.Slots {
		fields[i] = s.Field
	}
	return schema.FieldNames(fields)
}
