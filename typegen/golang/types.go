package golang

import (
	"strings"

	"github.com/teranos/sculpt/decl"
	"github.com/teranos/sculpt/graph"
	"github.com/teranos/sculpt/schema"
)

// domainTypes writes every reachable declaration: products as structs, sums
// as sealed interfaces with one struct per variant
func (e *emitter) domainTypes() {
	for _, n := range e.s.Types {
		if n.IsProduct() {
			e.product(n)
		} else {
			e.sum(n)
		}
	}
}

func (e *emitter) product(n *graph.Node) {
	e.blank()
	switch {
	case n.Doc != "":
		e.comment(n.Doc)
	case n.Root:
		e.line("// %s is built by Build%s.", n.Name, n.Name)
	}
	e.structType(n.Name, n.Fields)
	e.blank()
	e.stringer(n.Name, n.Name, n.Shape, n.Fields)
	if n.Root {
		e.blank()
		e.line("var _ fmt.Stringer = %s{}", n.Name)
	}
}

func (e *emitter) sum(n *graph.Node) {
	e.blank()
	if n.Doc != "" {
		e.comment(n.Doc)
	} else {
		e.line("// %s is one of: %s.", n.Name, strings.Join(variantTypes(n), ", "))
	}
	e.line("type %s interface {", n.Name)
	e.line("\tfmt.Stringer")
	e.line("\t%s()", sealName(n.Name))
	e.line("}")

	for _, v := range n.Variants {
		name := schema.VariantTypeName(n.Name, v.Tag)
		e.blank()
		e.structType(name, v.Fields)
		e.blank()
		e.line("func (%s) %s() {}", name, sealName(n.Name))
		e.blank()
		e.stringer(name, v.Tag, v.Shape, v.Fields)
	}
}

func (e *emitter) structType(name string, fields []decl.FieldRef) {
	if len(fields) == 0 {
		e.line("type %s struct{}", name)
		return
	}
	e.line("type %s struct {", name)
	names := schema.FieldNames(fields)
	for i, f := range fields {
		e.line("\t%s %s", names[i], f.Type)
	}
	e.line("}")
}

// stringer writes a String method spelling the value the way it is declared:
// Dwarf{subrace: HillDwarf, tool: Hammer}, WoodElf(Cantrip{...}), Bard
func (e *emitter) stringer(typ, label string, shape decl.Shape, fields []decl.FieldRef) {
	if len(fields) == 0 {
		text := label
		if shape != decl.Empty || label == typ {
			text += "{}"
		}
		e.line("func (%s) String() string { return %s }", typ, quote(text))
		return
	}

	names := schema.FieldNames(fields)
	parts := make([]string, len(fields))
	args := make([]string, len(fields))
	for i, f := range fields {
		if shape == decl.Positional {
			parts[i] = "%v"
		} else {
			parts[i] = f.Label() + ": %v"
		}
		args[i] = "v." + names[i]
	}

	lp, rp := "{", "}"
	if shape == decl.Positional {
		lp, rp = "(", ")"
	}
	format := label + lp + strings.Join(parts, ", ") + rp

	e.line("func (v %s) String() string {", typ)
	e.line("\treturn fmt.Sprintf(%s, %s)", quote(format), strings.Join(args, ", "))
	e.line("}")
}

func sealName(sum string) string {
	return "is" + sum
}

func variantTypes(n *graph.Node) []string {
	names := make([]string, len(n.Variants))
	for i, v := range n.Variants {
		names[i] = schema.VariantTypeName(n.Name, v.Tag)
	}
	return names
}
