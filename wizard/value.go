package wizard

import (
	"strings"

	"github.com/teranos/sculpt/decl"
)

// Value is a built instance of a declared type
type Value struct {
	Type    string
	Kind    decl.Kind
	Variant string // sums only
	Shape   decl.Shape
	Fields  []Field
}

// Field is one field of a built value
type Field struct {
	Name  string
	Value *Value
}

// Field returns the value of the named field, nil when absent
func (v *Value) Field(name string) *Value {
	for _, f := range v.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}

// String renders the value the way the declarations spell it:
// Sheet{race: Elf{subrace: WoodElf(Cantrip{cantrip: Prestidigitation})}, class: Bard}
func (v *Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v *Value) write(sb *strings.Builder) {
	if v == nil {
		sb.WriteString("<nil>")
		return
	}

	name := v.Type
	if v.Kind == decl.Sum {
		name = v.Variant
	}
	sb.WriteString(name)

	switch v.Shape {
	case decl.Named:
		sb.WriteString("{")
		for i, f := range v.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Name)
			sb.WriteString(": ")
			f.Value.write(sb)
		}
		sb.WriteString("}")
	case decl.Positional:
		sb.WriteString("(")
		for i, f := range v.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			f.Value.write(sb)
		}
		sb.WriteString(")")
	case decl.Empty:
		if v.Kind == decl.Product {
			sb.WriteString("{}")
		}
	}
}
