// Package decl is the in-memory declaration model consumed by the generator.
//
// A declaration set is a flat list of product types (structs with named or
// positional fields) and sum types (tagged variants). Markers that the input
// format expresses as annotations are carried here as plain booleans so the
// rest of the pipeline never re-inspects raw syntax:
//   - Decl.Root      the single product type the wizard builds
//   - Decl.Decision  a sum type whose variant the driver chooses
//   - FieldRef.Expand a field whose type has its own decisions and therefore
//     needs a nested sub-builder
package decl

import "fmt"

// Kind distinguishes product types from sum types
type Kind int

const (
	Product Kind = iota
	Sum
)

func (k Kind) String() string {
	switch k {
	case Product:
		return "product"
	case Sum:
		return "sum"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is the field layout of a product type or a variant
type Shape int

const (
	Named Shape = iota
	Positional
	Empty
)

func (s Shape) String() string {
	switch s {
	case Named:
		return "named"
	case Positional:
		return "positional"
	case Empty:
		return "empty"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// FieldRef is a reference from a field to the type it holds
type FieldRef struct {
	Name   string // empty for positional fields
	Type   string
	Expand bool

	// Alias names the decision site this field creates. Needed when the same
	// decision type is reached from more than one place.
	Alias string
}

// Positional reports whether the field has no name
func (f FieldRef) Positional() bool {
	return f.Name == ""
}

// Label returns the field name, or its type name for positional fields
func (f FieldRef) Label() string {
	if f.Name != "" {
		return f.Name
	}
	return f.Type
}

// Variant is one alternative of a sum type
type Variant struct {
	Tag    string
	Shape  Shape
	Fields []FieldRef
}

// HasPayload reports whether the variant carries fields
func (v Variant) HasPayload() bool {
	return len(v.Fields) > 0
}

// Decl is a single type declaration
type Decl struct {
	Name     string
	Kind     Kind
	Shape    Shape // products only
	Fields   []FieldRef
	Variants []Variant
	Root     bool
	Decision bool
	Doc      string
}

// IsProduct reports whether d is a product type
func (d Decl) IsProduct() bool { return d.Kind == Product }

// IsSum reports whether d is a sum type
func (d Decl) IsSum() bool { return d.Kind == Sum }

// Variant returns the variant with the given tag
func (d Decl) Variant(tag string) (Variant, bool) {
	for _, v := range d.Variants {
		if v.Tag == tag {
			return v, true
		}
	}
	return Variant{}, false
}

// HasPayload reports whether any variant of a sum type carries fields
func (d Decl) HasPayload() bool {
	for _, v := range d.Variants {
		if v.HasPayload() {
			return true
		}
	}
	return false
}

// Tags returns the variant tags in declaration order
func (d Decl) Tags() []string {
	tags := make([]string, len(d.Variants))
	for i, v := range d.Variants {
		tags[i] = v.Tag
	}
	return tags
}

// File is one declaration set: everything a single generation run consumes
type File struct {
	Package string
	Source  string // where the declarations came from, for headers and messages
	Decls   []Decl
}

// Decl returns the declaration with the given name
func (f *File) Decl(name string) (Decl, bool) {
	for _, d := range f.Decls {
		if d.Name == name {
			return d, true
		}
	}
	return Decl{}, false
}

// InferShape derives a shape from a field list: no fields is Empty, a named
// first field is Named, otherwise Positional. Mixed lists are rejected later
// by the graph builder.
func InferShape(fields []FieldRef) Shape {
	if len(fields) == 0 {
		return Empty
	}
	if fields[0].Positional() {
		return Positional
	}
	return Named
}
