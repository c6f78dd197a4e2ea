// Package loader decodes declaration files into a decl.File.
//
// Two encodings carry the same document, picked by file extension:
// .yaml/.yml (gopkg.in/yaml.v3) and .toml (BurntSushi/toml). Both reject
// unknown keys so a misspelt marker such as "expnad" fails loudly instead of
// silently producing a wizard without the sub-builder.
package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/teranos/sculpt/decl"
	"github.com/teranos/sculpt/errors"
)

// ErrUnsupportedFormat indicates a file extension the loader cannot decode
var ErrUnsupportedFormat = errors.New("unsupported declaration format")

// ErrDecode indicates a declaration file that does not match the document layout
var ErrDecode = errors.New("invalid declaration file")

// Format is a declaration file encoding
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatOf picks the format from a file name's extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", errors.WithHint(
		errors.Wrapf(ErrUnsupportedFormat, "%s", path),
		"declaration files end in .yaml, .yml or .toml")
}

// document is the on-disk layout shared by both encodings
type document struct {
	Package string    `yaml:"package" toml:"package"`
	Types   []typeDoc `yaml:"types" toml:"types"`
}

type typeDoc struct {
	Name     string       `yaml:"name" toml:"name"`
	Kind     string       `yaml:"kind" toml:"kind"`
	Shape    string       `yaml:"shape" toml:"shape"`
	Root     bool         `yaml:"root" toml:"root"`
	Decision bool         `yaml:"decision" toml:"decision"`
	Doc      string       `yaml:"doc" toml:"doc"`
	Fields   []fieldDoc   `yaml:"fields" toml:"fields"`
	Variants []variantDoc `yaml:"variants" toml:"variants"`
}

type fieldDoc struct {
	Name   string `yaml:"name" toml:"name"`
	Type   string `yaml:"type" toml:"type"`
	Expand bool   `yaml:"expand" toml:"expand"`
	Alias  string `yaml:"alias" toml:"alias"`
}

type variantDoc struct {
	Tag    string     `yaml:"tag" toml:"tag"`
	Shape  string     `yaml:"shape" toml:"shape"`
	Fields []fieldDoc `yaml:"fields" toml:"fields"`
}

// LoadFile reads and decodes the declaration file at path. The file name
// becomes decl.File.Source.
func LoadFile(path string) (*decl.File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return Decode(data, format, filepath.Base(path))
}

// Decode parses data in the given format
func Decode(data []byte, format Format, source string) (*decl.File, error) {
	var doc document
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, decodeError(err, source)
		}
	case TOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
		if err != nil {
			return nil, decodeError(err, source)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.WithHint(
				errors.Wrapf(ErrDecode, "%s: unknown keys %s", source, strings.Join(keys, ", ")),
				"check the spelling of the markers: root, decision, expand, alias")
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "format %q", format)
	}

	return doc.file(source)
}

func decodeError(err error, source string) error {
	return errors.Wrapf(ErrDecode, "%s: %v", source, err)
}

func (d *document) file(source string) (*decl.File, error) {
	f := &decl.File{Package: d.Package, Source: source}
	for i, t := range d.Types {
		dl, err := t.decl()
		if err != nil {
			return nil, errors.Wrapf(err, "%s: types[%d]", source, i)
		}
		f.Decls = append(f.Decls, dl)
	}
	return f, nil
}

func (t *typeDoc) decl() (decl.Decl, error) {
	d := decl.Decl{
		Name:     t.Name,
		Root:     t.Root,
		Decision: t.Decision,
		Doc:      strings.TrimSpace(t.Doc),
		Fields:   fieldRefs(t.Fields),
	}

	switch strings.ToLower(t.Kind) {
	case "product", "":
		if len(t.Variants) > 0 {
			if t.Kind == "" {
				err := t.sum(&d)
				return d, err
			}
			return d, errors.Wrapf(ErrDecode, "product %s declares variants", t.Name)
		}
		d.Kind = decl.Product
		shape, err := parseShape(t.Shape, d.Fields)
		if err != nil {
			return d, errors.Wrapf(err, "product %s", t.Name)
		}
		d.Shape = shape
		return d, nil

	case "sum":
		err := t.sum(&d)
		return d, err
	}
	return d, errors.WithHint(
		errors.Wrapf(ErrDecode, "type %s has unknown kind %q", t.Name, t.Kind),
		"kind is product or sum")
}

func (t *typeDoc) sum(d *decl.Decl) error {
	if len(t.Fields) > 0 {
		return errors.Wrapf(ErrDecode, "sum %s declares fields; put them on a variant", t.Name)
	}
	d.Kind = decl.Sum
	for _, v := range t.Variants {
		fields := fieldRefs(v.Fields)
		shape, err := parseShape(v.Shape, fields)
		if err != nil {
			return errors.Wrapf(err, "variant %s.%s", t.Name, v.Tag)
		}
		d.Variants = append(d.Variants, decl.Variant{Tag: v.Tag, Shape: shape, Fields: fields})
	}
	return nil
}

func fieldRefs(docs []fieldDoc) []decl.FieldRef {
	if len(docs) == 0 {
		return nil
	}
	refs := make([]decl.FieldRef, len(docs))
	for i, f := range docs {
		refs[i] = decl.FieldRef{Name: f.Name, Type: f.Type, Expand: f.Expand, Alias: f.Alias}
	}
	return refs
}

// parseShape reads an explicit shape, inferring it from the fields when absent.
// A shape that contradicts the fields is kept so the graph builder can report it.
func parseShape(s string, fields []decl.FieldRef) (decl.Shape, error) {
	switch strings.ToLower(s) {
	case "":
		return decl.InferShape(fields), nil
	case "named":
		return decl.Named, nil
	case "positional":
		return decl.Positional, nil
	case "empty":
		return decl.Empty, nil
	}
	return 0, errors.Wrapf(ErrDecode, "unknown shape %q", s)
}
