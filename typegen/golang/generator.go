// Package golang emits a compiled schema as Go source.
//
// The output is a single file holding, in order: the domain types, one
// option enum per decision type, one picker interface per site, the
// callback contract with its embeddable defaults, the unexported builder
// tree with its picker implementations, and the Build<Root> entry point.
//
// Output is deterministic but not aligned; run it through gofmt (the
// pipeline uses golang.org/x/tools/imports) before writing it to disk.
package golang

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/teranos/sculpt/errors"
	"github.com/teranos/sculpt/schema"
	"github.com/teranos/sculpt/typegen"
	"github.com/teranos/sculpt/typegen/util"
	"github.com/teranos/sculpt/version"
)

// Generator implements typegen.Generator for Go
type Generator struct {
	// Version is stamped into the header. Defaults to the running version.
	Version string
}

// NewGenerator creates a new Go generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "go"
func (g *Generator) Language() string {
	return "go"
}

// FileExtension returns "go"
func (g *Generator) FileExtension() string {
	return "go"
}

var _ typegen.Generator = (*Generator)(nil)

// GenerateFile renders s as a Go source file
func (g *Generator) GenerateFile(s *schema.Schema) ([]byte, error) {
	if s == nil || s.RootBuilder == nil {
		return nil, errors.Emitf("schema has no root builder")
	}

	v := g.Version
	if v == "" {
		v = version.Semver().String()
	}

	e := newEmitter(s)
	e.header(v)
	e.domainTypes()
	e.options()
	e.pickers()
	e.callbacks()
	e.builders()
	e.entryPoint()

	if e.err != nil {
		return nil, e.err
	}
	return []byte(e.sb.String()), nil
}

type emitter struct {
	s  *schema.Schema
	sb strings.Builder

	// access expression of every builder, rooted at a picker receiver
	exprs map[*schema.Builder]string

	wizard string

	err error
}

func newEmitter(s *schema.Schema) *emitter {
	return &emitter{
		s:      s,
		exprs:  make(map[*schema.Builder]string, len(s.Builders)),
		wizard: util.JoinCamel(s.Root) + "Wizard",
	}
}

// line writes one formatted line
func (e *emitter) line(format string, args ...any) {
	fmt.Fprintf(&e.sb, format, args...)
	e.sb.WriteByte('\n')
}

func (e *emitter) blank() {
	e.sb.WriteByte('\n')
}

// fail keeps the first emitter inconsistency
func (e *emitter) fail(format string, args ...any) {
	if e.err == nil {
		e.err = errors.Emitf(format, args...)
	}
}

func (e *emitter) comment(text string) {
	for _, l := range strings.Split(strings.TrimSpace(text), "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			e.line("//")
			continue
		}
		e.line("// %s", l)
	}
}

func (e *emitter) header(v string) {
	e.line("%s", typegen.Header(v))
	if e.s.Source != "" {
		e.line("// Source: %s", e.s.Source)
	}
	e.blank()
	e.line("package %s", e.s.Package)
	e.blank()
	e.line(`import "fmt"`)
}

// entryPoint writes Build<Root>
func (e *emitter) entryPoint() {
	root := e.s.Root
	e.blank()
	e.line("// Build%s asks callbacks for every decision on the chosen branches and", root)
	e.line("// returns the finished %s. It panics if a callback returns without", root)
	e.line("// fulfilling its picker.")
	e.line("func Build%s(callbacks %s) %s {", root, schema.CallbacksName(root), root)
	e.line("\tw := &%s{callbacks: callbacks}", e.wizard)
	if e.s.First != nil {
		e.line("\tcallbacks.%s(%s{w: w})", schema.MethodName(e.s.First.Site), e.pickerImpl(e.s.First))
	}
	e.line("\treturn w.root.build()")
	e.line("}")
}

func quote(s string) string {
	return strconv.Quote(s)
}
