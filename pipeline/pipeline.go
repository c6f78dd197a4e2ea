// Package pipeline runs declaration files through the generator and moves
// the result to and from disk.
//
// Generate is the pure core run for one decl.File. Batch loads and generates
// many inputs in parallel, failing as a whole when any input fails, so a
// broken declaration set never leaves a half-written tree behind. Write and
// Check are the only functions that touch generated files.
package pipeline

import (
	"time"

	"go.uber.org/zap"

	"github.com/teranos/sculpt/config"
	"github.com/teranos/sculpt/decl"
	"github.com/teranos/sculpt/errors"
	"github.com/teranos/sculpt/graph"
	"github.com/teranos/sculpt/logger"
	"github.com/teranos/sculpt/resolve"
	"github.com/teranos/sculpt/schema"
	"github.com/teranos/sculpt/typegen"
	"github.com/teranos/sculpt/typegen/golang"
)

// Options configures a pipeline run
type Options struct {
	// Package overrides the package clause of every input
	Package string
	// Format runs the output through goimports
	Format bool

	// OutputDir receives every generated file; empty writes next to the input
	OutputDir string
	// Suffix replaces the input's extension (default: _sculpt.go)
	Suffix string

	// Workers bounds Batch's parallelism; 0 runs one worker per input
	Workers int

	// Generator emits the source (default: the Go generator)
	Generator typegen.Generator
	Logger    *zap.SugaredLogger
}

// FromConfig builds Options from the project configuration
func FromConfig(cfg *config.Config) Options {
	return Options{
		Package:   cfg.Generate.Package,
		Format:    cfg.Generate.Format,
		OutputDir: cfg.Generate.OutputDir,
		Suffix:    cfg.Generate.Suffix,
		Workers:   cfg.Generate.Workers,
	}
}

func (o Options) generator() typegen.Generator {
	if o.Generator != nil {
		return o.Generator
	}
	return golang.NewGenerator()
}

func (o Options) logger() *zap.SugaredLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logger.ComponentLogger("pipeline")
}

// Result is the outcome of one generation run
type Result struct {
	// Input is the declaration file path, empty for in-memory runs
	Input string
	File  *decl.File

	Graph      *graph.DependencyGraph
	Resolution *resolve.Resolution
	Schema     *schema.Schema

	// Output is the generated source, formatted when Options.Format is set
	Output []byte
}

// Compile runs the language-independent stages: graph, resolution, schema
func Compile(file *decl.File, opts Options) (*Result, error) {
	if file == nil {
		return nil, errors.New("no declaration file")
	}
	log := opts.logger()

	g, err := graph.Build(file.Decls)
	if err != nil {
		return nil, err
	}
	for _, n := range g.Unreachable() {
		log.Warnw("declaration is not reachable from the root and will not be generated",
			logger.FieldInput, file.Source, "type", n.Name, logger.FieldRoot, g.Root)
	}

	res, err := resolve.Resolve(g)
	if err != nil {
		return nil, err
	}

	pkg := opts.Package
	if pkg == "" {
		pkg = file.Package
	}
	s, err := schema.Compile(res, schema.Options{Package: pkg, Source: file.Source})
	if err != nil {
		return nil, err
	}

	log.Debugw("compiled schema",
		logger.FieldInput, file.Source,
		logger.FieldRoot, s.Root,
		logger.FieldTypes, len(s.Types),
		logger.FieldSites, len(s.Pickers),
		logger.FieldBuilders, len(s.Builders))

	return &Result{File: file, Graph: g, Resolution: res, Schema: s}, nil
}

// Generate runs every stage for one declaration set and returns the source
func Generate(file *decl.File, opts Options) (*Result, error) {
	start := time.Now()

	r, err := Compile(file, opts)
	if err != nil {
		return nil, err
	}

	out, err := opts.generator().GenerateFile(r.Schema)
	if err != nil {
		return nil, err
	}
	if opts.Format {
		if out, err = Format(r.outputName(opts), out); err != nil {
			return nil, err
		}
	}
	r.Output = out

	opts.logger().Debugw("generated",
		logger.FieldInput, file.Source,
		logger.FieldSize, len(out),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return r, nil
}

func (r *Result) outputName(opts Options) string {
	if r.Input != "" {
		return OutputPath(r.Input, opts)
	}
	return r.File.Source + ".go"
}
