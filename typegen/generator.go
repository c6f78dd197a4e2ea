// Package typegen turns a compiled schema into source code.
//
// # Architecture
//
// The package uses a two-layer design:
//  1. Language-agnostic compilation (graph, resolve, schema) produces a Schema
//  2. Language-specific generators (golang/) serialize the Schema
//
// This separation allows adding new target languages without repeating path
// resolution or link computation.
//
// # Design Decisions
//
//   - Generators are pure: the same Schema always yields byte-identical output
//   - Every collection in a Schema is an ordered slice; generators never range
//     over maps while writing
//   - The header carries the generator version so Compare can tell stale
//     output from output written by a newer generator
//
// # Implementing a New Generator
//
//  1. Create package: typegen/<language>/generator.go
//  2. Implement the Generator interface (see below)
//  3. Register the language in pipeline.Generators
//  4. Add golden-fragment tests next to the generator
package typegen

import (
	"fmt"

	"github.com/teranos/sculpt/schema"
)

// Generator defines the interface for language-specific wizard generators
type Generator interface {
	// GenerateFile creates a complete output file from a compiled schema.
	// Errors wrap errors.ErrEmit and indicate a generator defect.
	GenerateFile(s *schema.Schema) ([]byte, error)

	// FileExtension returns the file extension for this language (e.g., "go")
	FileExtension() string

	// Language returns the language name (e.g., "go")
	Language() string
}

// HeaderPrefix starts the first line of every generated file
const HeaderPrefix = "// Code generated by sculpt "

// Header returns the first line of a generated file for the given version
func Header(version string) string {
	return fmt.Sprintf("%sv%s. DO NOT EDIT.", HeaderPrefix, version)
}
