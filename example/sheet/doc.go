// Package sheet is a generated character sheet wizard. BuildSheet asks a
// SheetCallbacks for the race, then for whatever that race needs, and for
// the class last.
package sheet

//go:generate go run github.com/teranos/sculpt/cmd/sculpt generate sheet.yaml
