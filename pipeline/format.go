package pipeline

import (
	"golang.org/x/tools/imports"

	"github.com/teranos/sculpt/errors"
)

// Format gofmts src and drops unused imports. filename labels errors and
// decides which directory goimports resolves against.
func Format(filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		// The generator wrote Go that does not parse
		return nil, errors.WithDetail(errors.Wrapf(errors.ErrEmit, "format %s: %v", filename, err), string(src))
	}
	return out, nil
}
