package config

import (
	"strings"

	"github.com/teranos/sculpt/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Workers: 0 = one worker per input, negative = invalid
	if c.Generate.Workers < 0 {
		return errors.Newf("generate.workers must be >= 0, got %d", c.Generate.Workers)
	}

	if !strings.HasSuffix(c.Generate.Suffix, ".go") {
		return errors.WithHint(
			errors.Newf("generate.suffix must end in .go, got %q", c.Generate.Suffix),
			"the default is _sculpt.go")
	}
	if strings.ContainsAny(c.Generate.Suffix, `/\`) {
		return errors.Newf("generate.suffix must not contain a path separator, got %q", c.Generate.Suffix)
	}

	if c.Generate.Package != "" && !isPackageName(c.Generate.Package) {
		return errors.Newf("generate.package %q is not a valid Go package name", c.Generate.Package)
	}

	switch c.Log.Theme {
	case "", "everforest", "gruvbox", "plain":
	default:
		return errors.Newf("log.theme must be everforest, gruvbox or plain, got %q", c.Log.Theme)
	}

	return nil
}

func isPackageName(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return s != ""
}
