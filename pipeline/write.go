package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/teranos/sculpt/config"
	"github.com/teranos/sculpt/errors"
	"github.com/teranos/sculpt/logger"
	"github.com/teranos/sculpt/typegen"
	"github.com/teranos/sculpt/version"
)

// OutputPath is where the file generated from input goes:
// sheet.yaml -> sheet_sculpt.go, next to the input or inside opts.OutputDir
func OutputPath(input string, opts Options) string {
	suffix := opts.Suffix
	if suffix == "" {
		suffix = config.DefaultSuffix
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + suffix

	dir := opts.OutputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, base)
}

// WriteStatus tells what Write did
type WriteStatus int

const (
	Created WriteStatus = iota
	Updated
	Unchanged
)

func (s WriteStatus) String() string {
	switch s {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Unchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Write stores r.Output at its output path. A file that only differs in its
// version header is left alone, and a file written by a newer major version
// is never overwritten.
func Write(r *Result, opts Options) (string, WriteStatus, error) {
	path := r.outputName(opts)
	status := Created

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		check, err := typegen.Compare(r.Output, existing, version.Semver())
		if err != nil {
			return path, Unchanged, errors.Wrapf(err, "%s", path)
		}
		if check.UpToDate {
			opts.logger().Debugw("output unchanged", logger.FieldOutput, path)
			return path, Unchanged, nil
		}
		status = Updated
	case !os.IsNotExist(err):
		return path, Unchanged, errors.Wrapf(err, "failed to read %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), config.DefaultDirPermissions); err != nil {
		return path, Unchanged, errors.Wrapf(err, "failed to create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, r.Output, config.DefaultFilePermissions); err != nil {
		return path, Unchanged, errors.Wrapf(err, "failed to write %s", path)
	}

	opts.logger().Infow("wrote file", logger.FieldInput, r.Input, logger.FieldOutput, path, logger.FieldStatus, status.String())
	return path, status, nil
}

// Check compares r.Output with the file on disk. A missing file is stale.
func Check(r *Result, opts Options) (string, *typegen.CheckResult, error) {
	path := r.outputName(opts)

	existing, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return path, &typegen.CheckResult{}, nil
	}
	if err != nil {
		return path, nil, errors.Wrapf(err, "failed to read %s", path)
	}

	check, err := typegen.Compare(r.Output, existing, version.Semver())
	if err != nil {
		return path, check, errors.Wrapf(err, "%s", path)
	}
	return path, check, nil
}
