package typegen

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/sculpt/errors"
)

// ErrNewerGenerator indicates a file on disk was written by a generator with
// a higher major version than the running one
var ErrNewerGenerator = errors.New("generated by a newer sculpt")

// CheckResult holds the result of comparing generated output with a file on disk
type CheckResult struct {
	UpToDate bool

	// GeneratedBy is the version found in the existing file's header, nil
	// when the header is missing or unreadable
	GeneratedBy *semver.Version
}

// Compare compares freshly generated output with the existing file content,
// ignoring the version in the header line. An existing file stamped with a
// newer major version is reported as ErrNewerGenerator instead of stale, so
// an older binary never silently downgrades it.
func Compare(generated, existing []byte, current *semver.Version) (*CheckResult, error) {
	result := &CheckResult{GeneratedBy: HeaderVersion(existing)}

	if result.GeneratedBy != nil && current != nil && result.GeneratedBy.Major() > current.Major() {
		return result, errors.WithHint(
			errors.Wrapf(ErrNewerGenerator, "file was generated by v%s, this is v%s", result.GeneratedBy, current),
			"upgrade sculpt before regenerating")
	}

	result.UpToDate = filterHeader(generated) == filterHeader(existing)
	return result, nil
}

// HeaderVersion extracts the generator version from a generated file's
// first line, nil if there is none
func HeaderVersion(content []byte) *semver.Version {
	line, _, _ := bytes.Cut(content, []byte("\n"))
	s := strings.TrimSpace(string(line))
	if !strings.HasPrefix(s, HeaderPrefix) {
		return nil
	}
	s = strings.TrimPrefix(s, HeaderPrefix)
	s = strings.TrimSuffix(s, ". DO NOT EDIT.")

	v, err := semver.NewVersion(s)
	if err != nil {
		return nil
	}
	return v
}

// filterHeader drops the version header so that regenerating with a newer
// patch release does not mark every file stale.
// Returns empty string if scanner encounters an error.
func filterHeader(content []byte) string {
	var result strings.Builder
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), HeaderPrefix) {
			continue
		}
		result.WriteString(line)
		result.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		// An empty result never equals real output, so the file reads as stale
		return ""
	}

	return result.String()
}
