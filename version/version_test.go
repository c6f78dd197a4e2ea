package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSemver(t *testing.T) {
	defer func(v string) { Version = v }(Version)

	tests := []struct {
		version string
		want    string
	}{
		{"0.1.0", "0.1.0"},
		{"v1.2.3", "1.2.3"},
		{"dev", "0.0.0-dev"},
		{"my build", "0.0.0-my-build"},
	}
	for _, tt := range tests {
		Version = tt.version
		assert.Equal(t, tt.want, Semver().String(), tt.version)
	}
}

func TestInfo(t *testing.T) {
	defer func(v, c string) { Version, CommitHash = v, c }(Version, CommitHash)
	Version = "1.4.0"
	CommitHash = "0123456789abcdef"

	info := Get()
	assert.Equal(t, "1.4.0", info.Version)
	assert.Equal(t, "0123456", info.Short())
	assert.Contains(t, info.String(), "sculpt v1.4.0 (commit 0123456")
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
