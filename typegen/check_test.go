package typegen

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/sculpt/errors"
)

func TestCompare_VersionFiltering(t *testing.T) {
	// Same code, different patch release in the header
	generated := Header("0.1.1") + "\n\npackage sheet\n\ntype Sheet struct{}\n"
	existing := Header("0.1.0") + "\n\npackage sheet\n\ntype Sheet struct{}\n"

	result, err := Compare([]byte(generated), []byte(existing), semver.MustParse("0.1.1"))
	require.NoError(t, err)
	assert.True(t, result.UpToDate)
	require.NotNil(t, result.GeneratedBy)
	assert.Equal(t, "0.1.0", result.GeneratedBy.String())
}

func TestCompare_FunctionalChange(t *testing.T) {
	generated := Header("0.1.0") + "\n\npackage sheet\n\ntype Sheet struct{ Class Class }\n"
	existing := Header("0.1.0") + "\n\npackage sheet\n\ntype Sheet struct{}\n"

	result, err := Compare([]byte(generated), []byte(existing), semver.MustParse("0.1.0"))
	require.NoError(t, err)
	assert.False(t, result.UpToDate)
}

func TestCompare_NewerMajor(t *testing.T) {
	generated := Header("0.1.0") + "\n\npackage sheet\n"
	existing := Header("2.0.0") + "\n\npackage sheet\n"

	_, err := Compare([]byte(generated), []byte(existing), semver.MustParse("0.1.0"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNewerGenerator))
	assert.NotEmpty(t, errors.Hints(err))
}

func TestCompare_HandWrittenFile(t *testing.T) {
	result, err := Compare([]byte(Header("0.1.0")+"\npackage sheet\n"), []byte("package sheet\n"), semver.MustParse("0.1.0"))
	require.NoError(t, err)
	assert.Nil(t, result.GeneratedBy)
	assert.True(t, result.UpToDate, "only the header differs")
}

func TestHeaderVersion(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"stamped", Header("1.2.3") + "\npackage x\n", "1.2.3"},
		{"prerelease", Header("0.0.0-dev") + "\n", "0.0.0-dev"},
		{"other generator", "// Code generated by protoc-gen-go. DO NOT EDIT.\n", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := HeaderVersion([]byte(tt.content))
			if tt.want == "" {
				assert.Nil(t, v)
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "// Code generated by sculpt v0.1.0. DO NOT EDIT.", Header("0.1.0"))
}
