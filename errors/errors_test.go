package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrapf(ErrUnresolvedReference, "Sheet.race references %s", "Rase")

	assert.True(t, Is(err, ErrUnresolvedReference))
	assert.False(t, Is(err, ErrNoRoot))
	assert.Contains(t, err.Error(), "Rase")
	assert.Contains(t, err.Error(), "unresolved type reference")
}

func TestIsGraphError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"no root", ErrNoRoot, true},
		{"multiple roots wrapped", Wrap(ErrMultipleRoots, "A, B"), true},
		{"unresolved", Wrap(ErrUnresolvedReference, "x"), true},
		{"shape", WithHint(Wrap(ErrInvalidFieldShape, "x"), "hint"), true},
		{"cycle", Wrap(ErrCycle, "A -> B -> A"), true},
		{"emit is not a graph error", Emitf("slot %s", "x"), false},
		{"plain", New("io"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGraphError(tt.err))
		})
	}
}

func TestEmitf(t *testing.T) {
	err := Emitf("builder %q has no slot %q", "sheetBuilder", "race")

	require.Error(t, err)
	assert.True(t, IsEmitError(err))
	assert.True(t, Is(err, ErrEmit))
	assert.True(t, IsAssertionFailure(err))
	assert.Contains(t, err.Error(), `builder "sheetBuilder" has no slot "race"`)

	wrapped := Wrap(err, "generating sheet.yaml")
	assert.True(t, IsAssertionFailure(wrapped))
	assert.True(t, IsEmitError(wrapped))
	assert.False(t, IsGraphError(wrapped))
}

func TestHints(t *testing.T) {
	assert.Nil(t, Hints(nil))

	err := WithHint(Wrap(ErrNoRoot, "sheet.yaml"), "mark one product type with root: true")
	hints := Hints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "mark one product type with root: true", hints[0])
}

func TestWithDetail(t *testing.T) {
	err := WithDetail(ErrCycle, "Race -> Subrace -> Race")

	details := GetAllDetails(err)
	require.Len(t, details, 1)
	assert.Equal(t, "Race -> Subrace -> Race", details[0])
}

func TestStackTrace(t *testing.T) {
	err := Wrap(ErrInvalidFieldShape, "with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
	assert.False(t, IsEmitError(nil))
}

func ExampleWrapf() {
	err := Wrapf(ErrNoRoot, "%s", "sheet.yaml")
	fmt.Println(err)
	// Output: sheet.yaml: no root type declared
}
