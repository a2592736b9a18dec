package cgterrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cgt-lang/cgt/core/cgterrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorRendering(t *testing.T) {
	err := cgterrors.New(cgterrors.InvalidInput,
		"%d vertex colors for a graph of order %d", 2, 3)
	assert.Equal(t, "invalid input: 2 vertex colors for a graph of order 3", err.Error())

	cause := fmt.Errorf("unexpected byte '}'")
	wrapped := cgterrors.Wrap(cgterrors.Parse, "malformed option list", cause)
	assert.Equal(t, "parse: malformed option list: unexpected byte '}'", wrapped.Error())
}

func TestContextFieldsRenderInOrder(t *testing.T) {
	err := cgterrors.New(cgterrors.InvalidInput, "size mismatch").
		With("vertices", 3).
		With("graph", 5)
	assert.Equal(t, "invalid input: size mismatch [vertices=3 graph=5]", err.Error())

	v, ok := err.Context("vertices")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = err.Context("edges")
	assert.False(t, ok)
}

func TestKindIsSentinel(t *testing.T) {
	err := cgterrors.New(cgterrors.Parse, "unexpected %q", "|")
	assert.ErrorIs(t, err, cgterrors.Parse)
	assert.NotErrorIs(t, err, cgterrors.InvalidInput)

	// Matching survives wrapping in plain fmt errors.
	outer := fmt.Errorf("solving position: %w", err)
	assert.ErrorIs(t, outer, cgterrors.Parse)
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := cgterrors.Wrap(cgterrors.InputRead, "could not read position file", cause)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, cgterrors.InputRead)
}

func TestKindOf(t *testing.T) {
	err := cgterrors.New(cgterrors.SchemaValidation, "missing key")
	assert.Equal(t, cgterrors.SchemaValidation, cgterrors.KindOf(err))
	assert.Equal(t, cgterrors.SchemaValidation,
		cgterrors.KindOf(fmt.Errorf("loading: %w", err)))
	assert.Equal(t, cgterrors.Kind(""), cgterrors.KindOf(errors.New("plain")))
	assert.Equal(t, cgterrors.Kind(""), cgterrors.KindOf(nil))
}
