package invariant_test

import (
	"testing"

	"github.com/cgt-lang/cgt/core/invariant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expectPanic runs fn and returns the panic message, failing if fn does not panic.
func expectPanic(t *testing.T, fn func()) string {
	t.Helper()
	var msg string
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected panic")
			msg = r.(string)
		}()
		fn()
	}()
	return msg
}

func TestRequire(t *testing.T) {
	assert.NotPanics(t, func() {
		invariant.Require(true, "should not fire")
	})

	msg := expectPanic(t, func() {
		invariant.Require(false, "exponent %d too large", 99)
	})
	assert.Contains(t, msg, "broken requirement")
	assert.Contains(t, msg, "exponent 99 too large")
	assert.Contains(t, msg, "invariant_test.go:", "message should carry the call site")
}

func TestAssert(t *testing.T) {
	assert.NotPanics(t, func() {
		invariant.Assert(true, "fine")
	})

	msg := expectPanic(t, func() {
		invariant.Assert(false, "stored form mismatch")
	})
	assert.Contains(t, msg, "broken assertion")
	assert.Contains(t, msg, "stored form mismatch")
}

func TestIndex(t *testing.T) {
	assert.NotPanics(t, func() {
		invariant.Index(0, 5, "vertex")
		invariant.Index(4, 5, "vertex")
	})

	msg := expectPanic(t, func() {
		invariant.Index(5, 5, "vertex")
	})
	assert.Contains(t, msg, "vertex 5 outside [0, 5)")

	msg = expectPanic(t, func() {
		invariant.Index(-1, 5, "cell")
	})
	assert.Contains(t, msg, "cell -1 outside [0, 5)")
}

func TestNoError(t *testing.T) {
	assert.NotPanics(t, func() {
		invariant.NoError(nil, "fingerprint")
	})

	msg := expectPanic(t, func() {
		invariant.NoError(assert.AnError, "fingerprint")
	})
	assert.Contains(t, msg, "fingerprint failed")
}

func TestNotNil(t *testing.T) {
	assert.NotPanics(t, func() {
		invariant.NotNil(42, "value")
		invariant.NotNil("", "value")
	})

	msg := expectPanic(t, func() {
		invariant.NotNil(nil, "store")
	})
	assert.Contains(t, msg, "store is nil")

	// A typed nil hidden in an interface must be caught too.
	var p *int
	msg = expectPanic(t, func() {
		invariant.NotNil(p, "table")
	})
	assert.Contains(t, msg, "table is nil")
}

func TestShrinks(t *testing.T) {
	assert.NotPanics(t, func() {
		invariant.Shrinks("bypass birthday", 5, 3)
	})

	msg := expectPanic(t, func() {
		invariant.Shrinks("bypass birthday", 3, 3)
	})
	assert.Contains(t, msg, "bypass birthday did not shrink: 3 -> 3")

	msg = expectPanic(t, func() {
		invariant.Shrinks("bypass birthday", 2, 7)
	})
	assert.Contains(t, msg, "2 -> 7")
}
