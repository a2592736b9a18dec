// Package invariant asserts conditions the engine relies on but cannot
// express in types: normalization invariants on numeric values, index
// bounds on boards, and the well-founded measures that make the
// canonicalizer terminate.
//
// Violations panic - they are programming errors, not user errors. User
// errors are reported through core/cgterrors instead.
package invariant

import (
	"fmt"
	"reflect"
	"runtime"
)

// Require asserts a caller contract at function entry, e.g. that a
// denominator exponent is representable or that a comparison interval is
// nonempty.
func Require(cond bool, format string, args ...interface{}) {
	if !cond {
		violate("requirement", format, args...)
	}
}

// Assert asserts an internal consistency condition, e.g. that an interned
// handle matches the value a table already recorded.
func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		violate("assertion", format, args...)
	}
}

// Index asserts 0 <= i < length, the bounds check for vertices and cells.
func Index(i, length int, what string) {
	if i < 0 || i >= length {
		violate("requirement", "%s %d outside [0, %d)", what, i, length)
	}
}

// NoError asserts that an operation which cannot legitimately fail did
// not fail.
func NoError(err error, what string) {
	if err != nil {
		violate("assertion", "%s failed: %v", what, err)
	}
}

// NotNil asserts that a handle is usable. A typed nil pointer counts as
// nil: a *Store inside an interface still panics here rather than later
// inside a lock.
func NotNil(v interface{}, what string) {
	if v == nil {
		violate("requirement", "%s is nil", what)
	}
	switch r := reflect.ValueOf(v); r.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		if r.IsNil() {
			violate("requirement", "%s is nil", what)
		}
	}
}

// Shrinks asserts that a replacement step strictly decreased a
// well-founded measure. The canonicalizer's reversible-option bypass
// calls this with game birthdays: every option spliced in must be born
// strictly earlier than the option it replaces, which is exactly why the
// simplification fixpoint terminates.
func Shrinks(measure string, before, after int) {
	if after >= before {
		violate("assertion", "%s did not shrink: %d -> %d", measure, before, after)
	}
}

// violate panics with the failed condition and its call site.
func violate(class, format string, args ...interface{}) {
	site := "unknown"
	if _, file, line, ok := runtime.Caller(2); ok {
		site = fmt.Sprintf("%s:%d", file, line)
	}
	panic(fmt.Sprintf("cgt: broken %s at %s: %s", class, site, fmt.Sprintf(format, args...)))
}
