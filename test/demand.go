package test

import (
	"fmt"
	"testing"
)

// DemandEquality is the same as ExpectEquality except that it ends the test
// immediately on failure.
func DemandEquality[T comparable](t *testing.T, value T, expected T, tags ...any) {
	t.Helper()
	if value != expected {
		report(t, fmt.Sprintf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expected), tags, true)
	}
}

// DemandSuccess is the same as ExpectSuccess except that it ends the test
// immediately on failure.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			report(t, "success test of bool failed", tags, true)
		}
	case error:
		report(t, fmt.Sprintf("success test of error failed: %v", v), tags, true)
	case nil:
	default:
		report(t, fmt.Sprintf("success test cannot work with type %T", v), tags, true)
	}
}

// DemandFailure is the same as ExpectFailure except that it ends the test
// immediately on failure.
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if v {
			report(t, "failure test of bool failed", tags, true)
		}
	case error:
	case nil:
		report(t, "failure test of nil failed", tags, true)
	default:
		report(t, fmt.Sprintf("failure test cannot work with type %T", v), tags, true)
	}
}
