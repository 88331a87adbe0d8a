package test

import (
	"fmt"
	"strings"
	"testing"
)

// report a failed test, decorating the message with any tags the test
// supplied. the fatal flag escalates the failure and ends the test
func report(t *testing.T, msg string, tags []any, fatal bool) {
	t.Helper()

	if len(tags) > 0 {
		s := make([]string, 0, len(tags))
		for _, tag := range tags {
			s = append(s, fmt.Sprintf("%v", tag))
		}
		msg = fmt.Sprintf("%s [%s]", msg, strings.Join(s, " "))
	}

	if fatal {
		t.Fatal(msg)
	} else {
		t.Error(msg)
	}
}

// ExpectEquality compares a value against an expected value.
func ExpectEquality[T comparable](t *testing.T, value T, expected T, tags ...any) bool {
	t.Helper()
	if value != expected {
		report(t, fmt.Sprintf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expected), tags, false)
		return false
	}
	return true
}

// ExpectInequality compares a value against an expected value and fails if
// the two are equal.
func ExpectInequality[T comparable](t *testing.T, value T, expected T, tags ...any) bool {
	t.Helper()
	if value == expected {
		report(t, fmt.Sprintf("inequality test of type %T failed: '%v' does equal '%v'", value, value, expected), tags, false)
		return false
	}
	return true
}

// Approximable is the type constraint for the ExpectApproximate function.
type Approximable interface {
	~float32 | ~float64 | ~int
}

// ExpectApproximate compares a value against an expected value allowing a
// tolerance of +/- the fraction given. A tolerance of 0.1 allows the value to
// be within 10% either side of the expected value.
func ExpectApproximate[T Approximable](t *testing.T, value T, expected T, tolerance float64, tags ...any) bool {
	t.Helper()

	top := float64(expected) * (1 + tolerance)
	bot := float64(expected) * (1 - tolerance)
	if bot > top {
		top, bot = bot, top
	}

	if float64(value) < bot || float64(value) > top {
		report(t, fmt.Sprintf("approximation test of type %T failed: '%v' is outside the range '%v' to '%v'", value, value, bot, top), tags, false)
		return false
	}
	return true
}

// ExpectSuccess tests argument v for a success condition. The following types
// are understood: bool, error and nil.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			report(t, "success test of bool failed", tags, false)
			return false
		}
	case error:
		report(t, fmt.Sprintf("success test of error failed: %v", v), tags, false)
		return false
	case nil:
	default:
		report(t, fmt.Sprintf("success test cannot work with type %T", v), tags, false)
		return false
	}

	return true
}

// ExpectFailure tests argument v for a failure condition. The following types
// are understood: bool, error and nil.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if v {
			report(t, "failure test of bool failed", tags, false)
			return false
		}
	case error:
	case nil:
		report(t, "failure test of nil failed", tags, false)
		return false
	default:
		report(t, fmt.Sprintf("failure test cannot work with type %T", v), tags, false)
		return false
	}

	return true
}

// ExpectImplements tests whether an instance implements the interface given
// as the type parameter.
func ExpectImplements[I any](t *testing.T, instance any, tags ...any) bool {
	t.Helper()
	if _, ok := instance.(I); !ok {
		report(t, fmt.Sprintf("implements test failed: %T does not implement the required interface", instance), tags, false)
		return false
	}
	return true
}
