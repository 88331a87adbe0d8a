// Package test contains generic helper functions useful for testing.
//
// The Expect functions mark the test as having failed but allow the test to
// continue. The Demand functions end the test immediately. Both groups accept
// trailing tags, useful for identifying the failing case when the helper is
// called in a loop.
package test
