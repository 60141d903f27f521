// Package testutil provides common test assertions for witness tests
package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	signwit "github.com/signwit-dev/signwit-go"
)

// AssertPositive asserts that got is a Positive witness wrapping want
func AssertPositive[T signwit.Number](t *testing.T, want T, got signwit.Positive[T], msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, want, got.Value(), msgAndArgs...)
}

// AssertNegative asserts that got is a Negative witness wrapping want
func AssertNegative[T signwit.Number](t *testing.T, want T, got signwit.Negative[T], msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, want, got.Value(), msgAndArgs...)
}

// RequirePositive constructs a Positive witness or fails the test
func RequirePositive[T signwit.Number](t *testing.T, v T) signwit.Positive[T] {
	t.Helper()
	p, err := signwit.NewPositive(v)
	require.NoError(t, err, "value %v should be accepted as positive", v)
	return p
}

// RequireNegative constructs a Negative witness or fails the test
func RequireNegative[T signwit.Number](t *testing.T, v T) signwit.Negative[T] {
	t.Helper()
	n, err := signwit.NewNegative(v)
	require.NoError(t, err, "value %v should be accepted as negative", v)
	return n
}

// AssertRejected asserts that err is non-nil and matches the sentinel
func AssertRejected(t *testing.T, err, sentinel error, msgAndArgs ...interface{}) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
	assert.ErrorIs(t, err, sentinel, msgAndArgs...)
}
