package signwit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	signwit "github.com/signwit-dev/signwit-go"
)

func TestNotPositiveError(t *testing.T) {
	t.Parallel()

	_, err := signwit.NewPositive(0)
	require.Error(t, err)

	t.Run("message format", func(t *testing.T) {
		assert.Equal(t, "The value 0 was not positive", err.Error())
	})

	t.Run("carries the rejected value", func(t *testing.T) {
		var npe *signwit.NotPositiveError[int]
		require.ErrorAs(t, err, &npe)
		assert.Equal(t, 0, npe.Value)
	})

	t.Run("matches the sentinel through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading threshold: %w", err)
		assert.ErrorIs(t, wrapped, signwit.ErrNotPositive)
		assert.False(t, errors.Is(wrapped, signwit.ErrNotNegative))
	})
}

func TestNotNegativeError(t *testing.T) {
	t.Parallel()

	_, err := signwit.NewNegative(3.5)
	require.Error(t, err)

	t.Run("message format", func(t *testing.T) {
		assert.Equal(t, "The value 3.5 was not negative", err.Error())
	})

	t.Run("carries the rejected value", func(t *testing.T) {
		var nne *signwit.NotNegativeError[float64]
		require.ErrorAs(t, err, &nne)
		assert.Equal(t, 3.5, nne.Value)
	})

	t.Run("matches the sentinel through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading floor: %w", err)
		assert.ErrorIs(t, wrapped, signwit.ErrNotNegative)
		assert.False(t, errors.Is(wrapped, signwit.ErrNotPositive))
	})
}
