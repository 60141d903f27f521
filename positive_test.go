package signwit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	signwit "github.com/signwit-dev/signwit-go"
)

func TestNewPositive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  int
		wantOK bool
	}{
		{name: "one is accepted", value: 1, wantOK: true},
		{name: "large value is accepted", value: 1 << 30, wantOK: true},
		{name: "zero is rejected", value: 0, wantOK: false},
		{name: "negative is rejected", value: -1, wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := signwit.NewPositive(tt.value)
			if !tt.wantOK {
				require.Error(t, err)
				assert.ErrorIs(t, err, signwit.ErrNotPositive)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, p.Value())
		})
	}
}

func TestNewPositive_Float(t *testing.T) {
	t.Parallel()

	t.Run("small positive float is accepted", func(t *testing.T) {
		t.Parallel()
		p, err := signwit.NewPositive(0.0001)
		require.NoError(t, err)
		assert.Equal(t, 0.0001, p.Value())
	})

	t.Run("negative zero is rejected", func(t *testing.T) {
		t.Parallel()
		zero := 0.0
		_, err := signwit.NewPositive(-zero)
		require.Error(t, err)
	})
}

func TestPositive_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []int64{1, 2, 7, 1 << 40} {
		p, err := signwit.NewPositive(v)
		require.NoError(t, err)
		assert.Equal(t, v, p.Value())
	}
}

func TestUncheckedPositive(t *testing.T) {
	t.Parallel()

	// The trusted path performs no comparison; it is on the caller.
	p := signwit.UncheckedPositive(42)
	assert.Equal(t, 42, p.Value())
}

func TestOne(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, signwit.One[int]().Value())
	assert.Equal(t, int8(1), signwit.One[int8]().Value())
	assert.Equal(t, 1.0, signwit.One[float64]().Value())
}

func TestPositive_Equals(t *testing.T) {
	t.Parallel()

	p := signwit.One[int]()
	assert.True(t, p.Equals(1))
	assert.False(t, p.Equals(2))

	// Witness-to-witness comparison works with plain ==.
	assert.True(t, p == signwit.One[int]())
}

func TestPositive_String(t *testing.T) {
	t.Parallel()

	p, err := signwit.NewPositive(12)
	require.NoError(t, err)
	assert.Equal(t, "12", p.String())
}

func TestPositive_Map(t *testing.T) {
	t.Parallel()

	p, err := signwit.NewPositive(10)
	require.NoError(t, err)

	t.Run("transform keeping the sign succeeds", func(t *testing.T) {
		doubled, err := p.Map(func(v int) int { return v * 2 })
		require.NoError(t, err)
		assert.Equal(t, 20, doubled.Value())
	})

	t.Run("transform crossing zero is rejected", func(t *testing.T) {
		_, err := p.Map(func(v int) int { return v - 100 })
		require.Error(t, err)
		assert.ErrorIs(t, err, signwit.ErrNotPositive)
	})

	t.Run("unchecked transform is not re-validated", func(t *testing.T) {
		tripled := p.MapUnchecked(func(v int) int { return v * 3 })
		assert.Equal(t, 30, tripled.Value())
	})
}

func TestPositive_Neg(t *testing.T) {
	t.Parallel()

	p, err := signwit.NewPositive(5)
	require.NoError(t, err)

	n := p.Neg()
	assert.Equal(t, -5, n.Value())

	// Negation is an involution up to the sign flip.
	assert.Equal(t, p, n.Neg())
}
