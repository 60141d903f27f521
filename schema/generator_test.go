package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	signwit "github.com/signwit-dev/signwit-go"
	"github.com/signwit-dev/signwit-go/schema"
)

func TestPositiveSchema(t *testing.T) {
	t.Parallel()

	s := schema.Positive()
	assert.Equal(t, "number", s.Type)
	assert.Equal(t, json.Number("0"), s.ExclusiveMinimum)
}

func TestNegativeSchema(t *testing.T) {
	t.Parallel()

	s := schema.Negative()
	assert.Equal(t, "number", s.Type)
	assert.Equal(t, json.Number("0"), s.ExclusiveMaximum)
}

func TestGenerate_WitnessFields(t *testing.T) {
	t.Parallel()

	type limits struct {
		MaxRate signwit.Positive[float64] `json:"max_rate"`
		Floor   signwit.Negative[int]     `json:"floor"`
		Name    string                    `json:"name"`
	}

	data, err := schema.Generate(&limits{})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok, "schema should have properties: %s", data)

	t.Run("positive field is a bounded number", func(t *testing.T) {
		maxRate, ok := props["max_rate"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "number", maxRate["type"])
		assert.EqualValues(t, 0, maxRate["exclusiveMinimum"])
	})

	t.Run("negative field is a bounded number", func(t *testing.T) {
		floor, ok := props["floor"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "number", floor["type"])
		assert.EqualValues(t, 0, floor["exclusiveMaximum"])
	})

	t.Run("plain fields reflect as usual", func(t *testing.T) {
		name, ok := props["name"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "string", name["type"])
	})
}
