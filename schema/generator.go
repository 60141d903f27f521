// Package schema provides JSON schema generation for structs carrying
// witness-typed fields.
package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"

	signwit "github.com/signwit-dev/signwit-go"
)

var witnessPkgPath = reflect.TypeOf(signwit.Positive[float64]{}).PkgPath()

// Positive returns the JSON schema for a strictly positive number.
func Positive() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:             "number",
		ExclusiveMinimum: json.Number("0"),
	}
}

// Negative returns the JSON schema for a strictly negative number.
func Negative() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:             "number",
		ExclusiveMaximum: json.Number("0"),
	}
}

// Reflector returns a jsonschema.Reflector whose mapper recognizes every
// instantiation of the witness types and emits the matching bounded number
// schema, so struct fields like Positive[int] document their sign
// constraint instead of reflecting as an opaque object.
func Reflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		ExpandedStruct: true, // Expand struct definitions inline
		Mapper:         mapWitness,
	}
}

// mapWitness maps instantiated witness types to their schemas. Generic
// instantiations reflect with names like "Positive[int]", so the match is
// on package path plus name prefix.
func mapWitness(t reflect.Type) *jsonschema.Schema {
	if t.PkgPath() != witnessPkgPath {
		return nil
	}
	switch {
	case strings.HasPrefix(t.Name(), "Positive["):
		return Positive()
	case strings.HasPrefix(t.Name(), "Negative["):
		return Negative()
	default:
		return nil
	}
}

// Generate creates a JSON schema from a Go struct.
// It uses the `invopop/jsonschema` library to reflect on the struct
// and generate a standard JSON Schema (Draft 2020-12), with witness
// fields rendered as sign-bounded numbers.
func Generate(v interface{}) ([]byte, error) {
	schema := Reflector().Reflect(v)

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return jsonBytes, nil
}
