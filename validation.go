package signwit

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// validate is a package-level singleton for better performance.
// Creating a new validator on each call is expensive; reusing is recommended.
var validate = validator.New()

func init() {
	RegisterWitnessTypes[int](validate)
	RegisterWitnessTypes[int64](validate)
	RegisterWitnessTypes[float64](validate)
}

// RegisterWitnessTypes teaches a validator instance to see through witness
// wrappers of a given underlying type: a Positive[T] or Negative[T] struct
// field validates by its wrapped value, so tags like `validate:"lt=100"`
// apply directly to the number inside. Each underlying type appearing in
// validated structs needs one registration.
func RegisterWitnessTypes[T Number](v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		switch w := field.Interface().(type) {
		case Positive[T]:
			return w.Value()
		case Negative[T]:
			return w.Value()
		default:
			return nil
		}
	}, Positive[T]{}, Negative[T]{})
}

// ValidateStruct validates targetStruct with the package validator. Witness
// fields over int, int64 and float64 are recognized out of the box; other
// underlying types need RegisterWitnessTypes on a validator of your own.
func ValidateStruct(targetStruct interface{}) error {
	if err := validate.Struct(targetStruct); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// UnmarshalConfig decodes an untrusted config map into targetStruct and
// validates the result. It first marshals the map to JSON, then unmarshals
// the JSON into the target struct, and finally runs the validator on the
// struct. Witness fields re-validate their sign during decoding, so a
// config carrying a wrong-signed number fails here rather than deep inside
// the consumer.
func UnmarshalConfig(config Config, targetStruct interface{}) error {
	jsonBytes, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config map: %w", err)
	}

	if err := json.Unmarshal(jsonBytes, targetStruct); err != nil {
		return fmt.Errorf("failed to unmarshal config into struct: %w", err)
	}

	if err := validate.Struct(targetStruct); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}
