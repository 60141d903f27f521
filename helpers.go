package signwit

import (
	"fmt"
)

// GetNumber safely extracts a numeric value from Config.
// Returns the value and true if found and numeric, otherwise 0 and false.
// Handles int, int64 and float64 (JSON numbers are often decoded as float64).
func GetNumber(config Config, key string) (float64, bool) {
	v, ok := config[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// GetPositive extracts a numeric value from Config and wraps it as a
// Positive witness. It fails if the key is missing, not numeric, or not
// strictly positive; in the last case the error matches ErrNotPositive.
func GetPositive(config Config, key string) (Positive[float64], error) {
	n, ok := GetNumber(config, key)
	if !ok {
		return Positive[float64]{}, fmt.Errorf("required numeric field '%s' is missing or not a number", key)
	}
	p, err := NewPositive(n)
	if err != nil {
		return Positive[float64]{}, fmt.Errorf("field '%s': %w", key, err)
	}
	return p, nil
}

// GetNegative extracts a numeric value from Config and wraps it as a
// Negative witness. It fails if the key is missing, not numeric, or not
// strictly negative; in the last case the error matches ErrNotNegative.
func GetNegative(config Config, key string) (Negative[float64], error) {
	n, ok := GetNumber(config, key)
	if !ok {
		return Negative[float64]{}, fmt.Errorf("required numeric field '%s' is missing or not a number", key)
	}
	neg, err := NewNegative(n)
	if err != nil {
		return Negative[float64]{}, fmt.Errorf("field '%s': %w", key, err)
	}
	return neg, nil
}

// GetPositiveDefault extracts a Positive witness from Config with a default.
// The default is used when the key is missing or not numeric; a present
// value that fails the sign check is still an error.
func GetPositiveDefault(config Config, key string, defaultValue Positive[float64]) (Positive[float64], error) {
	n, ok := GetNumber(config, key)
	if !ok {
		return defaultValue, nil
	}
	p, err := NewPositive(n)
	if err != nil {
		return Positive[float64]{}, fmt.Errorf("field '%s': %w", key, err)
	}
	return p, nil
}

// GetNegativeDefault extracts a Negative witness from Config with a default.
// The default is used when the key is missing or not numeric; a present
// value that fails the sign check is still an error.
func GetNegativeDefault(config Config, key string, defaultValue Negative[float64]) (Negative[float64], error) {
	n, ok := GetNumber(config, key)
	if !ok {
		return defaultValue, nil
	}
	neg, err := NewNegative(n)
	if err != nil {
		return Negative[float64]{}, fmt.Errorf("field '%s': %w", key, err)
	}
	return neg, nil
}
