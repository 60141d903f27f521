package signwit

import "encoding/json"

// MarshalJSON encodes the wrapped value as a bare JSON number.
func (p Positive[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.v)
}

// UnmarshalJSON decodes a JSON number and re-validates it. A raw value never
// becomes a witness without passing the checked constructor, so decoding a
// value that is not strictly positive fails with a *NotPositiveError.
func (p *Positive[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	wrapped, err := NewPositive(v)
	if err != nil {
		return err
	}
	*p = wrapped
	return nil
}

// MarshalJSON encodes the wrapped value as a bare JSON number.
func (n Negative[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.v)
}

// UnmarshalJSON decodes a JSON number and re-validates it, failing with a
// *NotNegativeError for values that are not strictly negative.
func (n *Negative[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	wrapped, err := NewNegative(v)
	if err != nil {
		return err
	}
	*n = wrapped
	return nil
}
