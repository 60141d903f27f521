package signwit

import (
	"errors"
	"fmt"
)

// Sentinel targets for errors.Is. The concrete constructor errors are
// generic, which makes errors.As clumsy for callers that do not know the
// underlying type; matching against these sentinels works regardless of the
// instantiation.
var (
	ErrNotPositive = errors.New("not positive")
	ErrNotNegative = errors.New("not negative")
)

// NotPositiveError reports a value rejected by NewPositive. It carries the
// rejected value so the caller loses no information.
type NotPositiveError[T Number] struct {
	Value T
}

func (e *NotPositiveError[T]) Error() string {
	return fmt.Sprintf("The value %v was not positive", e.Value)
}

// Is reports a match against ErrNotPositive.
func (e *NotPositiveError[T]) Is(target error) bool {
	return target == ErrNotPositive
}

// NotNegativeError reports a value rejected by NewNegative. It carries the
// rejected value so the caller loses no information.
type NotNegativeError[T Number] struct {
	Value T
}

func (e *NotNegativeError[T]) Error() string {
	return fmt.Sprintf("The value %v was not negative", e.Value)
}

// Is reports a match against ErrNotNegative.
func (e *NotNegativeError[T]) Is(target error) bool {
	return target == ErrNotNegative
}
