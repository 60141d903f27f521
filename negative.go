package signwit

import "fmt"

// Negative is a witness that its wrapped value is strictly less than zero.
// The zero value of Negative violates that guarantee; always construct
// through NewNegative, UncheckedNegative, MinusOne, or a sign-preserving
// operation.
type Negative[T Number] struct {
	v T
}

// NewNegative wraps v if it is strictly less than zero. Otherwise it returns
// a *NotNegativeError carrying v.
func NewNegative[T Number](v T) (Negative[T], error) {
	var zero T
	if v < zero {
		return Negative[T]{v: v}, nil
	}
	return Negative[T]{}, &NotNegativeError[T]{Value: v}
}

// UncheckedNegative wraps v without comparing it to zero. The caller is
// trusted to have established v < 0 some other way; passing a value that is
// not strictly negative silently breaks the witness invariant.
func UncheckedNegative[T Number](v T) Negative[T] {
	return Negative[T]{v: v}
}

// MinusOne returns the negation of the multiplicative identity as a Negative
// witness, the negative counterpart of One.
func MinusOne[T Number]() Negative[T] {
	return UncheckedNegative(-T(1))
}

// Value returns the wrapped value, discarding the sign guarantee.
func (n Negative[T]) Value() T {
	return n.v
}

// Equals compares the wrapped value against a raw value.
func (n Negative[T]) Equals(v T) bool {
	return n.v == v
}

// String implements fmt.Stringer.
func (n Negative[T]) String() string {
	return fmt.Sprintf("%v", n.v)
}

// Map applies f to the wrapped value and re-validates the result. Use this
// for transformations whose effect on the sign is not provable.
func (n Negative[T]) Map(f func(T) T) (Negative[T], error) {
	return NewNegative(f(n.v))
}

// MapUnchecked applies f without re-validating. As with UncheckedNegative,
// the caller is trusted to know f preserves strict negativity.
func (n Negative[T]) MapUnchecked(f func(T) T) Negative[T] {
	return UncheckedNegative(f(n.v))
}

// Neg returns the negation as a Positive witness. Strict ordering around
// zero is symmetric under negation, so no validation is needed.
func (n Negative[T]) Neg() Positive[T] {
	return UncheckedPositive(-n.v)
}

// Term converts the witness into an operand for the dynamic Compose path.
func (n Negative[T]) Term() Term[T] {
	return Term[T]{kind: KindNegative, value: n.v}
}

// Add returns n + rhs. The sum of two strictly negative values is strictly
// negative.
func (n Negative[T]) Add(rhs Negative[T]) Negative[T] {
	return UncheckedNegative(eval(OpAdd, n.v, rhs.v))
}

// AddAssign sets n to n + rhs in place.
func (n *Negative[T]) AddAssign(rhs Negative[T]) {
	n.v = eval(OpAdd, n.v, rhs.v)
}

// AddPositive returns n + rhs as a raw value: the sum of a negative and a
// positive value can land on either side of zero.
func (n Negative[T]) AddPositive(rhs Positive[T]) T {
	return eval(OpAdd, n.v, rhs.v)
}

// Sub returns n - rhs as a raw value: the difference of two negative values
// can land on either side of zero.
func (n Negative[T]) Sub(rhs Negative[T]) T {
	return eval(OpSub, n.v, rhs.v)
}

// SubPositive returns n - rhs. Subtracting a strictly positive value from a
// strictly negative one stays strictly negative.
func (n Negative[T]) SubPositive(rhs Positive[T]) Negative[T] {
	return UncheckedNegative(eval(OpSub, n.v, rhs.v))
}

// SubPositiveAssign sets n to n - rhs in place.
func (n *Negative[T]) SubPositiveAssign(rhs Positive[T]) {
	n.v = eval(OpSub, n.v, rhs.v)
}

// Mul returns n * rhs as a Positive witness: the product of two strictly
// negative values is strictly positive. The result changes side, so no
// compound form exists.
func (n Negative[T]) Mul(rhs Negative[T]) Positive[T] {
	return UncheckedPositive(eval(OpMul, n.v, rhs.v))
}

// MulPositive returns n * rhs. Negative times positive stays strictly
// negative.
func (n Negative[T]) MulPositive(rhs Positive[T]) Negative[T] {
	return UncheckedNegative(eval(OpMul, n.v, rhs.v))
}

// MulPositiveAssign sets n to n * rhs in place.
func (n *Negative[T]) MulPositiveAssign(rhs Positive[T]) {
	n.v = eval(OpMul, n.v, rhs.v)
}

// Div returns n / rhs as a Positive witness: negative divided by negative is
// strictly positive. Cross-side, so no compound form exists.
func (n Negative[T]) Div(rhs Negative[T]) Positive[T] {
	return UncheckedPositive(eval(OpDiv, n.v, rhs.v))
}

// DivPositive returns n / rhs. Negative divided by positive stays strictly
// negative.
func (n Negative[T]) DivPositive(rhs Positive[T]) Negative[T] {
	return UncheckedNegative(eval(OpDiv, n.v, rhs.v))
}

// DivPositiveAssign sets n to n / rhs in place.
func (n *Negative[T]) DivPositiveAssign(rhs Positive[T]) {
	n.v = eval(OpDiv, n.v, rhs.v)
}

// AddUint returns n + u as a raw value: u may exceed the magnitude of n.
func (n Negative[T]) AddUint(u uint64) T {
	return eval(OpAdd, n.v, T(u))
}

// SubUint returns n - u. Subtracting a zero-or-positive value from a
// strictly negative one stays strictly negative.
func (n Negative[T]) SubUint(u uint64) Negative[T] {
	return UncheckedNegative(eval(OpSub, n.v, T(u)))
}

// SubUintAssign sets n to n - u in place.
func (n *Negative[T]) SubUintAssign(u uint64) {
	n.v = eval(OpSub, n.v, T(u))
}

// MulUint returns n * u as a raw value: u may be zero.
func (n Negative[T]) MulUint(u uint64) T {
	return eval(OpMul, n.v, T(u))
}

// DivUint returns n / u. Dividing a strictly negative value by a
// non-negative one cannot cross zero.
func (n Negative[T]) DivUint(u uint64) Negative[T] {
	return UncheckedNegative(eval(OpDiv, n.v, T(u)))
}

// DivUintAssign sets n to n / u in place.
func (n *Negative[T]) DivUintAssign(u uint64) {
	n.v = eval(OpDiv, n.v, T(u))
}
