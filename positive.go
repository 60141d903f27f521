package signwit

import "fmt"

// Positive is a witness that its wrapped value is strictly greater than
// zero. The zero value of Positive violates that guarantee; always construct
// through NewPositive, UncheckedPositive, One, or a sign-preserving
// operation.
type Positive[T Number] struct {
	v T
}

// NewPositive wraps v if it is strictly greater than zero. Otherwise it
// returns a *NotPositiveError carrying v.
func NewPositive[T Number](v T) (Positive[T], error) {
	var zero T
	if v > zero {
		return Positive[T]{v: v}, nil
	}
	return Positive[T]{}, &NotPositiveError[T]{Value: v}
}

// UncheckedPositive wraps v without comparing it to zero. The caller is
// trusted to have established v > 0 some other way; passing a value that is
// not strictly positive silently breaks the witness invariant.
func UncheckedPositive[T Number](v T) Positive[T] {
	return Positive[T]{v: v}
}

// One returns the multiplicative identity as a Positive witness. One is
// strictly positive for every Number, so the unchecked path is sound.
func One[T Number]() Positive[T] {
	return UncheckedPositive(T(1))
}

// Value returns the wrapped value, discarding the sign guarantee.
func (p Positive[T]) Value() T {
	return p.v
}

// Equals compares the wrapped value against a raw value.
func (p Positive[T]) Equals(v T) bool {
	return p.v == v
}

// String implements fmt.Stringer.
func (p Positive[T]) String() string {
	return fmt.Sprintf("%v", p.v)
}

// Map applies f to the wrapped value and re-validates the result. Use this
// for transformations whose effect on the sign is not provable.
func (p Positive[T]) Map(f func(T) T) (Positive[T], error) {
	return NewPositive(f(p.v))
}

// MapUnchecked applies f without re-validating. As with UncheckedPositive,
// the caller is trusted to know f preserves strict positivity.
func (p Positive[T]) MapUnchecked(f func(T) T) Positive[T] {
	return UncheckedPositive(f(p.v))
}

// Neg returns the negation as a Negative witness. Strict ordering around
// zero is symmetric under negation, so no validation is needed.
func (p Positive[T]) Neg() Negative[T] {
	return UncheckedNegative(-p.v)
}

// Term converts the witness into an operand for the dynamic Compose path.
func (p Positive[T]) Term() Term[T] {
	return Term[T]{kind: KindPositive, value: p.v}
}

// Add returns p + rhs. The sum of two strictly positive values is strictly
// positive.
func (p Positive[T]) Add(rhs Positive[T]) Positive[T] {
	return UncheckedPositive(eval(OpAdd, p.v, rhs.v))
}

// AddAssign sets p to p + rhs in place.
func (p *Positive[T]) AddAssign(rhs Positive[T]) {
	p.v = eval(OpAdd, p.v, rhs.v)
}

// AddNegative returns p + rhs as a raw value: the sum of a positive and a
// negative value can land on either side of zero.
func (p Positive[T]) AddNegative(rhs Negative[T]) T {
	return eval(OpAdd, p.v, rhs.v)
}

// Sub returns p - rhs as a raw value: the difference of two positive values
// can land on either side of zero.
func (p Positive[T]) Sub(rhs Positive[T]) T {
	return eval(OpSub, p.v, rhs.v)
}

// SubNegative returns p - rhs. Subtracting a strictly negative value from a
// strictly positive one stays strictly positive.
func (p Positive[T]) SubNegative(rhs Negative[T]) Positive[T] {
	return UncheckedPositive(eval(OpSub, p.v, rhs.v))
}

// SubNegativeAssign sets p to p - rhs in place.
func (p *Positive[T]) SubNegativeAssign(rhs Negative[T]) {
	p.v = eval(OpSub, p.v, rhs.v)
}

// Mul returns p * rhs. The product of two strictly positive values is
// strictly positive.
func (p Positive[T]) Mul(rhs Positive[T]) Positive[T] {
	return UncheckedPositive(eval(OpMul, p.v, rhs.v))
}

// MulAssign sets p to p * rhs in place.
func (p *Positive[T]) MulAssign(rhs Positive[T]) {
	p.v = eval(OpMul, p.v, rhs.v)
}

// MulNegative returns p * rhs as a Negative witness: positive times negative
// is strictly negative. The result changes side, so no compound form exists.
func (p Positive[T]) MulNegative(rhs Negative[T]) Negative[T] {
	return UncheckedNegative(eval(OpMul, p.v, rhs.v))
}

// Div returns p / rhs. The quotient of two strictly positive values is
// strictly positive. Integer truncation toward zero is the underlying
// type's behavior, like overflow.
func (p Positive[T]) Div(rhs Positive[T]) Positive[T] {
	return UncheckedPositive(eval(OpDiv, p.v, rhs.v))
}

// DivAssign sets p to p / rhs in place.
func (p *Positive[T]) DivAssign(rhs Positive[T]) {
	p.v = eval(OpDiv, p.v, rhs.v)
}

// DivNegative returns p / rhs as a Negative witness: positive divided by
// negative is strictly negative. Cross-side, so no compound form exists.
func (p Positive[T]) DivNegative(rhs Negative[T]) Negative[T] {
	return UncheckedNegative(eval(OpDiv, p.v, rhs.v))
}

// AddUint returns p + u. Adding a zero-or-positive value to a strictly
// positive one stays strictly positive. The unsigned operand is taken as a
// uint64 because Go methods cannot introduce type parameters; any unsigned
// type converts to uint64 without loss.
func (p Positive[T]) AddUint(u uint64) Positive[T] {
	return UncheckedPositive(eval(OpAdd, p.v, T(u)))
}

// AddUintAssign sets p to p + u in place.
func (p *Positive[T]) AddUintAssign(u uint64) {
	p.v = eval(OpAdd, p.v, T(u))
}

// SubUint returns p - u as a raw value: u may exceed p.
func (p Positive[T]) SubUint(u uint64) T {
	return eval(OpSub, p.v, T(u))
}

// MulUint returns p * u as a raw value: u may be zero.
func (p Positive[T]) MulUint(u uint64) T {
	return eval(OpMul, p.v, T(u))
}

// DivUint returns p / u. Dividing a strictly positive value by a
// non-negative one cannot cross zero (division by a zero u is the
// underlying type's division-by-zero, exactly as for raw values).
func (p Positive[T]) DivUint(u uint64) Positive[T] {
	return UncheckedPositive(eval(OpDiv, p.v, T(u)))
}

// DivUintAssign sets p to p / u in place.
func (p *Positive[T]) DivUintAssign(u uint64) {
	p.v = eval(OpDiv, p.v, T(u))
}
