package signwit

// Term is one operand of a dynamic composition: a value paired with the
// kind its origin proves. Terms are built from witnesses via their Term
// methods, or from plain unsigned values via UnsignedTerm, so a Term's kind
// is always backed by a real proof.
type Term[T Number] struct {
	kind  Kind
	value T
}

// UnsignedTerm builds a non-negative Term from a plain unsigned value. The
// zero-or-positive guarantee comes from the unsigned type itself, so no
// check is needed.
func UnsignedTerm[T Number, U Unsigned](u U) Term[T] {
	return Term[T]{kind: KindNonNegative, value: T(u)}
}

// Kind returns what the term's type proves about its sign.
func (t Term[T]) Kind() Kind {
	return t.kind
}

// Value returns the term's underlying value.
func (t Term[T]) Value() T {
	return t.value
}

// Result is the outcome of a dynamic composition: the computed value
// together with the kind the rule table proved for it. A Result with
// KindUnconstrained carries no proof and only its raw value is accessible.
type Result[T Number] struct {
	kind  Kind
	value T
}

// Kind returns the proven kind of the result.
func (r Result[T]) Kind() Kind {
	return r.kind
}

// Value returns the computed value, with or without a sign proof.
func (r Result[T]) Value() T {
	return r.value
}

// Positive returns the result as a Positive witness if the rule table proved
// it strictly positive.
func (r Result[T]) Positive() (Positive[T], bool) {
	if r.kind != KindPositive {
		return Positive[T]{}, false
	}
	return UncheckedPositive(r.value), true
}

// Negative returns the result as a Negative witness if the rule table proved
// it strictly negative.
func (r Result[T]) Negative() (Negative[T], bool) {
	if r.kind != KindNegative {
		return Negative[T]{}, false
	}
	return UncheckedNegative(r.value), true
}

// Term converts the result into an operand for a further composition. An
// unconstrained result yields an unconstrained term, which composes as
// unconstrained with everything.
func (r Result[T]) Term() Term[T] {
	return Term[T]{kind: r.kind, value: r.value}
}

// Compose applies op to lhs and rhs and tags the result with whatever kind
// the rule table can prove for the operand pairing. Compose is total: it
// never fails, and any pairing outside the table simply degrades to an
// unconstrained result.
func Compose[T Number](op Op, lhs, rhs Term[T]) Result[T] {
	out := eval(op, lhs.value, rhs.value)
	rule, ok := RuleFor(op, lhs.kind, rhs.kind)
	if !ok {
		return Result[T]{kind: KindUnconstrained, value: out}
	}
	return Result[T]{kind: rule.Result, value: out}
}
