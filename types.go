package signwit

// Signed is the set of built-in signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of built-in unsigned integer types. An unsigned value
// is the "plain non-negative" operand of the composition table: it carries a
// zero-or-positive guarantee in its type without being a witness.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of built-in floating-point types.
type Float interface {
	~float32 | ~float64
}

// Number is the set of types a witness can wrap: ordered numeric types with
// values on both sides of zero. Unsigned types are excluded because a
// strictly negative value is inexpressible in them.
type Number interface {
	Signed | Float
}

// Config represents an untrusted configuration map, typically decoded from
// JSON or YAML, whose numeric fields may be destined for witness-typed
// struct fields. See UnmarshalConfig.
type Config map[string]interface{}
