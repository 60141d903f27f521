// Package signwit provides witness types for numbers proven to be
// strictly positive or strictly negative.
//
// A witness is constructed once through a checked constructor and from then
// on every arithmetic composition whose result sign is provable from the
// operand signs stays inside the type system. Compositions whose result sign
// is not provable return the raw underlying value instead, forcing callers
// to re-validate before they can claim a sign again.
//
// The full composition table, with the compound (in-place) forms that exist
// for each cell:
//
//	| Operation | LHS      | RHS      | Output   | Compound? |
//	| --------- | -------- | -------- | -------- | --------- |
//	| Add       | Positive | Positive | Positive | Yes       |
//	|           | Positive | Negative | ?        | No        |
//	|           | Positive | Unsigned | Positive | Yes       |
//	|           | Negative | Positive | ?        | No        |
//	|           | Negative | Negative | Negative | Yes       |
//	|           | Negative | Unsigned | ?        | No        |
//	| Sub       | Positive | Positive | ?        | No        |
//	|           | Positive | Negative | Positive | Yes       |
//	|           | Positive | Unsigned | ?        | No        |
//	|           | Negative | Positive | Negative | Yes       |
//	|           | Negative | Negative | ?        | No        |
//	|           | Negative | Unsigned | Negative | Yes       |
//	| Mul       | Positive | Positive | Positive | Yes       |
//	|           | Positive | Negative | Negative | No        |
//	|           | Positive | Unsigned | ?        | No        |
//	|           | Negative | Positive | Negative | Yes       |
//	|           | Negative | Negative | Positive | No        |
//	|           | Negative | Unsigned | ?        | No        |
//	| Div       | Positive | Positive | Positive | Yes       |
//	|           | Positive | Negative | Negative | No        |
//	|           | Positive | Unsigned | Positive | Yes       |
//	|           | Negative | Positive | Negative | Yes       |
//	|           | Negative | Negative | Positive | No        |
//	|           | Negative | Unsigned | Negative | Yes       |
//
// "?" marks cells where the result lands on either side of zero depending on
// the operand magnitudes; those operations return the plain underlying value.
// The same table is available programmatically via Rules and RuleFor, and the
// dynamic Compose path evaluates it at runtime for callers that only learn
// the operand kinds late.
//
// Overflow, wrap-around and division-by-zero behave exactly as they do on
// the underlying type; the package neither detects nor prevents them.
package signwit
