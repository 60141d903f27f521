package signwit

import (
	"fmt"
	"strings"
)

// Op identifies a binary arithmetic operator.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	numOps = iota
)

// String returns the operator symbol.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// Kind classifies an operand or a composition result by what its type proves
// about its sign.
type Kind uint8

const (
	// KindUnconstrained marks a plain value with no sign proof.
	KindUnconstrained Kind = iota
	// KindPositive marks a value proven strictly greater than zero.
	KindPositive
	// KindNegative marks a value proven strictly less than zero.
	KindNegative
	// KindNonNegative marks a plain unsigned value: zero-or-positive by its
	// type, but not a witness. It only ever appears on the right-hand side.
	KindNonNegative
)

// String returns the kind name as it appears in the composition table.
func (k Kind) String() string {
	switch k {
	case KindUnconstrained:
		return "?"
	case KindPositive:
		return "Positive"
	case KindNegative:
		return "Negative"
	case KindNonNegative:
		return "Unsigned"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Rule is one cell of the composition table: the result kind an operator
// application is proven to produce, and whether a compound (in-place) form
// exists for it. Compound forms exist only where the result kind equals the
// left operand's kind, since in-place assignment cannot change the static
// kind of the left operand's storage.
type Rule struct {
	Result   Kind
	Compound bool
}

// SameSide reports whether the rule preserves the left operand's kind.
func (r Rule) SameSide(lhs Kind) bool {
	return r.Result == lhs
}

// The composition table, indexed [op][lhs][rhs]. It is derived from sign
// algebra, not policy: a cell is KindUnconstrained exactly when operand
// magnitudes can push the result to either side of zero.
var ruleTable = [numOps]map[Kind]map[Kind]Rule{
	OpAdd: {
		KindPositive: {
			KindPositive:    {Result: KindPositive, Compound: true},
			KindNegative:    {Result: KindUnconstrained},
			KindNonNegative: {Result: KindPositive, Compound: true},
		},
		KindNegative: {
			KindPositive:    {Result: KindUnconstrained},
			KindNegative:    {Result: KindNegative, Compound: true},
			KindNonNegative: {Result: KindUnconstrained},
		},
	},
	OpSub: {
		KindPositive: {
			KindPositive:    {Result: KindUnconstrained},
			KindNegative:    {Result: KindPositive, Compound: true},
			KindNonNegative: {Result: KindUnconstrained},
		},
		KindNegative: {
			KindPositive:    {Result: KindNegative, Compound: true},
			KindNegative:    {Result: KindUnconstrained},
			KindNonNegative: {Result: KindNegative, Compound: true},
		},
	},
	OpMul: {
		KindPositive: {
			KindPositive:    {Result: KindPositive, Compound: true},
			KindNegative:    {Result: KindNegative},
			KindNonNegative: {Result: KindUnconstrained},
		},
		KindNegative: {
			KindPositive:    {Result: KindNegative, Compound: true},
			KindNegative:    {Result: KindPositive},
			KindNonNegative: {Result: KindUnconstrained},
		},
	},
	OpDiv: {
		KindPositive: {
			KindPositive:    {Result: KindPositive, Compound: true},
			KindNegative:    {Result: KindNegative},
			KindNonNegative: {Result: KindPositive, Compound: true},
		},
		KindNegative: {
			KindPositive:    {Result: KindNegative, Compound: true},
			KindNegative:    {Result: KindPositive},
			KindNonNegative: {Result: KindNegative, Compound: true},
		},
	},
}

// RuleFor looks up the composition rule for an operator and operand kind
// pair. The second return is false when the pairing is outside the table
// (the left operand must be a witness kind, the right a witness or
// non-negative kind); such pairings compose as unconstrained.
func RuleFor(op Op, lhs, rhs Kind) (Rule, bool) {
	if int(op) >= numOps {
		return Rule{}, false
	}
	byRHS, ok := ruleTable[op][lhs]
	if !ok {
		return Rule{}, false
	}
	rule, ok := byRHS[rhs]
	return rule, ok
}

// RuleEntry is one table cell together with its coordinates, as yielded by
// Rules.
type RuleEntry struct {
	Op   Op
	LHS  Kind
	RHS  Kind
	Rule Rule
}

// Rules returns every cell of the composition table in declaration order:
// operators in Add, Sub, Mul, Div order, left kinds Positive before
// Negative, right kinds Positive, Negative, Unsigned.
func Rules() []RuleEntry {
	lhsOrder := []Kind{KindPositive, KindNegative}
	rhsOrder := []Kind{KindPositive, KindNegative, KindNonNegative}

	var entries []RuleEntry
	for op := Op(0); op < numOps; op++ {
		for _, lhs := range lhsOrder {
			for _, rhs := range rhsOrder {
				rule, ok := RuleFor(op, lhs, rhs)
				if !ok {
					continue
				}
				entries = append(entries, RuleEntry{Op: op, LHS: lhs, RHS: rhs, Rule: rule})
			}
		}
	}
	return entries
}

// opWords maps operators to the row labels used in the rendered table.
var opWords = map[Op]string{
	OpAdd: "Add",
	OpSub: "Sub",
	OpMul: "Mul",
	OpDiv: "Div",
}

// TableMarkdown renders the composition table in the same markdown layout
// the package documentation uses. The output is deterministic and covered
// by a golden test.
func TableMarkdown() string {
	var b strings.Builder
	b.WriteString("| Operation | LHS      | RHS      | Output   | Compound? |\n")
	b.WriteString("| --------- | -------- | -------- | -------- | --------- |\n")

	prev := Op(numOps)
	for _, e := range Rules() {
		opCell := ""
		if e.Op != prev {
			opCell = opWords[e.Op]
			prev = e.Op
		}
		compound := "No"
		if e.Rule.Compound {
			compound = "Yes"
		}
		fmt.Fprintf(&b, "| %-9s | %-8s | %-8s | %-8s | %-9s |\n",
			opCell, e.LHS, e.RHS, e.Rule.Result, compound)
	}
	return b.String()
}

// eval applies op to l and r on the underlying type. Every typed and dynamic
// operation in the package funnels through here, so each operator is
// implemented exactly once.
func eval[T Number](op Op, l, r T) T {
	switch op {
	case OpAdd:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	case OpDiv:
		return l / r
	default:
		panic(fmt.Sprintf("signwit: unknown operator %d", uint8(op)))
	}
}
