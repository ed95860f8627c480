package termcalc

// opKind identifies the operator a term applies to the running result.
type opKind int8

const (
	opAdd opKind = iota
	opSub
	opMul
	opDiv
)

func (k opKind) String() string {
	switch k {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	default:
		return "?"
	}
}

// term is one operator-operand pair in an expression's sequence.
type term struct {
	kind    opKind
	operand float64
}

// operateWith applies the term's operator between other and the term's
// own operand. The term's operand is the right-hand side, so for the
// asymmetric operators: Subtract(n) gives other-n and Divide(n) gives
// other/n. That order is what lets an additive term absorb a following
// multiply or divide term without reordering the source.
func (t term) operateWith(other float64) float64 {
	switch t.kind {
	case opAdd:
		return t.operand + other
	case opSub:
		return other - t.operand
	case opMul:
		return t.operand * other
	case opDiv:
		return other / t.operand
	default:
		panic("termcalc: invalid operator " + t.kind.String())
	}
}

func (t term) isMulDiv() bool {
	return t.kind == opMul || t.kind == opDiv
}
