package termcalc

// Evaluate reduces the expression to a single value. It is total:
// division follows IEEE-754 rules, so a zero divisor yields an infinity
// or NaN rather than an error. The receiver is never modified.
//
// Precedence is resolved without a tree. The evaluator walks a working
// copy of the term sequence; while the term after the current one
// multiplies or divides, it is absorbed into the current term's operand
// and the same index is inspected again. Terms that survive absorption
// then add to or subtract from the accumulator in order.
func (e *Expression) Evaluate() float64 {
	terms := append([]term(nil), e.terms...)

	var result float64
	for i := 0; i < len(terms); {
		if i+1 < len(terms) && terms[i+1].isMulDiv() {
			switch terms[i].kind {
			case opAdd, opSub:
				terms[i].operand = terms[i+1].operateWith(terms[i].operand)
			}
			terms = append(terms[:i+1], terms[i+2:]...)
			continue
		}
		switch terms[i].kind {
		case opAdd:
			result += terms[i].operand
		case opSub:
			result -= terms[i].operand
		}
		// A multiply or divide term here stands alone, e.g. from a
		// leading operator; it contributes nothing.
		i++
	}
	return result
}

// EvalString is a shortcut to parse and evaluate one expression.
func EvalString(text string) (float64, error) {
	e, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return e.Evaluate(), nil
}
