package termcalc

import (
	"strings"
	"unicode"
)

// Parse turns one line of arithmetic into an Expression. Whitespace is
// insignificant and removed before scanning.
//
// The scan is a single left-to-right pass. A literal buffer accumulates
// number text; an operator character flushes the buffer as a term
// carrying the operator seen before it, then becomes the operator for
// the next term. A leading operator flushes nothing, so "-5" becomes a
// lone Subtract term against the evaluator's zero accumulator, and of
// consecutive operators only the last takes effect.
//
// Grouping is one level deep, tracked by a flag rather than a counter.
// Everything between ( and ) is buffered verbatim, operators included,
// and resolved by a recursive Parse and Evaluate of the buffer; the
// group's value becomes a single synthetic term in the enclosing
// sequence. A second ( before ) fails, as does ) with no open group;
// both report the buffer collected so far.
//
// Errors are terminal: no partial Expression is returned. Every error is
// a ParseError.
func Parse(text string) (*Expression, error) {
	src := stripSpace(text)

	expr := &Expression{}
	kind := opAdd
	var buf strings.Builder
	inParen := false

	for _, r := range src {
		switch {
		case !inParen && (r == '+' || r == '-' || r == '*' || r == '/'):
			if buf.Len() > 0 {
				if err := expr.pushNumber(kind, buf.String()); err != nil {
					return nil, err
				}
			}
			kind = kindOf(r)
			buf.Reset()
		case r == '(':
			if inParen {
				return nil, &ParenthesisError{Text: buf.String()}
			}
			inParen = true
		case r == ')':
			if !inParen {
				return nil, &ParenthesisError{Text: buf.String()}
			}
			inParen = false
			inner, err := Parse(buf.String())
			if err != nil {
				return nil, err
			}
			expr.push(kind, inner.Evaluate())
			buf.Reset()
		default:
			// Number text, or inside a group anything but a bracket.
			buf.WriteRune(r)
		}
	}
	if buf.Len() > 0 {
		if err := expr.pushNumber(kind, buf.String()); err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func kindOf(r rune) opKind {
	switch r {
	case '+':
		return opAdd
	case '-':
		return opSub
	case '*':
		return opMul
	case '/':
		return opDiv
	default:
		panic("termcalc: not an operator: " + string(r))
	}
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
