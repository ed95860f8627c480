package termcalc

import (
	"strconv"
	"strings"
)

// Expression is the parsed form of one line of arithmetic. Term order is
// significant: it is the left-to-right order of the source, with each
// parenthesized group already collapsed into a single term. An
// Expression is fully built by Parse before it is evaluated and is not
// modified afterward.
type Expression struct {
	terms []term
}

func (e *Expression) push(kind opKind, operand float64) {
	e.terms = append(e.terms, term{kind: kind, operand: operand})
}

// pushNumber converts a literal and pushes a term carrying it.
func (e *Expression) pushNumber(kind opKind, text string) error {
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return &NumberError{Text: text}
	}
	e.push(kind, n)
	return nil
}

// String renders the term sequence, one operator-operand pair per term.
func (e *Expression) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range e.terms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.kind.String())
		b.WriteString(strconv.FormatFloat(t.operand, 'g', -1, 64))
	}
	b.WriteByte(']')
	return b.String()
}
