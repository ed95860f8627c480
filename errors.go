package termcalc

import "strconv"

// NumberError indicates a literal that could not be converted to a
// float64. It implements ParseError.
type NumberError struct {
	// Text is the literal that failed to convert.
	Text string
}

func (err *NumberError) Error() string {
	return "cannot parse number from " + strconv.Quote(err.Text)
}

func (err *NumberError) Input() string {
	return err.Text
}

// ParenthesisError indicates an unbalanced parenthesis: an open bracket
// inside a group, or a close bracket outside one. It implements
// ParseError.
type ParenthesisError struct {
	// Text is the input buffered up to the offending bracket.
	Text string
}

func (err *ParenthesisError) Error() string {
	return "unbalanced parenthesis near " + strconv.Quote(err.Text)
}

func (err *ParenthesisError) Input() string {
	return err.Text
}

// ParseError is an error carrying the portion of the input that caused
// it. Every error returned from Parse implements ParseError.
type ParseError interface {
	error
	// Input returns the offending portion of the input.
	Input() string
}

var (
	_ ParseError = (*NumberError)(nil)
	_ ParseError = (*ParenthesisError)(nil)
)
