// Package termcalc implements a small floating-point calculator.
//
// An expression is decimal numbers joined by + - * / with optional
// parenthesized groups one level deep. Multiplication and division bind
// tighter than addition and subtraction; operators of equal precedence
// apply left to right. "3 + (3 + 5) * 6" evaluates to 51.
//
// Parsing produces an ordered sequence of operator-operand terms rather
// than a tree; precedence is resolved during evaluation by folding each
// multiply or divide term into the additive term before it.
package termcalc
