package termcalc_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/arithmo/termcalc"
)

func TestEvalString(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"empty", "", 0},
		{"num", "42", 42},
		{"add", "3 + 5", 8},
		{"add-nospace", "3+5", 8},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"chain-mul", "2*3*4", 24},
		{"chain-div", "4/2/8", 0.25},
		{"precedence", "4 + 5 + 9 + 3 * 2 / 3", 4 + 5 + 9 + 3*2.0/3},
		{"group", "3 + (3 + 5) * 6 + 4 - 3 / 2", 3 + (3+5)*6 + 4 - 3.0/2},
		{"sub-mul", "100 - 10 * 2", 80},
		{"div-sub", "20 / 2 - 5", 5},
		{"fraction", "10/4", 2.5},
		{"leading-minus", "-5", -5},
		{"leading-minus-mul", "-2*3", -6},
		{"last-op-wins", "3+*5", 15},
		{"double-op", "3++5", 8},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := termcalc.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if got != c.want {
				t.Errorf("%q = %g, want %g", c.src, got, c.want)
			}
		})
	}
}

func TestEvalNonFinite(t *testing.T) {
	// Evaluation is total; zero divisors follow IEEE-754 rules.
	cases := []struct {
		name  string
		src   string
		check func(float64) bool
	}{
		{"div-zero", "1/0", func(f float64) bool { return math.IsInf(f, 1) }},
		{"neg-div-zero", "-1/0", func(f float64) bool { return math.IsInf(f, -1) }},
		{"zero-div-zero", "0/0", math.IsNaN},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := termcalc.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if !c.check(got) {
				t.Errorf("%q = %g", c.src, got)
			}
		})
	}
}

func TestEvalStringErrors(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		input string
	}{
		{"nested-open", "(1+(2+3))", "1+"},
		{"close-unopened", "1+2)", "2"},
		{"bad-number", "3..4", "3..4"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := termcalc.EvalString(c.src)
			if err == nil {
				t.Fatalf("%q evaluated without error", c.src)
			}
			var perr termcalc.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("%q gave %#v, not a ParseError", c.src, err)
			}
			if perr.Input() != c.input {
				t.Errorf("%q blamed %q, want %q", c.src, perr.Input(), c.input)
			}
			if !strings.Contains(err.Error(), fmt.Sprintf("%q", c.input)) {
				t.Errorf("%q doesn't mention %q", err.Error(), c.input)
			}
		})
	}
}

func TestEvaluateDoesNotMutate(t *testing.T) {
	a, err := termcalc.Parse("1+2*3-4/5")
	if err != nil {
		t.Fatal(err)
	}
	before := a.String()
	r1 := a.Evaluate()
	if got := a.String(); got != before {
		t.Errorf("Evaluate changed the expression: %q became %q", before, got)
	}
	if r2 := a.Evaluate(); r2 != r1 {
		t.Errorf("repeated Evaluate differs: %g then %g", r1, r2)
	}
}

func BenchmarkEvalString(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"flat", "1+2+3+4+5"},
		{"precedence", "4+5+9+3*2/3"},
		{"group", "3+(3+5)*6+4-3/2"},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				termcalc.EvalString(c.src)
			}
		})
	}
}

func Example() {
	r, err := termcalc.EvalString("3 + (3 + 5) * 6 + 4 - 3 / 2")
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: 53.5
}

func ExampleParse() {
	a, err := termcalc.Parse("9 + 2 - (5 + 3) * 2")
	if err != nil {
		panic(err)
	}
	fmt.Println(a, "=", a.Evaluate())
	// Output: [+9 +2 -8 *2] = -5
}
