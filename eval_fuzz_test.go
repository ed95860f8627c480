package termcalc_test

import (
	"testing"

	"github.com/arithmo/termcalc"
)

func FuzzEvalString(f *testing.F) {
	f.Add("1/0")
	f.Add("-2*3")
	f.Add("2*(3+5)")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := termcalc.EvalString(s)
		if err != nil {
			return
		}
		// Evaluating the parsed form again must give the same value,
		// NaN excepted.
		a, err := termcalc.Parse(s)
		if err != nil {
			t.Fatalf("%q evaluated to %g but reparsing failed: %v", s, r, err)
		}
		if q := a.Evaluate(); q != r && !(q != q && r != r) {
			t.Errorf("%q evaluated to %g, then %g", s, r, q)
		}
	})
}
