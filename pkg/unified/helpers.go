package unified

import "github.com/brooksby/realmath/pkg/rational"

// extractSquareRat factors a positive rational r as coeff^2 * arg with arg
// square-free over the range pkg/rational.ExtractSquare actually searches,
// by running ExtractSquare independently over the numerator and
// denominator. Used wherever a symbolic rewrite needs sqrt(r) back in
// canonical SQRT(arg) form with the square part folded into the rational
// coefficient (spec.md §4.5.2's sqrt*sqrt and sqrt-of-rational rules).
func extractSquareRat(r *rational.BoundedRational) (coeff, arg *rational.BoundedRational) {
	if r == nil || r.IsNull() || r.Sign() <= 0 {
		return rational.One(), r
	}

	pn, qn := rational.ExtractSquare(r.Num())
	pd, qd := rational.ExtractSquare(r.Denom())

	c, err := rational.New(pn, pd)
	if err != nil || c == nil {
		return rational.One(), r
	}
	a, err := rational.New(qn, qd)
	if err != nil || a == nil {
		return rational.One(), r
	}
	return c, a
}
