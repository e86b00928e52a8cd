package constructive

// Function packages a monotone increasing CR-to-CR map together with the
// open bracket (Lo, Hi) it is valid on. Spec.md's component table calls
// this the "unary function registry": rather than re-deriving an inverse or
// derivative closure at every call site, façade functions build one
// Function once and reuse it through Inverse/Derivative/Compose.
type Function struct {
	Eval func(Real) Real
	Lo   Real
	Hi   Real
}

// NewFunction registers eval as monotone increasing over the open interval
// (lo, hi).
func NewFunction(eval func(Real) Real, lo, hi Real) *Function {
	return &Function{Eval: eval, Lo: lo, Hi: hi}
}

// Inverse numerically inverts f at arg via InverseIncreasing.
func (f *Function) Inverse(arg Real) Real {
	return InverseIncreasing(f.Eval, f.Lo, f.Hi, arg)
}

// Derivative numerically differentiates f at x via MonotoneDerivative.
func (f *Function) Derivative(x Real) Real {
	return MonotoneDerivative(f.Eval, f.Lo, f.Hi, x)
}

// Compose builds g(f(x)) as a new Function over f's bracket, assuming g is
// monotone increasing over f's range on that bracket.
func (f *Function) Compose(g func(Real) Real) *Function {
	return &Function{
		Eval: func(x Real) Real { return g(f.Eval(x)) },
		Lo:   f.Lo,
		Hi:   f.Hi,
	}
}
