package polynomial

import (
	"math"

	"github.com/andewx/numerickernel/bits"
	"github.com/andewx/numerickernel/dft"
	"github.com/andewx/numerickernel/parallel"
)

// complexFFTThreads is the thread budget dedicated to the two concurrent
// forward transforms in ComplexMultiply.
const complexFFTThreads = 2

// ComplexMultiply multiplies two complex-coefficient polynomials via FFT:
// pad both to N = next_pow2(degA+degB+1), transform both forward
// concurrently, multiply pointwise, inverse transform, and trim to
// degA+degB+1 coefficients. Defers to NaiveMultiply when either operand's
// degree is <= the naive threshold (NaiveFallbackThreshold by default,
// overridable via WithNaiveThreshold).
func ComplexMultiply(a, b Polynomial[complex128], opts ...Option) (Polynomial[complex128], error) {
	cfg := newConfig(opts...)
	if useNaiveFallback(a, b, cfg.naiveThreshold) {
		return NaiveMultiply(a, b), nil
	}

	resultLen := a.Degree() + b.Degree() + 1
	N := bits.Pow2(resultLen)

	fa := make([]complex128, N)
	fb := make([]complex128, N)
	copy(fa, a.coeffs)
	copy(fb, b.coeffs)

	budget := parallel.NewFixedThreads(complexFFTThreads)
	var errA, errB error
	budget.ParallelCalls([]func(){
		func() { errA = dft.TransformInPlace(dft.Iterative, dft.Forward, fa) },
		func() { errB = dft.TransformInPlace(dft.Iterative, dft.Forward, fb) },
	})
	if errA != nil {
		return Polynomial[complex128]{}, errA
	}
	if errB != nil {
		return Polynomial[complex128]{}, errB
	}

	for i := range fa {
		fa[i] *= fb[i]
	}

	if err := dft.TransformInPlace(dft.Iterative, dft.Inverse, fa); err != nil {
		return Polynomial[complex128]{}, err
	}

	return New(fa[:resultLen]), nil
}

// RealMultiply is ComplexMultiply followed by taking the real part of each
// resulting coefficient.
func RealMultiply(a, b Polynomial[float64], opts ...Option) (Polynomial[float64], error) {
	ca := New(toComplex(a.coeffs))
	cb := New(toComplex(b.coeffs))
	cr, err := ComplexMultiply(ca, cb, opts...)
	if err != nil {
		return Polynomial[float64]{}, err
	}
	out := make([]float64, cr.Len())
	for i, c := range cr.coeffs {
		out[i] = real(c)
	}
	return New(out), nil
}

// RealMultiplyRounded is RealMultiply with each coefficient rounded to the
// nearest integer, used to cross-check IntegerMultiply (property 7).
func RealMultiplyRounded(a, b Polynomial[float64], opts ...Option) (Polynomial[float64], error) {
	p, err := RealMultiply(a, b, opts...)
	if err != nil {
		return Polynomial[float64]{}, err
	}
	out := make([]float64, p.Len())
	for i, c := range p.coeffs {
		out[i] = math.Round(c)
	}
	return New(out), nil
}

func toComplex(x []float64) []complex128 {
	y := make([]complex128, len(x))
	for i, v := range x {
		y[i] = complex(v, 0)
	}
	return y
}
