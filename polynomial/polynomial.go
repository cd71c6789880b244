// Package polynomial implements an immutable dense polynomial over a
// numeric coefficient type, plus the multiply dispatcher: naive O(deg^2),
// complex/real FFT multiply, and exact integer NTT+CRT multiply. Grounded
// on convolve.go's Convolve/FastConvolve (pad to next power of two,
// pointwise multiply in frequency domain, inverse transform, trim),
// generalized from a single FFT-only strategy into the full dispatcher.
package polynomial

import "golang.org/x/exp/constraints"

// Numeric is the set of coefficient types this package supports: any
// integer or floating-point type, plus complex64/complex128. All of them
// support comparison against the untyped constant 0, which Polynomial's
// trimming invariant relies on.
type Numeric interface {
	constraints.Integer | constraints.Float | ~complex64 | ~complex128
}

// Polynomial is an immutable dense coefficient sequence. Invariant: either
// it has exactly one element (the zero polynomial, coefficient 0) or its
// last coefficient is nonzero. Degree = length - 1.
type Polynomial[T Numeric] struct {
	coeffs []T
}

// New builds a Polynomial from coeffs, trimming trailing zeros per the
// invariant. The input slice is copied; coeffs is not retained or mutated.
func New[T Numeric](coeffs []T) Polynomial[T] {
	c := trim(append([]T(nil), coeffs...))
	return Polynomial[T]{coeffs: c}
}

// Zero returns the zero polynomial: length 1, coefficient 0.
func Zero[T Numeric]() Polynomial[T] {
	return Polynomial[T]{coeffs: []T{0}}
}

func trim[T Numeric](c []T) []T {
	for len(c) > 1 && c[len(c)-1] == 0 {
		c = c[:len(c)-1]
	}
	if len(c) == 0 {
		c = []T{0}
	}
	return c
}

// Degree returns len(coeffs) - 1. The zero polynomial has degree 0.
func (p Polynomial[T]) Degree() int { return len(p.coeffs) - 1 }

// Len returns the number of coefficients (Degree + 1).
func (p Polynomial[T]) Len() int { return len(p.coeffs) }

// Coeff returns the coefficient of x^i, or the zero value if i is out of
// range (treating the polynomial as having infinitely many trailing zero
// coefficients beyond its stored length).
func (p Polynomial[T]) Coeff(i int) T {
	if i < 0 || i >= len(p.coeffs) {
		var zero T
		return zero
	}
	return p.coeffs[i]
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial[T]) IsZero() bool {
	return len(p.coeffs) == 1 && p.coeffs[0] == 0
}

// Coeffs returns a copy of the coefficient slice, index i holding the
// coefficient of x^i.
func (p Polynomial[T]) Coeffs() []T {
	return append([]T(nil), p.coeffs...)
}

// Scale returns p * s. Multiplying by zero yields the zero polynomial
// (length 1, coefficient 0); multiplying by a nonzero scalar preserves
// degree exactly.
func Scale[T Numeric](p Polynomial[T], s T) Polynomial[T] {
	if s == 0 {
		return Zero[T]()
	}
	out := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c * s
	}
	return Polynomial[T]{coeffs: trim(out)}
}

// NaiveMultiply computes the dense convolution c_k = sum_{l=0..k} A[l]*B[k-l].
// Always valid regardless of degree or coefficient type. Resulting degree
// is deg(A) + deg(B), with the zero-polynomial convention collapsing any
// product involving a zero operand to the zero polynomial.
func NaiveMultiply[T Numeric](a, b Polynomial[T]) Polynomial[T] {
	if a.IsZero() || b.IsZero() {
		return Zero[T]()
	}
	n, m := a.Len(), b.Len()
	out := make([]T, n+m-1)
	for i := 0; i < n; i++ {
		if a.coeffs[i] == 0 {
			continue
		}
		for j := 0; j < m; j++ {
			out[i+j] += a.coeffs[i] * b.coeffs[j]
		}
	}
	return Polynomial[T]{coeffs: trim(out)}
}

// NaiveFallbackThreshold is the default degree at or below which the
// FFT/NTT multiply strategies defer to NaiveMultiply. Part of the
// observable contract: exactly 8, overridable per call via WithNaiveThreshold.
const NaiveFallbackThreshold = 8

type config struct {
	naiveThreshold int
	minNTTExponent int
}

// Option configures a single ComplexMultiply/IntegerMultiply call.
type Option func(*config)

// WithNaiveThreshold overrides the degree at or below which the naive
// strategy is used instead of a transform-based one. Default
// NaiveFallbackThreshold.
func WithNaiveThreshold(n int) Option {
	return func(c *config) { c.naiveThreshold = n }
}

// WithMinNTTExponent overrides the minimum exponent for N = 2^exponent in
// IntegerMultiply's NTT stage. Default defaultMinNTTExponent (14).
func WithMinNTTExponent(n int) Option {
	return func(c *config) { c.minNTTExponent = n }
}

func newConfig(opts ...Option) config {
	c := config{naiveThreshold: NaiveFallbackThreshold, minNTTExponent: defaultMinNTTExponent}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// useNaiveFallback reports whether either operand's degree is small enough
// that the naive strategy should be used instead of a transform-based one.
func useNaiveFallback[T Numeric](a, b Polynomial[T], threshold int) bool {
	return a.Degree() <= threshold || b.Degree() <= threshold
}
