// Package dft implements three sequential DFT engines
// (naive O(N^2), recursive Cooley-Tukey, iterative bit-reversal) plus their
// parallel twins, all behind one driver parameterized over a
// parallel.Parallelizer. Grounded on fft.go's iterative butterfly
// structure (stride-doubling stage loop over a precomputed root table),
// generalized into three selectable engines and, for the recursive/
// iterative cases, on gnark-crypto's difFFT/ditFFT goroutine-per-half
// split and per-stage block partition.
package dft

import (
	"github.com/andewx/numerickernel/bits"
	"github.com/andewx/numerickernel/kernelerr"
	"github.com/andewx/numerickernel/parallel"
)

// Engine selects which O(N log N) (or O(N^2)) algorithm computes the
// transform.
type Engine int

const (
	// Naive computes the DFT directly via the double sum; works for any N.
	Naive Engine = iota
	// Recursive is Cooley-Tukey decimation-in-time via even/odd splitting.
	Recursive
	// Iterative is the bit-reversal iterative Cooley-Tukey butterfly.
	Iterative
)

// Direction selects forward DFT or inverse DFT (IDFT).
type Direction int

const (
	Forward Direction = iota
	Inverse
)

// defaultBaseCase is the recursive engine's base-case size: subproblems of
// length <= this defer to the naive kernel. Implementation-defined, kept in
// the 1-32 range.
const defaultBaseCase = 32

type config struct {
	baseCase int
}

// Option configures a transform call.
type Option func(*config)

// WithBaseCase sets the recursive engine's base-case threshold (clamped to
// [1, 32] by the caller's judgment; values outside that range are honored
// as given since the default is only implementation-defined, not fixed).
func WithBaseCase(n int) Option {
	return func(c *config) { c.baseCase = n }
}

func newConfig(opts ...Option) *config {
	c := &config{baseCase: defaultBaseCase}
	for _, o := range opts {
		o(c)
	}
	return c
}

// angleSign returns the twiddle angle sign for the direction: forward uses
// e^{-2*pi*i*k*n/N}, inverse uses e^{+2*pi*i*k*n/N}. The 1/N scaling for
// the inverse is applied by the driver after the engine runs, not baked
// into the per-engine kernels.
func angleSign(dir Direction) float64 {
	if dir == Forward {
		return -1
	}
	return 1
}

// TransformInto computes the transform of src into dst (which must have
// the same length as src; dst may alias src only via TransformInPlace).
func TransformInto(engine Engine, dir Direction, src, dst []complex128, opts ...Option) error {
	return transform(engine, dir, parallel.Sequential{}, src, dst, opts...)
}

// TransformInPlace computes the transform of buf, overwriting it.
func TransformInPlace(engine Engine, dir Direction, buf []complex128, opts ...Option) error {
	return transform(engine, dir, parallel.Sequential{}, buf, buf, opts...)
}

// TransformIntoParallel is TransformInto parameterized over a Parallelizer.
func TransformIntoParallel(engine Engine, dir Direction, p parallel.Parallelizer, src, dst []complex128, opts ...Option) error {
	return transform(engine, dir, p, src, dst, opts...)
}

// TransformInPlaceParallel is TransformInPlace parameterized over a
// Parallelizer.
func TransformInPlaceParallel(engine Engine, dir Direction, p parallel.Parallelizer, buf []complex128, opts ...Option) error {
	return transform(engine, dir, p, buf, buf, opts...)
}

// DFT allocates and returns the forward transform of x, leaving x untouched.
func DFT(engine Engine, x []complex128, opts ...Option) ([]complex128, error) {
	dst := make([]complex128, len(x))
	if err := TransformInto(engine, Forward, x, dst, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// IDFT allocates and returns the inverse transform of x, leaving x untouched.
func IDFT(engine Engine, x []complex128, opts ...Option) ([]complex128, error) {
	dst := make([]complex128, len(x))
	if err := TransformInto(engine, Inverse, x, dst, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

func transform(engine Engine, dir Direction, p parallel.Parallelizer, src, dst []complex128, opts ...Option) error {
	if len(src) != len(dst) {
		return kernelerr.Newf("dft.transform", kernelerr.InvalidSize, "src and dst length mismatch: %d != %d", len(src), len(dst))
	}
	N := len(src)
	if N == 0 {
		return nil
	}
	if engine != Naive && !bits.IsPowerOfTwo(N) {
		return kernelerr.Newf("dft.transform", kernelerr.InvalidSize, "N=%d is not a power of two", N)
	}
	if p == nil {
		p = parallel.Sequential{}
	}
	cfg := newConfig(opts...)

	// Copy src into dst first (a no-op when dst and src are the same
	// backing array, i.e. the TransformInPlace call shape), then run the
	// chosen engine in place on dst.
	if &src[0] != &dst[0] {
		copy(dst, src)
	}

	sign := angleSign(dir)
	switch engine {
	case Naive:
		naiveTransform(dst, sign, p)
	case Recursive:
		recursiveTransform(dst, sign, cfg.baseCase, p)
	case Iterative:
		iterativeTransform(dst, sign, p)
	default:
		return kernelerr.Newf("dft.transform", kernelerr.InvalidSize, "unknown engine %d", engine)
	}

	if dir == Inverse {
		invN := complex(1.0/float64(N), 0)
		p.ParallelFor(0, N, func(i int) {
			dst[i] *= invN
		})
	}
	return nil
}
