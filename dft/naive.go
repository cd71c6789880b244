package dft

import (
	"github.com/andewx/numerickernel/bits"
	"github.com/andewx/numerickernel/parallel"
)

// naiveTransform computes X[k] = sum_n x[n] * e^{sign*2*pi*i*k*n/N} directly,
// parallelizing the outer k loop (the axis of independent outputs). The
// inner loop advances one twiddle per step via repeated multiplication
// (twiddleFactor *= twiddle) instead of recomputing a complex exponential
// for every term. Works for any N, not just powers of two.
func naiveTransform(buf []complex128, sign float64, p parallel.Parallelizer) {
	N := len(buf)
	src := make([]complex128, N)
	copy(src, buf)

	p.ParallelFor(0, N, func(k int) {
		twiddle := bits.RootOfUnity(N, int(sign)*k)
		var sum complex128
		twiddleFactor := complex(1, 0)
		for n := 0; n < N; n++ {
			sum += src[n] * twiddleFactor
			twiddleFactor *= twiddle
		}
		buf[k] = sum
	})
}
