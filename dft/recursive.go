package dft

import (
	"github.com/andewx/numerickernel/bits"
	"github.com/andewx/numerickernel/parallel"
)

// recursiveTransform computes the DFT via Cooley-Tukey decimation in time:
// split buf into even/odd subsequences by stride doubling, recurse on
// each half, then combine with a per-stage twiddle omega = e^{sign*2*pi*i/n}.
// Subproblems of length <= baseCase defer to the naive kernel. The two
// recursive halves are the parallel_calls candidates; grounded on
// gnark-crypto's difFFT/ditFFT goroutine-per-half split.
func recursiveTransform(buf []complex128, sign float64, baseCase int, p parallel.Parallelizer) {
	n := len(buf)
	if n <= baseCase {
		naiveTransform(buf, sign, parallel.Sequential{})
		return
	}

	half := n / 2
	even := make([]complex128, half)
	odd := make([]complex128, half)
	for i := 0; i < half; i++ {
		even[i] = buf[2*i]
		odd[i] = buf[2*i+1]
	}

	p.ParallelCalls([]func(){
		func() { recursiveTransform(even, sign, baseCase, p) },
		func() { recursiveTransform(odd, sign, baseCase, p) },
	})

	omega := bits.RootOfUnity(n, int(sign))
	twiddleFactor := complex(1, 0)
	for k := 0; k < half; k++ {
		t := twiddleFactor * odd[k]
		buf[k] = even[k] + t
		buf[k+half] = even[k] - t
		twiddleFactor *= omega
	}
}
