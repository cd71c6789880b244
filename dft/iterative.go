package dft

import (
	"github.com/andewx/numerickernel/bits"
	"github.com/andewx/numerickernel/parallel"
)

// iterativeTransform computes the DFT via the standard bit-reversal
// iterative Cooley-Tukey butterfly: (i) write bit-reversed input in place,
// (ii) for each stage s = 1..log2(N), walk output in blocks of 2^s and
// apply butterflies within each block using an incrementally updated
// twiddle factor. Only the outer per-stage block loop is parallelized (the
// butterflies within one block are disjoint from every other block's, but
// sequential within a block to preserve pairwise addition order).
func iterativeTransform(buf []complex128, sign float64, p parallel.Parallelizer) {
	N := len(buf)
	bits.BitReversalPermutation(buf, buf)

	logN := bits.IntLog2(N)
	for s := 1; s <= logN; s++ {
		m := 1 << s
		halfM := m / 2
		numBlocks := N / m
		wm := bits.RootOfUnity(m, int(sign))

		p.ParallelFor(0, numBlocks, func(blockIdx int) {
			k := blockIdx * m
			twiddleFactor := complex(1, 0)
			for j := 0; j < halfM; j++ {
				t := twiddleFactor * buf[k+j+halfM]
				u := buf[k+j]
				buf[k+j] = u + t
				buf[k+j+halfM] = u - t
				twiddleFactor *= wm
			}
		})
	}
}
