// Package bits provides the bit-trick primitives shared by the dft and
// modfft engines: power-of-two tests, integer log2, bit reversal, and the
// complex root of unity. Generalizes utils.go's IsPow2/NextPow2 and
// fft.go's permutationIndex/permute into explicit-width, reusable helpers.
package bits

import (
	"math"
	"math/bits"
)

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// IntLog2 returns the largest k with 2^k <= n, or -1 for n <= 0.
func IntLog2(n int) int {
	if n <= 0 {
		return -1
	}
	return bits.Len(uint(n)) - 1
}

// Pow2 returns the smallest power of two >= n (n >= 1).
func Pow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// ReverseBits returns the integer whose low `width` bits are the low
// `width` bits of n, reversed; bits above width are zero. Runs in O(width).
func ReverseBits(n, width int) int {
	r := 0
	for i := 0; i < width; i++ {
		r = (r << 1) | (n & 1)
		n >>= 1
	}
	return r
}

// BitReversalPermutation writes dst[i] = src[ReverseBits(i, log2|src|)] for
// every i. len(src) must be a power of two. Safe for dst == src: each swap
// pair (i, rev(i)) is visited at most once by skipping rev(i) < i.
func BitReversalPermutation[T any](src, dst []T) {
	n := len(src)
	width := IntLog2(n)
	if &src[0] == &dst[0] {
		for i := 0; i < n; i++ {
			j := ReverseBits(i, width)
			if j > i {
				dst[i], dst[j] = dst[j], dst[i]
			}
		}
		return
	}
	for i := 0; i < n; i++ {
		dst[i] = src[ReverseBits(i, width)]
	}
}

// RootOfUnity returns the complex value e^{2*pi*i*k/N}. k may be negative.
func RootOfUnity(N, k int) complex128 {
	s, c := math.Sincos(2.0 * math.Pi * float64(k) / float64(N))
	return complex(c, s)
}
