// Package modfft implements the modular FFT (Number-Theoretic Transform):
// radix-2 iterative NTT and inverse NTT modulo a prime p with p ≡ 1 (mod N),
// given a primitive root g of p. Grounded on
// luxfi-ringtail/gpu/gpu_ntt.go's ForwardSingle/InverseSingle, generalized
// from a single hard-coded ring prime (DefaultQ/DefaultN) to any (p, g, N)
// satisfying the preconditions, with g/primitive-root discovery delegated
// to numtheory instead of being baked in.
package modfft

import (
	"github.com/andewx/numerickernel/bits"
	"github.com/andewx/numerickernel/kernelerr"
	"github.com/andewx/numerickernel/numtheory"
)

// checkPreconditions verifies N is a power of two, p is prime, p ≡ 1 mod N,
// and g is a primitive root of p (by checking g^((p-1)/N) has order exactly
// N: it must not collapse to 1 at any proper divisor-stage of N).
func checkPreconditions(op string, a []uint64, p, g uint64) error {
	N := len(a)
	if !bits.IsPowerOfTwo(N) {
		return kernelerr.Newf(op, kernelerr.NumericPrecondition, "N=%d is not a power of two", N)
	}
	if !numtheory.IsPrime(p) {
		return kernelerr.Newf(op, kernelerr.NumericPrecondition, "p=%d is not prime", p)
	}
	if (p-1)%uint64(N) != 0 {
		return kernelerr.Newf(op, kernelerr.NumericPrecondition, "p=%d is not congruent to 1 mod N=%d", p, N)
	}
	omega := numtheory.ModPow(g, (p-1)/uint64(N), p)
	if omega == 1 && N > 1 {
		return kernelerr.Newf(op, kernelerr.NumericPrecondition, "g=%d is not a primitive root of p=%d", g, p)
	}
	// omega must have order exactly N: omega^(N/2) != 1 for N > 1.
	if N > 1 && numtheory.ModPow(omega, uint64(N/2), p) == 1 {
		return kernelerr.Newf(op, kernelerr.NumericPrecondition, "g=%d does not yield a primitive N-th root of unity for N=%d", g, N)
	}
	return nil
}

func mulModU64(a, b, m uint64) uint64 {
	// Safe because precondition p < 2^31 guarantees p*p < 2^63.
	return (a * b) % m
}

// ForwardNTT computes A[k] = sum_n a[n] * omega^{kn} mod p, where
// omega = g^{(p-1)/N} is a primitive N-th root of unity in F_p, using the
// iterative radix-2 bit-reversal algorithm. a is not modified; the result
// is returned as a new slice with entries normalized to [0, p).
func ForwardNTT(a []uint64, p, g uint64) ([]uint64, error) {
	if err := checkPreconditions("modfft.ForwardNTT", a, p, g); err != nil {
		return nil, err
	}
	N := len(a)
	omega := numtheory.ModPow(g, (p-1)/uint64(N), p)
	return nttCore(a, p, omega), nil
}

// InverseNTT computes the inverse of ForwardNTT: uses g^-1 mod p as the
// base, then scales each output by N^-1 mod p.
func InverseNTT(a []uint64, p, g uint64) ([]uint64, error) {
	if err := checkPreconditions("modfft.InverseNTT", a, p, g); err != nil {
		return nil, err
	}
	N := len(a)
	gInv := numtheory.ModPow(g, p-2, p)
	omegaInv := numtheory.ModPow(gInv, (p-1)/uint64(N), p)
	result := nttCore(a, p, omegaInv)

	nInv, err := numtheory.ModularInverse(uint64(N), p)
	if err != nil {
		return nil, kernelerr.Wrap("modfft.InverseNTT", kernelerr.NumericPrecondition, err, "N is not invertible mod p")
	}
	for i := range result {
		result[i] = mulModU64(result[i], nInv, p)
	}
	return result, nil
}

// nttCore runs the shared iterative radix-2 bit-reversal butterfly given a
// primitive N-th root of unity omega (forward call passes g^{(p-1)/N},
// inverse passes the reciprocal root). Stage twiddles
// omega^{2^{log N - s}} are precomputed per stage.
func nttCore(a []uint64, p, omega uint64) []uint64 {
	N := len(a)
	result := make([]uint64, N)
	for i, v := range a {
		result[i] = v % p
	}
	bits.BitReversalPermutation(result, result)

	logN := bits.IntLog2(N)
	for s := 1; s <= logN; s++ {
		m := 1 << s
		halfM := m / 2
		// Twiddle for this stage: a primitive m-th root of unity, which is
		// omega raised to N/m = 2^{logN - s}.
		wm := numtheory.ModPow(omega, uint64(N/m), p)
		for k := 0; k < N; k += m {
			twiddleFactor := uint64(1)
			for j := 0; j < halfM; j++ {
				u := result[k+j]
				t := mulModU64(twiddleFactor, result[k+j+halfM], p)
				sum := u + t
				if sum >= p {
					sum -= p
				}
				diff := u + p - t
				if diff >= p {
					diff -= p
				}
				result[k+j] = sum
				result[k+j+halfM] = diff
				twiddleFactor = mulModU64(twiddleFactor, wm, p)
			}
		}
	}
	return result
}
