package polynomial

import (
	"github.com/andewx/numerickernel/bits"
	"github.com/andewx/numerickernel/kernelerr"
	"github.com/andewx/numerickernel/modfft"
	"github.com/andewx/numerickernel/numtheory"
	"github.com/andewx/numerickernel/parallel"
)

// defaultMinNTTExponent bounds N from below: N is never smaller than 2^14
// by default, overridable via WithMinNTTExponent.
const defaultMinNTTExponent = 14

// ntPrimeCount is the number of distinct NTT primes used: two, enough for
// CRT to cover the coefficient magnitudes produced by reasonable inputs
// (see the balanced-range mapping in step 5 below).
const ntPrimeCount = 2

// IntegerMultiply computes the exact product of two int64-coefficient
// polynomials via two-prime NTT and CRT reconstruction. Defers to
// NaiveMultiply when either operand's degree is <= NaiveFallbackThreshold.
//
// Steps:
//  1. N = 2^max(14, ceil(log2(degA+degB+1))+1).
//  2. Find the first two primes p0, p1 ≡ 1 (mod N).
//  3. Compute C_i = A*B mod p_i via NTT for each i, the two transforms of A
//     and B run concurrently, and the two values of i themselves run
//     concurrently.
//  4. CRT-combine (C_0[k], C_1[k]) over (p_0, p_1) for every k, in parallel.
//  5. Map each c_k into the balanced range [-p0*p1/2, p0*p1/2).
func IntegerMultiply(a, b Polynomial[int64], opts ...Option) (Polynomial[int64], error) {
	cfg := newConfig(opts...)
	if useNaiveFallback(a, b, cfg.naiveThreshold) {
		return NaiveMultiply(a, b), nil
	}

	resultLen := a.Degree() + b.Degree() + 1
	// ceil(log2(resultLen)) + 1, via the smallest power of two >= resultLen.
	exponent := bits.IntLog2(bits.Pow2(resultLen)) + 1
	if exponent < cfg.minNTTExponent {
		exponent = cfg.minNTTExponent
	}
	N := 1 << exponent

	primes, err := numtheory.FindPrimeInAP(N, ntPrimeCount)
	if err != nil {
		return Polynomial[int64]{}, kernelerr.Wrap("polynomial.IntegerMultiply", kernelerr.Overflow, err, "searching for NTT-friendly primes")
	}

	results := make([][]uint64, ntPrimeCount)
	errs := make([]error, ntPrimeCount)

	primeBudget := parallel.NewFixedThreads(ntPrimeCount)
	tasks := make([]func(), ntPrimeCount)
	for idx := 0; idx < ntPrimeCount; idx++ {
		idx := idx
		tasks[idx] = func() {
			results[idx], errs[idx] = multiplyModPrime(a.coeffs, b.coeffs, N, primes[idx])
		}
	}
	primeBudget.ParallelCalls(tasks)
	for _, e := range errs {
		if e != nil {
			return Polynomial[int64]{}, e
		}
	}

	p0, p1 := int64(primes[0]), int64(primes[1])
	modulus := p0 * p1
	half := modulus / 2

	out := make([]int64, resultLen)
	combineBudget := parallel.NewFixedThreads(0)
	combineBudget.ParallelFor(0, resultLen, func(k int) {
		r, _ := numtheory.CRT(
			[]int64{int64(results[0][k]), int64(results[1][k])},
			[]int64{p0, p1},
		)
		if r > half {
			r -= modulus
		}
		out[k] = r
	})

	return New(out), nil
}

// multiplyModPrime computes (A*B mod p) via NTT: transforms A and B forward
// concurrently, multiplies pointwise mod p, and inverse-transforms.
func multiplyModPrime(a, b []int64, N int, p uint64) ([]uint64, error) {
	g, err := numtheory.PrimitiveRootModPrime(p)
	if err != nil {
		return nil, err
	}

	pa := make([]uint64, N)
	pb := make([]uint64, N)
	for i, v := range a {
		pa[i] = uint64(numtheory.SafeMod(v, int64(p)))
	}
	for i, v := range b {
		pb[i] = uint64(numtheory.SafeMod(v, int64(p)))
	}

	var fa, fb []uint64
	var errA, errB error
	transformBudget := parallel.NewFixedThreads(2)
	transformBudget.ParallelCalls([]func(){
		func() { fa, errA = modfft.ForwardNTT(pa, p, g) },
		func() { fb, errB = modfft.ForwardNTT(pb, p, g) },
	})
	if errA != nil {
		return nil, errA
	}
	if errB != nil {
		return nil, errB
	}

	product := make([]uint64, N)
	for i := range product {
		product[i] = (fa[i] * fb[i]) % p
	}

	return modfft.InverseNTT(product, p, g)
}
