// Package numtheory provides the number-theoretic primitives the modular
// FFT (NTT) pipeline is built on: modular exponentiation, primality
// testing, primitive-root search, modular inverse, and CRT reconstruction.
// Generalizes the single hard-coded-prime helpers in
// luxfi-ringtail/gpu/gpu_ntt.go (modPow, mulMod, findGenerator,
// primeFactors) into a reusable, precondition-checked package.
package numtheory

import (
	"math/bits"

	"github.com/andewx/numerickernel/kernelerr"
)

// Prime is a modulus used by the NTT pipeline. Invariant: p < 2^31 so that
// p*p fits in a plain uint64 product without overflow (modfft's mulModU64
// and polynomial's pointwise NTT product rely on this; mulMod here uses a
// 128-bit product and does not).
type Prime = uint64

// safeMaxCandidate bounds find-prime search so that p*p still fits in a
// plain uint64 product: the search fails cleanly with Overflow past this
// point rather than returning an unusably large modulus.
const safeMaxCandidate = 1 << 31

// SafeMod returns a mod m in [0, m), even when a is negative.
func SafeMod(a int64, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// mulMod computes (a*b) mod m using a 128-bit intermediate product, the way
// luxfi-ringtail/gpu/gpu_ntt.go's mulMod does via math/bits.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// ModPow computes base^exp mod m using iterative square-and-multiply.
func ModPow(base, exp, m uint64) uint64 {
	if m == 1 {
		return 0
	}
	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		exp >>= 1
		base = mulMod(base, base, m)
	}
	return result
}

// IsPrime tests primality by trial division up to sqrt(n). Exact, but O(sqrt n).
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := uint64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// IsProbablyPrime runs a single Fermat base-2 test: 2^(n-1) == 1 mod n.
// Fast but not exact; composite numbers that pass are Fermat pseudoprimes.
func IsProbablyPrime(n uint64) bool {
	return IsProbablyPrimeBase(n, 2)
}

// IsProbablyPrimeBase generalizes IsProbablyPrime to an arbitrary Fermat
// witness base.
func IsProbablyPrimeBase(n, base uint64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	return ModPow(base%n, n-1, n) == 1
}

// PrimeDivisors returns the distinct prime divisors of n.
func PrimeDivisors(n uint64) []uint64 {
	var factors []uint64
	for p := uint64(2); p*p <= n; p++ {
		if n%p == 0 {
			factors = append(factors, p)
			for n%p == 0 {
				n /= p
			}
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// PrimitiveRootModPrime finds a generator of the multiplicative group of
// F_p, trying small candidates starting at 2. p must be prime.
func PrimitiveRootModPrime(p uint64) (uint64, error) {
	if !IsPrime(p) {
		return 0, kernelerr.Newf("PrimitiveRootModPrime", kernelerr.NumericPrecondition, "%d is not prime", p)
	}
	if p == 2 {
		return 1, nil
	}
	factors := PrimeDivisors(p - 1)
	for g := uint64(2); g < p; g++ {
		isGenerator := true
		for _, f := range factors {
			if ModPow(g, (p-1)/f, p) == 1 {
				isGenerator = false
				break
			}
		}
		if isGenerator {
			return g, nil
		}
	}
	return 0, kernelerr.Newf("PrimitiveRootModPrime", kernelerr.NumericPrecondition, "no primitive root found for p=%d", p)
}

// ModularInverse returns a^-1 mod p via Fermat's little theorem (p prime).
// Returns DomainExhausted if a is a multiple of p (not coprime to p).
func ModularInverse(a, p uint64) (uint64, error) {
	a %= p
	if a == 0 {
		return 0, kernelerr.Newf("ModularInverse", kernelerr.DomainExhausted, "%d is not invertible mod %d", a, p)
	}
	return ModPow(a, p-2, p), nil
}

// FindPrimeInAP returns the first `count` primes p = k*N + 1 (k >= 1) in
// ascending order, i.e. primes congruent to 1 mod N. Existence for
// arbitrarily many such primes follows from Dirichlet's theorem. Returns
// Overflow if a candidate would exceed the safe range where p*p still fits
// a uint64 product.
func FindPrimeInAP(N int, count int) ([]Prime, error) {
	if N <= 0 {
		return nil, kernelerr.Newf("FindPrimeInAP", kernelerr.InvalidSize, "N must be positive, got %d", N)
	}
	primes := make([]Prime, 0, count)
	n64 := uint64(N)
	for k := uint64(1); len(primes) < count; k++ {
		candidate := k*n64 + 1
		if candidate >= safeMaxCandidate {
			return nil, kernelerr.Newf("FindPrimeInAP", kernelerr.Overflow, "candidate %d exceeds safe range 2^31", candidate)
		}
		if IsProbablyPrime(candidate) && IsPrime(candidate) {
			primes = append(primes, candidate)
		}
	}
	return primes, nil
}

// CRT reconstructs the unique r in [0, prod(moduli)) such that
// r mod moduli[i] == remainders[i] for every i, given pairwise-coprime
// moduli. Returns DomainExhausted if the slices differ in length.
func CRT(remainders, moduli []int64) (int64, error) {
	if len(remainders) != len(moduli) {
		return 0, kernelerr.Newf("CRT", kernelerr.DomainExhausted, "remainders and moduli must have equal length, got %d and %d", len(remainders), len(moduli))
	}
	if len(moduli) == 0 {
		return 0, nil
	}
	r := SafeMod(remainders[0], moduli[0])
	m := moduli[0]
	for i := 1; i < len(moduli); i++ {
		mi := moduli[i]
		ri := SafeMod(remainders[i], mi)
		// Solve r + m*t == ri (mod mi) for t, using the inverse of m mod mi.
		mInv, err := ModularInverse(uint64(SafeMod(m, mi)), uint64(mi))
		if err != nil {
			return 0, kernelerr.Wrap("CRT", kernelerr.DomainExhausted, err, "moduli must be pairwise coprime")
		}
		t := SafeMod(int64(mInv)*SafeMod(ri-r, mi), mi)
		r = r + m*t
		m = m * mi
		r = SafeMod(r, m)
	}
	return r, nil
}
