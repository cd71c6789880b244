package bits

import (
	"math/cmplx"
	"testing"
)

func TestIsPowerOfTwo(t *testing.T) {
	cases := map[int]bool{0: false, 1: true, 2: true, 3: false, 4: true, 17: false, 1024: true, -4: false}
	for n, want := range cases {
		if got := IsPowerOfTwo(n); got != want {
			t.Errorf("IsPowerOfTwo(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestIntLog2(t *testing.T) {
	cases := map[int]int{0: -1, 1: 0, 2: 1, 3: 1, 4: 2, 8: 3, 1024: 10}
	for n, want := range cases {
		if got := IntLog2(n); got != want {
			t.Errorf("IntLog2(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestPow2(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 5: 8, 8: 8, 9: 16}
	for n, want := range cases {
		if got := Pow2(n); got != want {
			t.Errorf("Pow2(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestReverseBits(t *testing.T) {
	// width 3: 0b011 (3) -> 0b110 (6)
	if got := ReverseBits(3, 3); got != 6 {
		t.Errorf("ReverseBits(3,3) = %d, want 6", got)
	}
	// bits above width must not matter
	if got := ReverseBits(3+8, 3); got != 6 {
		t.Errorf("ReverseBits(11,3) = %d, want 6 (bits above width ignored)", got)
	}
	if got := ReverseBits(0, 5); got != 0 {
		t.Errorf("ReverseBits(0,5) = %d, want 0", got)
	}
}

func TestBitReversalPermutationOutOfPlace(t *testing.T) {
	src := []int{0, 1, 2, 3, 4, 5, 6, 7}
	dst := make([]int, 8)
	BitReversalPermutation(src, dst)
	want := []int{0, 4, 2, 6, 1, 5, 3, 7}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestBitReversalPermutationInPlace(t *testing.T) {
	x := []int{0, 1, 2, 3, 4, 5, 6, 7}
	BitReversalPermutation(x, x)
	want := []int{0, 4, 2, 6, 1, 5, 3, 7}
	for i := range want {
		if x[i] != want[i] {
			t.Errorf("x[%d] = %d, want %d", i, x[i], want[i])
		}
	}
}

func TestRootOfUnity(t *testing.T) {
	// N-th roots of unity must satisfy w^N == 1.
	for _, N := range []int{2, 4, 8, 16} {
		w := RootOfUnity(N, 1)
		acc := complex(1, 0)
		for i := 0; i < N; i++ {
			acc *= w
		}
		if cmplx.Abs(acc-1) > 1e-9 {
			t.Errorf("RootOfUnity(%d,1)^%d = %v, want 1", N, N, acc)
		}
	}
	// negative k
	w1 := RootOfUnity(8, 1)
	wm1 := RootOfUnity(8, -1)
	if cmplx.Abs(w1*wm1-1) > 1e-9 {
		t.Errorf("RootOfUnity(8,1)*RootOfUnity(8,-1) = %v, want 1", w1*wm1)
	}
}
