package dft

import (
	"math/cmplx"
	"math/rand"
	"testing"

	ktyefft "github.com/ktye/fft"
	dspfft "github.com/mjibson/go-dsp/fft"
	gonumfft "gonum.org/v1/gonum/dsp/fourier"
	scientificfft "scientificgo.org/fft"

	"github.com/andewx/numerickernel/parallel"
)

const eps = 1e-6

func complexRand(N int) []complex128 {
	x := make([]complex128, N)
	for i := range x {
		x[i] = complex(rand.NormFloat64(), rand.NormFloat64())
	}
	return x
}

func maxAbsDiff(a, b []complex128) float64 {
	var m float64
	for i := range a {
		if d := cmplx.Abs(a[i] - b[i]); d > m {
			m = d
		}
	}
	return m
}

var engines = []Engine{Naive, Recursive, Iterative}

// S1: DFT([1,1,1,1]) == [4,0,0,0]
func TestScenarioS1(t *testing.T) {
	for _, e := range engines {
		x := []complex128{1, 1, 1, 1}
		got, err := DFT(e, x)
		if err != nil {
			t.Fatalf("engine %d: %v", e, err)
		}
		want := []complex128{4, 0, 0, 0}
		if maxAbsDiff(got, want) > eps {
			t.Errorf("engine %d: DFT([1,1,1,1]) = %v, want %v", e, got, want)
		}
	}
}

// S2: DFT([1,0,0,0]) == [1,1,1,1]
func TestScenarioS2(t *testing.T) {
	for _, e := range engines {
		x := []complex128{1, 0, 0, 0}
		got, err := DFT(e, x)
		if err != nil {
			t.Fatalf("engine %d: %v", e, err)
		}
		want := []complex128{1, 1, 1, 1}
		if maxAbsDiff(got, want) > eps {
			t.Errorf("engine %d: DFT([1,0,0,0]) = %v, want %v", e, got, want)
		}
	}
}

// Property 1: round trip.
func TestRoundTrip(t *testing.T) {
	for _, e := range engines {
		for _, N := range []int{1, 2, 4, 16, 128, 1024} {
			x := complexRand(N)
			y, err := DFT(e, x)
			if err != nil {
				t.Fatalf("engine %d N=%d: DFT: %v", e, N, err)
			}
			z, err := IDFT(e, y)
			if err != nil {
				t.Fatalf("engine %d N=%d: IDFT: %v", e, N, err)
			}
			if d := maxAbsDiff(x, z); d > 1e-6 {
				t.Errorf("engine %d N=%d: round trip diff = %v", e, N, d)
			}
		}
	}
}

// Property 2: cross agreement between the three engines.
func TestCrossAgreement(t *testing.T) {
	for _, N := range []int{1, 2, 4, 16, 128} {
		x := complexRand(N)
		var results [][]complex128
		for _, e := range engines {
			y, err := DFT(e, x)
			if err != nil {
				t.Fatalf("engine %d N=%d: %v", e, N, err)
			}
			results = append(results, y)
		}
		for i := 1; i < len(results); i++ {
			if d := maxAbsDiff(results[0], results[i]); d > 1e-6 {
				t.Errorf("N=%d: engine %d disagrees with naive by %v", N, engines[i], d)
			}
		}
	}
}

// Property 3: sequential vs parallel agreement.
func TestSequentialVsParallel(t *testing.T) {
	parallelizers := []parallel.Parallelizer{
		parallel.NewFixedThreads(4),
		parallel.Omp{},
	}
	for _, e := range []Engine{Iterative, Recursive} {
		for _, N := range []int{16, 256} {
			x := complexRand(N)
			seq, err := DFT(e, x)
			if err != nil {
				t.Fatal(err)
			}
			for _, pz := range parallelizers {
				dst := make([]complex128, N)
				if err := TransformIntoParallel(e, Forward, pz, x, dst); err != nil {
					t.Fatal(err)
				}
				if d := maxAbsDiff(seq, dst); d > 1e-6 {
					t.Errorf("engine %d N=%d: parallel disagrees with sequential by %v", e, N, d)
				}
			}
		}
	}
}

// Property 10: in-place vs distinct-buffer agreement.
func TestInPlaceSafety(t *testing.T) {
	for _, e := range engines {
		N := 64
		x := complexRand(N)
		distinct, err := DFT(e, x)
		if err != nil {
			t.Fatal(err)
		}
		inPlace := make([]complex128, N)
		copy(inPlace, x)
		if err := TransformInPlace(e, Forward, inPlace); err != nil {
			t.Fatal(err)
		}
		if d := maxAbsDiff(distinct, inPlace); d > 1e-9 {
			t.Errorf("engine %d: in-place differs from distinct-buffer by %v", e, d)
		}
	}
}

func TestNonPowerOfTwoRejectedByRadix2(t *testing.T) {
	x := complexRand(17)
	if _, err := DFT(Recursive, x); err == nil {
		t.Error("Recursive engine accepted non-power-of-two N")
	}
	if _, err := DFT(Iterative, x); err == nil {
		t.Error("Iterative engine accepted non-power-of-two N")
	}
	if _, err := DFT(Naive, x); err != nil {
		t.Errorf("Naive engine should accept any N, got %v", err)
	}
}

// Cross-validate against gonum's dsp/fourier implementation, mirroring
// fft_test.go's benchmark comparisons against the same library.
func TestAgainstGonum(t *testing.T) {
	for _, N := range []int{2, 4, 8, 16, 64} {
		x := complexRand(N)
		want := make([]complex128, N)
		copy(want, x)
		gonumfft.NewCmplxFFT(N).Coefficients(want, want)

		for _, e := range engines {
			got, err := DFT(e, x)
			if err != nil {
				t.Fatal(err)
			}
			if d := maxAbsDiff(got, want); d > 1e-6 {
				t.Errorf("engine %d N=%d disagrees with gonum by %v", e, N, d)
			}
		}
	}
}

// Cross-validate against the remaining three external FFT libraries
// fft_test.go benchmarked this package against: ktye/fft, mjibson/go-dsp,
// and scientificgo.org/fft. Each is an independent unnormalized forward
// transform implementation, so agreement here is a strong correctness
// signal beyond internal cross-engine agreement.
func TestAgainstExternalLibraries(t *testing.T) {
	for _, N := range []int{2, 4, 8, 16, 64} {
		x := complexRand(N)

		ktyeWant := make([]complex128, N)
		copy(ktyeWant, x)
		f, err := ktyefft.New(N)
		if err != nil {
			t.Fatalf("ktye/fft.New(%d): %v", N, err)
		}
		f.Transform(ktyeWant)

		dspWant := dspfft.FFT(append([]complex128(nil), x...))

		sciWant := scientificfft.Fft(append([]complex128(nil), x...), false)

		for _, e := range engines {
			got, err := DFT(e, x)
			if err != nil {
				t.Fatal(err)
			}
			if d := maxAbsDiff(got, ktyeWant); d > 1e-6 {
				t.Errorf("engine %d N=%d disagrees with ktye/fft by %v", e, N, d)
			}
			if d := maxAbsDiff(got, dspWant); d > 1e-6 {
				t.Errorf("engine %d N=%d disagrees with go-dsp by %v", e, N, d)
			}
			if d := maxAbsDiff(got, sciWant); d > 1e-6 {
				t.Errorf("engine %d N=%d disagrees with scientificgo/fft by %v", e, N, d)
			}
		}
	}
}
