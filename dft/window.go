package dft

import (
	"math"
	"math/cmplx"
)

// Window selects a windowing function applied before a forward transform,
// to reduce spectral leakage when the input isn't periodic in N samples.
type Window int

const (
	Rectangular Window = iota
	Hanning
	Hamming
	Blackman
)

// ApplyWindow multiplies x in place by the named window function, sample
// by sample.
func ApplyWindow(x []complex128, w Window) {
	n := len(x)
	if n <= 1 {
		return
	}
	for i := 0; i < n; i++ {
		gain := windowGain(w, i, n)
		x[i] = complex(real(x[i])*gain, imag(x[i])*gain)
	}
}

func windowGain(w Window, i, n int) float64 {
	phase := 2 * math.Pi * float64(i) / float64(n-1)
	switch w {
	case Hanning:
		return 0.5 * (1 - math.Cos(phase))
	case Hamming:
		return 0.54 - 0.46*math.Cos(phase)
	case Blackman:
		return 0.42 - 0.5*math.Cos(phase) + 0.08*math.Cos(2*phase)
	default:
		return 1.0
	}
}

// PowerSpectrum returns |x_i|^2 for each bin of a transformed sequence.
func PowerSpectrum(x []complex128) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		m := cmplx.Abs(v)
		out[i] = m * m
	}
	return out
}
