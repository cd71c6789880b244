// Package compressor implements lossy 1-D real-signal compression by
// frequency-domain truncation: keep only the k frequency bins of largest
// magnitude from the forward FFT. A client of the dft package. Grounded on
// window.go's PowerSpectrumPrecision (rank by spectral power), generalized
// from "compute the whole spectrum" into a partial top-k selection keyed on
// plain magnitude (cmplx.Abs), which orders bins the same way.
package compressor

import (
	"github.com/andewx/numerickernel/bits"
	"github.com/andewx/numerickernel/dft"
	"github.com/andewx/numerickernel/kernelerr"
)

// EncodedItem pairs a frequency-bin index with its complex coefficient.
type EncodedItem struct {
	Index uint32
	Value complex128
}

// EncodedData is the set of retained (index, value) pairs produced by
// Compress. Invariant: indices are distinct and each lies in [0, N) for
// the N agreed with the decoder (computed from M, the original signal
// length, the same way on both ends).
type EncodedData []EncodedItem

type config struct {
	k int
}

// Option configures a Compressor.
type Option func(*config)

// WithK sets the number of retained frequency bins (clamped to N at
// compress time). Default 2.
func WithK(k int) Option {
	return func(c *config) { c.k = k }
}

// Compressor holds configuration shared across Compress calls.
type Compressor struct {
	cfg config
}

// New builds a Compressor with the given options applied over the default
// (k=2).
func New(opts ...Option) *Compressor {
	c := &Compressor{cfg: config{k: 2}}
	for _, o := range opts {
		o(&c.cfg)
	}
	return c
}

// Compress pads signal (length M) to N = next power of two, filling the
// pad with the signal's mean rather than zero (avoids a discontinuity at
// the pad boundary, at the cost of biasing reconstruction in the padded
// region), takes the forward FFT, and keeps the k bins of largest
// magnitude.
func (c *Compressor) Compress(signal []float64) (EncodedData, error) {
	return Compress(signal, c.cfg.k)
}

// Compress is the free-function form of Compressor.Compress, taking k
// directly.
func Compress(signal []float64, k int) (EncodedData, error) {
	M := len(signal)
	if M <= 0 {
		return nil, kernelerr.Newf("compressor.Compress", kernelerr.InvalidSize, "signal length must be positive, got %d", M)
	}
	N := bits.Pow2(M)
	if k > N {
		k = N
	}
	if k < 0 {
		k = 0
	}

	mean := signalMean(signal)
	padded := make([]complex128, N)
	for i, v := range signal {
		padded[i] = complex(v, 0)
	}
	for i := M; i < N; i++ {
		padded[i] = complex(mean, 0)
	}

	if err := dft.TransformInPlace(dft.Iterative, dft.Forward, padded); err != nil {
		return nil, err
	}

	indices := selectTopKIndices(padded, k)
	out := make(EncodedData, 0, len(indices))
	for _, idx := range indices {
		out = append(out, EncodedItem{Index: uint32(idx), Value: padded[idx]})
	}
	return out, nil
}

// Decompress reconstructs a length-M real signal from encoded: N is
// recomputed from M (the same way Compress computed it), a length-N
// complex vector is zero-filled and overlaid with encoded's pairs, the
// inverse FFT is taken, and the real parts are truncated back to M
// samples.
func Decompress(encoded EncodedData, M int) ([]float64, error) {
	if M <= 0 {
		return nil, kernelerr.Newf("compressor.Decompress", kernelerr.InvalidSize, "M must be positive, got %d", M)
	}
	N := bits.Pow2(M)
	buf := make([]complex128, N)
	for _, item := range encoded {
		if int(item.Index) >= N {
			return nil, kernelerr.Newf("compressor.Decompress", kernelerr.InvalidSize, "index %d out of range [0,%d)", item.Index, N)
		}
		buf[item.Index] = item.Value
	}

	if err := dft.TransformInPlace(dft.Iterative, dft.Inverse, buf); err != nil {
		return nil, err
	}

	out := make([]float64, M)
	for i := 0; i < M; i++ {
		out[i] = real(buf[i])
	}
	return out, nil
}

func signalMean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}
