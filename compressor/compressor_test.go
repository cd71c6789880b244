package compressor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// S5: a constant signal has all its energy in bin 0, so compressing with
// k=1 and decompressing reproduces it within tolerance.
func TestScenarioS5(t *testing.T) {
	signal := []float64{5, 5, 5, 5, 5, 5, 5, 5}
	encoded, err := Compress(signal, 1)
	require.NoError(t, err)
	require.Len(t, encoded, 1)

	out, err := Decompress(encoded, len(signal))
	require.NoError(t, err)
	require.Len(t, out, len(signal))
	for i := range signal {
		require.InDeltaf(t, signal[i], out[i], 1e-9, "index %d", i)
	}
}

// Property 8: compress then decompress with k >= N is lossless (up to
// floating point tolerance) since no frequency content is discarded.
func TestIdempotenceWhenKCoversAllBins(t *testing.T) {
	signal := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	N := len(signal) // already a power of two, so no mean-padding occurs
	encoded, err := Compress(signal, N)
	require.NoError(t, err)
	require.Len(t, encoded, N)

	out, err := Decompress(encoded, len(signal))
	require.NoError(t, err)
	for i := range signal {
		require.InDeltaf(t, signal[i], out[i], 1e-9, "index %d", i)
	}
}

// Property 9: truncation monotonicity. Reconstruction error (L2, on the
// padded domain) is non-increasing as k grows, since each additional
// retained bin can only remove energy from the residual.
func TestTruncationMonotonicity(t *testing.T) {
	signal := []float64{1, 0, -3, 2, 5, -1, 4, 0.5, 7, -2, 3, 1, 0, 6, -4, 2}

	errForK := func(k int) float64 {
		encoded, err := Compress(signal, k)
		require.NoError(t, err)
		out, err := Decompress(encoded, len(signal))
		require.NoError(t, err)
		var sumSq float64
		for i := range signal {
			d := signal[i] - out[i]
			sumSq += d * d
		}
		return sumSq
	}

	prev := math.Inf(1)
	for k := 1; k <= len(signal); k++ {
		e := errForK(k)
		require.LessOrEqualf(t, e, prev+1e-6, "error should not increase at k=%d", k)
		prev = e
	}
}

func TestCompressRejectsEmptySignal(t *testing.T) {
	_, err := Compress(nil, 2)
	require.Error(t, err)
}

func TestDecompressRejectsOutOfRangeIndex(t *testing.T) {
	_, err := Decompress(EncodedData{{Index: 1000, Value: 1}}, 4)
	require.Error(t, err)
}

func TestWithKOption(t *testing.T) {
	c := New(WithK(3))
	encoded, err := c.Compress([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	require.Len(t, encoded, 3)
}

func TestDefaultKIsTwo(t *testing.T) {
	c := New()
	encoded, err := c.Compress([]float64{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	require.Len(t, encoded, 2)
}
