// Command kernelbench reads a whitespace-separated list of real samples
// from stdin and exercises the FFT/IFFT round trip, integer polynomial
// multiplication (self-convolution of the rounded samples), and frequency-domain
// compression, reporting basic quality metrics for each.
//
// Usage:
//
//	kernelbench -engine iterative -k 4 < samples.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/andewx/numerickernel/bits"
	"github.com/andewx/numerickernel/compressor"
	"github.com/andewx/numerickernel/dft"
	"github.com/andewx/numerickernel/polynomial"
)

func main() {
	engineName := flag.String("engine", "iterative", "DFT engine: naive, recursive, iterative")
	k := flag.Int("k", 4, "number of retained frequency bins for compression")
	flag.Parse()

	engine, err := parseEngine(*engineName)
	if err != nil {
		log.Fatalf("kernelbench: %v", err)
	}

	samples, err := readSamples(os.Stdin)
	if err != nil {
		log.Fatalf("kernelbench: reading samples: %v", err)
	}
	if len(samples) == 0 {
		log.Fatal("kernelbench: no samples on stdin")
	}

	fmt.Printf("=== kernelbench: %d samples, engine=%s, k=%d ===\n", len(samples), *engineName, *k)

	if err := roundTripReport(engine, samples); err != nil {
		log.Fatalf("kernelbench: round trip: %v", err)
	}
	if err := selfConvolutionReport(samples); err != nil {
		log.Fatalf("kernelbench: self convolution: %v", err)
	}
	if err := compressionReport(samples, *k); err != nil {
		log.Fatalf("kernelbench: compression: %v", err)
	}
}

func parseEngine(name string) (dft.Engine, error) {
	switch name {
	case "naive":
		return dft.Naive, nil
	case "recursive":
		return dft.Recursive, nil
	case "iterative":
		return dft.Iterative, nil
	default:
		return 0, fmt.Errorf("unknown engine %q", name)
	}
}

func readSamples(f *os.File) ([]float64, error) {
	var samples []float64
	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, err
		}
		samples = append(samples, v)
	}
	return samples, scanner.Err()
}

// roundTripReport pads samples to a power of two, forward transforms,
// inverse transforms, and reports the maximum absolute reconstruction
// error (property 1).
func roundTripReport(engine dft.Engine, samples []float64) error {
	padded := toComplexPow2(samples)

	freq, err := dft.DFT(engine, padded)
	if err != nil {
		return err
	}
	recon, err := dft.IDFT(engine, freq)
	if err != nil {
		return err
	}

	var maxErr float64
	for i := range padded {
		d := padded[i] - recon[i]
		e := math.Hypot(real(d), imag(d))
		if e > maxErr {
			maxErr = e
		}
	}
	fmt.Printf("round trip: N=%d max |x - idft(dft(x))| = %.3e\n", len(padded), maxErr)
	return nil
}

// selfConvolutionReport treats samples as integer polynomial coefficients
// (rounded) and multiplies the polynomial by itself via both the naive and
// NTT-backed strategies, reporting whether they agree.
func selfConvolutionReport(samples []float64) error {
	coeffs := make([]int64, len(samples))
	for i, v := range samples {
		coeffs[i] = int64(math.Round(v))
	}
	p := polynomial.New(coeffs)

	naive := polynomial.NaiveMultiply(p, p)
	fast, err := polynomial.IntegerMultiply(p, p)
	if err != nil {
		return err
	}

	agree := naive.Len() == fast.Len()
	if agree {
		for i := 0; i < naive.Len(); i++ {
			if naive.Coeff(i) != fast.Coeff(i) {
				agree = false
				break
			}
		}
	}
	fmt.Printf("self convolution: degree=%d naive/NTT agree=%t\n", naive.Degree(), agree)
	return nil
}

// compressionReport compresses samples to k frequency bins and reports the
// reconstruction RMS error.
func compressionReport(samples []float64, k int) error {
	encoded, err := compressor.Compress(samples, k)
	if err != nil {
		return err
	}
	recon, err := compressor.Decompress(encoded, len(samples))
	if err != nil {
		return err
	}

	var sumSq float64
	for i := range samples {
		d := samples[i] - recon[i]
		sumSq += d * d
	}
	rms := math.Sqrt(sumSq / float64(len(samples)))
	fmt.Printf("compression: kept %d/%d bins, RMS error = %.6f\n", len(encoded), bits.Pow2(len(samples)), rms)
	return nil
}

func toComplexPow2(x []float64) []complex128 {
	n := bits.Pow2(len(x))
	out := make([]complex128, n)
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}
