package compressor

import "math/cmplx"

// selectTopKIndices returns the indices of the k bins of x with largest
// magnitude, via a Hoare/Lomuto-style quickselect: O(N) expected time,
// versus sorting the whole spectrum. The returned indices are NOT sorted
// by magnitude among themselves; the only guarantee is that every kept
// bin's magnitude is >= every discarded bin's.
func selectTopKIndices(x []complex128, k int) []int {
	n := len(x)
	if k >= n {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	if k <= 0 {
		return nil
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	lo, hi := 0, n-1
	for lo < hi {
		p := partitionByMagnitude(idx, x, lo, hi)
		if p == k-1 {
			break
		}
		if p < k-1 {
			lo = p + 1
		} else {
			hi = p - 1
		}
	}
	return idx[:k]
}

// partitionByMagnitude partitions idx[lo:hi+1] in place around the
// magnitude of x[idx[hi]], descending: elements with strictly greater
// magnitude than the pivot end up to its left. Returns the pivot's final
// position.
func partitionByMagnitude(idx []int, x []complex128, lo, hi int) int {
	pivotMag := cmplx.Abs(x[idx[hi]])
	i := lo
	for j := lo; j < hi; j++ {
		if cmplx.Abs(x[idx[j]]) > pivotMag {
			idx[i], idx[j] = idx[j], idx[i]
			i++
		}
	}
	idx[i], idx[hi] = idx[hi], idx[i]
	return i
}
