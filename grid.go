package riemann

import "iter"

// Grid enumerates every cell of the n-dimensional partition grid as a tuple
// of per-dimension partition indices.
//
// The sequence is the Cartesian product of range(partitions_k) for each
// dimension k, in row-major order (last dimension fastest), exactly the
// order of nested loops with the first dimension outermost. It is finite
// (product of all partition counts), restartable, and never materialized:
// cells are produced one at a time by an odometer over the index tuple.
//
// Each yielded slice is a fresh copy and safe to retain. Zero dimensions
// yield an empty sequence.
func Grid(dims ...Dimension) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if len(dims) == 0 {
			return
		}

		idx := make([]int, len(dims))
		for {
			cell := make([]int, len(idx))
			copy(cell, idx)
			if !yield(cell) {
				return
			}
			if !advance(idx, dims) {
				return
			}
		}
	}
}

// GridSize returns the total number of grid cells, the product of all
// partition counts.
func GridSize(dims []Dimension) int64 {
	total := int64(1)
	for _, d := range dims {
		total *= int64(d.Interval.partitions)
	}
	return total
}

// advance increments the index tuple odometer-style: bump the last index,
// carry into more-significant indices on overflow. Returns false once the
// tuple wraps past the final cell.
func advance(idx []int, dims []Dimension) bool {
	for k := len(idx) - 1; k >= 0; k-- {
		idx[k]++
		if idx[k] < dims[k].Interval.partitions {
			return true
		}
		idx[k] = 0
	}
	return false
}

// decodeCell writes the index tuple of the cell with the given linear id
// into idx, using the same row-major order Grid enumerates in. The parallel
// engine uses this to start each worker at its range boundary without
// walking the cells before it.
func decodeCell(id int64, dims []Dimension, idx []int) {
	for k := len(dims) - 1; k >= 0; k-- {
		n := int64(dims[k].Interval.partitions)
		idx[k] = int(id % n)
		id /= n
	}
}
