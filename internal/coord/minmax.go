package coord

import "golang.org/x/exp/constraints"

// Clamp bounds v to [lo, hi]. A NaN v passes through unchanged (both
// comparisons are false); internal/wire's Cmp rejects NaN box centers
// before they reach the sortable-hash quantization.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
