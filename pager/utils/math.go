package utils

import "cmp"

// Clamp returns v limited to the closed range [lo, hi]. If hi < lo, lo wins.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
