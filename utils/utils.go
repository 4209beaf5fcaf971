// Package utils implements generic helper functions shared across the module.
package utils

import "golang.org/x/exp/constraints"

// Max returns the maximum of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a >= b {
		return a
	}

	return b
}

// Min returns the minimum of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a <= b {
		return a
	}

	return b
}

// EqualSlice checks the element-wise equality of two slices.
func EqualSlice[T comparable](a, b []T) (v bool) {
	if len(a) != len(b) {
		return false
	}

	v = true
	for i := range a {
		v = v && (a[i] == b[i])
	}

	return
}
