// Package mathx has the small integer helpers shared by the drivers. No
// floats and no allocations; everything here is safe on an MCU.
package mathx

import "golang.org/x/exp/constraints"

// Between reports whether v lies in [lo, hi], bounds inclusive and given in
// either order.
func Between[T constraints.Ordered](v, lo, hi T) bool {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo <= v && v <= hi
}

// Clamp pins v into [lo, hi], bounds given in either order.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

func Min[T constraints.Ordered](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// AbsU8 returns the magnitude of x. The result is unsigned so -128 fits.
func AbsU8(x int8) uint8 {
	if x >= 0 {
		return uint8(x)
	}
	return uint8(-int16(x))
}
