package mathx

import "golang.org/x/exp/constraints"

// RoundDiv is a/b rounded half up. b == 0 yields 0.
func RoundDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b/2) / b
}

// MulDiv16 returns floor(x*num/den) using a 32-bit product, so no
// intermediate overflows. den == 0 yields 0.
func MulDiv16(x, num, den uint16) uint32 {
	if den == 0 {
		return 0
	}
	return uint32(x) * uint32(num) / uint32(den)
}
