// Package conv holds allocation-light integer formatting for firmware code
// paths that must not pull in fmt or strconv.
package conv

// AppendUint appends the base-10 representation of n to dst.
func AppendUint(dst []byte, n uint64) []byte {
	var buf [20]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return append(dst, buf[i:]...)
}

// AppendInt appends the base-10 representation of n to dst. Negative numbers
// are supported, including the minimum int64.
func AppendInt(dst []byte, n int64) []byte {
	if n < 0 {
		dst = append(dst, '-')
		return AppendUint(dst, uint64(-(n+1))+1)
	}
	return AppendUint(dst, uint64(n))
}

// Itoa returns the base-10 representation of n.
func Itoa(n int64) string { return string(AppendInt(nil, n)) }
