package utils

import "golang.org/x/exp/constraints"

// Min returns the smaller of x and y.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Abs returns |x|.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// CeilDiv returns x/y rounded up, for positive y.
func CeilDiv[T constraints.Integer](x, y T) T {
	if x <= 0 {
		return 0
	}
	return (x + y - 1) / y
}
