package mutils

import (
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Abs[T constraints.Signed | constraints.Float](a T) T {
	if a < 0 {
		return -a
	}

	return a
}

func Clamp[T Number](x, minV, maxV T) T {
	return min(maxV, max(minV, x))
}

// Lerp returns a value between a and b. t outside of [0, 1] extrapolates.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Ceil rounds float up and converts it to the given integer type.
func Ceil[T constraints.Integer, F constraints.Float](v F) T {
	i := T(v)
	if F(i) < v {
		i++
	}

	return i
}
