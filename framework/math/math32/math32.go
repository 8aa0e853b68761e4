// Package math32 wraps the float64 math package for float32 arguments.
package math32

import "math"

const Pi = float32(math.Pi)

func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}
