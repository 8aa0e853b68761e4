package vector

import (
	"fmt"

	"github.com/Givikap120/lazer-go/framework/math/math32"
)

type Vector2f struct {
	X, Y float32
}

func NewVec2f(x, y float32) Vector2f {
	return Vector2f{x, y}
}

func NewVec2fRad(rad, length float32) Vector2f {
	return Vector2f{math32.Cos(rad) * length, math32.Sin(rad) * length}
}

func (v Vector2f) X64() float64 {
	return float64(v.X)
}

func (v Vector2f) Y64() float64 {
	return float64(v.Y)
}

func (v Vector2f) Add(v1 Vector2f) Vector2f {
	return Vector2f{v.X + v1.X, v.Y + v1.Y}
}

func (v Vector2f) AddS(x, y float32) Vector2f {
	return Vector2f{v.X + x, v.Y + y}
}

func (v Vector2f) Sub(v1 Vector2f) Vector2f {
	return Vector2f{v.X - v1.X, v.Y - v1.Y}
}

func (v Vector2f) Mult(v1 Vector2f) Vector2f {
	return Vector2f{v.X * v1.X, v.Y * v1.Y}
}

func (v Vector2f) Scl(mag float32) Vector2f {
	return Vector2f{v.X * mag, v.Y * mag}
}

func (v Vector2f) Len() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2f) Dst(v1 Vector2f) float32 {
	return v.Sub(v1).Len()
}

// Rotate rotates the vector counter-clockwise around the origin.
func (v Vector2f) Rotate(rad float32) Vector2f {
	cos, sin := math32.Cos(rad), math32.Sin(rad)
	return Vector2f{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

func (v Vector2f) Lerp(v1 Vector2f, t float32) Vector2f {
	return Vector2f{v.X + (v1.X-v.X)*t, v.Y + (v1.Y-v.Y)*t}
}

func (v Vector2f) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vector2f) String() string {
	return fmt.Sprintf("%.2fx%.2f", v.X, v.Y)
}
