package batch

import (
	"github.com/Givikap120/lazer-go/framework/graphics/blend"
	"github.com/Givikap120/lazer-go/framework/graphics/texture"
	"github.com/Givikap120/lazer-go/framework/math/color"
	"github.com/Givikap120/lazer-go/framework/math/vector"
	"github.com/go-gl/mathgl/mgl32"
)

type Quad struct {
	TopLeft     vector.Vector2f
	TopRight    vector.Vector2f
	BottomLeft  vector.Vector2f
	BottomRight vector.Vector2f
}

func (q Quad) Centre() vector.Vector2f {
	return q.TopLeft.Add(q.TopRight).Add(q.BottomLeft).Add(q.BottomRight).Scl(0.25)
}

// QuadSink is implemented by whatever ends up submitting vertices to the GPU.
type QuadSink interface {
	DrawQuad(tex *texture.TextureRegion, quad Quad, colour color.Color, mode blend.Mode)
}

type DrawnQuad struct {
	Texture *texture.TextureRegion
	Quad    Quad
	Colour  color.Color
	Blend   blend.Mode
}

// QuadCollector keeps submitted quads in memory.
type QuadCollector struct {
	Quads []DrawnQuad
}

func (c *QuadCollector) DrawQuad(tex *texture.TextureRegion, quad Quad, colour color.Color, mode blend.Mode) {
	c.Quads = append(c.Quads, DrawnQuad{
		Texture: tex,
		Quad:    quad,
		Colour:  colour,
		Blend:   mode,
	})
}

func (c *QuadCollector) Reset() {
	c.Quads = c.Quads[:0]
}

// Transform applies a 2D homogeneous matrix to the position.
func Transform(m mgl32.Mat3, pos vector.Vector2f) vector.Vector2f {
	res := m.Mul3x1(mgl32.Vec3{pos.X, pos.Y, 1})
	return vector.NewVec2f(res.X(), res.Y())
}

// DrawMatrix builds the local-to-screen matrix of a drawable: scale, then rotation, then translation.
func DrawMatrix(position vector.Vector2f, scale vector.Vector2f, rotation float32) mgl32.Mat3 {
	return mgl32.Translate2D(position.X, position.Y).
		Mul3(mgl32.HomogRotate2D(rotation)).
		Mul3(mgl32.Scale2D(scale.X, scale.Y))
}
