package particles

import (
	"github.com/Givikap120/lazer-go/framework/graphics/batch"
	"github.com/Givikap120/lazer-go/framework/graphics/blend"
	"github.com/Givikap120/lazer-go/framework/graphics/layout"
	"github.com/Givikap120/lazer-go/framework/graphics/texture"
	"github.com/Givikap120/lazer-go/framework/math/color"
	"github.com/Givikap120/lazer-go/framework/math/math32"
	"github.com/Givikap120/lazer-go/framework/math/vector"
	"github.com/go-gl/mathgl/mgl32"
)

// DrawSnapshot is a frame's worth of Spewer state. It does not share memory with the Spewer,
// so it can be read on the draw thread while the next update runs.
type DrawSnapshot struct {
	Particles []FallingParticle

	CurrentTime float32
	Gravity     float32
	MaxDuration float32

	RelativePositionAxes layout.Axes
	SourceSize           vector.Vector2f
	Matrix               mgl32.Mat3

	Colour   color.Color
	Texture  *texture.TextureRegion
	Blending blend.Mode
}

// Blit submits a rotated quad for every visible particle and returns how many were drawn.
func (node *DrawSnapshot) Blit(sink batch.QuadSink) (drawn int) {
	if node.Texture == nil {
		return 0
	}

	for _, p := range node.Particles {
		// ignore particles that weren't initialized.
		if p.StartTime <= 0 {
			continue
		}

		timeSinceStart := node.CurrentTime - p.StartTime

		// ignore particles from the future.
		// these can appear when seeking in replays.
		if timeSinceStart < 0 {
			continue
		}

		alpha := p.AlphaAtTime(timeSinceStart)
		if alpha <= 0 {
			continue
		}

		pos := p.PositionAtTime(timeSinceStart, node.Gravity, node.MaxDuration)
		scale := p.ScaleAtTime(timeSinceStart)
		angle := p.AngleAtTime(timeSinceStart)

		sink.DrawQuad(node.Texture, node.quadAt(pos, scale, angle), node.Colour.MultiplyAlpha(alpha), node.Blending)

		drawn++
	}

	return
}

func (node *DrawSnapshot) quadAt(pos vector.Vector2f, scale, angle float32) batch.Quad {
	topLeft, size := node.drawRect(pos, scale)
	centre := topLeft.Add(size.Scl(0.5))

	return batch.Quad{
		TopLeft:     node.transformPosition(topLeft, centre, angle),
		TopRight:    node.transformPosition(topLeft.AddS(size.X, 0), centre, angle),
		BottomLeft:  node.transformPosition(topLeft.AddS(0, size.Y), centre, angle),
		BottomRight: node.transformPosition(topLeft.Add(size), centre, angle),
	}
}

func (node *DrawSnapshot) drawRect(position vector.Vector2f, scale float32) (topLeft, size vector.Vector2f) {
	width := node.Texture.DisplayWidth() * scale
	height := node.Texture.DisplayHeight() * scale

	if node.RelativePositionAxes.Has(layout.AxesX) {
		position.X *= node.SourceSize.X
	}

	if node.RelativePositionAxes.Has(layout.AxesY) {
		position.Y *= node.SourceSize.Y
	}

	return vector.NewVec2f(position.X-width/2, position.Y-height/2), vector.NewVec2f(width, height)
}

func (node *DrawSnapshot) transformPosition(pos, centre vector.Vector2f, angle float32) vector.Vector2f {
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)

	x := centre.X + (pos.X-centre.X)*cos + (pos.Y-centre.Y)*sin
	y := centre.Y + (pos.Y-centre.Y)*cos - (pos.X-centre.X)*sin

	return batch.Transform(node.Matrix, vector.NewVec2f(x, y))
}
