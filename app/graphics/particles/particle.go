package particles

import (
	"github.com/Givikap120/lazer-go/framework/math/mutils"
	"github.com/Givikap120/lazer-go/framework/math/vector"
)

// FallingParticle is a single spawned particle. Times are in milliseconds.
type FallingParticle struct {
	// StartTime is stamped by the Spewer at spawn time. Values <= 0 mark an unused slot.
	StartTime float32

	StartPosition vector.Vector2f
	Velocity      vector.Vector2f

	Duration float32

	StartAngle float32
	EndAngle   float32

	EndScale float32
}

func (p FallingParticle) AlphaAtTime(timeSinceStart float32) float32 {
	return 1 - p.progressAtTime(timeSinceStart)
}

func (p FallingParticle) ScaleAtTime(timeSinceStart float32) float32 {
	return 1 + (p.EndScale-1)*p.progressAtTime(timeSinceStart)
}

func (p FallingParticle) AngleAtTime(timeSinceStart float32) float32 {
	return mutils.Lerp(p.StartAngle, p.EndAngle, p.progressAtTime(timeSinceStart))
}

// PositionAtTime moves the particle along its velocity, with gravity growing as the particle ages.
// Particles living shorter than maxDuration feel proportionally less gravity.
func (p FallingParticle) PositionAtTime(timeSinceStart, gravity, maxDuration float32) vector.Vector2f {
	progress := p.progressAtTime(timeSinceStart)
	currentGravity := vector.NewVec2f(0, gravity*p.Duration/maxDuration*progress)

	return p.StartPosition.Add(p.Velocity.Add(currentGravity).Scl(timeSinceStart / maxDuration))
}

func (p FallingParticle) progressAtTime(timeSinceStart float32) float32 {
	if p.Duration <= 0 {
		return 1
	}

	return mutils.Clamp(timeSinceStart/p.Duration, 0, 1)
}
