package particles

import (
	"math/rand"

	"github.com/Givikap120/lazer-go/framework/graphics/texture"
	"github.com/Givikap120/lazer-go/framework/math/vector"
)

const (
	fountainPerSecond   = 240
	fountainDurationMin = 800
	fountainDurationMax = 1200
	fountainGravity     = 800

	xVelocityFromDirection = 500
	xVelocityVariance      = 60
)

// StarFountain shoots stars upwards, leaning towards Direction (-1 left, 0 straight up, 1 right).
type StarFountain struct {
	Direction float32

	rng *rand.Rand
}

func NewStarFountain(rng *rand.Rand) *StarFountain {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	return &StarFountain{rng: rng}
}

func (fountain *StarFountain) NewParticle() (FallingParticle, bool) {
	return FallingParticle{
		StartPosition: vector.NewVec2f(0, 50),
		Duration:      fountain.randomRange(fountainDurationMin, fountainDurationMax),
		StartAngle:    fountain.randomVariance(4),
		EndAngle:      fountain.randomVariance(2),
		EndScale:      2.2 + fountain.randomVariance(0.4),
		Velocity:      vector.NewVec2f(xVelocityFromDirection*fountain.Direction+fountain.randomVariance(xVelocityVariance), -1400+fountain.randomVariance(100)),
	}, true
}

func (fountain *StarFountain) randomRange(lo, hi float32) float32 {
	return lo + fountain.rng.Float32()*(hi-lo)
}

func (fountain *StarFountain) randomVariance(variance float32) float32 {
	return fountain.randomRange(-variance, variance)
}

// NewStarFountainSpewer wires a StarFountain into a Spewer with the kiai fountain tuning.
func NewStarFountainSpewer(tex *texture.TextureRegion, rng *rand.Rand) (*Spewer, *StarFountain) {
	fountain := NewStarFountain(rng)

	spewer := NewSpewer(tex, fountainPerSecond, fountainDurationMax)
	spewer.Factory = fountain
	spewer.Gravity = fountainGravity

	return spewer, fountain
}
