package particles

import (
	"fmt"
	"math"

	"github.com/Givikap120/lazer-go/framework/graphics/blend"
	"github.com/Givikap120/lazer-go/framework/graphics/layout"
	"github.com/Givikap120/lazer-go/framework/graphics/texture"
	"github.com/Givikap120/lazer-go/framework/math/color"
	"github.com/Givikap120/lazer-go/framework/math/vector"
	"github.com/go-gl/mathgl/mgl32"
)

// Spewer keeps a fixed ring of particles and spawns new ones at a fixed rate while active.
// Update and ApplyState are expected to be called from the update thread only,
// the draw side consumes DrawSnapshot copies.
type Spewer struct {
	Texture  *texture.TextureRegion
	Blending blend.Mode

	Factory ParticleFactory

	Gravity float32

	RelativePositionAxes layout.Axes
	DrawSize             vector.Vector2f
	DrawMatrix           mgl32.Mat3
	Colour               color.Color

	particles    []FallingParticle
	currentIndex int
	filled       int

	lastParticleAdded float64
	spawned           bool

	cooldown    float64
	maxDuration float64

	active      bool
	currentTime float64
}

// NewSpewer creates a spewer able to hold perSecond particles for every started second of maxDuration.
func NewSpewer(tex *texture.TextureRegion, perSecond int, maxDuration float64) *Spewer {
	if perSecond <= 0 || maxDuration <= 0 {
		panic(fmt.Sprintf("particles: invalid spewer parameters: %d per second, %.2fms duration", perSecond, maxDuration))
	}

	return &Spewer{
		Texture:     tex,
		Blending:    blend.Additive,
		Factory:     DefaultFactory,
		DrawMatrix:  mgl32.Ident3(),
		Colour:      color.NewL(1),
		particles:   make([]FallingParticle, perSecond*int(math.Ceil(maxDuration/1000))),
		cooldown:    1000 / float64(perSecond),
		maxDuration: maxDuration,
	}
}

func (spewer *Spewer) SetActive(active bool) {
	spewer.active = active
}

func (spewer *Spewer) Active() bool {
	return spewer.active
}

// IsPresent reports whether the spewer has anything to draw: it is spawning, or the last spawn
// happened less than maxDuration ago.
func (spewer *Spewer) IsPresent() bool {
	return spewer.active || spewer.lastParticleAdded+spewer.maxDuration > spewer.currentTime
}

func (spewer *Spewer) Update(time float64) {
	spewer.currentTime = time

	// Clock was rewound, happens when seeking in replays.
	if spewer.lastParticleAdded > time {
		spewer.lastParticleAdded = 0
		spewer.spawned = false
	}

	if !spewer.active || (spewer.spawned && time-spewer.lastParticleAdded < spewer.cooldown) {
		return
	}

	factory := spewer.Factory
	if factory == nil {
		factory = DefaultFactory
	}

	particle, ok := factory.NewParticle()
	if !ok {
		return
	}

	particle.StartTime = float32(time)

	spewer.particles[spewer.currentIndex] = particle
	spewer.currentIndex = (spewer.currentIndex + 1) % len(spewer.particles)
	spewer.filled = min(spewer.filled+1, len(spewer.particles))

	spewer.lastParticleAdded = time
	spewer.spawned = true
}

// Len returns the number of slots written at least once.
func (spewer *Spewer) Len() int {
	return spewer.filled
}

func (spewer *Spewer) Cap() int {
	return len(spewer.particles)
}

func (spewer *Spewer) Cooldown() float64 {
	return spewer.cooldown
}

func (spewer *Spewer) MaxDuration() float64 {
	return spewer.maxDuration
}

func (spewer *Spewer) CurrentTime() float64 {
	return spewer.currentTime
}

// Particles returns a copy of the ring buffer in slot order.
func (spewer *Spewer) Particles() []FallingParticle {
	return append([]FallingParticle(nil), spewer.particles...)
}

// ApplyState copies everything the draw side needs into snapshot, reusing its buffer.
func (spewer *Spewer) ApplyState(snapshot *DrawSnapshot) {
	if cap(snapshot.Particles) < len(spewer.particles) {
		snapshot.Particles = make([]FallingParticle, len(spewer.particles))
	}

	snapshot.Particles = snapshot.Particles[:len(spewer.particles)]
	copy(snapshot.Particles, spewer.particles)

	snapshot.CurrentTime = float32(spewer.currentTime)
	snapshot.Gravity = spewer.Gravity
	snapshot.MaxDuration = float32(spewer.maxDuration)
	snapshot.RelativePositionAxes = spewer.RelativePositionAxes
	snapshot.SourceSize = spewer.DrawSize
	snapshot.Matrix = spewer.DrawMatrix
	snapshot.Colour = spewer.Colour
	snapshot.Texture = spewer.Texture
	snapshot.Blending = spewer.Blending
}

func (spewer *Spewer) Snapshot() *DrawSnapshot {
	snapshot := new(DrawSnapshot)
	spewer.ApplyState(snapshot)

	return snapshot
}
