package particles

// ParticleFactory produces new particles for a Spewer.
// Returning false skips the current spawn tick.
type ParticleFactory interface {
	NewParticle() (FallingParticle, bool)
}

// FactoryFunc adapts a plain function to ParticleFactory.
type FactoryFunc func() (FallingParticle, bool)

func (f FactoryFunc) NewParticle() (FallingParticle, bool) {
	return f()
}

// DefaultFactory spawns zero-valued particles.
var DefaultFactory = FactoryFunc(func() (FallingParticle, bool) {
	return FallingParticle{}, true
})
