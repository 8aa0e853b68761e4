package settings

import (
	"fmt"
	"slices"

	"github.com/Givikap120/lazer-go/app/users"
)

// ParticleDensity is a spawn rate option shown in the settings panel.
type ParticleDensity int

func (d ParticleDensity) String() string {
	return fmt.Sprintf("%d per second", int(d))
}

var particleDensities = []ParticleDensity{60, 120, 240, 480}

// Panel builds the settings entries bound to cfg, changes are written straight into it.
func Panel(cfg *Config) []Item {
	presence := NewDropdown("Discord Rich Presence", users.PresenceModes()...)
	presence.Select(cfg.Discord.PresenceMode)
	presence.OnChange = func(mode users.PresenceMode) {
		cfg.Discord.PresenceMode = mode
	}

	densities := particleDensities
	if current := ParticleDensity(cfg.Particles.PerSecond); !slices.Contains(densities, current) {
		densities = append(append([]ParticleDensity(nil), densities...), current)
	}

	density := NewDropdown("Particle density", densities...)
	density.Select(ParticleDensity(cfg.Particles.PerSecond))
	density.OnChange = func(d ParticleDensity) {
		cfg.Particles.PerSecond = int(d)
	}

	return []Item{presence, density}
}
