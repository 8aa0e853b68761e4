package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Givikap120/lazer-go/app/users"
	"github.com/Givikap120/lazer-go/framework/files"
	"github.com/caarlos0/env/v11"
)

const DefaultPath = "settings.json"

type Config struct {
	Discord    *discord    `json:"Discord"`
	Particles  *particles  `json:"Particles"`
	Online     *online     `json:"Online"`
	Tournament *tournament `json:"Tournament"`
}

type discord struct {
	PresenceMode users.PresenceMode
	AppID        string
}

type particles struct {
	// Star fountain spawn rate, per second
	PerSecond int

	// Longest particle lifetime in milliseconds
	MaxDuration float64

	Gravity float32

	// Path to the particle texture, builtin size is used when empty
	Texture string
}

type online struct {
	Endpoint     string
	ClientID     string `env:"OSU_CLIENT_ID"`
	ClientSecret string `json:"-" env:"OSU_CLIENT_SECRET"`
	UserID       int    `env:"OSU_USER_ID"`
	CacheDB      string
}

type tournament struct {
	// Directory with tournament assets (videos, flags)
	Directory string

	// Ladder file, relative to Directory
	Bracket string
}

func Default() *Config {
	return &Config{
		Discord: &discord{
			PresenceMode: users.PresenceFull,
			AppID:        "367827983903490050",
		},
		Particles: &particles{
			PerSecond:   240,
			MaxDuration: 1200,
			Gravity:     800,
		},
		Online: &online{
			Endpoint: "https://osu.ppy.sh",
			CacheDB:  "cache.db",
		},
		Tournament: &tournament{
			Directory: "tournament",
			Bracket:   "bracket.json",
		},
	}
}

// Load reads the config at path, writing defaults if the file doesn't exist yet.
// Credentials from the environment override the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)

	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Println("Settings file not found, creating a new one:", path)

		if err = cfg.Save(path); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("failed to read settings: %w", err)
	default:
		if err = json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
		}

		cfg.restoreSections()
	}

	if err = env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to read settings from environment: %w", err)
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// restoreSections puts back defaults for sections set to null in the file.
func (cfg *Config) restoreSections() {
	defaults := Default()

	if cfg.Discord == nil {
		cfg.Discord = defaults.Discord
	}

	if cfg.Particles == nil {
		cfg.Particles = defaults.Particles
	}

	if cfg.Online == nil {
		cfg.Online = defaults.Online
	}

	if cfg.Tournament == nil {
		cfg.Tournament = defaults.Tournament
	}
}

func (cfg *Config) validate() error {
	if cfg.Particles.PerSecond <= 0 {
		return fmt.Errorf("invalid settings: Particles.PerSecond must be positive, got %d", cfg.Particles.PerSecond)
	}

	if cfg.Particles.MaxDuration <= 0 {
		return fmt.Errorf("invalid settings: Particles.MaxDuration must be positive, got %.2f", cfg.Particles.MaxDuration)
	}

	return nil
}

func (cfg *Config) Save(path string) error {
	data, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err = os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// BracketPath is the full path of the tournament ladder file.
func (cfg *Config) BracketPath() string {
	return filepath.Join(cfg.Tournament.Directory, cfg.Tournament.Bracket)
}

// Watch reloads the config whenever the file changes. Broken edits are logged and ignored.
func Watch(ctx context.Context, path string, onReload func(*Config)) error {
	return files.Watch(ctx, path, func() {
		cfg, err := Load(path)
		if err != nil {
			log.Println("Failed to reload settings:", err)
			return
		}

		log.Println("Settings reloaded")

		onReload(cfg)
	})
}
