// Package config loads duel settings from TOML or YAML files, a .env file and DUEL_* environment variables
//
// Precedence, lowest first: Default, config file, .env, process environment, command-line flags.
// Flags are applied by the caller after Load and LoadEnv.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/duel/constant"
	"github.com/lixenwraith/duel/paint"
	"github.com/lixenwraith/duel/sim"
	"github.com/lixenwraith/duel/vmath"
)

var (
	ErrUnknownFormat = errors.New("unknown config format")
	ErrInvalidValue  = errors.New("invalid config value")
)

// HeroConfig holds the start parameters and colors of one hero
type HeroConfig struct {
	Speed       int    `toml:"speed" yaml:"speed"`
	FireRate    int    `toml:"fire_rate" yaml:"fire_rate"`
	Color       string `toml:"color" yaml:"color"`
	BulletColor string `toml:"bullet_color" yaml:"bullet_color"`
}

// AudioConfig controls the sound manager
type AudioConfig struct {
	Enabled bool    `toml:"enabled" yaml:"enabled"`
	Volume  float64 `toml:"volume" yaml:"volume"`
}

// Config is the full settings tree
type Config struct {
	Hero1   HeroConfig  `toml:"hero1" yaml:"hero1"`
	Hero2   HeroConfig  `toml:"hero2" yaml:"hero2"`
	Audio   AudioConfig `toml:"audio" yaml:"audio"`
	FrameMs int         `toml:"frame_ms" yaml:"frame_ms"`
	Debug   bool        `toml:"debug" yaml:"debug"`
}

// Default returns the classic duel settings
func Default() Config {
	return Config{
		Hero1: HeroConfig{
			Speed:       constant.SpeedDefault,
			FireRate:    constant.FireRateDefault,
			Color:       constant.Hero1Color,
			BulletColor: constant.Hero1BulletColor,
		},
		Hero2: HeroConfig{
			Speed:       constant.SpeedDefault,
			FireRate:    constant.FireRateDefault,
			Color:       constant.Hero2Color,
			BulletColor: constant.Hero2BulletColor,
		},
		Audio:   AudioConfig{Enabled: true, Volume: 0.6},
		FrameMs: int(constant.FrameUpdateInterval / time.Millisecond),
	}
}

// DefaultPath returns ~/.config/duel/config.toml, or "" when the home directory is unknown
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "duel", "config.toml")
}

// Load reads path over Default; the decoder is chosen by extension
// An empty path tries DefaultPath and silently falls back to Default when it does not exist
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := loadYAML(path, &cfg); err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	return cfg, nil
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// Encode writes cfg as TOML
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Hero returns the settings of one hero
func (c *Config) Hero(id sim.HeroID) *HeroConfig {
	if id == sim.Hero2 {
		return &c.Hero2
	}
	return &c.Hero1
}

// FrameInterval returns the simulation step interval
func (c Config) FrameInterval() time.Duration {
	if c.FrameMs <= 0 {
		return constant.FrameUpdateInterval
	}
	return time.Duration(c.FrameMs) * time.Millisecond
}

// Normalize clamps numeric values into their slider and device ranges
func (c *Config) Normalize() {
	for _, h := range []*HeroConfig{&c.Hero1, &c.Hero2} {
		h.Speed = vmath.ClampInt(h.Speed, constant.SpeedMin, constant.SpeedMax)
		h.FireRate = vmath.ClampInt(h.FireRate, constant.FireRateMin, constant.FireRateMax)
	}
	c.Audio.Volume = vmath.Clamp(c.Audio.Volume, 0, 1)
	if c.FrameMs <= 0 {
		c.FrameMs = int(constant.FrameUpdateInterval / time.Millisecond)
	}
}

// Validate reports every color that does not parse
func (c Config) Validate() error {
	var errs []error
	for i, h := range []HeroConfig{c.Hero1, c.Hero2} {
		id := sim.HeroID(i)
		if _, err := paint.Parse(h.Color); err != nil {
			errs = append(errs, fmt.Errorf("%s.color: %w", id, err))
		}
		if _, err := paint.Parse(h.BulletColor); err != nil {
			errs = append(errs, fmt.Errorf("%s.bullet_color: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

// Setup converts a validated config into simulation setup
func (c Config) Setup() (sim.Setup, error) {
	if err := c.Validate(); err != nil {
		return sim.Setup{}, err
	}
	setup := sim.DefaultSetup()
	for i, h := range []HeroConfig{c.Hero1, c.Hero2} {
		hs := &setup.Heroes[i]
		hs.Color = paint.MustParse(h.Color)
		hs.BulletColor = paint.MustParse(h.BulletColor)
		hs.Params = sim.HeroParams{Speed: h.Speed, FireRate: h.FireRate}
	}
	return setup, nil
}
