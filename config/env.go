package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvPrefix = "DUEL_"

	envHero1Speed       = EnvPrefix + "HERO1_SPEED"
	envHero1FireRate    = EnvPrefix + "HERO1_FIRE_RATE"
	envHero1Color       = EnvPrefix + "HERO1_COLOR"
	envHero1BulletColor = EnvPrefix + "HERO1_BULLET_COLOR"
	envHero2Speed       = EnvPrefix + "HERO2_SPEED"
	envHero2FireRate    = EnvPrefix + "HERO2_FIRE_RATE"
	envHero2Color       = EnvPrefix + "HERO2_COLOR"
	envHero2BulletColor = EnvPrefix + "HERO2_BULLET_COLOR"
	envAudio            = EnvPrefix + "AUDIO"
	envVolume           = EnvPrefix + "VOLUME"
	envFrameMs          = EnvPrefix + "FRAME_MS"
	envDebug            = EnvPrefix + "DEBUG"
)

// LoadEnv loads file into the process environment when given, then applies DUEL_* overrides
// Variables already set in the environment win over the file
func (c *Config) LoadEnv(file string) error {
	if file != "" {
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("load env file %s: %w", file, err)
		}
	}
	return c.ApplyEnv(os.LookupEnv)
}

// ApplyEnv overrides fields from a variable lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{envHero1Speed, &c.Hero1.Speed},
		{envHero1FireRate, &c.Hero1.FireRate},
		{envHero2Speed, &c.Hero2.Speed},
		{envHero2FireRate, &c.Hero2.FireRate},
		{envFrameMs, &c.FrameMs},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", f.key, v, ErrInvalidValue)
		}
		*f.dst = n
	}

	strs := []struct {
		key string
		dst *string
	}{
		{envHero1Color, &c.Hero1.Color},
		{envHero1BulletColor, &c.Hero1.BulletColor},
		{envHero2Color, &c.Hero2.Color},
		{envHero2BulletColor, &c.Hero2.BulletColor},
	}
	for _, f := range strs {
		if v, ok := lookup(f.key); ok {
			*f.dst = v
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{envAudio, &c.Audio.Enabled},
		{envDebug, &c.Debug},
	}
	for _, f := range bools {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", f.key, v, ErrInvalidValue)
		}
		*f.dst = b
	}

	if v, ok := lookup(envVolume); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", envVolume, v, ErrInvalidValue)
		}
		c.Audio.Volume = f
	}
	return nil
}
