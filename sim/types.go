package sim

import (
	"time"

	"github.com/lixenwraith/duel/constant"
	"github.com/lixenwraith/duel/paint"
)

// HeroID identifies one of the two heroes
type HeroID int

const (
	Hero1 HeroID = iota
	Hero2
)

// HeroCount is fixed for the lifetime of a simulation
const HeroCount = 2

// String returns "hero1" or "hero2"
func (id HeroID) String() string {
	switch id {
	case Hero1:
		return "hero1"
	case Hero2:
		return "hero2"
	default:
		return "unknown"
	}
}

// Valid reports whether id names an existing hero
func (id HeroID) Valid() bool {
	return id == Hero1 || id == Hero2
}

// Opponent returns the other hero
func (id HeroID) Opponent() HeroID {
	if id == Hero1 {
		return Hero2
	}
	return Hero1
}

// Bullet is a projectile moving horizontally until it leaves the field or hits the opponent
type Bullet struct {
	X, Y      float64
	Radius    float64
	Color     paint.Color
	Direction float64 // +1 right, -1 left
	Speed     float64 // Units per step
}

// Hero is a circular entity bouncing vertically and firing at the opponent
type Hero struct {
	ID          HeroID
	X, Y        float64
	Radius      float64
	Color       paint.Color
	Direction   float64 // +1 down, -1 up
	Speed       float64 // Units per step
	FireRate    int     // Higher fires faster, see FireInterval
	BulletColor paint.Color
	Bullets     []Bullet
}

// HeroParams are the externally adjustable values for one hero
type HeroParams struct {
	Speed    int
	FireRate int
}

// Params holds adjustable values for both heroes, indexed by HeroID
type Params [HeroCount]HeroParams

// DefaultParams returns slider defaults for both heroes
func DefaultParams() Params {
	p := HeroParams{Speed: constant.SpeedDefault, FireRate: constant.FireRateDefault}
	return Params{p, p}
}

// FireInterval converts a fire rate into the delay between shots
// Never shorter than one frame
func FireInterval(rate int) time.Duration {
	d := time.Duration(constant.FireIntervalBaseMs-rate) * time.Millisecond
	if d < constant.FrameUpdateInterval {
		return constant.FrameUpdateInterval
	}
	return d
}
