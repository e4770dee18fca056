package sim

import (
	"github.com/lixenwraith/duel/constant"
	"github.com/lixenwraith/duel/paint"
)

// HeroSetup is the initial state of one hero
type HeroSetup struct {
	X, Y        float64
	Color       paint.Color
	BulletColor paint.Color
	Params      HeroParams
}

// Setup configures a Simulation
type Setup struct {
	Width, Height float64
	HeroRadius    float64
	BulletRadius  float64
	BulletSpeed   float64
	Heroes        [HeroCount]HeroSetup

	// OnHit is invoked once per confirmed collision with the ID of the hero that fired
	OnHit func(HeroID)
}

// DefaultSetup returns the classic 600x300 duel layout
func DefaultSetup() Setup {
	params := DefaultParams()
	return Setup{
		Width:        constant.FieldWidth,
		Height:       constant.FieldHeight,
		HeroRadius:   constant.HeroRadius,
		BulletRadius: constant.BulletRadius,
		BulletSpeed:  constant.BulletSpeed,
		Heroes: [HeroCount]HeroSetup{
			{
				X:           constant.Hero1StartX,
				Y:           constant.HeroStartY,
				Color:       paint.MustParse(constant.Hero1Color),
				BulletColor: paint.MustParse(constant.Hero1BulletColor),
				Params:      params[Hero1],
			},
			{
				X:           constant.Hero2StartX,
				Y:           constant.HeroStartY,
				Color:       paint.MustParse(constant.Hero2Color),
				BulletColor: paint.MustParse(constant.Hero2BulletColor),
				Params:      params[Hero2],
			},
		},
	}
}
