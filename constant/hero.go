package constant

// Hero geometry and start state
const (
	HeroRadius    = 20.0
	HeroStartY    = 150.0
	Hero1StartX   = 50.0
	Hero2StartX   = 550.0
	HeroDirection = 1.0
)

// Hero colors, names resolved through paint.Parse
const (
	Hero1Color       = "blue"
	Hero1BulletColor = "#0000ff"
	Hero2Color       = "red"
	Hero2BulletColor = "#ff0000"
)

// Slider ranges
const (
	SpeedMin     = 1
	SpeedMax     = 10
	SpeedStep    = 1
	SpeedDefault = 2

	FireRateMin     = 100
	FireRateMax     = 2000
	FireRateStep    = 50
	FireRateDefault = 1000
)
