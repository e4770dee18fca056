package constant

// Play field in logical units, independent of the output device
const (
	FieldWidth  = 600.0
	FieldHeight = 300.0
)

// Bullet geometry and motion (units per step)
const (
	BulletRadius = 5.0
	BulletSpeed  = 5.0
)

// FireIntervalBaseMs is the fire timer base; interval = base - fire rate
const FireIntervalBaseMs = 2100
