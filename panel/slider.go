package panel

import (
	"math"

	"github.com/lixenwraith/duel/vmath"
)

// Slider is a bounded integer input
type Slider struct {
	Label string
	Min   int
	Max   int
	Step  int
	Value int
}

// Set clamps v into range and stores it, returns true if the value changed
func (s *Slider) Set(v int) bool {
	v = vmath.ClampInt(v, s.Min, s.Max)
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

// Nudge moves the value by a number of steps
func (s *Slider) Nudge(steps int) bool {
	step := s.Step
	if step <= 0 {
		step = 1
	}
	return s.Set(s.Value + steps*step)
}

// SetFraction maps f in [0,1] along the track, snapped to Step
func (s *Slider) SetFraction(f float64) bool {
	f = vmath.Clamp(f, 0, 1)
	step := s.Step
	if step <= 0 {
		step = 1
	}
	span := float64(s.Max - s.Min)
	steps := math.Round(f * span / float64(step))
	return s.Set(s.Min + int(steps)*step)
}

// Fraction returns the value's position along the track in [0,1]
func (s Slider) Fraction() float64 {
	if s.Max <= s.Min {
		return 0
	}
	return float64(s.Value-s.Min) / float64(s.Max-s.Min)
}
