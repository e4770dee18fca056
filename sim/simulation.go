// Package sim holds the duel state and the per-step update: hero movement, bullets and collisions
//
// The simulation never draws and never reads a clock. Its owner calls Step once per frame
// and Fire from each hero's fire timer. Pointer and parameter changes arriving between
// steps are written into an input slot and take effect at the start of the next Step.
package sim

import (
	"slices"

	"github.com/lixenwraith/duel/paint"
	"github.com/lixenwraith/duel/vmath"
)

// input is the slot written by callbacks and consumed by Step
type input struct {
	params    Params
	hasParams bool

	pointer      vmath.Point
	pointerValid bool
}

// Simulation owns both heroes and their bullets
type Simulation struct {
	width, height float64
	bulletRadius  float64
	bulletSpeed   float64

	heroes [HeroCount]Hero

	pending input

	// Active pointer, copied from the slot at step start
	pointer    vmath.Point
	hasPointer bool

	onHit  func(HeroID)
	hitBuf []HeroID
	steps  uint64
}

// New creates a simulation with heroes placed and parameterized per setup
func New(setup Setup) *Simulation {
	s := &Simulation{
		width:        setup.Width,
		height:       setup.Height,
		bulletRadius: setup.BulletRadius,
		bulletSpeed:  setup.BulletSpeed,
		onHit:        setup.OnHit,
	}

	for i, hs := range setup.Heroes {
		id := HeroID(i)
		s.heroes[i] = Hero{
			ID:          id,
			X:           hs.X,
			Y:           vmath.Clamp(hs.Y, setup.HeroRadius, setup.Height-setup.HeroRadius),
			Radius:      setup.HeroRadius,
			Color:       hs.Color,
			Direction:   1,
			BulletColor: hs.BulletColor,
		}
		s.heroes[i].apply(hs.Params)
	}
	return s
}

// SetOnHit replaces the hit callback
func (s *Simulation) SetOnHit(fn func(HeroID)) {
	s.onHit = fn
}

// SetParams queues new speed and fire-rate values for the next step
// Positions, directions and bullets are untouched
func (s *Simulation) SetParams(p Params) {
	s.pending.params = p
	s.pending.hasParams = true
}

// PointerMove records the repulsion point in field units
func (s *Simulation) PointerMove(x, y float64) {
	s.pending.pointer = vmath.Point{X: x, Y: y}
	s.pending.pointerValid = true
}

// PointerLeave clears the repulsion point
func (s *Simulation) PointerLeave() {
	s.pending.pointerValid = false
}

// Step advances the simulation by one frame
func (s *Simulation) Step() {
	s.applyInput()
	for i := range s.heroes {
		s.moveHero(&s.heroes[i])
	}
	s.moveBullets()
	s.checkCollisions()
	s.steps++
}

// Fire appends a bullet at the hero's center, aimed at the opponent, in the hero's current bullet color
func (s *Simulation) Fire(id HeroID) {
	if !id.Valid() {
		return
	}
	h := &s.heroes[id]
	other := &s.heroes[id.Opponent()]

	dir := vmath.Sign(other.X - h.X)
	if dir == 0 {
		dir = 1
		if id == Hero2 {
			dir = -1
		}
	}

	h.Bullets = append(h.Bullets, Bullet{
		X:         h.X,
		Y:         h.Y,
		Radius:    s.bulletRadius,
		Color:     h.BulletColor,
		Direction: dir,
		Speed:     s.bulletSpeed,
	})
}

// HeroAt returns the hero whose circle contains the point, hero1 first
func (s *Simulation) HeroAt(x, y float64) (HeroID, bool) {
	for i := range s.heroes {
		h := &s.heroes[i]
		if vmath.PointInCircle(x, y, h.X, h.Y, h.Radius) {
			return h.ID, true
		}
	}
	return 0, false
}

// SetBulletColor changes the color of bullets fired from now on
func (s *Simulation) SetBulletColor(id HeroID, c paint.Color) {
	if id.Valid() {
		s.heroes[id].BulletColor = c
	}
}

// BulletColor returns the color the hero's next bullet will have
func (s *Simulation) BulletColor(id HeroID) paint.Color {
	if !id.Valid() {
		return paint.Color{}
	}
	return s.heroes[id].BulletColor
}

// Hero returns a copy of the hero including a copy of its bullets
func (s *Simulation) Hero(id HeroID) Hero {
	if !id.Valid() {
		return Hero{}
	}
	h := s.heroes[id]
	h.Bullets = slices.Clone(h.Bullets)
	return h
}

// Params returns the values currently in effect
func (s *Simulation) Params() Params {
	var p Params
	for i := range s.heroes {
		p[i] = HeroParams{Speed: int(s.heroes[i].Speed), FireRate: s.heroes[i].FireRate}
	}
	return p
}

// Steps returns the number of completed steps
func (s *Simulation) Steps() uint64 {
	return s.steps
}

// Width returns the field width in units
func (s *Simulation) Width() float64 {
	return s.width
}

// Height returns the field height in units
func (s *Simulation) Height() float64 {
	return s.height
}

func (s *Simulation) applyInput() {
	if s.pending.hasParams {
		for i := range s.heroes {
			s.heroes[i].apply(s.pending.params[i])
		}
		s.pending.hasParams = false
	}
	s.pointer = s.pending.pointer
	s.hasPointer = s.pending.pointerValid
}

// moveHero bounces the hero between top and bottom and steers it away from the pointer
func (s *Simulation) moveHero(h *Hero) {
	top := h.Radius
	bottom := s.height - h.Radius

	h.Y += h.Speed * h.Direction
	if h.Y < top {
		h.Y = top
		h.Direction = 1
	} else if h.Y > bottom {
		h.Y = bottom
		h.Direction = -1
	}

	if !s.hasPointer || !vmath.PointInCircle(s.pointer.X, s.pointer.Y, h.X, h.Y, h.Radius) {
		return
	}

	step := h.Speed * h.Direction
	switch {
	case h.Y-h.Radius+step < top:
		h.Y = top
	case h.Y+h.Radius+step > bottom:
		h.Y = bottom
	default:
		if dir := vmath.Sign(h.Y - s.pointer.Y); dir != 0 {
			h.Direction = dir
		}
	}
}

// moveBullets advances every bullet and drops those outside the open interval (0, width)
func (s *Simulation) moveBullets() {
	for i := range s.heroes {
		h := &s.heroes[i]
		kept := h.Bullets[:0]
		for _, b := range h.Bullets {
			b.X += b.Speed * b.Direction
			if b.X > 0 && b.X < s.width {
				kept = append(kept, b)
			}
		}
		h.Bullets = kept
	}
}

// checkCollisions removes bullets overlapping the opposing hero and reports each hit once
// Callbacks run after filtering so they may safely call back into the simulation
func (s *Simulation) checkCollisions() {
	s.hitBuf = s.hitBuf[:0]

	for i := range s.heroes {
		h := &s.heroes[i]
		other := &s.heroes[h.ID.Opponent()]
		kept := h.Bullets[:0]
		for _, b := range h.Bullets {
			if vmath.CirclesOverlap(b.X, b.Y, b.Radius, other.X, other.Y, other.Radius) {
				s.hitBuf = append(s.hitBuf, h.ID)
				continue
			}
			kept = append(kept, b)
		}
		h.Bullets = kept
	}

	if s.onHit == nil {
		return
	}
	for _, id := range s.hitBuf {
		s.onHit(id)
	}
}

func (h *Hero) apply(p HeroParams) {
	speed := float64(p.Speed)
	if speed < 0 {
		speed = 0
	}
	h.Speed = speed
	h.FireRate = p.FireRate
}
