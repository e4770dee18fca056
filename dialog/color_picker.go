package dialog

import (
	"github.com/lixenwraith/duel/constant"
	"github.com/lixenwraith/duel/paint"
	"github.com/lixenwraith/duel/sim"
)

// ColorPicker is the recolor dialog content: a palette, a cursor and the target hero
type ColorPicker struct {
	Modal

	hero    sim.HeroID
	color   paint.Color
	palette []paint.Color
	cursor  int
	apply   func(sim.HeroID, paint.Color)
}

// NewColorPicker creates a closed picker; apply receives every selection made while open
func NewColorPicker(apply func(sim.HeroID, paint.Color)) *ColorPicker {
	return &ColorPicker{
		palette: paint.Palette(constant.PaletteSize),
		apply:   apply,
	}
}

// Open shows the picker for hero pre-filled with its current bullet color
func (p *ColorPicker) Open(hero sim.HeroID, current paint.Color) {
	p.hero = hero
	p.color = current
	if idx := paint.Nearest(p.palette, current); idx >= 0 {
		p.cursor = idx
	}
	p.Modal.Open()
}

// Hero returns the hero being recolored
func (p *ColorPicker) Hero() sim.HeroID {
	return p.hero
}

// Color returns the color shown in the dialog
func (p *ColorPicker) Color() paint.Color {
	return p.color
}

// Palette returns the swatches, callers must not modify it
func (p *ColorPicker) Palette() []paint.Color {
	return p.palette
}

// Cursor returns the highlighted swatch index
func (p *ColorPicker) Cursor() int {
	return p.cursor
}

// MoveCursor moves the highlight by delta swatches, wrapping
func (p *ColorPicker) MoveCursor(delta int) {
	n := len(p.palette)
	if n == 0 {
		return
	}
	p.cursor = ((p.cursor+delta)%n + n) % n
}

// Select applies c to the target hero; ignored while closed
func (p *ColorPicker) Select(c paint.Color) bool {
	if !p.IsOpen() {
		return false
	}
	p.color = c
	if p.apply != nil {
		p.apply(p.hero, c)
	}
	return true
}

// SelectIndex selects a palette swatch and moves the cursor onto it
func (p *ColorPicker) SelectIndex(i int) bool {
	if i < 0 || i >= len(p.palette) || !p.IsOpen() {
		return false
	}
	p.cursor = i
	return p.Select(p.palette[i])
}

// SelectCursor selects the highlighted swatch
func (p *ColorPicker) SelectCursor() bool {
	return p.SelectIndex(p.cursor)
}

// SelectHex parses and selects a "#rrggbb" or named color
func (p *ColorPicker) SelectHex(s string) error {
	c, err := paint.Parse(s)
	if err != nil {
		return err
	}
	p.Select(c)
	return nil
}
