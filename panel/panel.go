// Package panel is the control panel: four bounded sliders feeding the simulation and a read-only hit tally
package panel

import (
	"github.com/lixenwraith/duel/constant"
	"github.com/lixenwraith/duel/sim"
)

// SliderID indexes the panel sliders in display order
type SliderID int

const (
	Hero1Speed SliderID = iota
	Hero1FireRate
	Hero2Speed
	Hero2FireRate
	SliderCount
)

// Hero returns the hero a slider belongs to
func (id SliderID) Hero() sim.HeroID {
	if id >= Hero2Speed {
		return sim.Hero2
	}
	return sim.Hero1
}

// IsFireRate reports whether the slider controls fire cadence
func (id SliderID) IsFireRate() bool {
	return id == Hero1FireRate || id == Hero2FireRate
}

func (id SliderID) valid() bool {
	return id >= 0 && id < SliderCount
}

// Panel owns the adjustable parameters and the hit tally
type Panel struct {
	sliders  [SliderCount]Slider
	focus    SliderID
	tally    Tally
	onChange func(sim.Params)
}

// New creates a panel initialized (and clamped) from p; onChange may be nil
func New(p sim.Params, onChange func(sim.Params)) *Panel {
	pn := &Panel{onChange: onChange}
	for i := range pn.sliders {
		id := SliderID(i)
		s := Slider{
			Label: sliderLabel(id),
			Min:   constant.SpeedMin,
			Max:   constant.SpeedMax,
			Step:  constant.SpeedStep,
		}
		v := p[id.Hero()].Speed
		if id.IsFireRate() {
			s.Min = constant.FireRateMin
			s.Max = constant.FireRateMax
			s.Step = constant.FireRateStep
			v = p[id.Hero()].FireRate
		}
		s.Value = s.Min
		s.Set(v)
		pn.sliders[i] = s
	}
	return pn
}

func sliderLabel(id SliderID) string {
	switch id {
	case Hero1Speed:
		return "Hero 1 Speed"
	case Hero1FireRate:
		return "Hero 1 Fire Rate"
	case Hero2Speed:
		return "Hero 2 Speed"
	default:
		return "Hero 2 Fire Rate"
	}
}

// SetOnChange replaces the change callback
func (p *Panel) SetOnChange(fn func(sim.Params)) {
	p.onChange = fn
}

// Slider returns a copy of one slider
func (p *Panel) Slider(id SliderID) Slider {
	if !id.valid() {
		return Slider{}
	}
	return p.sliders[id]
}

// Set clamps and stores a value; propagates Params on change
func (p *Panel) Set(id SliderID, v int) bool {
	if !id.valid() {
		return false
	}
	return p.changed(p.sliders[id].Set(v))
}

// Nudge moves a slider by a number of steps
func (p *Panel) Nudge(id SliderID, steps int) bool {
	if !id.valid() {
		return false
	}
	return p.changed(p.sliders[id].Nudge(steps))
}

// SetFraction positions a slider along its track, f in [0,1]
func (p *Panel) SetFraction(id SliderID, f float64) bool {
	if !id.valid() {
		return false
	}
	return p.changed(p.sliders[id].SetFraction(f))
}

// Focus returns the keyboard-focused slider
func (p *Panel) Focus() SliderID {
	return p.focus
}

// SetFocus moves keyboard focus
func (p *Panel) SetFocus(id SliderID) {
	if id.valid() {
		p.focus = id
	}
}

// FocusNext moves focus down, wrapping
func (p *Panel) FocusNext() {
	p.focus = (p.focus + 1) % SliderCount
}

// FocusPrev moves focus up, wrapping
func (p *Panel) FocusPrev() {
	p.focus = (p.focus + SliderCount - 1) % SliderCount
}

// NudgeFocused nudges the focused slider
func (p *Panel) NudgeFocused(steps int) bool {
	return p.Nudge(p.focus, steps)
}

// Params returns slider values as simulation parameters
func (p *Panel) Params() sim.Params {
	var out sim.Params
	for h := range out {
		id := SliderID(h * 2)
		out[h] = sim.HeroParams{
			Speed:    p.sliders[id].Value,
			FireRate: p.sliders[id+1].Value,
		}
	}
	return out
}

// RecordHit is the hit-report callback; the only way the tally changes
func (p *Panel) RecordHit(id sim.HeroID) {
	p.tally.Record(id)
}

// Tally returns a copy of the hit tally
func (p *Panel) Tally() Tally {
	return p.tally
}

func (p *Panel) changed(ok bool) bool {
	if ok && p.onChange != nil {
		p.onChange(p.Params())
	}
	return ok
}

// Sliders returns copies of all sliders in display order
func (p *Panel) Sliders() [SliderCount]Slider {
	return p.sliders
}
