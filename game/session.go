// Package game wires the simulation, control panel and recolor dialog to scheduler-driven timers
//
// A Session is owned by one goroutine. Front ends call Advance from their frame loop and route
// pointer, click and slider input to it; every callback runs synchronously on that goroutine.
package game

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/duel/config"
	"github.com/lixenwraith/duel/dialog"
	"github.com/lixenwraith/duel/engine"
	"github.com/lixenwraith/duel/paint"
	"github.com/lixenwraith/duel/panel"
	"github.com/lixenwraith/duel/sim"
)

// Sound receives gameplay cues; implementations must not block
type Sound interface {
	PlayFire(id sim.HeroID)
	PlayHit(id sim.HeroID)
	PlayOpen()
}

type silent struct{}

func (silent) PlayFire(sim.HeroID) {}
func (silent) PlayHit(sim.HeroID)  {}
func (silent) PlayOpen()           {}

// Option customizes a Session
type Option func(*Session)

// WithTimeProvider replaces the monotonic time source
func WithTimeProvider(tp engine.TimeProvider) Option {
	return func(s *Session) {
		s.source = tp
	}
}

// WithSound routes cues to snd; nil keeps the session silent
func WithSound(snd Sound) Option {
	return func(s *Session) {
		if snd != nil {
			s.sound = snd
		}
	}
}

// WithSessionID fixes the identifier used in log lines
func WithSessionID(id uuid.UUID) Option {
	return func(s *Session) {
		s.id = id
	}
}

// Session is one running duel
type Session struct {
	id     uuid.UUID
	tag    string
	source engine.TimeProvider
	clock  *engine.PausableClock
	sched  *engine.Scheduler
	sound  Sound

	frameInterval time.Duration

	sim    *sim.Simulation
	panel  *panel.Panel
	picker *dialog.ColorPicker

	frameTask engine.TaskID
	fireTasks [sim.HeroCount]engine.TaskID
	fireRates [sim.HeroCount]int

	started bool
	closed  bool
}

// New builds a stopped session from cfg; cfg is normalized on a copy
func New(cfg config.Config, opts ...Option) (*Session, error) {
	cfg.Normalize()
	setup, err := cfg.Setup()
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:            uuid.New(),
		sound:         silent{},
		frameInterval: cfg.FrameInterval(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tag = s.id.String()[:8]
	s.clock = engine.NewPausableClock(s.source)
	s.sched = engine.NewScheduler(s.clock)

	setup.OnHit = s.onHit
	s.sim = sim.New(setup)

	params := s.sim.Params()
	s.panel = panel.New(params, s.onParams)
	s.picker = dialog.NewColorPicker(s.applyColor)
	for h := range params {
		s.fireRates[h] = params[h].FireRate
	}

	return s, nil
}

// Start registers the frame task and one fire task per hero; later calls are no-ops
func (s *Session) Start() {
	if s.started || s.closed {
		return
	}
	s.started = true

	s.frameTask = s.sched.Every("frame", s.frameInterval, s.sim.Step)
	for i := range s.fireTasks {
		id := sim.HeroID(i)
		s.fireTasks[i] = s.sched.Every("fire/"+id.String(), sim.FireInterval(s.fireRates[i]), func() {
			s.fire(id)
		})
	}
	log.Printf("[%s] session started: frame %v, fire %v/%v", s.tag, s.frameInterval,
		sim.FireInterval(s.fireRates[sim.Hero1]), sim.FireInterval(s.fireRates[sim.Hero2]))
}

// Advance runs every due task and returns how many ran
func (s *Session) Advance() int {
	if !s.started || s.closed {
		return 0
	}
	return s.sched.Advance()
}

// Close cancels the frame task and both fire tasks; safe to call multiple times
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true

	s.sched.Cancel(s.frameTask)
	for _, id := range s.fireTasks {
		s.sched.Cancel(id)
	}
	s.sched.Stop()
	s.picker.Close()

	t := s.panel.Tally()
	log.Printf("[%s] session closed after %d steps, hits %d:%d", s.tag, s.sim.Steps(),
		t.Count(sim.Hero1), t.Count(sim.Hero2))
}

// Pause freezes game time
func (s *Session) Pause() {
	s.clock.Pause()
}

// Resume continues game time
func (s *Session) Resume() {
	s.clock.Resume()
}

// TogglePause flips the pause state and returns the new state
func (s *Session) TogglePause() bool {
	if s.clock.IsPaused() {
		s.clock.Resume()
		return false
	}
	s.clock.Pause()
	return true
}

// Paused reports whether game time is frozen
func (s *Session) Paused() bool {
	return s.clock.IsPaused()
}

// Click opens the recolor dialog when the point lies inside a hero
// Clicks are ignored while the dialog is open
func (s *Session) Click(x, y float64) bool {
	if s.closed || s.picker.IsOpen() {
		return false
	}
	id, ok := s.sim.HeroAt(x, y)
	if !ok {
		return false
	}
	s.picker.Open(id, s.sim.BulletColor(id))
	s.sound.PlayOpen()
	log.Printf("[%s] recolor dialog opened for %s", s.tag, id)
	return true
}

// PointerMove forwards the pointer position in field units
func (s *Session) PointerMove(x, y float64) {
	s.sim.PointerMove(x, y)
}

// PointerLeave clears the pointer
func (s *Session) PointerLeave() {
	s.sim.PointerLeave()
}

// Snapshot copies the field state into dst
func (s *Session) Snapshot(dst *sim.Snapshot) {
	s.sim.Snapshot(dst)
}

// Panel returns the control panel
func (s *Session) Panel() *panel.Panel {
	return s.panel
}

// Picker returns the recolor dialog
func (s *Session) Picker() *dialog.ColorPicker {
	return s.picker
}

// ID returns the session identifier
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Width returns the field width in units
func (s *Session) Width() float64 {
	return s.sim.Width()
}

// Height returns the field height in units
func (s *Session) Height() float64 {
	return s.sim.Height()
}

// Steps returns completed simulation steps
func (s *Session) Steps() uint64 {
	return s.sim.Steps()
}

// FireInterval returns the scheduled interval of a hero's fire task, zero when not running
func (s *Session) FireInterval(id sim.HeroID) time.Duration {
	if !id.Valid() {
		return 0
	}
	return s.sched.Interval(s.fireTasks[id])
}

// Tasks returns the number of live scheduler tasks
func (s *Session) Tasks() int {
	return s.sched.Len()
}

// BulletColor returns the color of a hero's next bullet
func (s *Session) BulletColor(id sim.HeroID) paint.Color {
	return s.sim.BulletColor(id)
}

func (s *Session) fire(id sim.HeroID) {
	s.sim.Fire(id)
	s.sound.PlayFire(id)
}

func (s *Session) onHit(id sim.HeroID) {
	s.panel.RecordHit(id)
	s.sound.PlayHit(id)
	log.Printf("[%s] hit by %s at step %d", s.tag, id, s.sim.Steps())
}

// onParams feeds panel changes to the simulation and restarts fire timers whose rate changed
func (s *Session) onParams(p sim.Params) {
	s.sim.SetParams(p)

	for i := range p {
		rate := p[i].FireRate
		if rate == s.fireRates[i] {
			continue
		}
		s.fireRates[i] = rate
		if s.started && !s.closed {
			s.sched.Reschedule(s.fireTasks[i], sim.FireInterval(rate))
		}
	}
	log.Printf("[%s] params %+v", s.tag, p)
}

func (s *Session) applyColor(id sim.HeroID, c paint.Color) {
	s.sim.SetBulletColor(id, c)
	log.Printf("[%s] %s bullets now %s", s.tag, id, c)
}
