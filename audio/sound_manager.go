// Package audio plays the short synthesized cues of the duel through a beep mixer
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/duel/sim"
)

const (
	sampleRate = beep.SampleRate(48000)

	fireDuration = 40 * time.Millisecond
	hitDuration  = 150 * time.Millisecond
	openDuration = 60 * time.Millisecond
)

// Fire pitch per hero, hero1 lower
var firePitch = [sim.HeroCount]float64{520, 660}

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	level       float64
	initialized bool
}

// NewSoundManager creates a new sound manager at full volume
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2},
		level:  1,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker shutdown; an empty mixer is silent
	sm.initialized = false
}

// SetVolume sets output level in [0,1]; 0 silences output
func (sm *SoundManager) SetVolume(level float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	level = math.Max(0, math.Min(1, level))
	sm.level = level

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.volume.Silent = level == 0
	if level > 0 {
		sm.volume.Volume = math.Log2(level)
	}
}

// Volume returns the output level
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.level
}

// PlayFire plays a short blip panned toward the firing hero
func (sm *SoundManager) PlayFire(id sim.HeroID) {
	if !id.Valid() {
		return
	}
	tone, err := generators.SineTone(sampleRate, firePitch[id])
	if err != nil {
		return
	}
	sm.play(panFor(id, beep.Take(sampleRate.N(fireDuration), fade(tone, 0.15))))
}

// PlayHit plays a buzz panned toward the hero that was struck
func (sm *SoundManager) PlayHit(id sim.HeroID) {
	if !id.Valid() {
		return
	}
	buzz := NewBuzzGenerator(sampleRate, 120)
	sm.play(panFor(id.Opponent(), beep.Take(sampleRate.N(hitDuration), buzz)))
}

// PlayOpen plays a rising two-note chirp for the recolor dialog
func (sm *SoundManager) PlayOpen() {
	low, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return
	}
	high, err := generators.SineTone(sampleRate, 1320)
	if err != nil {
		return
	}
	half := sampleRate.N(openDuration / 2)
	sm.play(beep.Seq(
		beep.Take(half, fade(low, 0.1)),
		beep.Take(half, fade(high, 0.1)),
	))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// panFor places hero1 left and hero2 right
func panFor(id sim.HeroID, s beep.Streamer) beep.Streamer {
	pan := -0.5
	if id == sim.Hero2 {
		pan = 0.5
	}
	return &effects.Pan{Streamer: s, Pan: pan}
}

// fade scales a raw generator to a comfortable amplitude
func fade(s beep.Streamer, gain float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: gain - 1}
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics for a harsh edge
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms attack then exponential tail
		attack := math.Min(t/0.02, 1.0)
		sample *= attack * math.Exp(-t*6) * 0.4

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
