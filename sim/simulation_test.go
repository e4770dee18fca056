package sim

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/duel/paint"
)

// newStillSetup returns the default layout with both heroes stationary
func newStillSetup(hits *[HeroCount]int) Setup {
	setup := DefaultSetup()
	for i := range setup.Heroes {
		setup.Heroes[i].Params.Speed = 0
	}
	if hits != nil {
		setup.OnHit = func(id HeroID) { hits[id]++ }
	}
	return setup
}

func TestHeroIDHelpers(t *testing.T) {
	if Hero1.Opponent() != Hero2 || Hero2.Opponent() != Hero1 {
		t.Error("Opponent mapping wrong")
	}
	if Hero1.String() != "hero1" || Hero2.String() != "hero2" || HeroID(7).String() != "unknown" {
		t.Error("String mapping wrong")
	}
	if HeroID(-1).Valid() || HeroID(2).Valid() {
		t.Error("out of range IDs reported valid")
	}
}

func TestFireInterval(t *testing.T) {
	tests := []struct {
		rate int
		ms   int64
	}{
		{100, 2000},
		{1000, 1100},
		{2000, 100},
	}
	for _, tt := range tests {
		if got := FireInterval(tt.rate).Milliseconds(); got != tt.ms {
			t.Errorf("FireInterval(%d) = %dms, want %dms", tt.rate, got, tt.ms)
		}
	}
	if got := FireInterval(5000); got <= 0 {
		t.Errorf("FireInterval(5000) = %v, want positive", got)
	}
}

// TestScenarioSingleShotHits fires one bullet from a stationary hero1 across the field
func TestScenarioSingleShotHits(t *testing.T) {
	var hits [HeroCount]int
	s := New(newStillSetup(&hits))

	s.Fire(Hero1)
	for i := 0; i < 95; i++ {
		s.Step()
	}
	if hits[Hero1] != 0 {
		t.Fatalf("hit registered early at step %d", s.Steps())
	}

	for i := 0; i < 5; i++ {
		s.Step()
	}
	if hits[Hero1] != 1 {
		t.Errorf("hero1 hits after 100 steps = %d, want 1", hits[Hero1])
	}
	if hits[Hero2] != 0 {
		t.Errorf("hero2 hits = %d, want 0", hits[Hero2])
	}
	if n := len(s.Hero(Hero1).Bullets); n != 0 {
		t.Errorf("hero1 bullets after hit = %d, want 0", n)
	}
}

func TestFireDirectionAndColor(t *testing.T) {
	s := New(newStillSetup(nil))
	s.Fire(Hero1)
	s.Fire(Hero2)
	s.Fire(HeroID(9))

	b1 := s.Hero(Hero1).Bullets
	b2 := s.Hero(Hero2).Bullets
	if len(b1) != 1 || len(b2) != 1 {
		t.Fatalf("bullets = %d/%d, want 1/1", len(b1), len(b2))
	}
	if b1[0].Direction != 1 || b2[0].Direction != -1 {
		t.Errorf("directions = %v/%v, want 1/-1", b1[0].Direction, b2[0].Direction)
	}
	if b1[0].X != 50 || b1[0].Y != 150 || b1[0].Radius != 5 || b1[0].Speed != 5 {
		t.Errorf("hero1 bullet = %+v", b1[0])
	}
	if b1[0].Color != paint.MustParse("#0000ff") || b2[0].Color != paint.MustParse("#ff0000") {
		t.Errorf("bullet colors = %v/%v", b1[0].Color, b2[0].Color)
	}
}

// TestRecolorAffectsFutureBulletsOnly verifies bullets in flight keep their color
func TestRecolorAffectsFutureBulletsOnly(t *testing.T) {
	s := New(newStillSetup(nil))
	green := paint.RGB(0, 255, 0)

	s.Fire(Hero1)
	s.SetBulletColor(Hero1, green)
	s.Fire(Hero1)
	s.Fire(Hero2)

	b := s.Hero(Hero1).Bullets
	if b[0].Color == green {
		t.Error("existing bullet was recolored")
	}
	if b[1].Color != green {
		t.Errorf("new bullet color = %v, want %v", b[1].Color, green)
	}
	if s.Hero(Hero2).Bullets[0].Color == green {
		t.Error("hero2 bullet picked up hero1's color")
	}
	if s.BulletColor(Hero1) != green {
		t.Errorf("BulletColor(hero1) = %v, want %v", s.BulletColor(Hero1), green)
	}
}

// TestBulletsRemovedAtBounds verifies bullets at or past the edges are dropped on the step that moves them there
func TestBulletsRemovedAtBounds(t *testing.T) {
	setup := newStillSetup(nil)
	// Move heroes out of each other's firing line
	setup.Heroes[Hero1].Y = 40
	setup.Heroes[Hero2].Y = 260
	s := New(setup)

	s.Fire(Hero1)
	s.Fire(Hero2)

	// hero1 bullet: 50 -> 600 after 110 steps; hero2 bullet: 550 -> 0 after 110 steps
	for i := 0; i < 109; i++ {
		s.Step()
	}
	if len(s.Hero(Hero1).Bullets) != 1 || len(s.Hero(Hero2).Bullets) != 1 {
		t.Fatal("bullets removed before reaching the edge")
	}

	s.Step()
	if n := len(s.Hero(Hero1).Bullets); n != 0 {
		t.Errorf("hero1 bullet at x=600 not removed (%d left)", n)
	}
	if n := len(s.Hero(Hero2).Bullets); n != 0 {
		t.Errorf("hero2 bullet at x=0 not removed (%d left)", n)
	}
}

// TestStackedBulletsAllCollide verifies no bullet is skipped when a neighbor is removed in the same step
func TestStackedBulletsAllCollide(t *testing.T) {
	var hits [HeroCount]int
	s := New(newStillSetup(&hits))

	for i := 0; i < 3; i++ {
		s.Fire(Hero1)
	}
	for i := 0; i < 100; i++ {
		s.Step()
	}

	if hits[Hero1] != 3 {
		t.Errorf("hits = %d, want 3", hits[Hero1])
	}
	if n := len(s.Hero(Hero1).Bullets); n != 0 {
		t.Errorf("bullets left = %d, want 0", n)
	}
}

// TestHitCallbackMayFire verifies re-entrant Fire from the hit callback is safe
func TestHitCallbackMayFire(t *testing.T) {
	setup := newStillSetup(nil)
	var s *Simulation
	hits := 0
	setup.OnHit = func(id HeroID) {
		hits++
		s.Fire(id)
	}
	s = New(setup)

	s.Fire(Hero1)
	for i := 0; i < 100; i++ {
		s.Step()
	}
	if hits != 1 {
		t.Errorf("hits = %d, want 1", hits)
	}
	if n := len(s.Hero(Hero1).Bullets); n != 1 {
		t.Errorf("bullets after refire = %d, want 1", n)
	}
}

// TestHeroStaysInBounds drives random params and pointer positions and checks the vertical invariant
func TestHeroStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := New(DefaultSetup())

	for step := 0; step < 20000; step++ {
		if step%97 == 0 {
			var p Params
			for i := range p {
				p[i] = HeroParams{Speed: 1 + rng.Intn(10), FireRate: 100 + rng.Intn(1901)}
			}
			s.SetParams(p)
		}
		switch rng.Intn(4) {
		case 0:
			s.PointerLeave()
		default:
			s.PointerMove(rng.Float64()*600, rng.Float64()*300)
		}
		if step%13 == 0 {
			s.Fire(HeroID(rng.Intn(2)))
		}

		s.Step()

		for _, id := range []HeroID{Hero1, Hero2} {
			h := s.Hero(id)
			if h.Y < h.Radius || h.Y > 300-h.Radius {
				t.Fatalf("step %d: %v y=%v outside [%v, %v]", step, id, h.Y, h.Radius, 300-h.Radius)
			}
			for _, b := range h.Bullets {
				if b.X <= 0 || b.X >= 600 {
					t.Fatalf("step %d: bullet at x=%v survived", step, b.X)
				}
			}
		}
	}
}

func TestBounceReversesDirection(t *testing.T) {
	setup := DefaultSetup()
	setup.Heroes[Hero1].Y = 275
	setup.Heroes[Hero1].Params.Speed = 10
	s := New(setup)

	s.Step()
	h := s.Hero(Hero1)
	if h.Y != 280 || h.Direction != -1 {
		t.Fatalf("after hitting bottom: y=%v dir=%v, want y=280 dir=-1", h.Y, h.Direction)
	}

	s.Step()
	if h = s.Hero(Hero1); h.Y != 270 {
		t.Errorf("after bounce y = %v, want 270", h.Y)
	}
}

// TestParamsAppliedAtNextStep verifies SetParams goes through the input slot
func TestParamsAppliedAtNextStep(t *testing.T) {
	s := New(newStillSetup(nil))
	s.Fire(Hero1)

	p := Params{{Speed: 5, FireRate: 1500}, {Speed: 3, FireRate: 200}}
	s.SetParams(p)
	if got := s.Params(); got[Hero1].Speed != 0 {
		t.Fatalf("params applied before Step: %+v", got)
	}
	before := s.Hero(Hero1)

	s.Step()
	if got := s.Params(); got != p {
		t.Errorf("Params after Step = %+v, want %+v", got, p)
	}
	after := s.Hero(Hero1)
	if after.Y != before.Y+5 {
		t.Errorf("y after step = %v, want %v", after.Y, before.Y+5)
	}
	if len(after.Bullets) != 1 {
		t.Error("bullets were reset by parameter change")
	}
}

// TestPointerDeflectsHero verifies a hero steers away from a pointer inside its circle
func TestPointerDeflectsHero(t *testing.T) {
	setup := DefaultSetup()
	setup.Heroes[Hero1].Params.Speed = 2
	s := New(setup)

	// Hero moving down (dir +1); pointer just below its center pushes it back up
	s.PointerMove(50, 160)
	s.Step()
	if h := s.Hero(Hero1); h.Direction != -1 {
		t.Errorf("direction with pointer below = %v, want -1", h.Direction)
	}

	// Pointer above pushes it down
	s.PointerMove(50, 140)
	s.Step()
	if h := s.Hero(Hero1); h.Direction != 1 {
		t.Errorf("direction with pointer above = %v, want 1", h.Direction)
	}

	// Pointer outside the circle has no effect
	s.PointerMove(300, 10)
	dir := s.Hero(Hero1).Direction
	s.Step()
	if h := s.Hero(Hero1); h.Direction != dir {
		t.Errorf("direction changed by distant pointer")
	}
}

// TestPointerPinsHeroNearEdge verifies the hero is pinned instead of pushed through the wall
func TestPointerPinsHeroNearEdge(t *testing.T) {
	setup := DefaultSetup()
	setup.Heroes[Hero1].Y = 30
	setup.Heroes[Hero1].Params.Speed = 2
	s := New(setup)
	s.SetParams(Params{{Speed: 2, FireRate: 1000}, {Speed: 2, FireRate: 1000}})

	// Pointer inside the circle while one radius from the top wall
	s.PointerMove(50, 45)
	s.Step()

	h := s.Hero(Hero1)
	if h.Y != 20 {
		t.Errorf("y near top with pointer = %v, want pinned at 20", h.Y)
	}
}

func TestHeroAt(t *testing.T) {
	s := New(DefaultSetup())

	if id, ok := s.HeroAt(60, 150); !ok || id != Hero1 {
		t.Errorf("HeroAt(60,150) = %v,%v want hero1,true", id, ok)
	}
	if id, ok := s.HeroAt(545, 140); !ok || id != Hero2 {
		t.Errorf("HeroAt(545,140) = %v,%v want hero2,true", id, ok)
	}
	if _, ok := s.HeroAt(300, 150); ok {
		t.Error("HeroAt(300,150) found a hero in empty space")
	}
}

func TestSnapshotReusesBuffers(t *testing.T) {
	s := New(newStillSetup(nil))
	s.Fire(Hero1)
	s.Fire(Hero2)

	var snap Snapshot
	s.Snapshot(&snap)
	if snap.BulletCount() != 2 || snap.Width != 600 || snap.Height != 300 {
		t.Fatalf("snapshot = %+v", snap)
	}

	// Mutating the snapshot must not leak into the simulation
	snap.Heroes[Hero1].Bullets[0].X = -1
	if s.Hero(Hero1).Bullets[0].X == -1 {
		t.Error("snapshot aliases simulation bullets")
	}

	s.Step()
	s.Snapshot(&snap)
	if snap.Step != 1 {
		t.Errorf("snapshot step = %d, want 1", snap.Step)
	}
	s.Snapshot(nil)
}
