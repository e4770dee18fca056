package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	p := NewMonotonicTimeProvider()

	t1 := p.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := p.Now()

	if d := t2.Sub(t1); d < 5*time.Millisecond {
		t.Errorf("elapsed = %v, want >= 5ms", d)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if got := mock.Now(); !got.Equal(start) {
		t.Errorf("Now() = %v, want %v", got, start)
	}

	if got := mock.Advance(16 * time.Millisecond); !got.Equal(start.Add(16 * time.Millisecond)) {
		t.Errorf("Advance() = %v, want start+16ms", got)
	}

	jump := start.Add(time.Hour)
	mock.Set(jump)
	if got := mock.Now(); !got.Equal(jump) {
		t.Errorf("after Set, Now() = %v, want %v", got, jump)
	}
}

var _ TimeProvider = (*MockTimeProvider)(nil)
var _ TimeProvider = (*MonotonicTimeProvider)(nil)
var _ TimeProvider = (*PausableClock)(nil)
