package engine

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// TestSchedulerFirstRunAfterInterval verifies tasks do not fire at registration
func TestSchedulerFirstRunAfterInterval(t *testing.T) {
	tp := NewMockTimeProvider(epoch)
	s := NewScheduler(tp)

	count := 0
	s.Every("tick", 100*time.Millisecond, func() { count++ })

	if n := s.Advance(); n != 0 {
		t.Fatalf("Advance at t=0 ran %d tasks, want 0", n)
	}

	tp.Advance(99 * time.Millisecond)
	s.Advance()
	if count != 0 {
		t.Fatalf("count at 99ms = %d, want 0", count)
	}

	tp.Advance(1 * time.Millisecond)
	s.Advance()
	if count != 1 {
		t.Fatalf("count at 100ms = %d, want 1", count)
	}
}

// TestSchedulerExactCadence verifies run times are multiples of the interval
func TestSchedulerExactCadence(t *testing.T) {
	tp := NewMockTimeProvider(epoch)
	s := NewScheduler(tp)

	var fired []time.Duration
	s.Every("fire", 1100*time.Millisecond, func() {
		fired = append(fired, tp.Now().Sub(epoch))
	})

	for i := 0; i < 5000; i++ {
		tp.Advance(time.Millisecond)
		s.Advance()
	}

	want := []time.Duration{1100 * time.Millisecond, 2200 * time.Millisecond, 3300 * time.Millisecond, 4400 * time.Millisecond}
	if len(fired) != len(want) {
		t.Fatalf("fired %d times, want %d (%v)", len(fired), len(want), fired)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("run %d at %v, want %v", i, fired[i], want[i])
		}
	}
}

// TestSchedulerDeadlineOrdering verifies earlier deadlines run first and ties follow registration
func TestSchedulerDeadlineOrdering(t *testing.T) {
	tp := NewMockTimeProvider(epoch)
	s := NewScheduler(tp)

	var order []string
	s.Every("slow", 30*time.Millisecond, func() { order = append(order, "slow") })
	s.Every("a", 10*time.Millisecond, func() { order = append(order, "a") })
	s.Every("b", 10*time.Millisecond, func() { order = append(order, "b") })

	tp.Advance(30 * time.Millisecond)
	s.Advance()

	want := []string{"a", "b", "a", "b", "slow", "a", "b"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

// TestSchedulerCancel verifies a canceled task never runs again
func TestSchedulerCancel(t *testing.T) {
	tp := NewMockTimeProvider(epoch)
	s := NewScheduler(tp)

	count := 0
	id := s.Every("tick", 10*time.Millisecond, func() { count++ })

	tp.Advance(10 * time.Millisecond)
	s.Advance()

	if !s.Cancel(id) {
		t.Fatal("Cancel returned false for active task")
	}
	if s.Cancel(id) {
		t.Error("second Cancel should return false")
	}
	if s.Active(id) {
		t.Error("task still active after Cancel")
	}

	tp.Advance(time.Second)
	s.Advance()
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

// TestSchedulerCancelFromTask verifies a task can cancel a sibling due in the same Advance
func TestSchedulerCancelFromTask(t *testing.T) {
	tp := NewMockTimeProvider(epoch)
	s := NewScheduler(tp)

	var victim TaskID
	victimRuns := 0
	s.Every("killer", 10*time.Millisecond, func() { s.Cancel(victim) })
	victim = s.Every("victim", 10*time.Millisecond, func() { victimRuns++ })

	tp.Advance(10 * time.Millisecond)
	s.Advance()

	if victimRuns != 0 {
		t.Errorf("victim ran %d times after being canceled", victimRuns)
	}
}

// TestSchedulerReschedule verifies new interval and phase restart
func TestSchedulerReschedule(t *testing.T) {
	tp := NewMockTimeProvider(epoch)
	s := NewScheduler(tp)

	var at []time.Duration
	id := s.Every("fire", 1000*time.Millisecond, func() { at = append(at, tp.Now().Sub(epoch)) })

	tp.Advance(500 * time.Millisecond)
	if !s.Reschedule(id, 300*time.Millisecond) {
		t.Fatal("Reschedule returned false")
	}
	if got := s.Interval(id); got != 300*time.Millisecond {
		t.Errorf("Interval = %v, want 300ms", got)
	}

	for i := 0; i < 700; i++ {
		tp.Advance(time.Millisecond)
		s.Advance()
	}

	want := []time.Duration{800 * time.Millisecond, 1100 * time.Millisecond}
	if len(at) != len(want) || at[0] != want[0] || at[1] != want[1] {
		t.Errorf("runs at %v, want %v", at, want)
	}
}

// TestSchedulerStop verifies Stop clears tasks and rejects new ones
func TestSchedulerStop(t *testing.T) {
	tp := NewMockTimeProvider(epoch)
	s := NewScheduler(tp)

	s.Every("a", time.Millisecond, func() {})
	s.Every("b", time.Millisecond, func() {})
	s.Stop()
	s.Stop()

	if s.Len() != 0 {
		t.Errorf("Len after Stop = %d, want 0", s.Len())
	}
	if id := s.Every("late", time.Millisecond, func() {}); id != 0 {
		t.Errorf("Every after Stop returned %d, want 0", id)
	}
	tp.Advance(time.Second)
	if n := s.Advance(); n != 0 {
		t.Errorf("Advance after Stop ran %d tasks", n)
	}
}

// TestSchedulerDriftResync verifies a long stall does not replay the whole backlog
func TestSchedulerDriftResync(t *testing.T) {
	tp := NewMockTimeProvider(epoch)
	s := NewScheduler(tp)

	count := 0
	s.Every("frame", 16*time.Millisecond, func() { count++ })

	tp.Advance(10 * time.Second)
	s.Advance()

	if count == 0 || count > 4 {
		t.Errorf("runs after 10s stall = %d, want between 1 and 4", count)
	}

	// Cadence resumes normally afterwards
	count = 0
	for i := 0; i < 10; i++ {
		tp.Advance(16 * time.Millisecond)
		s.Advance()
	}
	if count != 10 {
		t.Errorf("runs after resync = %d, want 10", count)
	}
}

// TestSchedulerNonPositiveIntervalPanics verifies programming errors surface
func TestSchedulerNonPositiveIntervalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Every with zero interval should panic")
		}
	}()
	NewScheduler(NewMockTimeProvider(epoch)).Every("bad", 0, func() {})
}
