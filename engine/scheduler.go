package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/lixenwraith/duel/constant"
)

// TaskID identifies a scheduled task, zero is never a valid ID
type TaskID uint64

type task struct {
	id       TaskID
	name     string
	interval time.Duration
	next     time.Time
	fn       func()
}

// Scheduler runs recurring tasks against a time source
// It is passive: the owner calls Advance from its loop, so tasks run on the caller's goroutine
// Due tasks run in deadline order, ties broken by registration order
type Scheduler struct {
	mu      sync.Mutex
	clock   TimeProvider
	tasks   []*task // Registration order
	nextID  TaskID
	stopped bool
	runs    uint64
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock TimeProvider) *Scheduler {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &Scheduler{clock: clock}
}

// Every registers fn to run once per interval, first run one interval from now
// Returns zero after Stop
func (s *Scheduler) Every(name string, interval time.Duration, fn func()) TaskID {
	if interval <= 0 {
		panic(fmt.Sprintf("engine: task %q has non-positive interval %v", name, interval))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return 0
	}

	s.nextID++
	s.tasks = append(s.tasks, &task{
		id:       s.nextID,
		name:     name,
		interval: interval,
		next:     s.clock.Now().Add(interval),
		fn:       fn,
	})
	return s.nextID
}

// Reschedule changes a task's interval and restarts its phase from now
func (s *Scheduler) Reschedule(id TaskID, interval time.Duration) bool {
	if interval <= 0 {
		panic(fmt.Sprintf("engine: task %d rescheduled with non-positive interval %v", id, interval))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(id)
	if t == nil {
		return false
	}
	t.interval = interval
	t.next = s.clock.Now().Add(interval)
	return true
}

// Cancel removes a task; it will not run again, even within the current Advance
func (s *Scheduler) Cancel(id TaskID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Stop cancels every task and rejects new ones; safe to call multiple times
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = nil
	s.stopped = true
}

// Active reports whether the task is still scheduled
func (s *Scheduler) Active(id TaskID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(id) != nil
}

// Interval returns the task interval, zero if not scheduled
func (s *Scheduler) Interval(id TaskID) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t := s.find(id); t != nil {
		return t.interval
	}
	return 0
}

// Len returns the number of scheduled tasks
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Runs returns the total number of task executions
func (s *Scheduler) Runs() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs
}

// Advance runs every task whose deadline has passed and returns the number of executions
// A task lagging more than SchedulerMaxBehind intervals is resynced instead of replaying the backlog
func (s *Scheduler) Advance() int {
	now := s.clock.Now()
	ran := 0

	for {
		fn := s.popDue(now)
		if fn == nil {
			return ran
		}
		// Lock released: tasks may Cancel, Reschedule or Every from inside fn
		fn()
		ran++
	}
}

// popDue advances the earliest due task's deadline and returns its callback
func (s *Scheduler) popDue(now time.Time) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due *task
	for _, t := range s.tasks {
		if t.next.After(now) {
			continue
		}
		if due == nil || t.next.Before(due.next) {
			due = t
		}
	}
	if due == nil {
		return nil
	}

	due.next = due.next.Add(due.interval)
	maxBehind := due.interval * constant.SchedulerMaxBehind
	if now.Sub(due.next) > maxBehind {
		due.next = now.Add(due.interval)
	}
	s.runs++
	return due.fn
}

func (s *Scheduler) find(id TaskID) *task {
	for _, t := range s.tasks {
		if t.id == id {
			return t
		}
	}
	return nil
}
