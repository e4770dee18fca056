package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// captureCrash swaps output and exit for the duration of a test
func captureCrash(t *testing.T) (*syncBuffer, chan int) {
	t.Helper()
	buf := &syncBuffer{}
	codes := make(chan int, 1)

	oldOut, oldExit := crashOut, crashExit
	crashOut = buf
	crashExit = func(code int) { codes <- code }
	t.Cleanup(func() {
		crashOut, crashExit = oldOut, oldExit
		SetCrashScreen(nil)
	})
	return buf, codes
}

type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestHandleCrashNil(t *testing.T) {
	buf, codes := captureCrash(t)
	HandleCrash(nil)
	if buf.String() != "" {
		t.Errorf("output = %q, want empty", buf.String())
	}
	select {
	case code := <-codes:
		t.Errorf("exit(%d) called for nil panic", code)
	default:
	}
}

// TestHandleCrashFinalizesScreen verifies the screen is restored and the report printed
func TestHandleCrashFinalizesScreen(t *testing.T) {
	buf, codes := captureCrash(t)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	fini := &finiScreen{Screen: screen}
	SetCrashScreen(fini)

	HandleCrash("boom")

	if fini.calls != 1 {
		t.Errorf("Fini calls = %d, want 1", fini.calls)
	}
	if code := <-codes; code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	out := buf.String()
	if !strings.Contains(out, "CRASH DETECTED: boom") || !strings.Contains(out, "Stack Trace:") {
		t.Errorf("report = %q", out)
	}
}

func TestGoRecoversPanic(t *testing.T) {
	buf, codes := captureCrash(t)

	Go(func() { panic("from goroutine") })

	if code := <-codes; code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(buf.String(), "from goroutine") {
		t.Errorf("report = %q", buf.String())
	}
}

type finiScreen struct {
	tcell.Screen
	calls int
}

func (f *finiScreen) Fini() {
	f.calls++
	f.Screen.Fini()
}
