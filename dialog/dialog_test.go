package dialog

import (
	"errors"
	"testing"

	"github.com/lixenwraith/duel/paint"
	"github.com/lixenwraith/duel/sim"
)

func TestModalOpenClose(t *testing.T) {
	var m Modal
	closes := 0
	m.SetOnClose(func() { closes++ })

	if m.IsOpen() {
		t.Fatal("zero Modal should be closed")
	}
	m.Close()
	if closes != 0 {
		t.Error("closing a closed modal fired the callback")
	}

	m.Open()
	if !m.IsOpen() {
		t.Fatal("IsOpen = false after Open")
	}
	m.Close()
	m.Close()
	if m.IsOpen() || closes != 1 {
		t.Errorf("open=%v closes=%d, want false/1", m.IsOpen(), closes)
	}
}

type applied struct {
	hero  sim.HeroID
	color paint.Color
}

func TestColorPickerPrefillAndSelect(t *testing.T) {
	var got []applied
	p := NewColorPicker(func(h sim.HeroID, c paint.Color) { got = append(got, applied{h, c}) })

	blue := paint.MustParse("#0000ff")
	p.Open(sim.Hero1, blue)

	if p.Hero() != sim.Hero1 || p.Color() != blue {
		t.Fatalf("prefill = %v/%v, want hero1/%v", p.Hero(), p.Color(), blue)
	}
	if p.Palette()[p.Cursor()] != blue {
		t.Errorf("cursor on %v, want %v", p.Palette()[p.Cursor()], blue)
	}

	p.MoveCursor(1)
	if !p.SelectCursor() {
		t.Fatal("SelectCursor returned false while open")
	}
	want := p.Palette()[p.Cursor()]
	if len(got) != 1 || got[0].hero != sim.Hero1 || got[0].color != want {
		t.Errorf("applied = %+v, want one hero1/%v", got, want)
	}
	if p.Color() != want {
		t.Errorf("Color = %v, want %v", p.Color(), want)
	}
}

// TestColorPickerClosedHasNoSideEffects verifies only an open picker applies colors
func TestColorPickerClosedHasNoSideEffects(t *testing.T) {
	calls := 0
	p := NewColorPicker(func(sim.HeroID, paint.Color) { calls++ })

	p.Select(paint.White)
	p.SelectIndex(0)

	p.Open(sim.Hero2, paint.MustParse("red"))
	p.Close()
	p.Select(paint.White)

	if calls != 0 {
		t.Errorf("apply called %d times, want 0", calls)
	}
}

func TestColorPickerSelectHex(t *testing.T) {
	var last paint.Color
	p := NewColorPicker(func(_ sim.HeroID, c paint.Color) { last = c })
	p.Open(sim.Hero1, paint.Black)

	if err := p.SelectHex("#123456"); err != nil {
		t.Fatalf("SelectHex error: %v", err)
	}
	if last != paint.RGB(0x12, 0x34, 0x56) {
		t.Errorf("applied %v, want #123456", last)
	}
	if err := p.SelectHex("nope"); !errors.Is(err, paint.ErrInvalidColor) {
		t.Errorf("SelectHex(nope) error = %v, want ErrInvalidColor", err)
	}
}

func TestColorPickerCursorWraps(t *testing.T) {
	p := NewColorPicker(nil)
	n := len(p.Palette())

	p.MoveCursor(-1)
	if p.Cursor() != n-1 {
		t.Errorf("cursor after -1 = %d, want %d", p.Cursor(), n-1)
	}
	p.MoveCursor(n + 1)
	if p.Cursor() != 0 {
		t.Errorf("cursor after wrap = %d, want 0", p.Cursor())
	}
	if p.SelectIndex(n) {
		t.Error("SelectIndex out of range returned true")
	}
}
