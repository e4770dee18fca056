package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Region represents a rectangular area of the screen
// All coordinates passed to its methods are relative to the region's origin
type Region struct {
	screen tcell.Screen
	X, Y   int // Absolute position on screen
	W, H   int // Region dimensions
}

// NewRegion creates a region on screen with bounds
func NewRegion(s tcell.Screen, x, y, w, h int) Region {
	return Region{screen: s, X: x, Y: y, W: w, H: h}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	return Region{
		screen: r.screen,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      max(w, 0),
		H:      max(h, 0),
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Contains reports whether an absolute screen position lies inside the region
func (r Region) Contains(ax, ay int) bool {
	return ax >= r.X && ax < r.X+r.W && ay >= r.Y && ay < r.Y+r.H
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, st tcell.Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.screen.SetContent(r.X+x, r.Y+y, ch, nil, st)
}

// Fill fills the region with spaces in st
func (r Region) Fill(st tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', st)
		}
	}
}

// Text draws s starting at x, clipped to the region; returns the column after the last rune
func (r Region) Text(x, y int, s string, st tcell.Style) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > r.W {
			break
		}
		r.Cell(x, y, ch, st)
		x += w
	}
	return x
}

// TextCenter draws s centered on row y
func (r Region) TextCenter(y int, s string, st tcell.Style) {
	s = runewidth.Truncate(s, r.W, "")
	r.Text((r.W-runewidth.StringWidth(s))/2, y, s, st)
}

// TextRight draws s right-aligned on row y
func (r Region) TextRight(y int, s string, st tcell.Style) {
	s = runewidth.Truncate(s, r.W, "")
	r.Text(r.W-runewidth.StringWidth(s), y, s, st)
}

// Box draws a single-line border on the region edge
func (r Region) Box(st tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, '─', st)
		r.Cell(x, r.H-1, '─', st)
	}
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, '│', st)
		r.Cell(r.W-1, y, '│', st)
	}
	r.Cell(0, 0, '┌', st)
	r.Cell(r.W-1, 0, '┐', st)
	r.Cell(0, r.H-1, '└', st)
	r.Cell(r.W-1, r.H-1, '┘', st)
}

// ModalOpts configures modal overlay rendering
type ModalOpts struct {
	Title   string
	Hint    string // Right-aligned on the top edge
	Border  tcell.Style
	TitleSt tcell.Style
	HintSt  tcell.Style
	Bg      tcell.Style
}

// Modal fills region with background, draws border with title and hint, returns content region
func (r Region) Modal(opts ModalOpts) Region {
	if r.W < 5 || r.H < 3 {
		return r.Sub(1, 1, 0, 0)
	}

	r.Fill(opts.Bg)
	r.Box(opts.Border)

	if opts.Title != "" {
		title := runewidth.Truncate(" "+opts.Title+" ", r.W-4, "…")
		r.Text((r.W-runewidth.StringWidth(title))/2, 0, title, opts.TitleSt)
	}

	if opts.Hint != "" {
		hint := runewidth.Truncate(opts.Hint, r.W/3, "")
		r.Text(r.W-runewidth.StringWidth(hint)-2, 0, hint, opts.HintSt)
	}

	return r.Sub(1, 1, r.W-2, r.H-2)
}

// Progress bar characters
const (
	progressFull  = '█'
	progressEmpty = '░'
	progressHalf  = '▌'
)

// Progress draws horizontal progress bar (0.0-1.0)
func (r Region) Progress(x, y, w int, pct float64, st tcell.Style) {
	if y < 0 || y >= r.H || w <= 0 {
		return
	}
	pct = min(max(pct, 0), 1)

	filled := int(float64(w) * pct)
	remainder := float64(w)*pct - float64(filled)

	for i := 0; i < w; i++ {
		ch := progressEmpty
		switch {
		case i < filled:
			ch = progressFull
		case i == filled && remainder >= 0.5:
			ch = progressHalf
		}
		r.Cell(x+i, y, ch, st)
	}
}
