package terminal

import (
	"github.com/lixenwraith/duel/constant"
	"github.com/lixenwraith/duel/panel"
)

// Rect is an absolute screen rectangle in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Minimum terminal size
const (
	MinWidth  = constant.DialogWidth
	MinHeight = constant.MinFieldRows + 2 + constant.PanelRows + constant.StatusRows
)

// Panel rows, relative to the panel origin
const (
	panelTitleRow  = 0
	panelTallyRow  = 1
	panelSliderRow = 2
	panelHelpRow   = constant.PanelRows - 1
)

// Dialog rows and columns, relative to the dialog origin
const (
	dialogHeroRow   = 2
	dialogSwatchRow = 4
	dialogCursorRow = 5
	dialogHelpRow   = 7
)

// Layout places the field, panel, status line and dialog for one screen size
// The field keeps the 2:1 aspect of the simulation: each cell shows two stacked pixels,
// so an inner field of 4n x n cells is a 4n x 2n pixel raster
type Layout struct {
	ScreenW, ScreenH int
	TooSmall         bool

	FieldBox Rect // Including border
	Field    Rect // Raster cells
	Panel    Rect
	Status   Rect
	Dialog   Rect

	fieldW, fieldH float64
}

// ComputeLayout lays out a screen of w x h cells showing a fieldW x fieldH field
func ComputeLayout(w, h int, fieldW, fieldH float64) Layout {
	l := Layout{ScreenW: w, ScreenH: h, fieldW: fieldW, fieldH: fieldH}
	if w < MinWidth || h < MinHeight {
		l.TooSmall = true
		return l
	}

	availW := w - 2
	availH := h - constant.PanelRows - constant.StatusRows - 2
	rows := min(availH, availW/4)
	if rows < constant.MinFieldRows {
		l.TooSmall = true
		return l
	}
	cols := rows * 4

	l.FieldBox = Rect{X: (w - cols - 2) / 2, Y: 0, W: cols + 2, H: rows + 2}
	l.Field = Rect{X: l.FieldBox.X + 1, Y: 1, W: cols, H: rows}
	l.Panel = Rect{X: 0, Y: l.FieldBox.H, W: w, H: constant.PanelRows}
	l.Status = Rect{X: 0, Y: h - constant.StatusRows, W: w, H: constant.StatusRows}
	l.Dialog = Rect{
		X: (w - constant.DialogWidth) / 2,
		Y: max((h-constant.DialogHeight)/2, 0),
		W: constant.DialogWidth,
		H: min(constant.DialogHeight, h),
	}
	return l
}

// PixelSize returns raster dimensions backing the field
func (l Layout) PixelSize() (int, int) {
	return l.Field.W, l.Field.H * 2
}

// FieldAt converts a screen cell inside the field to field units at the cell center
func (l Layout) FieldAt(x, y int) (float64, float64, bool) {
	if l.TooSmall || !l.Field.Contains(x, y) {
		return 0, 0, false
	}
	fx := (float64(x-l.Field.X) + 0.5) / float64(l.Field.W) * l.fieldW
	fy := (float64(y-l.Field.Y) + 0.5) / float64(l.Field.H) * l.fieldH
	return fx, fy, true
}

// CellAt converts field units to the screen cell showing them
func (l Layout) CellAt(fx, fy float64) (int, int) {
	x := l.Field.X + int(fx/l.fieldW*float64(l.Field.W))
	y := l.Field.Y + int(fy/l.fieldH*float64(l.Field.H))
	return x, y
}

// sliderBarWidth leaves room for marker, label and value
func (l Layout) sliderBarWidth() int {
	return max(l.Panel.W-4-constant.SliderLabelW-constant.SliderValueW, 1)
}

// SliderBar returns the track of a slider
func (l Layout) SliderBar(id panel.SliderID) Rect {
	return Rect{
		X: l.Panel.X + 2 + constant.SliderLabelW,
		Y: l.Panel.Y + panelSliderRow + int(id),
		W: l.sliderBarWidth(),
		H: 1,
	}
}

// SliderAt returns the slider whose track contains the cell and the fraction along it
func (l Layout) SliderAt(x, y int) (panel.SliderID, float64, bool) {
	if l.TooSmall {
		return 0, 0, false
	}
	for id := panel.SliderID(0); id < panel.SliderCount; id++ {
		bar := l.SliderBar(id)
		if bar.Contains(x, y) {
			return id, l.fraction(bar, x), true
		}
	}
	return 0, 0, false
}

// SliderFraction projects any column onto a slider track, clamped to [0,1]
func (l Layout) SliderFraction(id panel.SliderID, x int) float64 {
	return l.fraction(l.SliderBar(id), x)
}

func (l Layout) fraction(bar Rect, x int) float64 {
	if bar.W <= 1 {
		return 0
	}
	f := float64(x-bar.X) / float64(bar.W-1)
	return min(max(f, 0), 1)
}

// swatchOrigin is the first swatch column, relative to the dialog
func swatchOrigin() int {
	return (constant.DialogWidth - constant.PaletteSize*constant.SwatchWidth) / 2
}

// Swatch returns the cells of palette entry i
func (l Layout) Swatch(i int) Rect {
	return Rect{
		X: l.Dialog.X + swatchOrigin() + i*constant.SwatchWidth,
		Y: l.Dialog.Y + dialogSwatchRow,
		W: constant.SwatchWidth,
		H: 1,
	}
}

// SwatchAt returns the palette index under the cell
func (l Layout) SwatchAt(x, y int) (int, bool) {
	for i := 0; i < constant.PaletteSize; i++ {
		if l.Swatch(i).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// CloseTag returns the close target on the dialog's top border
func (l Layout) CloseTag() Rect {
	return Rect{X: l.Dialog.X + l.Dialog.W - 3, Y: l.Dialog.Y, W: 1, H: 1}
}
