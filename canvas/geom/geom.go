// Package geom lays out the canvas front end in logical pixels and answers pointer hit tests
package geom

import (
	"github.com/lixenwraith/duel/constant"
	"github.com/lixenwraith/duel/panel"
)

// Logical screen size: the field on top, the panel below
const (
	LogicalW = int(constant.FieldWidth)
	LogicalH = int(constant.FieldHeight) + constant.CanvasPanelHeight
)

// Panel geometry
const (
	PanelTop     = constant.FieldHeight
	PanelPadding = 16.0
	TallyY       = PanelTop + 12
	SliderTop    = PanelTop + 34
	TrackX       = 200.0
	ValueX       = TrackX + constant.CanvasSliderW + 16
	HelpY        = float64(LogicalH) - 18
)

// Dialog geometry
const (
	swatchPitch = 24.0
	swatchSize  = 20.0
	swatchTop   = 48.0
	closeSize   = 16.0
)

// Rect is an axis-aligned rectangle in logical pixels
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Field is the simulation surface; logical pixels equal field units
func Field() Rect {
	return Rect{W: constant.FieldWidth, H: constant.FieldHeight}
}

// Panel is the control panel below the field
func Panel() Rect {
	return Rect{Y: PanelTop, W: float64(LogicalW), H: constant.CanvasPanelHeight}
}

// SliderRow is the full-width band of one slider, used for its label and value
func SliderRow(id panel.SliderID) Rect {
	return Rect{
		X: PanelPadding,
		Y: SliderTop + float64(id)*constant.CanvasRowH,
		W: float64(LogicalW) - 2*PanelPadding,
		H: constant.CanvasRowH,
	}
}

// SliderTrack is the drawn bar of one slider, vertically centered in its row
func SliderTrack(id panel.SliderID) Rect {
	row := SliderRow(id)
	return Rect{
		X: TrackX,
		Y: row.Y + (row.H-constant.CanvasSliderH)/2,
		W: constant.CanvasSliderW,
		H: constant.CanvasSliderH,
	}
}

// SliderAt returns the slider whose track, widened to its whole row height, contains the point
func SliderAt(x, y float64) (panel.SliderID, float64, bool) {
	for id := panel.SliderID(0); id < panel.SliderCount; id++ {
		track := SliderTrack(id)
		row := SliderRow(id)
		hit := Rect{X: track.X, Y: row.Y, W: track.W, H: row.H}
		if hit.Contains(x, y) {
			return id, SliderFraction(id, x), true
		}
	}
	return 0, 0, false
}

// SliderFraction projects x onto a slider track, clamped to [0,1]
func SliderFraction(id panel.SliderID, x float64) float64 {
	track := SliderTrack(id)
	f := (x - track.X) / track.W
	return min(max(f, 0), 1)
}

// Dialog is the centered color picker box
func Dialog() Rect {
	return Rect{
		X: (float64(LogicalW) - constant.CanvasDialogW) / 2,
		Y: (float64(LogicalH) - constant.CanvasDialogH) / 2,
		W: constant.CanvasDialogW,
		H: constant.CanvasDialogH,
	}
}

// CloseButton is the close target in the dialog's top-right corner
func CloseButton() Rect {
	d := Dialog()
	return Rect{X: d.X + d.W - closeSize - 6, Y: d.Y + 6, W: closeSize, H: closeSize}
}

// Swatch is palette entry i
func Swatch(i int) Rect {
	d := Dialog()
	left := d.X + (d.W-swatchPitch*constant.PaletteSize)/2
	return Rect{
		X: left + float64(i)*swatchPitch + (swatchPitch-swatchSize)/2,
		Y: d.Y + swatchTop,
		W: swatchSize,
		H: swatchSize,
	}
}

// SwatchAt returns the palette index under the point
func SwatchAt(x, y float64) (int, bool) {
	for i := 0; i < constant.PaletteSize; i++ {
		if Swatch(i).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}
