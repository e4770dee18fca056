package render

import (
	"math"

	"github.com/lixenwraith/duel/paint"
)

// Raster is a software Surface mapping field units onto a pixel grid
// The terminal front end blits it two pixels per cell
type Raster struct {
	pixels []paint.Color
	width  int
	height int

	fieldW, fieldH float64
	bg             paint.Color
}

// NewRaster creates a raster of width x height pixels covering a fieldW x fieldH field
func NewRaster(width, height int, fieldW, fieldH float64, bg paint.Color) *Raster {
	r := &Raster{fieldW: fieldW, fieldH: fieldH, bg: bg}
	r.Resize(width, height)
	return r
}

// Resize adjusts pixel dimensions, reallocates only if capacity insufficient
func (r *Raster) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(r.pixels) < size {
		r.pixels = make([]paint.Color, size)
	} else {
		r.pixels = r.pixels[:size]
	}
	r.width = width
	r.height = height
	r.Clear()
}

// Size returns pixel dimensions
func (r *Raster) Size() (int, int) {
	return r.width, r.height
}

// Clear fills every pixel with the background using exponential copy
func (r *Raster) Clear() {
	if len(r.pixels) == 0 {
		return
	}
	r.pixels[0] = r.bg
	for filled := 1; filled < len(r.pixels); filled *= 2 {
		copy(r.pixels[filled:], r.pixels[:filled])
	}
}

// At returns the pixel color, background when out of bounds
func (r *Raster) At(x, y int) paint.Color {
	if !r.inBounds(x, y) {
		return r.bg
	}
	return r.pixels[y*r.width+x]
}

// ToPixel converts field units to the containing pixel
func (r *Raster) ToPixel(fx, fy float64) (int, int) {
	return int(math.Floor(fx * r.scaleX())), int(math.Floor(fy * r.scaleY()))
}

// ToField converts a pixel to the field position of its center
func (r *Raster) ToField(px, py int) (float64, float64) {
	return (float64(px) + 0.5) / r.scaleX(), (float64(py) + 0.5) / r.scaleY()
}

// FillCircle paints every pixel whose center lies inside the circle
// The pixel containing the center is always painted so small bullets never vanish
func (r *Raster) FillCircle(cx, cy, radius float64, c paint.Color) {
	if r.width == 0 || r.height == 0 {
		return
	}
	sx, sy := r.scaleX(), r.scaleY()
	pcx, pcy := cx*sx, cy*sy
	rx, ry := radius*sx, radius*sy

	x0 := max(int(math.Floor(pcx-rx)), 0)
	x1 := min(int(math.Ceil(pcx+rx)), r.width-1)
	y0 := max(int(math.Floor(pcy-ry)), 0)
	y1 := min(int(math.Ceil(pcy+ry)), r.height-1)

	for y := y0; y <= y1; y++ {
		dy := (float64(y) + 0.5 - pcy) / ry
		for x := x0; x <= x1; x++ {
			dx := (float64(x) + 0.5 - pcx) / rx
			if dx*dx+dy*dy <= 1 {
				r.pixels[y*r.width+x] = c
			}
		}
	}

	if px, py := int(math.Floor(pcx)), int(math.Floor(pcy)); r.inBounds(px, py) {
		r.pixels[py*r.width+px] = c
	}
}

func (r *Raster) scaleX() float64 {
	return float64(r.width) / r.fieldW
}

func (r *Raster) scaleY() float64 {
	return float64(r.height) / r.fieldH
}

func (r *Raster) inBounds(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}
