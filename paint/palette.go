package paint

import "github.com/lucasb-eyer/go-colorful"

// Palette returns n fully saturated hues evenly spaced around the wheel, starting at red
// With n divisible by 3 the palette contains pure red, green and blue
func Palette(n int) []Color {
	if n <= 0 {
		return nil
	}
	out := make([]Color, n)
	step := 360.0 / float64(n)
	for i := range out {
		out[i] = fromColorful(colorful.Hsv(float64(i)*step, 1, 1))
	}
	return out
}

// Nearest returns the palette index perceptually closest to c, -1 for an empty palette
func Nearest(palette []Color, c Color) int {
	best := -1
	bestDist := 0.0
	for i, p := range palette {
		d := p.Distance(c)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
