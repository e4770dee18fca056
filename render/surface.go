// Package render draws simulation snapshots onto any Surface
package render

import (
	"github.com/lixenwraith/duel/paint"
	"github.com/lixenwraith/duel/sim"
)

// Surface accepts filled circles in field units
type Surface interface {
	Clear()
	FillCircle(cx, cy, r float64, c paint.Color)
}

// DrawScene clears the surface then draws heroes and their bullets
// A nil surface or snapshot is ignored
func DrawScene(s Surface, snap *sim.Snapshot) {
	if s == nil || snap == nil {
		return
	}
	s.Clear()
	for i := range snap.Heroes {
		h := &snap.Heroes[i]
		s.FillCircle(h.X, h.Y, h.Radius, h.Color)
	}
	for i := range snap.Heroes {
		for _, b := range snap.Heroes[i].Bullets {
			s.FillCircle(b.X, b.Y, b.Radius, b.Color)
		}
	}
}
