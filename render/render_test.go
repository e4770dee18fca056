package render

import (
	"testing"

	"github.com/lixenwraith/duel/paint"
	"github.com/lixenwraith/duel/sim"
)

type call struct {
	cx, cy, r float64
	c         paint.Color
}

// recorder captures drawing calls
type recorder struct {
	clears int
	calls  []call
}

func (r *recorder) Clear() { r.clears++ }
func (r *recorder) FillCircle(cx, cy, rad float64, c paint.Color) {
	r.calls = append(r.calls, call{cx, cy, rad, c})
}

func TestDrawSceneOrder(t *testing.T) {
	s := sim.New(sim.DefaultSetup())
	s.Fire(sim.Hero1)
	s.Fire(sim.Hero2)

	var snap sim.Snapshot
	s.Snapshot(&snap)

	rec := &recorder{}
	DrawScene(rec, &snap)

	if rec.clears != 1 {
		t.Errorf("clears = %d, want 1", rec.clears)
	}
	if len(rec.calls) != 4 {
		t.Fatalf("calls = %d, want 4", len(rec.calls))
	}
	if rec.calls[0].r != 20 || rec.calls[1].r != 20 {
		t.Errorf("heroes not drawn first: %+v", rec.calls[:2])
	}
	if rec.calls[2].c != paint.MustParse("#0000ff") || rec.calls[3].c != paint.MustParse("#ff0000") {
		t.Errorf("bullet colors = %v, %v", rec.calls[2].c, rec.calls[3].c)
	}
}

func TestDrawSceneNilGuards(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("DrawScene panicked: %v", r)
		}
	}()
	DrawScene(nil, &sim.Snapshot{})
	rec := &recorder{}
	DrawScene(rec, nil)
	if rec.clears != 0 {
		t.Error("nil snapshot cleared the surface")
	}
}

func TestRasterFillCircle(t *testing.T) {
	red := paint.RGB(255, 0, 0)
	r := NewRaster(60, 30, 600, 300, paint.Black)

	r.FillCircle(300, 150, 50, red)
	if r.At(30, 15) != red {
		t.Error("circle center not painted")
	}
	if r.At(34, 15) != red || r.At(30, 19) != red {
		t.Error("pixel inside radius not painted")
	}
	if r.At(36, 15) != paint.Black || r.At(0, 0) != paint.Black {
		t.Error("pixel outside radius painted")
	}

	r.Clear()
	if r.At(30, 15) != paint.Black {
		t.Error("Clear left paint behind")
	}
}

// TestRasterTinyCircleVisible verifies a circle smaller than a pixel still paints its center pixel
func TestRasterTinyCircleVisible(t *testing.T) {
	c := paint.RGB(0, 0, 255)
	r := NewRaster(20, 10, 600, 300, paint.Black)

	r.FillCircle(305, 152, 5, c)
	px, py := r.ToPixel(305, 152)
	if px != 10 || py != 5 {
		t.Fatalf("ToPixel = %d,%d, want 10,5", px, py)
	}
	if r.At(px, py) != c {
		t.Error("tiny circle not visible")
	}
}

func TestRasterClipsAtEdges(t *testing.T) {
	c := paint.RGB(0, 255, 0)
	r := NewRaster(10, 10, 100, 100, paint.Black)

	r.FillCircle(-5, -5, 20, c)
	r.FillCircle(200, 200, 5, c)
	if r.At(0, 0) != c {
		t.Error("partially visible circle not painted")
	}
	if r.At(-1, 0) != paint.Black || r.At(10, 10) != paint.Black {
		t.Error("At out of bounds should return background")
	}
}

func TestRasterResize(t *testing.T) {
	r := NewRaster(4, 4, 64, 64, paint.White)
	r.Resize(8, 2)
	if w, h := r.Size(); w != 8 || h != 2 {
		t.Errorf("Size = %d,%d, want 8,2", w, h)
	}
	fx, fy := r.ToField(0, 0)
	if fx != 4 || fy != 16 {
		t.Errorf("ToField(0,0) = %v,%v, want 4,16", fx, fy)
	}
	r.Resize(0, 0)
	r.FillCircle(50, 50, 10, paint.Black)
}
