// Package canvas is the ebiten front end: the field drawn with vector circles, the panel and the recolor dialog
package canvas

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/duel/canvas/geom"
	"github.com/lixenwraith/duel/constant"
	"github.com/lixenwraith/duel/game"
	"github.com/lixenwraith/duel/paint"
	"github.com/lixenwraith/duel/panel"
	"github.com/lixenwraith/duel/render"
	"github.com/lixenwraith/duel/sim"
)

var (
	colBackground = color.NRGBA{24, 26, 32, 255}
	colField      = color.White
	colText       = color.NRGBA{220, 220, 230, 255}
	colMuted      = color.NRGBA{140, 140, 150, 255}
	colFocus      = color.NRGBA{240, 200, 60, 255}
	colTrack      = color.NRGBA{60, 64, 76, 255}
	colFill       = color.NRGBA{70, 160, 170, 255}
	colBackdrop   = color.NRGBA{0, 0, 0, 140}
	colDialog     = color.NRGBA{30, 40, 80, 255}
	colBorder     = color.NRGBA{90, 200, 220, 255}
)

// Game implements ebiten.Game for one session
type Game struct {
	session *game.Session
	snap    sim.Snapshot

	dragging bool
	dragID   panel.SliderID
}

// New wraps a session; the session is started on the first Update
func New(session *game.Session) *Game {
	return &Game{session: session}
}

// Update handles input and advances the session
func (g *Game) Update() error {
	g.session.Start()

	if err := g.handleKeys(); err != nil {
		g.session.Close()
		return err
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if p := g.session.Picker(); p.IsOpen() {
		g.session.PointerLeave()
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.dialogClick(x, y)
		}
	} else {
		g.handlePointer(x, y)
	}

	g.session.Advance()
	return nil
}

func (g *Game) handleKeys() error {
	p := g.session.Picker()
	if p.IsOpen() {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			p.Close()
		case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
			p.MoveCursor(-1)
		case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
			p.MoveCursor(1)
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
			p.SelectCursor()
		}
		return nil
	}

	pn := g.session.Panel()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.session.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			pn.FocusPrev()
		} else {
			pn.FocusNext()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		pn.FocusNext()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		pn.FocusPrev()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		pn.NudgeFocused(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		pn.NudgeFocused(1)
	}
	return nil
}

func (g *Game) dialogClick(x, y float64) {
	p := g.session.Picker()
	switch {
	case geom.CloseButton().Contains(x, y):
		p.Close()
	case !geom.Dialog().Contains(x, y):
		p.Close()
	default:
		if i, ok := geom.SwatchAt(x, y); ok {
			p.SelectIndex(i)
		}
	}
}

func (g *Game) handlePointer(x, y float64) {
	pn := g.session.Panel()

	if g.dragging {
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) || !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.dragging = false
		} else {
			pn.SetFraction(g.dragID, geom.SliderFraction(g.dragID, x))
		}
		return
	}

	inField := geom.Field().Contains(x, y)
	if inField {
		g.session.PointerMove(x, y)
	} else {
		g.session.PointerLeave()
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if inField {
		g.session.Click(x, y)
		return
	}
	if id, f, ok := geom.SliderAt(x, y); ok {
		pn.SetFocus(id)
		pn.SetFraction(id, f)
		g.dragging = true
		g.dragID = id
	}
}

// Draw renders field, panel and dialog
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)

	g.session.Snapshot(&g.snap)
	render.DrawScene(&surface{img: screen}, &g.snap)

	g.drawPanel(screen)
	if p := g.session.Picker(); p.IsOpen() {
		g.drawDialog(screen)
	}
}

// Layout fixes the logical resolution; ebiten scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return geom.LogicalW, geom.LogicalH
}

// surface draws field circles straight onto an ebiten image
type surface struct {
	img *ebiten.Image
}

func (s *surface) Clear() {
	f := geom.Field()
	vector.DrawFilledRect(s.img, float32(f.X), float32(f.Y), float32(f.W), float32(f.H), colField, false)
}

func (s *surface) FillCircle(cx, cy, r float64, c paint.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	pn := g.session.Panel()
	tally := pn.Tally()

	x := int(geom.PanelPadding)
	ty := int(geom.TallyY) + 13
	text.Draw(screen, "Hits", basicfont.Face7x13, x, ty, colMuted)
	text.Draw(screen, fmt.Sprintf("Hero 1: %d", tally.Count(sim.Hero1)), basicfont.Face7x13, x+60, ty, g.snap.Heroes[sim.Hero1].Color)
	text.Draw(screen, fmt.Sprintf("Hero 2: %d", tally.Count(sim.Hero2)), basicfont.Face7x13, x+180, ty, g.snap.Heroes[sim.Hero2].Color)
	if g.session.Paused() {
		text.Draw(screen, "PAUSED", basicfont.Face7x13, geom.LogicalW-70, ty, colFocus)
	}

	for i, s := range pn.Sliders() {
		id := panel.SliderID(i)
		row := geom.SliderRow(id)
		track := geom.SliderTrack(id)
		baseline := int(row.Y+row.H/2) + 5

		label, fill := color.Color(colText), color.Color(colFill)
		if id == pn.Focus() {
			label, fill = colFocus, colFocus
		}
		text.Draw(screen, s.Label, basicfont.Face7x13, int(row.X), baseline, label)

		vector.DrawFilledRect(screen, float32(track.X), float32(track.Y), float32(track.W), float32(track.H), colTrack, false)
		vector.DrawFilledRect(screen, float32(track.X), float32(track.Y), float32(track.W*s.Fraction()), float32(track.H), fill, false)
		vector.StrokeRect(screen, float32(track.X), float32(track.Y), float32(track.W), float32(track.H), 1, colMuted, false)

		text.Draw(screen, fmt.Sprintf("%d", s.Value), basicfont.Face7x13, int(geom.ValueX), baseline, colText)
	}

	text.Draw(screen, "click a hero to recolor its bullets   p pause   q quit", basicfont.Face7x13, x, int(geom.HelpY)+13, colMuted)
}

func (g *Game) drawDialog(screen *ebiten.Image) {
	p := g.session.Picker()

	vector.DrawFilledRect(screen, 0, 0, float32(geom.LogicalW), float32(geom.LogicalH), colBackdrop, false)

	d := geom.Dialog()
	vector.DrawFilledRect(screen, float32(d.X), float32(d.Y), float32(d.W), float32(d.H), colDialog, false)
	vector.StrokeRect(screen, float32(d.X), float32(d.Y), float32(d.W), float32(d.H), 2, colBorder, false)
	text.Draw(screen, constant.DialogTitle, basicfont.Face7x13, int(d.X)+16, int(d.Y)+20, colText)

	c := geom.CloseButton()
	vector.StrokeRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), 1, colBorder, false)
	text.Draw(screen, "x", basicfont.Face7x13, int(c.X)+5, int(c.Y)+12, colText)

	hero := p.Hero()
	text.Draw(screen, fmt.Sprintf("Hero %d bullets", int(hero)+1), basicfont.Face7x13, int(d.X)+16, int(d.Y)+38, g.snap.Heroes[hero].Color)

	for i, col := range p.Palette() {
		s := geom.Swatch(i)
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), col, false)
		if i == p.Cursor() {
			vector.StrokeRect(screen, float32(s.X-2), float32(s.Y-2), float32(s.W+4), float32(s.H+4), 2, colFocus, false)
		}
	}

	cur := p.Color()
	y := geom.Swatch(0).Y + geom.Swatch(0).H + 24
	vector.DrawFilledRect(screen, float32(d.X+16), float32(y-12), 16, 16, cur, false)
	text.Draw(screen, cur.Hex(), basicfont.Face7x13, int(d.X)+40, int(y), colText)
	text.Draw(screen, "arrows move  enter select  esc close", basicfont.Face7x13, int(d.X)+16, int(y)+20, colMuted)
}
