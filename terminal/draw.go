package terminal

import (
	"fmt"

	"github.com/lixenwraith/duel/constant"
	"github.com/lixenwraith/duel/dialog"
	"github.com/lixenwraith/duel/panel"
	"github.com/lixenwraith/duel/render"
	"github.com/lixenwraith/duel/sim"
)

const halfBlock = '▀'

// drawTooSmall replaces the whole screen with a resize hint
func (a *App) drawTooSmall() {
	w, h := a.screen.Size()
	r := NewRegion(a.screen, 0, 0, w, h)
	r.Fill(styleDefault)
	y := h / 2
	r.TextCenter(y-1, "Terminal too small", styleWarn)
	r.TextCenter(y, fmt.Sprintf("need %dx%d, have %dx%d", MinWidth, MinHeight, w, h), styleLabel)
	r.TextCenter(y+1, "q to quit", styleHelp)
}

// drawField rasterizes the snapshot and blits two pixels per cell with half blocks
func (a *App) drawField() {
	l := a.layout
	box := NewRegion(a.screen, l.FieldBox.X, l.FieldBox.Y, l.FieldBox.W, l.FieldBox.H)
	box.Box(styleBorder)
	box.Text(2, 0, " duel ", styleTitle)

	pw, ph := l.PixelSize()
	if rw, rh := a.raster.Size(); rw != pw || rh != ph {
		a.raster.Resize(pw, ph)
	}
	a.session.Snapshot(&a.snap)
	render.DrawScene(a.raster, &a.snap)

	field := NewRegion(a.screen, l.Field.X, l.Field.Y, l.Field.W, l.Field.H)
	for y := 0; y < l.Field.H; y++ {
		for x := 0; x < l.Field.W; x++ {
			top := a.raster.At(x, 2*y)
			bottom := a.raster.At(x, 2*y+1)
			st := styleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			field.Cell(x, y, halfBlock, st)
		}
	}
}

// drawPanel renders the hit tally and the four sliders
func (a *App) drawPanel() {
	l := a.layout
	r := NewRegion(a.screen, l.Panel.X, l.Panel.Y, l.Panel.W, l.Panel.H)
	pn := a.session.Panel()

	r.Text(1, panelTitleRow, "Control Panel", styleTitle)

	tally := pn.Tally()
	x := r.Text(1, panelTallyRow, "Hits  ", styleLabel)
	x = r.Text(x, panelTallyRow, fmt.Sprintf("Hero 1: %d", tally.Count(sim.Hero1)), heroStyle(a.snap.Heroes[sim.Hero1].Color))
	x = r.Text(x, panelTallyRow, "   ", styleLabel)
	r.Text(x, panelTallyRow, fmt.Sprintf("Hero 2: %d", tally.Count(sim.Hero2)), heroStyle(a.snap.Heroes[sim.Hero2].Color))

	sliders := pn.Sliders()
	for i, s := range sliders {
		id := panel.SliderID(i)
		y := panelSliderRow + i
		labelSt, barSt := styleLabel, styleBar
		if id == pn.Focus() {
			labelSt, barSt = styleFocus, styleBarFocus
			r.Cell(0, y, '▶', styleFocus)
		}
		r.Text(2, y, s.Label, labelSt)

		bar := l.SliderBar(id)
		r.Progress(bar.X-l.Panel.X, y, bar.W, s.Fraction(), barSt)
		r.TextRight(y, fmt.Sprintf("%*d", constant.SliderValueW, s.Value), styleValue)
	}

	r.Text(1, panelHelpRow, "tab/j/k focus  h/l adjust  p pause  click hero: recolor  q quit", styleHelp)
}

// drawStatus renders the bottom line: pause state, last message, step counter
func (a *App) drawStatus() {
	l := a.layout
	r := NewRegion(a.screen, l.Status.X, l.Status.Y, l.Status.W, l.Status.H)
	r.Fill(styleStatus)

	state := "RUNNING"
	if a.session.Paused() {
		state = "PAUSED"
	}
	x := r.Text(1, 0, state, styleStatus.Bold(true))
	if a.status != "" {
		r.Text(x+2, 0, a.status, styleStatus)
	}
	r.TextRight(0, fmt.Sprintf("%s  step %d ", a.session.ID().String()[:8], a.snap.Step), styleStatus)
}

// drawDialog renders the color picker modal
func (a *App) drawDialog(p *dialog.ColorPicker) {
	l := a.layout

	d := NewRegion(a.screen, l.Dialog.X, l.Dialog.Y, l.Dialog.W, l.Dialog.H)
	content := d.Modal(ModalOpts{
		Title:   constant.DialogTitle,
		Border:  styleDialogBox,
		TitleSt: styleDialogBox.Bold(true),
		Bg:      styleDialogBg,
	})
	tag := l.CloseTag()
	a.screen.SetContent(tag.X, tag.Y, []rune(constant.DialogCloseTag)[0], nil, styleDialogBox.Bold(true))

	// Content rows are one below the border
	row := func(dialogRow int) int { return dialogRow - 1 }

	hero := p.Hero()
	content.TextCenter(row(dialogHeroRow), heroName(hero)+" bullets",
		styleDialogBg.Foreground(tcellColor(a.snap.Heroes[hero].Color)).Bold(true))

	for i, c := range p.Palette() {
		sw := l.Swatch(i)
		st := swatchStyle(c)
		for x := 0; x < sw.W; x++ {
			a.screen.SetContent(sw.X+x, sw.Y, ' ', nil, st)
		}
		if i == p.Cursor() {
			a.screen.SetContent(sw.X, sw.Y, '[', nil, st)
			a.screen.SetContent(sw.X+sw.W-1, sw.Y, ']', nil, st)
			a.screen.SetContent(sw.X+sw.W/2, l.Dialog.Y+dialogCursorRow, '▲', nil, styleDialogBg)
		}
	}

	cur := p.Color()
	x := content.Text(1, row(dialogCursorRow+1), "current ", styleDialogBg)
	x = content.Text(x, row(dialogCursorRow+1), "  ", swatchStyle(cur))
	content.Text(x+1, row(dialogCursorRow+1), cur.Hex(), styleDialogBg.Bold(true))
	content.TextRight(row(dialogCursorRow+1), "y copy  P paste ", styleDialogHelp)

	content.TextCenter(row(dialogHelpRow), "h/l move  enter select  esc close", styleDialogHelp)
}

func heroName(id sim.HeroID) string {
	if id == sim.Hero2 {
		return "Hero 2"
	}
	return "Hero 1"
}
