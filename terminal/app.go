// Package terminal is the tcell front end: a half-block field, the control panel and the recolor dialog
package terminal

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/duel/constant"
	"github.com/lixenwraith/duel/core"
	"github.com/lixenwraith/duel/game"
	"github.com/lixenwraith/duel/panel"
	"github.com/lixenwraith/duel/render"
	"github.com/lixenwraith/duel/sim"
)

// AppOption customizes an App
type AppOption func(*App)

// WithClipboard replaces the system clipboard
func WithClipboard(c Clipboard) AppOption {
	return func(a *App) {
		a.clip = c
	}
}

// WithFrameInterval sets the redraw cadence
func WithFrameInterval(d time.Duration) AppOption {
	return func(a *App) {
		if d > 0 {
			a.frame = d
		}
	}
}

// App drives one session on a tcell screen
// All methods run on the goroutine that calls Run
type App struct {
	screen  tcell.Screen
	session *game.Session
	clip    Clipboard
	frame   time.Duration

	layout Layout
	raster *render.Raster
	snap   sim.Snapshot
	status string

	buttons  tcell.ButtonMask // Buttons held at the previous mouse event
	dragging bool
	dragID   panel.SliderID
}

// NewApp binds a session to an initialized screen
func NewApp(screen tcell.Screen, session *game.Session, opts ...AppOption) *App {
	a := &App{
		screen:  screen,
		session: session,
		clip:    SystemClipboard{},
		frame:   constant.FrameUpdateInterval,
		raster:  render.NewRaster(0, 0, session.Width(), session.Height(), fieldBg),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.relayout()
	return a
}

// Run starts the session and loops until quit or ctx is done; the session is closed on return
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse(tcell.MouseMotionEvents)
	defer a.screen.DisableMouse()

	events := make(chan tcell.Event, constant.EventChannelSize)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	a.session.Start()
	defer a.session.Close()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !a.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.session.Advance()
			a.Draw()
		}
	}
}

// HandleEvent applies one input event; returns false to quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
		a.relayout()
	}
	return true
}

// Draw renders a full frame and shows it
func (a *App) Draw() {
	a.relayout()
	a.screen.Clear()

	if a.layout.TooSmall {
		a.drawTooSmall()
		a.screen.Show()
		return
	}

	a.drawField()
	a.drawPanel()
	a.drawStatus()
	if p := a.session.Picker(); p.IsOpen() {
		a.drawDialog(p)
	}
	a.screen.Show()
}

// Layout returns the layout of the last frame
func (a *App) Layout() Layout {
	return a.layout
}

// Status returns the current status line message
func (a *App) Status() string {
	return a.status
}

func (a *App) relayout() {
	w, h := a.screen.Size()
	a.layout = ComputeLayout(w, h, a.session.Width(), a.session.Height())
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
		return false
	}

	if p := a.session.Picker(); p.IsOpen() {
		a.handleDialogKey(ev)
		return true
	}

	pn := a.session.Panel()
	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyTab, tcell.KeyDown:
		pn.FocusNext()
	case tcell.KeyBacktab, tcell.KeyUp:
		pn.FocusPrev()
	case tcell.KeyLeft:
		pn.NudgeFocused(-1)
	case tcell.KeyRight:
		pn.NudgeFocused(1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j':
			pn.FocusNext()
		case 'k':
			pn.FocusPrev()
		case 'h':
			pn.NudgeFocused(-1)
		case 'l':
			pn.NudgeFocused(1)
		case 'p', ' ':
			if a.session.TogglePause() {
				a.status = "paused"
			} else {
				a.status = ""
			}
		}
	}
	return true
}

func (a *App) handleDialogKey(ev *tcell.EventKey) {
	p := a.session.Picker()
	switch ev.Key() {
	case tcell.KeyEscape:
		p.Close()
	case tcell.KeyEnter:
		p.SelectCursor()
	case tcell.KeyLeft:
		p.MoveCursor(-1)
	case tcell.KeyRight:
		p.MoveCursor(1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			p.MoveCursor(-1)
		case 'l':
			p.MoveCursor(1)
		case 'y':
			a.copyColor()
		case 'P':
			a.pasteColor()
		}
	}
}

func (a *App) copyColor() {
	hex := a.session.Picker().Color().Hex()
	if err := a.clip.WriteAll(hex); err != nil {
		a.status = "clipboard unavailable"
		log.Printf("clipboard write: %v", err)
		return
	}
	a.status = "copied " + hex
}

func (a *App) pasteColor() {
	text, err := a.clip.ReadAll()
	if err != nil {
		a.status = "clipboard unavailable"
		log.Printf("clipboard read: %v", err)
		return
	}
	text = strings.TrimSpace(text)
	if err := a.session.Picker().SelectHex(text); err != nil {
		a.status = fmt.Sprintf("not a color: %q", text)
		return
	}
	a.status = "pasted " + a.session.Picker().Color().Hex()
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
	released := buttons&tcell.Button1 == 0
	a.buttons = buttons

	if a.layout.TooSmall {
		return
	}

	if p := a.session.Picker(); p.IsOpen() {
		a.session.PointerLeave()
		if !pressed {
			return
		}
		switch tag := a.layout.CloseTag(); {
		case tag.Contains(x, y):
			p.Close()
		case !a.layout.Dialog.Contains(x, y):
			p.Close()
		default:
			if i, ok := a.layout.SwatchAt(x, y); ok {
				p.SelectIndex(i)
			}
		}
		return
	}

	if a.dragging {
		if released {
			a.dragging = false
		} else {
			a.session.Panel().SetFraction(a.dragID, a.layout.SliderFraction(a.dragID, x))
		}
		return
	}

	fx, fy, inField := a.layout.FieldAt(x, y)
	if inField {
		a.session.PointerMove(fx, fy)
	} else {
		a.session.PointerLeave()
	}

	if !pressed {
		return
	}
	if inField {
		a.session.Click(fx, fy)
		return
	}
	if id, f, ok := a.layout.SliderAt(x, y); ok {
		pn := a.session.Panel()
		pn.SetFocus(id)
		pn.SetFraction(id, f)
		a.dragging = true
		a.dragID = id
	}
}
