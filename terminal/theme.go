package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/duel/paint"
)

// Field background behind the half-block raster
var fieldBg = paint.White

// Styles
var (
	styleDefault    = tcell.StyleDefault
	styleBorder     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleLabel      = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleFocus      = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBar        = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleBarFocus   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleValue      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHelp       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleWarn       = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleDialogBg   = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleDialogBox  = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorAqua)
	styleDialogHelp = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorSilver)
)

// tcellColor converts a paint color to a true-color tcell color
func tcellColor(c paint.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// heroStyle renders text in the hero's fill color
func heroStyle(c paint.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(c)).Bold(true)
}

// swatchStyle fills a cell with c and picks a readable foreground
func swatchStyle(c paint.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcellColor(c)).Foreground(tcellColor(c.Contrast()))
}
