package constant

// Terminal layout, in cells
const (
	PanelRows      = 8 // Title, tally, four sliders, spacer, help
	StatusRows     = 1
	MinFieldRows   = 4
	SliderLabelW   = 18
	SliderValueW   = 6
	SwatchWidth    = 3
	PaletteSize    = 12
	DialogWidth    = 44
	DialogHeight   = 9
	DialogTitle    = "Change Bullet Color"
	DialogCloseTag = "×"
)

// Canvas layout, in pixels
const (
	CanvasPanelHeight = 170
	CanvasSliderW     = 220
	CanvasSliderH     = 10
	CanvasRowH        = 28
	CanvasDialogW     = 320
	CanvasDialogH     = 130
)
