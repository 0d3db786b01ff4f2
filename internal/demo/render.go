package demo

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/touchkey/internal/geom"
)

var (
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleKey      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	styleActive   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightGray)
	styleCallout  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorOrange)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// draw renders the text buffer, the key grid, and any open callouts.
func (a *App) draw() {
	a.mu.Lock()
	screen := a.screen
	text := a.text
	keys := a.keys
	active := a.active
	kbType := a.keyboardType
	locale := a.locale
	a.mu.Unlock()

	if screen == nil {
		return
	}
	screen.Clear()

	drawString(screen, gridLeft, textTop, styleText, text+"_")
	drawString(screen, gridLeft, textTop+1, styleStatus, kbType.String()+"  "+locale+"  esc quits")

	for _, k := range keys {
		style := styleKey
		if k == active {
			style = styleActive
		}
		drawKey(screen, k.frame, style, k.label)
	}

	a.drawCallouts(screen)
	screen.Show()
}

// drawCallouts renders the input preview above the pressed key and the
// alternate picker row above that.
func (a *App) drawCallouts(screen tcell.Screen) {
	if a.inputCallout.IsActive() {
		frame := a.inputCallout.Frame()
		drawString(screen, int(frame.X)+1, int(frame.Y)-1, styleCallout, " "+a.inputCallout.Input()+" ")
	}

	if !a.actionCallout.IsActive() {
		return
	}
	frame := a.actionCallout.Frame()
	selected := a.actionCallout.SelectedIndex()
	x := int(frame.X)
	y := int(frame.Y) - 2
	for i, input := range a.actionCallout.Inputs() {
		style := styleCallout
		if i == selected {
			style = styleSelected
		}
		drawString(screen, x, y, style, " "+input+" ")
		x += pickerSlotPitch
	}
}

// drawKey renders one key box with a centered label.
func drawKey(screen tcell.Screen, frame geom.Rect, style tcell.Style, label string) {
	x0, y0 := int(frame.X), int(frame.Y)
	w, h := int(frame.W), int(frame.H)

	for y := y0; y < y0+h-1; y++ {
		for x := x0; x < x0+w-1; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
	lx := x0 + (w-1-len([]rune(label)))/2
	if lx < x0 {
		lx = x0
	}
	drawString(screen, lx, y0+(h-1)/2, style, label)
}

func drawString(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
