package render

import (
	"github.com/gdamore/tcell/v2"
)

// HUDHeight is the number of rows reserved at the bottom of the screen.
const HUDHeight = 5

const keyHelp = "Q/W ←/→ base   A/S glazing   Z/X sprinkles   N new donut   Enter offer   Esc quit"

// drawHUD renders the key help and the last three messages.
func (r *Renderer) drawHUD(messages []string, over bool) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDHeight

	r.drawHLine(hudY, tcell.ColorGray)
	help := keyHelp
	if over {
		help = "The shop is full of regulars. Press any key."
	}
	r.drawText(0, hudY+1, help, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	start := len(messages) - 3
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}
