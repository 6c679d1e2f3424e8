package render

import (
	"fmt"

	"donut-tell-me/assets"
	"donut-tell-me/internal/component"
	"donut-tell-me/internal/donut"
	"donut-tell-me/internal/ecs"
	"donut-tell-me/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Frame is everything the renderer needs besides the world itself.
type Frame struct {
	World         *ecs.World
	Player        string
	Regulars      int
	RegularsToWin int
	Served        int
	Log           []system.Outcome
	Messages      []string
	Over          bool
}

// logPanelWidth is the width of the transaction log on the right.
const logPanelWidth = 34

// Renderer draws a shop onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	cat    *assets.Catalog
}

func NewRenderer(screen tcell.Screen, cat *assets.Catalog) *Renderer {
	return &Renderer{screen: screen, cat: cat}
}

// DrawFrame renders the counter, the cooking donut, the log and the HUD.
func (r *Renderer) DrawFrame(f Frame) {
	r.screen.Clear()
	r.drawHeader(f)
	r.drawCounter(f.World)
	r.drawCookingDonut(f.World)
	r.drawLog(f.Log)
	r.drawHUD(f.Messages, f.Over)
	r.screen.Show()
}

func (r *Renderer) drawHeader(f Frame) {
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	r.drawText(1, 0, "🍩 Donut Tell Me!", white)
	status := fmt.Sprintf("Regulars %d/%d   Served %d   Line %d",
		f.Regulars, f.RegularsToWin, f.Served, len(system.Line(f.World)))
	r.drawText(22, 0, status, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	if f.Player != "" {
		r.drawText(22, 1, "Baker: "+f.Player, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
}

// drawCounter shows the customer being served, any emote bubbles and the
// regulars lingering before they leave. People in line stay hidden; only
// their count is shown in the header.
func (r *Renderer) drawCounter(w *ecs.World) {
	const top = 3
	label := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	r.drawText(1, top, "Counter", label)

	emotes := map[ecs.EntityID]string{}
	for _, id := range w.Query(component.CEmote, component.CRenderable) {
		em := w.Get(id, component.CEmote).(component.Emote)
		emotes[em.Customer] = w.Get(id, component.CRenderable).(component.Renderable).Glyph
	}

	if cur := system.CurrentCustomer(w); cur != ecs.NilEntity {
		r.drawCustomer(3, top+2, w, cur, "")
	} else {
		r.drawText(3, top+2, "(nobody at the counter)", tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	x := 30
	for _, id := range system.Regulars(w) {
		r.drawCustomer(x, top+2, w, id, emotes[id])
		r.drawText(x, top+3, "regular!", tcell.StyleDefault.Foreground(tcell.ColorHotPink))
		x += 14
	}
	// Bubbles of customers who already walked off stay readable for a beat.
	col := 3
	for _, id := range w.Query(component.CEmote, component.CRenderable) {
		em := w.Get(id, component.CEmote).(component.Emote)
		if w.Alive(em.Customer) {
			continue
		}
		r.putGlyph(col, top+1, w.Get(id, component.CRenderable).(component.Renderable).Glyph, tcell.StyleDefault)
		col += 3
	}
}

func (r *Renderer) drawCustomer(x, y int, w *ecs.World, id ecs.EntityID, bubble string) {
	c, _ := w.Get(id, component.CCustomer).(component.Customer)
	if rc, ok := w.Get(id, component.CRenderable).(component.Renderable); ok {
		r.putGlyph(x, y, rc.Glyph, tcell.StyleDefault.Foreground(rc.FGColor))
	}
	r.drawText(x+3, y, c.Name, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	if bubble != "" {
		r.putGlyph(x, y-1, bubble, tcell.StyleDefault)
	}
}

// drawCookingDonut shows the donut layers with their variant names and keys.
func (r *Renderer) drawCookingDonut(w *ecs.World) {
	const top = 9
	label := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	r.drawText(1, top, "Cooking", label)

	id := system.CookingDonut(w)
	if id == ecs.NilEntity {
		r.drawText(3, top+2, "No donut in the oven. Press N to cook one.", tcell.StyleDefault.Foreground(tcell.ColorGray))
		return
	}
	d := w.Get(id, component.CDonut).(component.Donut)
	keys := map[donut.Kind]string{
		donut.KindBase:      "Q/W ←/→",
		donut.KindGlazing:   "A/S",
		donut.KindSprinkles: "Z/X",
	}
	for i, k := range donut.Kinds {
		a := d.Get(k)
		sp := r.cat.Sprite(a)
		y := top + 2 + i
		r.drawText(3, y, fmt.Sprintf("%-10s", k), tcell.StyleDefault.Foreground(tcell.ColorGray))
		r.drawText(14, y, "◀", tcell.StyleDefault)
		r.putGlyph(16, y, sp.Glyph, tcell.StyleDefault.Foreground(spriteColor(sp.Color)))
		r.drawText(19, y, fmt.Sprintf("%-18s", sp.Name), tcell.StyleDefault.Foreground(spriteColor(sp.Color)))
		r.drawText(38, y, "▶", tcell.StyleDefault)
		r.drawText(41, y, fmt.Sprintf("%d/%d  %s", a.Value+1, k.Count(), keys[k]), tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
}

// drawLog fills the right-hand panel with the latest transactions, newest
// at the top.
func (r *Renderer) drawLog(log []system.Outcome) {
	sw, sh := r.screen.Size()
	x := sw - logPanelWidth
	if x < 60 {
		return
	}
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := 0; y < sh-5; y++ {
		r.screen.SetContent(x-1, y, '│', nil, gray)
	}
	r.drawText(x+1, 0, "Transactions", tcell.StyleDefault.Foreground(tcell.ColorLightYellow))

	rows := (sh - 7) / 2
	for i := 0; i < rows && i < len(log); i++ {
		o := log[len(log)-1-i]
		y := 2 + i*2
		r.drawText(x+1, y, o.Name, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		col := x + 12
		for _, k := range donut.Kinds {
			sp := r.cat.Sprite(o.Donut.Get(k))
			r.putGlyph(col, y, sp.Glyph, tcell.StyleDefault.Foreground(spriteColor(sp.Color)))
			col += 3
		}
		r.putGlyph(col+1, y, r.cat.Emote(o.Emotion), tcell.StyleDefault)
		r.drawText(x+1, y+1, Stars(o.Rank), EmotionStyle(o.Emotion))
	}
}

// drawText writes text starting at column x, advancing by each rune's
// display width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			w = 1
		}
		col += w
	}
	return col
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
