package game

import (
	"context"
	"fmt"

	"donut-tell-me/internal/donut"
	"donut-tell-me/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// putText writes s at (x, y), advancing by each rune's display width.
func (g *Game) putText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, style)
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		x += w
	}
}

// showEndScreen shows the run summary and reports whether the player wants
// another go.
func (g *Game) showEndScreen(ctx context.Context, s *Session) bool {
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	dim := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	best := -1
	for i, o := range s.Transactions() {
		if best < 0 || o.Rank > s.transactions[best].Rank {
			best = i
		}
	}
	emotions := map[donut.Emotion]int{}
	for _, o := range s.Transactions() {
		emotions[o.Emotion]++
	}

	for {
		g.screen.Clear()
		sw, _ := g.screen.Size()

		sep := func(y int) {
			for x := 0; x < sw; x++ {
				g.screen.SetContent(x, y, '─', nil, gray)
			}
		}
		// label prints a left-aligned key at column 2 and value at column 22.
		label := func(y int, l, v string) {
			g.putText(2, y, l, dim)
			g.putText(22, y, v, white)
		}

		y := 1
		sep(y)
		y += 2

		g.putText(2, y, "THE SHOP IS FULL OF REGULARS", gold)
		badge := "[YOU WIN]"
		g.putText(sw-len(badge)-1, y, badge, green)
		y += 2

		label(y, "Baker:", s.Player())
		y++
		label(y, "Regulars:", fmt.Sprintf("%d", s.Regulars()))
		y++
		label(y, "Donuts Served:", fmt.Sprintf("%d", s.Served()))
		y++
		label(y, "Average Rank:", fmt.Sprintf("%.1f", s.AverageRank()))
		y += 2

		if best >= 0 {
			o := s.transactions[best]
			glyphs := ""
			for _, k := range donut.Kinds {
				glyphs += g.opts.Catalog.Sprite(o.Donut.Get(k)).Glyph
			}
			label(y, "Best Donut:", fmt.Sprintf("%s  %s for %s", glyphs, render.Stars(o.Rank), o.Name))
			y++
		}
		reactions := ""
		for e := donut.EmotionLove; ; e-- {
			if n := emotions[e]; n > 0 {
				reactions += fmt.Sprintf("%s×%d  ", g.opts.Catalog.Emote(e), n)
			}
			if e == donut.EmotionHeartbroken {
				break
			}
		}
		label(y, "Reactions:", reactions)
		y += 2

		sep(y)
		y += 2

		g.putText(2, y, "[R] Try Again", green)
		g.putText(18, y, "[Esc] Quit", red)

		g.screen.Show()

		var ev tcell.Event
		select {
		case <-ctx.Done():
			return false
		case ev = <-g.events:
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
			continue // redraw on resize
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'r', 'R':
					return true
				case 'q', 'Q':
					return false
				}
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return false
			}
		}
	}
}
