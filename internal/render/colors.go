package render

import (
	"strings"

	"donut-tell-me/internal/donut"

	"github.com/gdamore/tcell/v2"
)

const (
	starFull  = "⭐"
	starEmpty = "·"
)

// emotionColors tints the log line of each reaction.
var emotionColors = map[donut.Emotion]tcell.Color{
	donut.EmotionLove:        tcell.ColorHotPink,
	donut.EmotionHappy:       tcell.ColorLime,
	donut.EmotionSad:         tcell.ColorLightSkyBlue,
	donut.EmotionAngry:       tcell.ColorOrange,
	donut.EmotionHeartbroken: tcell.ColorRed,
}

// EmotionStyle is the text style for a reaction.
func EmotionStyle(e donut.Emotion) tcell.Style {
	c, ok := emotionColors[e]
	if !ok {
		c = tcell.ColorWhite
	}
	return tcell.StyleDefault.Foreground(c)
}

// Stars renders a rank as filled and empty stars, e.g. "⭐⭐⭐··".
func Stars(rank int) string {
	rank = donut.ClampRank(rank)
	return strings.Repeat(starFull, rank) + strings.Repeat(starEmpty, donut.MaxRank-rank)
}

// spriteColor resolves a catalog color name; unknown names fall back to white.
func spriteColor(name string) tcell.Color {
	if c := tcell.GetColor(name); c != tcell.ColorDefault {
		return c
	}
	return tcell.ColorWhite
}
