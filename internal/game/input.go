package game

import (
	"donut-tell-me/internal/donut"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionBaseLeft
	ActionBaseRight
	ActionGlazingLeft
	ActionGlazingRight
	ActionSprinklesLeft
	ActionSprinklesRight
	ActionCook
	ActionOffer
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionBaseLeft
	case tcell.KeyRight:
		return ActionBaseRight
	case tcell.KeyEnter:
		return ActionOffer
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'q', 'Q':
		return ActionBaseLeft
	case 'w', 'W':
		return ActionBaseRight
	case 'a', 'A':
		return ActionGlazingLeft
	case 's', 'S':
		return ActionGlazingRight
	case 'z', 'Z':
		return ActionSprinklesLeft
	case 'x', 'X':
		return ActionSprinklesRight
	case 'n', 'N':
		return ActionCook
	case ' ':
		return ActionOffer
	}
	return ActionNone
}

// actionToCycle converts a cycling action to the attribute and direction it
// moves. ok is false for every other action.
func actionToCycle(a Action) (k donut.Kind, dir donut.Direction, ok bool) {
	switch a {
	case ActionBaseLeft:
		return donut.KindBase, donut.Left, true
	case ActionBaseRight:
		return donut.KindBase, donut.Right, true
	case ActionGlazingLeft:
		return donut.KindGlazing, donut.Left, true
	case ActionGlazingRight:
		return donut.KindGlazing, donut.Right, true
	case ActionSprinklesLeft:
		return donut.KindSprinkles, donut.Left, true
	case ActionSprinklesRight:
		return donut.KindSprinkles, donut.Right, true
	}
	return 0, 0, false
}
