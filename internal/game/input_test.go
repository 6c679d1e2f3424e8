package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionBaseLeft},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionBaseRight},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionBaseLeft},
		{"W", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), ActionBaseRight},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), ActionGlazingLeft},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), ActionGlazingRight},
		{"z", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionSprinklesLeft},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionSprinklesRight},
		{"n", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), ActionCook},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionOffer},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), ActionNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := keyToAction(tc.ev); got != tc.want {
				t.Errorf("keyToAction = %d; want %d", got, tc.want)
			}
		})
	}
}

func TestActionToCycleOnlyForCycling(t *testing.T) {
	for _, a := range []Action{ActionNone, ActionCook, ActionOffer, ActionQuit} {
		if _, _, ok := actionToCycle(a); ok {
			t.Errorf("action %d should not cycle", a)
		}
	}
}
