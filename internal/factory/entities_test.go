package factory

import (
	"math/rand"
	"testing"

	"donut-tell-me/assets"
	"donut-tell-me/internal/component"
	"donut-tell-me/internal/donut"
	"donut-tell-me/internal/ecs"
)

func TestNewCustomer(t *testing.T) {
	w := ecs.NewWorld()
	cat := assets.MustDefault()
	rng := rand.New(rand.NewSource(3))
	taste := donut.RandomTaste(rng, cat.Weights())

	id := NewCustomer(w, cat, rng, taste, 4)

	c, ok := w.Get(id, component.CCustomer).(component.Customer)
	if !ok {
		t.Fatal("customer missing Customer component")
	}
	if c.State != component.CustomerInLine {
		t.Errorf("State = %v; want in line", c.State)
	}
	if c.Ticket != 4 {
		t.Errorf("Ticket = %d; want 4", c.Ticket)
	}
	if c.Name == "" {
		t.Error("customer has no name")
	}
	got := w.Get(id, component.CTaste).(component.Taste)
	if got.Taste != taste {
		t.Error("taste not stored as given")
	}
	if !w.Has(id, component.CRenderable) {
		t.Error("customer has no face")
	}
}

func TestNewCookingDonut(t *testing.T) {
	w := ecs.NewWorld()
	id := NewCookingDonut(w)
	if !w.Has(id, component.CTagCooking) {
		t.Fatal("cooking donut missing tag")
	}
	d := w.Get(id, component.CDonut).(component.Donut)
	if d.Donut != donut.New(0, 0, 0) {
		t.Errorf("fresh donut = %+v; want zero variants", d.Donut)
	}
}

func TestNewEmote(t *testing.T) {
	w := ecs.NewWorld()
	cat := assets.MustDefault()
	id := NewEmote(w, cat, ecs.EntityID(9), 5, 3)

	em := w.Get(id, component.CEmote).(component.Emote)
	if em.Emotion != donut.EmotionLove || em.Customer != 9 {
		t.Errorf("emote = %+v", em)
	}
	if tm := w.Get(id, component.CTimer).(component.Timer); tm.TicksRemaining != 3 {
		t.Errorf("TicksRemaining = %d; want 3", tm.TicksRemaining)
	}
	if r := w.Get(id, component.CRenderable).(component.Renderable); r.Glyph != cat.Emote(donut.EmotionLove) {
		t.Errorf("glyph = %q", r.Glyph)
	}
}
