package factory

import (
	"math/rand"

	"donut-tell-me/assets"
	"donut-tell-me/internal/component"
	"donut-tell-me/internal/donut"
	"donut-tell-me/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// NewCustomer creates a customer waiting in line with the given taste and
// line ticket. Name and face are drawn from the catalog.
func NewCustomer(w *ecs.World, cat *assets.Catalog, rng *rand.Rand, taste donut.Taste, ticket int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Customer{
		Name:   cat.Names[rng.Intn(len(cat.Names))],
		State:  component.CustomerInLine,
		Ticket: ticket,
	})
	w.Add(id, component.Taste{Taste: taste})
	w.Add(id, component.Renderable{
		Glyph:       cat.Faces[rng.Intn(len(cat.Faces))],
		FGColor:     tcell.ColorWhite,
		RenderOrder: 5,
	})
	return id
}

// NewCookingDonut creates a plain donut for the player to decorate.
func NewCookingDonut(w *ecs.World) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Donut{Donut: donut.New(0, 0, 0)})
	w.Add(id, component.TagCooking{})
	return id
}

// NewEmote creates a reaction bubble for customer that disappears after
// ticks world ticks.
func NewEmote(w *ecs.World, cat *assets.Catalog, customer ecs.EntityID, rank, ticks int) ecs.EntityID {
	e := donut.EmotionFor(rank)
	id := w.CreateEntity()
	w.Add(id, component.Emote{Emotion: e, Rank: rank, Customer: customer})
	w.Add(id, component.Renderable{
		Glyph:       cat.Emote(e),
		FGColor:     tcell.ColorYellow,
		RenderOrder: 10,
	})
	w.Add(id, component.Timer{TicksRemaining: ticks})
	return id
}
