package system

import (
	"fmt"

	"donut-tell-me/assets"
	"donut-tell-me/internal/component"
	"donut-tell-me/internal/donut"
	"donut-tell-me/internal/ecs"
	"donut-tell-me/internal/factory"
)

// QueuePolicy decides what happens to a customer who did not become a regular.
type QueuePolicy uint8

const (
	// QueueDequeue sends unhappy customers home.
	QueueDequeue QueuePolicy = iota
	// QueueRotate sends unhappy customers to the back of the line with the
	// same taste, so the player gets another try later.
	QueueRotate
)

// ParseQueuePolicy maps a config value to a QueuePolicy.
func ParseQueuePolicy(s string) (QueuePolicy, error) {
	switch s {
	case "", "dequeue":
		return QueueDequeue, nil
	case "rotate":
		return QueueRotate, nil
	}
	return QueueDequeue, fmt.Errorf("unknown queue policy %q", s)
}

func (p QueuePolicy) String() string {
	if p == QueueRotate {
		return "rotate"
	}
	return "dequeue"
}

// ServeRules configures Offer.
type ServeRules struct {
	Policy      donut.Policy
	Queue       QueuePolicy
	LingerTicks int // how long a new regular stays visible
	EmoteTicks  int // how long the reaction bubble stays up
	Catalog     *assets.Catalog
}

// Outcome describes one offered donut.
type Outcome struct {
	Customer ecs.EntityID
	Name     string
	Donut    donut.Donut
	Rank     int
	Emotion  donut.Emotion
	Regular  bool
	Rejoined bool // went back to the line instead of leaving
}

// Offer hands the cooking donut to the current customer. The donut is
// consumed and the customer leaves the counter: as a lingering regular on a
// perfect rank, otherwise home or back in line depending on the queue
// policy. ok is false, and nothing changes, when there is no customer at
// the counter or no donut cooking.
func Offer(w *ecs.World, rules ServeRules) (out Outcome, ok bool) {
	cust := CurrentCustomer(w)
	cooking := CookingDonut(w)
	if cust == ecs.NilEntity || cooking == ecs.NilEntity {
		return Outcome{}, false
	}

	taste := w.Get(cust, component.CTaste).(component.Taste)
	d := w.Get(cooking, component.CDonut).(component.Donut)
	c := customer(w, cust)

	rank := taste.RankWith(rules.Policy, d.Donut)
	out = Outcome{
		Customer: cust,
		Name:     c.Name,
		Donut:    d.Donut,
		Rank:     rank,
		Emotion:  donut.EmotionFor(rank),
		Regular:  rank == donut.MaxRank,
	}

	w.DestroyEntity(cooking)
	w.Remove(cust, component.CTagCurrent)
	if rules.Catalog != nil {
		factory.NewEmote(w, rules.Catalog, cust, rank, rules.EmoteTicks)
	}

	switch {
	case out.Regular:
		c.State = component.CustomerRegular
		w.Add(cust, c)
		w.Add(cust, component.Timer{TicksRemaining: rules.LingerTicks})
	case rules.Queue == QueueRotate:
		c.State = component.CustomerInLine
		c.Ticket = NextTicket(w)
		w.Add(cust, c)
		out.Rejoined = true
	default:
		c.State = component.CustomerLeft
		w.Add(cust, c)
		w.DestroyEntity(cust)
	}
	return out, true
}

// Regulars returns the regulars still lingering at the shop.
func Regulars(w *ecs.World) []ecs.EntityID {
	var ids []ecs.EntityID
	for _, id := range w.Query(component.CCustomer) {
		if customer(w, id).State == component.CustomerRegular {
			ids = append(ids, id)
		}
	}
	return ids
}
