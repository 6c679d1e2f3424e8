package system

import (
	"sort"

	"donut-tell-me/internal/component"
	"donut-tell-me/internal/ecs"
)

// SpawnFunc creates a waiting customer holding the given line ticket.
type SpawnFunc func(ticket int) ecs.EntityID

// Line returns the customers waiting in line, head first.
func Line(w *ecs.World) []ecs.EntityID {
	var line []ecs.EntityID
	for _, id := range w.Query(component.CCustomer) {
		if customer(w, id).State == component.CustomerInLine {
			line = append(line, id)
		}
	}
	sort.SliceStable(line, func(i, j int) bool {
		return customer(w, line[i]).Ticket < customer(w, line[j]).Ticket
	})
	return line
}

// RefillLine spawns customers until the line holds depth of them, creating
// at most maxPerTick in one call. It returns how many were spawned.
func RefillLine(w *ecs.World, depth, maxPerTick int, spawn SpawnFunc) int {
	missing := depth - len(Line(w))
	if missing > maxPerTick {
		missing = maxPerTick
	}
	spawned := 0
	for ; spawned < missing; spawned++ {
		spawn(NextTicket(w))
	}
	return spawned
}

// CurrentCustomer returns the customer at the counter, or NilEntity.
func CurrentCustomer(w *ecs.World) ecs.EntityID {
	return w.First(component.CTagCurrent, component.CCustomer)
}

// NextCustomer promotes the head of the line to the counter once the
// counter is free. It returns the promoted customer, or NilEntity when the
// counter is busy or nobody is waiting.
func NextCustomer(w *ecs.World) ecs.EntityID {
	if CurrentCustomer(w) != ecs.NilEntity {
		return ecs.NilEntity
	}
	line := Line(w)
	if len(line) == 0 {
		return ecs.NilEntity
	}
	head := line[0]
	c := customer(w, head)
	c.State = component.CustomerCurrent
	c.Visits++
	w.Add(head, c)
	w.Add(head, component.TagCurrent{})
	return head
}

// NextTicket is one past the highest ticket held by any customer.
func NextTicket(w *ecs.World) int {
	next := 0
	for _, id := range w.Query(component.CCustomer) {
		if t := customer(w, id).Ticket; t >= next {
			next = t + 1
		}
	}
	return next
}

func customer(w *ecs.World, id ecs.EntityID) component.Customer {
	c, _ := w.Get(id, component.CCustomer).(component.Customer)
	return c
}
