package system

import (
	"donut-tell-me/internal/component"
	"donut-tell-me/internal/ecs"
)

// TickTimers counts every Timer down by one tick and destroys the entities
// whose timer ran out. It returns the destroyed entities.
func TickTimers(w *ecs.World) []ecs.EntityID {
	var expired []ecs.EntityID
	for _, id := range w.Query(component.CTimer) {
		tm := w.Get(id, component.CTimer).(component.Timer)
		tm.TicksRemaining--
		if tm.TicksRemaining > 0 {
			w.Add(id, tm)
			continue
		}
		expired = append(expired, id)
	}
	for _, id := range expired {
		if c, ok := w.Get(id, component.CCustomer).(component.Customer); ok {
			c.State = component.CustomerLeft
			w.Add(id, c)
		}
		w.DestroyEntity(id)
	}
	return expired
}
