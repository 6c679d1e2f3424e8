package system

import (
	"donut-tell-me/internal/component"
	"donut-tell-me/internal/donut"
	"donut-tell-me/internal/ecs"
	"donut-tell-me/internal/factory"
)

// CookingDonut returns the donut being decorated, or NilEntity.
func CookingDonut(w *ecs.World) ecs.EntityID {
	return w.First(component.CTagCooking, component.CDonut)
}

// CookAnother throws away the donut being decorated, if any, and starts a
// plain one.
func CookAnother(w *ecs.World) ecs.EntityID {
	for _, id := range w.Query(component.CTagCooking) {
		w.DestroyEntity(id)
	}
	return factory.NewCookingDonut(w)
}

// ChangeCookingDonut cycles one attribute of the cooking donut. It reports
// false when nothing is cooking.
func ChangeCookingDonut(w *ecs.World, k donut.Kind, dir donut.Direction) bool {
	id := CookingDonut(w)
	if id == ecs.NilEntity {
		return false
	}
	d := w.Get(id, component.CDonut).(component.Donut)
	d.Cycle(k, dir)
	w.Add(id, d)
	return true
}
