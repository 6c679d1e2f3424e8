package component

import (
	"donut-tell-me/internal/donut"
	"donut-tell-me/internal/ecs"
)

const CDonut ecs.ComponentType = 1

// Donut attaches a donut model to an entity.
type Donut struct {
	donut.Donut
}

func (Donut) Type() ecs.ComponentType { return CDonut }
