package component

import (
	"donut-tell-me/internal/donut"
	"donut-tell-me/internal/ecs"
)

const CTaste ecs.ComponentType = 2

// Taste is the customer's hidden rating table.
type Taste struct {
	donut.Taste
}

func (Taste) Type() ecs.ComponentType { return CTaste }
