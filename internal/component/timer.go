package component

import "donut-tell-me/internal/ecs"

const CTimer ecs.ComponentType = 5

// Timer destroys its entity once TicksRemaining reaches zero.
type Timer struct {
	TicksRemaining int
}

func (Timer) Type() ecs.ComponentType { return CTimer }
