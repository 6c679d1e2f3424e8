package component

import "donut-tell-me/internal/ecs"

const (
	CTagCooking ecs.ComponentType = 7
	CTagCurrent ecs.ComponentType = 8
)

// TagCooking marks the donut the player is currently editing.
type TagCooking struct{}

func (TagCooking) Type() ecs.ComponentType { return CTagCooking }

// TagCurrent marks the customer being served.
type TagCurrent struct{}

func (TagCurrent) Type() ecs.ComponentType { return CTagCurrent }
