package component

import (
	"donut-tell-me/internal/donut"
	"donut-tell-me/internal/ecs"
)

const CEmote ecs.ComponentType = 6

// Emote is the reaction bubble shown above a customer after an offer.
type Emote struct {
	Emotion  donut.Emotion
	Rank     int
	Customer ecs.EntityID
}

func (Emote) Type() ecs.ComponentType { return CEmote }
