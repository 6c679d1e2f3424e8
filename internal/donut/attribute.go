// Package donut holds the donut model: the three cyclic attributes a player
// can change, the customer taste profile and the ranking policies that turn
// one into a star rating.
package donut

import "fmt"

// Kind is one of the three visual traits of a donut.
type Kind uint8

const (
	KindBase Kind = iota
	KindGlazing
	KindSprinkles
)

// Kinds lists every attribute kind in sheet order.
var Kinds = [...]Kind{KindBase, KindGlazing, KindSprinkles}

// Per-kind variant counts and sprite sheet offsets.
const (
	BaseCount      = 3
	GlazingCount   = 10
	SprinklesCount = 9

	baseStart      = 0
	glazingStart   = baseStart + BaseCount
	sprinklesStart = glazingStart + GlazingCount

	// SpriteCount is the number of slices in the donut sheet.
	SpriteCount = sprinklesStart + SprinklesCount
)

// Count is the modulus used when cycling values of this kind.
func (k Kind) Count() int {
	switch k {
	case KindBase:
		return BaseCount
	case KindGlazing:
		return GlazingCount
	case KindSprinkles:
		return SprinklesCount
	}
	return 1
}

// StartSprite is the index of the kind's first slice in the donut sheet.
func (k Kind) StartSprite() int {
	switch k {
	case KindGlazing:
		return glazingStart
	case KindSprinkles:
		return sprinklesStart
	}
	return baseStart
}

func (k Kind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindGlazing:
		return "glazing"
	case KindSprinkles:
		return "sprinkles"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Direction selects which way an attribute cycles.
type Direction int8

const (
	Left  Direction = -1
	Right Direction = 1
)

// Attr is a cyclic attribute value. Value always stays in [0, Kind.Count()).
type Attr struct {
	Kind  Kind
	Value int
}

// NewAttr builds an attribute, wrapping out-of-range values into range.
func NewAttr(k Kind, v int) Attr {
	return Attr{Kind: k, Value: wrap(v, k.Count())}
}

// CycleRight returns the next variant, wrapping to 0 after the last one.
func (a Attr) CycleRight() Attr {
	n := a.Kind.Count()
	a.Value = (a.Value + n + 1) % n
	return a
}

// CycleLeft returns the previous variant, wrapping to the last one before 0.
func (a Attr) CycleLeft() Attr {
	n := a.Kind.Count()
	a.Value = (a.Value + n - 1) % n
	return a
}

// Cycle moves one step in direction d.
func (a Attr) Cycle(d Direction) Attr {
	if d == Left {
		return a.CycleLeft()
	}
	return a.CycleRight()
}

// SpriteIndex maps the value onto the donut sprite sheet.
func (a Attr) SpriteIndex() int {
	return a.Kind.StartSprite() + a.Value
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
