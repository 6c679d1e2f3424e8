package ecs

// EntityID identifies an entity. IDs are handed out in increasing order and
// never reused, so ordering by ID is ordering by creation time.
type EntityID uint64

// NilEntity is never handed out by a World.
const NilEntity EntityID = 0

// ComponentType keys a component store.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}
