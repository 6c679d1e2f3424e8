package donut

// Donut owns its three attribute values. The cooking donut is mutated in
// place; offered donuts are copied by value into the transaction log.
type Donut struct {
	Base      Attr
	Glazing   Attr
	Sprinkles Attr
}

// New returns a donut with the given variant values.
func New(base, glazing, sprinkles int) Donut {
	return Donut{
		Base:      NewAttr(KindBase, base),
		Glazing:   NewAttr(KindGlazing, glazing),
		Sprinkles: NewAttr(KindSprinkles, sprinkles),
	}
}

// Get returns the attribute of kind k.
func (d Donut) Get(k Kind) Attr {
	switch k {
	case KindGlazing:
		return d.Glazing
	case KindSprinkles:
		return d.Sprinkles
	}
	return d.Base
}

// Cycle advances attribute k one step in direction dir.
func (d *Donut) Cycle(k Kind, dir Direction) {
	switch k {
	case KindBase:
		d.Base = d.Base.Cycle(dir)
	case KindGlazing:
		d.Glazing = d.Glazing.Cycle(dir)
	case KindSprinkles:
		d.Sprinkles = d.Sprinkles.Cycle(dir)
	}
}

// SpriteIndexes returns the sheet slices drawn bottom to top.
func (d Donut) SpriteIndexes() [3]int {
	return [3]int{d.Base.SpriteIndex(), d.Glazing.SpriteIndex(), d.Sprinkles.SpriteIndex()}
}
