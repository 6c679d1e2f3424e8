package donut

import (
	"math"
	"math/rand"
)

// Rating bounds. Zero means the customer has no opinion on a variant.
const (
	MinRating = 1
	MaxRating = 5
	MaxRank   = 5
)

// Taste is a customer's private rating table, one rating per variant of
// every attribute kind. It is never modified after creation.
type Taste struct {
	Bases     [BaseCount]int
	Glazing   [GlazingCount]int
	Sprinkles [SprinklesCount]int
}

// Rating returns the rating the taste gives variant v of kind k, or 0 when v
// is out of range.
func (t Taste) Rating(k Kind, v int) int {
	var row []int
	switch k {
	case KindBase:
		row = t.Bases[:]
	case KindGlazing:
		row = t.Glazing[:]
	case KindSprinkles:
		row = t.Sprinkles[:]
	}
	if v < 0 || v >= len(row) {
		return 0
	}
	return row[v]
}

// Ratings returns the three ratings a donut earns.
func (t Taste) Ratings(d Donut) (base, glazing, sprinkles int) {
	return t.Rating(KindBase, d.Base.Value),
		t.Rating(KindGlazing, d.Glazing.Value),
		t.Rating(KindSprinkles, d.Sprinkles.Value)
}

// Rank scores d with the weighted policy.
func (t Taste) Rank(d Donut) int {
	return t.RankWith(Weighted{}, d)
}

// RankWith scores d with policy p. A nil policy means Weighted.
func (t Taste) RankWith(p Policy, d Donut) int {
	if p == nil {
		p = Weighted{}
	}
	b, g, s := t.Ratings(d)
	return p.Rank(b, g, s)
}

// Policy turns three per-attribute ratings into a 0..5 star rank.
type Policy interface {
	Rank(base, glazing, sprinkles int) int
}

// Weighted maps each rating onto a weight, averages the weights and scales
// the result to five stars.
type Weighted struct{}

// Weight is ((r-4)*2+7)/9: 5 maps to 1, 1 to 1/9, 0 slightly below zero.
func Weight(r int) float64 {
	return float64((r-4)*2+7) / 9
}

func (Weighted) Rank(base, glazing, sprinkles int) int {
	avg := (Weight(base) + Weight(glazing) + Weight(sprinkles)) / 3
	return ClampRank(int(math.Round(avg * MaxRank)))
}

// PlainAverage is the integer mean of the three ratings.
type PlainAverage struct{}

func (PlainAverage) Rank(base, glazing, sprinkles int) int {
	return ClampRank((base + glazing + sprinkles) / 3)
}

// ClampRank bounds r to [0, MaxRank].
func ClampRank(r int) int {
	if r < 0 {
		return 0
	}
	if r > MaxRank {
		return MaxRank
	}
	return r
}

// RatingWeights is the relative likelihood of ratings 1..5 when drawing a
// random taste. All zero means uniform.
type RatingWeights [MaxRating]int

// RandomTaste draws a fresh taste profile.
func RandomTaste(rng *rand.Rand, w RatingWeights) Taste {
	var t Taste
	for i := range t.Bases {
		t.Bases[i] = w.draw(rng)
	}
	for i := range t.Glazing {
		t.Glazing[i] = w.draw(rng)
	}
	for i := range t.Sprinkles {
		t.Sprinkles[i] = w.draw(rng)
	}
	return t
}

func (w RatingWeights) draw(rng *rand.Rand) int {
	total := 0
	for _, n := range w {
		if n > 0 {
			total += n
		}
	}
	if total == 0 {
		return MinRating + rng.Intn(MaxRating)
	}
	roll := rng.Intn(total)
	for i, n := range w {
		if n <= 0 {
			continue
		}
		if roll < n {
			return MinRating + i
		}
		roll -= n
	}
	return MaxRating
}
