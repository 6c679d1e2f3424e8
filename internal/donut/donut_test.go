package donut

import (
	"math/rand"
	"testing"
)

func TestBaseCycling(t *testing.T) {
	base := NewAttr(KindBase, 0)

	steps := []struct {
		dir  Direction
		want int
	}{
		{Left, 2},
		{Left, 1},
		{Right, 2},
		{Right, 0},
	}
	for i, s := range steps {
		base = base.Cycle(s.dir)
		if base.Value != s.want {
			t.Fatalf("step %d: Value = %d; want %d", i, base.Value, s.want)
		}
	}
}

func TestCycleInverse(t *testing.T) {
	for _, k := range Kinds {
		for v := 0; v < k.Count(); v++ {
			a := NewAttr(k, v)
			if got := a.CycleLeft().CycleRight(); got != a {
				t.Errorf("%s %d: right(left(v)) = %d", k, v, got.Value)
			}
			if got := a.CycleRight().CycleLeft(); got != a {
				t.Errorf("%s %d: left(right(v)) = %d", k, v, got.Value)
			}
		}
	}
}

func TestCycleStaysInRange(t *testing.T) {
	for _, k := range Kinds {
		a := NewAttr(k, 0)
		for i := 0; i < 3*k.Count(); i++ {
			a = a.CycleRight()
			if a.Value < 0 || a.Value >= k.Count() {
				t.Fatalf("%s: value %d out of range", k, a.Value)
			}
		}
		if a.Value != 0 {
			t.Errorf("%s: full turns should land on 0, got %d", k, a.Value)
		}
	}
}

func TestNewAttrWraps(t *testing.T) {
	if got := NewAttr(KindGlazing, 12).Value; got != 2 {
		t.Errorf("NewAttr(glazing, 12) = %d; want 2", got)
	}
	if got := NewAttr(KindSprinkles, -1).Value; got != 8 {
		t.Errorf("NewAttr(sprinkles, -1) = %d; want 8", got)
	}
}

func TestSpriteIndexes(t *testing.T) {
	d := New(2, 0, 8)
	want := [3]int{2, 3, 21}
	if got := d.SpriteIndexes(); got != want {
		t.Errorf("SpriteIndexes = %v; want %v", got, want)
	}
	if SpriteCount != 22 {
		t.Errorf("SpriteCount = %d; want 22", SpriteCount)
	}
}

func TestDonutCycleTouchesOneAttribute(t *testing.T) {
	d := New(0, 0, 0)
	d.Cycle(KindGlazing, Left)
	if d.Glazing.Value != GlazingCount-1 {
		t.Errorf("glazing = %d; want %d", d.Glazing.Value, GlazingCount-1)
	}
	if d.Base.Value != 0 || d.Sprinkles.Value != 0 {
		t.Errorf("other attributes changed: %+v", d)
	}
}

// tasteFor builds a taste that rates the zero donut (b, g, s).
func tasteFor(b, g, s int) Taste {
	var t Taste
	t.Bases[0] = b
	t.Glazing[0] = g
	t.Sprinkles[0] = s
	return t
}

func TestDonutRanking(t *testing.T) {
	d := New(0, 0, 0)
	cases := []struct {
		ratings [3]int
		want    int
	}{
		{[3]int{0, 0, 0}, 0},
		{[3]int{5, 5, 5}, 5},
		{[3]int{4, 5, 5}, 5},
		{[3]int{5, 4, 5}, 5},
		{[3]int{5, 5, 4}, 5},
		{[3]int{4, 4, 5}, 4},
		{[3]int{2, 5, 5}, 4},
		{[3]int{3, 4, 3}, 3},
		{[3]int{2, 4, 4}, 3},
		{[3]int{1, 4, 5}, 3},
		{[3]int{1, 2, 3}, 2},
		{[3]int{1, 2, 2}, 1},
	}
	for _, c := range cases {
		taste := tasteFor(c.ratings[0], c.ratings[1], c.ratings[2])
		if got := taste.Rank(d); got != c.want {
			t.Errorf("Rank%v = %d; want %d", c.ratings, got, c.want)
		}
	}
}

func TestRankMonotonic(t *testing.T) {
	p := Weighted{}
	for a := 0; a <= MaxRating; a++ {
		for b := 0; b <= MaxRating; b++ {
			for c := 0; c < MaxRating; c++ {
				lo, hi := p.Rank(a, b, c), p.Rank(a, b, c+1)
				if hi < lo {
					t.Fatalf("Rank(%d,%d,%d)=%d > Rank(%d,%d,%d)=%d", a, b, c, lo, a, b, c+1, hi)
				}
				if r1, r2 := p.Rank(c, a, b), p.Rank(c+1, a, b); r2 < r1 {
					t.Fatalf("not monotonic in base at (%d,%d,%d)", c, a, b)
				}
				if r1, r2 := p.Rank(a, c, b), p.Rank(a, c+1, b); r2 < r1 {
					t.Fatalf("not monotonic in glazing at (%d,%d,%d)", a, c, b)
				}
			}
		}
	}
}

func TestPlainAverage(t *testing.T) {
	p := PlainAverage{}
	if got := p.Rank(5, 5, 5); got != 5 {
		t.Errorf("PlainAverage(5,5,5) = %d; want 5", got)
	}
	if got := p.Rank(4, 5, 5); got != 4 {
		t.Errorf("PlainAverage(4,5,5) = %d; want 4", got)
	}
	if got := p.Rank(0, 0, 0); got != 0 {
		t.Errorf("PlainAverage(0,0,0) = %d; want 0", got)
	}
	d := New(0, 0, 0)
	if got := tasteFor(2, 2, 3).RankWith(p, d); got != 2 {
		t.Errorf("RankWith(PlainAverage) = %d; want 2", got)
	}
}

func TestRatingOutOfRange(t *testing.T) {
	taste := tasteFor(5, 5, 5)
	if got := taste.Rating(KindBase, BaseCount); got != 0 {
		t.Errorf("Rating past end = %d; want 0", got)
	}
}

func TestRandomTasteWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	taste := RandomTaste(rng, RatingWeights{})
	for _, k := range Kinds {
		for v := 0; v < k.Count(); v++ {
			r := taste.Rating(k, v)
			if r < MinRating || r > MaxRating {
				t.Fatalf("%s[%d] = %d out of 1..5", k, v, r)
			}
		}
	}
}

func TestRandomTasteHonoursWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	// Only rating 4 can be drawn.
	taste := RandomTaste(rng, RatingWeights{0, 0, 0, 1, 0})
	for _, k := range Kinds {
		for v := 0; v < k.Count(); v++ {
			if r := taste.Rating(k, v); r != 4 {
				t.Fatalf("%s[%d] = %d; want 4", k, v, r)
			}
		}
	}
}

func TestEmotionFor(t *testing.T) {
	want := map[int]Emotion{
		5: EmotionLove,
		4: EmotionHappy,
		3: EmotionSad,
		2: EmotionAngry,
		1: EmotionHeartbroken,
		0: EmotionHeartbroken,
	}
	for rank, e := range want {
		if got := EmotionFor(rank); got != e {
			t.Errorf("EmotionFor(%d) = %v; want %v", rank, got, e)
		}
	}
}
