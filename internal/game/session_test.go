package game

import (
	"math/rand"
	"testing"
	"time"

	"donut-tell-me/assets"
	"donut-tell-me/internal/component"
	"donut-tell-me/internal/config"
	"donut-tell-me/internal/donut"
	"donut-tell-me/internal/ecs"
	"donut-tell-me/internal/store"
	"donut-tell-me/internal/system"
)

// lovesZero is a taste that rates the (0,0,0) donut five stars and every
// other variant one star.
func lovesZero(*rand.Rand) donut.Taste {
	var t donut.Taste
	for i := range t.Bases {
		t.Bases[i] = 1
	}
	for i := range t.Glazing {
		t.Glazing[i] = 1
	}
	for i := range t.Sprinkles {
		t.Sprinkles[i] = 1
	}
	t.Bases[0], t.Glazing[0], t.Sprinkles[0] = 5, 5, 5
	return t
}

func testSession(t *testing.T, shop config.ShopConfig) *Session {
	t.Helper()
	cat := assets.MustDefault()
	rules, err := NewRules(shop, nil, cat)
	if err != nil {
		t.Fatalf("NewRules: %v", err)
	}
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := start
	return NewSession(SessionOptions{
		Player:  "tester",
		Rules:   rules,
		Catalog: cat,
		RNG:     rand.New(rand.NewSource(7)),
		Taste:   lovesZero,
		Now: func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		},
	})
}

func defaultShop() config.ShopConfig { return config.Defaults().Shop }

func TestNewSessionOpensShop(t *testing.T) {
	s := testSession(t, defaultShop())

	if s.State() != StatePlaying {
		t.Fatalf("state = %v; want playing", s.State())
	}
	if system.CookingDonut(s.World()) == ecs.NilEntity {
		t.Fatal("no donut cooking on open")
	}
	if system.CurrentCustomer(s.World()) == ecs.NilEntity {
		t.Fatal("first tick should bring a customer to the counter")
	}
}

func TestTickFillsLineToDepth(t *testing.T) {
	shop := defaultShop()
	shop.LineDepth = 3
	shop.MaxSpawnPerTick = 1
	s := testSession(t, shop)

	for i := 0; i < 10; i++ {
		before := len(system.Line(s.World()))
		s.Tick()
		after := len(system.Line(s.World()))
		if after-before > 1 {
			t.Fatalf("tick %d grew the line by %d; want at most 1", i, after-before)
		}
	}
	if n := len(system.Line(s.World())); n != 3 {
		t.Fatalf("line length = %d; want 3", n)
	}
}

func TestCycleActionsChangeCookingDonut(t *testing.T) {
	s := testSession(t, defaultShop())
	id := system.CookingDonut(s.World())

	s.Apply(ActionBaseLeft)
	s.Apply(ActionGlazingRight)
	s.Apply(ActionGlazingRight)
	s.Apply(ActionSprinklesLeft)

	d := s.World().Get(id, component.CDonut).(component.Donut)
	if d.Base.Value != donut.BaseCount-1 {
		t.Errorf("base = %d; want %d", d.Base.Value, donut.BaseCount-1)
	}
	if d.Glazing.Value != 2 {
		t.Errorf("glazing = %d; want 2", d.Glazing.Value)
	}
	if d.Sprinkles.Value != donut.SprinklesCount-1 {
		t.Errorf("sprinkles = %d; want %d", d.Sprinkles.Value, donut.SprinklesCount-1)
	}
}

func TestOfferPerfectDonutMakesRegular(t *testing.T) {
	s := testSession(t, defaultShop())

	if !s.Apply(ActionOffer) {
		t.Fatal("offer reported no change")
	}
	if s.Regulars() != 1 || s.Served() != 1 {
		t.Fatalf("regulars=%d served=%d; want 1 and 1", s.Regulars(), s.Served())
	}
	tx := s.Transactions()
	if len(tx) != 1 || tx[0].Rank != donut.MaxRank || tx[0].Emotion != donut.EmotionLove {
		t.Fatalf("transactions = %+v; want one five-star love", tx)
	}
	if system.CookingDonut(s.World()) != ecs.NilEntity {
		t.Fatal("offering should consume the cooking donut")
	}
}

func TestOfferWithoutDonutIsSoftNoop(t *testing.T) {
	s := testSession(t, defaultShop())
	s.Apply(ActionOffer)
	s.Tick() // next customer steps up

	s.Apply(ActionOffer)
	if s.Served() != 1 {
		t.Fatalf("served = %d; want 1 (no donut to offer)", s.Served())
	}
	if s.State() != StatePlaying {
		t.Fatal("a failed offer must not end the session")
	}
}

func TestOfferBadDonutSendsCustomerHome(t *testing.T) {
	s := testSession(t, defaultShop())
	cust := system.CurrentCustomer(s.World())

	s.Apply(ActionBaseRight)
	s.Apply(ActionGlazingRight)
	s.Apply(ActionSprinklesRight)
	s.Apply(ActionOffer)

	if s.World().Alive(cust) {
		t.Fatal("unhappy customer should leave under the dequeue policy")
	}
	if s.Regulars() != 0 {
		t.Fatalf("regulars = %d; want 0", s.Regulars())
	}
	if got := s.Transactions()[0].Rank; got != 1 {
		t.Fatalf("rank = %d; want 1", got)
	}
}

func TestRotatePolicyKeepsCustomerInLine(t *testing.T) {
	shop := defaultShop()
	shop.QueuePolicy = "rotate"
	s := testSession(t, shop)
	cust := system.CurrentCustomer(s.World())

	s.Apply(ActionBaseRight)
	s.Apply(ActionOffer)

	if !s.World().Alive(cust) {
		t.Fatal("customer should rejoin the line under the rotate policy")
	}
	line := system.Line(s.World())
	if len(line) == 0 || line[len(line)-1] != cust {
		t.Fatalf("line = %v; want %d at the back", line, cust)
	}
}

func TestSessionOverIffRegularsReachGoal(t *testing.T) {
	s := testSession(t, defaultShop())
	goal := defaultShop().RegularsToWin

	for i := 0; i < goal; i++ {
		if s.State() != StatePlaying {
			t.Fatalf("session over after %d regulars; want %d", s.Regulars(), goal)
		}
		if system.CookingDonut(s.World()) == ecs.NilEntity {
			s.Apply(ActionCook)
		}
		for system.CurrentCustomer(s.World()) == ecs.NilEntity {
			s.Tick()
		}
		s.Apply(ActionOffer)
	}

	if s.State() != StateOver || !s.Won() {
		t.Fatalf("state=%v won=%v after %d regulars; want over and won", s.State(), s.Won(), s.Regulars())
	}
	if s.Apply(ActionCook) {
		t.Fatal("actions must be ignored once the session is over")
	}
	ticks := s.Ticks()
	s.Tick()
	if s.Ticks() != ticks {
		t.Fatal("ticks must not advance once the session is over")
	}
}

func TestQuitEndsSession(t *testing.T) {
	s := testSession(t, defaultShop())
	s.Apply(ActionQuit)

	if s.State() != StateOver || !s.Quit() || s.Won() {
		t.Fatalf("state=%v quit=%v won=%v; want over, quit, not won", s.State(), s.Quit(), s.Won())
	}
}

func TestRecordSummarizesRun(t *testing.T) {
	s := testSession(t, defaultShop())
	s.Apply(ActionOffer)
	s.Apply(ActionQuit)

	rec := s.Record()
	if rec.ID == "" {
		t.Fatal("record has no id")
	}
	if rec.Outcome != store.OutcomeQuit {
		t.Errorf("outcome = %q; want %q", rec.Outcome, store.OutcomeQuit)
	}
	if rec.Player != "tester" || rec.Served != 1 || rec.Regulars != 1 {
		t.Errorf("record = %+v", rec)
	}
	if rec.AverageRank != 5 {
		t.Errorf("average rank = %v; want 5", rec.AverageRank)
	}
	if !rec.EndedAt.After(rec.StartedAt) {
		t.Errorf("ended %v not after started %v", rec.EndedAt, rec.StartedAt)
	}
	if rec.QueuePolicy != "dequeue" || rec.RankPolicy != "weighted" {
		t.Errorf("policies = %q/%q", rec.QueuePolicy, rec.RankPolicy)
	}
}

func TestNewRulesRejectsUnknownQueuePolicy(t *testing.T) {
	shop := defaultShop()
	shop.QueuePolicy = "shuffle"
	if _, err := NewRules(shop, nil, assets.MustDefault()); err == nil {
		t.Fatal("expected error for unknown queue policy")
	}
}

func TestRankPolicyFromConfig(t *testing.T) {
	shop := defaultShop()
	for name, want := range map[string]donut.Policy{
		"weighted": donut.Weighted{},
		"average":  donut.PlainAverage{},
	} {
		shop.RankPolicy = name
		p, closeFn, err := RankPolicy(shop, nil)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		closeFn()
		if p != want {
			t.Errorf("%s: policy = %T; want %T", name, p, want)
		}
	}
	shop.RankPolicy = "lua"
	shop.LuaScript = "does-not-exist.lua"
	if _, _, err := RankPolicy(shop, nil); err == nil {
		t.Fatal("expected error for missing lua script")
	}
}
