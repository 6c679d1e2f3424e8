package game

import (
	"fmt"
	"math/rand"
	"time"

	"donut-tell-me/assets"
	"donut-tell-me/internal/component"
	"donut-tell-me/internal/donut"
	"donut-tell-me/internal/ecs"
	"donut-tell-me/internal/factory"
	"donut-tell-me/internal/render"
	"donut-tell-me/internal/system"

	"go.uber.org/zap"
)

// State tracks the session state machine.
type State uint8

const (
	StatePlaying State = iota
	StateOver
)

const maxMessages = 50

// TasteFunc draws the hidden taste of a new customer.
type TasteFunc func(rng *rand.Rand) donut.Taste

// SessionOptions configures NewSession. Catalog and RNG are required.
type SessionOptions struct {
	Player  string
	Rules   Rules
	Catalog *assets.Catalog
	RNG     *rand.Rand
	Logger  *zap.Logger
	Taste   TasteFunc // nil draws from the catalog's taste weights
	Now     func() time.Time
}

// Session is the headless state of one shop. It is not safe for concurrent
// use; every frontend drives its own session from a single goroutine.
type Session struct {
	world  *ecs.World
	rules  Rules
	cat    *assets.Catalog
	rng    *rand.Rand
	taste  TasteFunc
	log    *zap.Logger
	player string

	state        State
	quit         bool
	regulars     int
	served       int
	rankSum      int
	ticks        int
	transactions []system.Outcome
	messages     []string
	startedAt    time.Time
	now          func() time.Time
}

// NewSession opens a shop with a fresh donut in the oven and runs the first
// tick so the line starts filling.
func NewSession(opts SessionOptions) *Session {
	s := &Session{
		world:  ecs.NewWorld(),
		rules:  opts.Rules,
		cat:    opts.Catalog,
		rng:    opts.RNG,
		taste:  opts.Taste,
		log:    opts.Logger,
		player: opts.Player,
		now:    opts.Now,
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.taste == nil {
		weights := s.cat.Weights()
		s.taste = func(rng *rand.Rand) donut.Taste { return donut.RandomTaste(rng, weights) }
	}
	s.startedAt = s.now()

	factory.NewCookingDonut(s.world)
	s.addMessage("The shop is open. Make a donut and press Enter to offer it.")
	s.Tick()
	return s
}

// Tick advances the shop by one step: expired timers, line refill, the next
// customer stepping up, then the win check.
func (s *Session) Tick() {
	if s.state == StateOver {
		return
	}
	s.ticks++
	system.TickTimers(s.world)
	system.RefillLine(s.world, s.rules.LineDepth, s.rules.MaxSpawnPerTick, s.spawn)
	if id := system.NextCustomer(s.world); id != ecs.NilEntity {
		c := s.world.Get(id, component.CCustomer).(component.Customer)
		if c.Visits > 1 {
			s.addMessage(fmt.Sprintf("%s is back for another try.", c.Name))
		} else {
			s.addMessage(fmt.Sprintf("%s steps up to the counter.", c.Name))
		}
	}
	s.checkWin()
}

func (s *Session) spawn(ticket int) ecs.EntityID {
	id := factory.NewCustomer(s.world, s.cat, s.rng, s.taste(s.rng), ticket)
	s.log.Debug("customer joined the line", zap.Uint64("entity", uint64(id)), zap.Int("ticket", ticket))
	return id
}

// Apply performs one player action and reports whether anything changed.
// Actions are ignored once the session is over.
func (s *Session) Apply(a Action) bool {
	if s.state == StateOver {
		return false
	}
	if k, dir, ok := actionToCycle(a); ok {
		return system.ChangeCookingDonut(s.world, k, dir)
	}
	switch a {
	case ActionCook:
		system.CookAnother(s.world)
		s.addMessage("You start a fresh donut.")
		return true
	case ActionOffer:
		return s.offer()
	case ActionQuit:
		s.quit = true
		s.state = StateOver
		return true
	}
	return false
}

func (s *Session) offer() bool {
	out, ok := system.Offer(s.world, s.rules.Serve)
	if !ok {
		if system.CurrentCustomer(s.world) == ecs.NilEntity {
			s.addMessage("Nobody is at the counter yet.")
		} else {
			s.addMessage("Nothing is cooking. Press N for a new donut.")
		}
		return true
	}

	s.served++
	s.rankSum += out.Rank
	s.transactions = append(s.transactions, out)
	switch {
	case out.Regular:
		s.regulars++
		s.addMessage(fmt.Sprintf("%s loves it and becomes a regular! (%d/%d)", out.Name, s.regulars, s.rules.RegularsToWin))
	case out.Rejoined:
		s.addMessage(fmt.Sprintf("%s is %s and gets back in line.", out.Name, out.Emotion))
	default:
		s.addMessage(fmt.Sprintf("%s is %s and leaves.", out.Name, out.Emotion))
	}
	sprites := out.Donut.SpriteIndexes()
	s.log.Info("donut offered",
		zap.String("player", s.player),
		zap.String("customer", out.Name),
		zap.Int("rank", out.Rank),
		zap.String("emotion", out.Emotion.String()),
		zap.Ints("sprites", sprites[:]),
	)
	s.checkWin()
	return true
}

func (s *Session) checkWin() {
	if s.state == StatePlaying && s.regulars >= s.rules.RegularsToWin {
		s.state = StateOver
		s.addMessage("Your shop is full of regulars. You win!")
	}
}

func (s *Session) addMessage(msg string) {
	s.messages = append(s.messages, msg)
	if len(s.messages) > maxMessages {
		s.messages = s.messages[len(s.messages)-maxMessages:]
	}
}

func (s *Session) World() *ecs.World { return s.world }
func (s *Session) State() State      { return s.state }
func (s *Session) Player() string    { return s.player }
func (s *Session) Regulars() int     { return s.regulars }
func (s *Session) Served() int       { return s.served }
func (s *Session) Ticks() int        { return s.ticks }
func (s *Session) Messages() []string {
	return s.messages
}

// Won reports whether enough regulars were made.
func (s *Session) Won() bool { return s.regulars >= s.rules.RegularsToWin }

// Quit reports whether the player walked away before winning.
func (s *Session) Quit() bool { return s.quit }

// Transactions returns every offer made so far, oldest first.
func (s *Session) Transactions() []system.Outcome { return s.transactions }

// AverageRank is the mean rank of all offered donuts, 0 before the first.
func (s *Session) AverageRank() float64 {
	if s.served == 0 {
		return 0
	}
	return float64(s.rankSum) / float64(s.served)
}

// Frame snapshots the session for the renderer.
func (s *Session) Frame() render.Frame {
	return render.Frame{
		World:         s.world,
		Player:        s.player,
		Regulars:      s.regulars,
		RegularsToWin: s.rules.RegularsToWin,
		Served:        s.served,
		Log:           s.transactions,
		Messages:      s.messages,
		Over:          s.state == StateOver,
	}
}
