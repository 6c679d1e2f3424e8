package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"donut-tell-me/assets"
	"donut-tell-me/internal/config"
	"donut-tell-me/internal/render"
	"donut-tell-me/internal/store"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Options configures a Game.
type Options struct {
	Player  string
	Shop    config.ShopConfig
	Rules   Rules
	Catalog *assets.Catalog
	Store   store.Store // nil keeps no history
	Logger  *zap.Logger
}

// Game drives sessions on one tcell screen until the player quits.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	opts     Options
	rng      *rand.Rand
	log      *zap.Logger
	events   chan tcell.Event
	done     chan struct{}
}

// NewLocal opens the controlling terminal and returns a Game for it.
func NewLocal(opts Options) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return New(screen, opts), nil
}

// New returns a Game on an initialized screen. The game owns the screen and
// finalizes it when Run returns.
func New(screen tcell.Screen, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	seed := opts.Shop.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, opts.Catalog),
		opts:     opts,
		rng:      rand.New(rand.NewSource(seed)),
		log:      opts.Logger.With(zap.String("player", opts.Player)),
		events:   make(chan tcell.Event),
		done:     make(chan struct{}),
	}
}

// Run is the main game loop. Supports multiple consecutive runs via Try Again.
// It returns when the player quits or ctx is cancelled.
func (g *Game) Run(ctx context.Context) {
	defer g.screen.Fini()
	defer close(g.done)
	go g.pollEvents()

	for {
		s := NewSession(SessionOptions{
			Player:  g.opts.Player,
			Rules:   g.opts.Rules,
			Catalog: g.opts.Catalog,
			RNG:     g.rng,
			Logger:  g.log,
		})
		g.log.Info("session started")
		g.play(ctx, s)
		saveRun(ctx, g.opts.Store, s, g.log)

		if s.Quit() || ctx.Err() != nil {
			return
		}
		if !g.showEndScreen(ctx, s) {
			return
		}
	}
}

// pollEvents forwards screen events until the screen is finalized.
func (g *Game) pollEvents() {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case g.events <- ev:
		case <-g.done:
			return
		}
	}
}

// play runs one session: input and ticks are handled on this goroutine, so
// the session itself needs no locking.
func (g *Game) play(ctx context.Context, s *Session) {
	ticker := time.NewTicker(g.opts.Shop.TickInterval)
	defer ticker.Stop()

	g.renderer.DrawFrame(s.Frame())
	for s.State() == StatePlaying {
		select {
		case <-ctx.Done():
			s.Apply(ActionQuit)
			return
		case <-ticker.C:
			s.Tick()
		case ev := <-g.events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.screen.Sync()
			case *tcell.EventKey:
				s.Apply(keyToAction(ev))
			}
		}
		g.renderer.DrawFrame(s.Frame())
	}
}
