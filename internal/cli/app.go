package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"donut-tell-me/assets"
	"donut-tell-me/internal/config"
	"donut-tell-me/internal/game"
	"donut-tell-me/internal/logging"
	"donut-tell-me/internal/store"

	"go.uber.org/zap"
)

// app holds what every subcommand builds from the config file.
type app struct {
	cfg         *config.Config
	log         *zap.Logger
	cat         *assets.Catalog
	rules       game.Rules
	store       store.Store
	closePolicy func()
}

// setupOptions tweak how setup builds the app.
type setupOptions struct {
	logToFile bool // the screen owns stdout and stderr
	withRules bool
}

func setup(opts setupOptions) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if opts.logToFile && cfg.Logging.File == "" {
		dir, err := store.DataDir()
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		cfg.Logging.File = filepath.Join(dir, "donut-tell-me.log")
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	a := &app{cfg: cfg, log: log, closePolicy: func() {}}

	st, err := store.Open(cfg.Store)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("open history store: %w", err)
	}
	a.store = st

	if !opts.withRules {
		return a, nil
	}

	a.cat, err = loadCatalog(cfg.Shop.Catalog)
	if err != nil {
		a.Close()
		return nil, err
	}
	policy, closePolicy, err := game.RankPolicy(cfg.Shop, log)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.closePolicy = closePolicy
	a.rules, err = game.NewRules(cfg.Shop, policy, a.cat)
	if err != nil {
		a.Close()
		return nil, err
	}
	log.Debug("shop rules loaded",
		zap.String("rank_policy", cfg.Shop.RankPolicy),
		zap.String("queue_policy", a.rules.Serve.Queue.String()),
		zap.Int("line_depth", cfg.Shop.LineDepth),
		zap.Int("regulars_to_win", cfg.Shop.RegularsToWin),
	)
	return a, nil
}

func loadCatalog(path string) (*assets.Catalog, error) {
	if path == "" {
		return assets.Default()
	}
	return assets.LoadFile(path)
}

// Close releases the store, the policy VM and flushes the logger.
func (a *app) Close() {
	if a.closePolicy != nil {
		a.closePolicy()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn("close history store", zap.Error(err))
		}
	}
	_ = a.log.Sync()
}
