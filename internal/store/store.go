// Package store keeps the history of finished shop sessions.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"donut-tell-me/internal/config"
)

// Outcome values recorded for a run.
const (
	OutcomeWon  = "won"
	OutcomeQuit = "quit"
)

// RunRecord summarizes one finished session.
type RunRecord struct {
	ID          string    `json:"id"`
	Player      string    `json:"player"`
	StartedAt   time.Time `json:"started_at"`
	EndedAt     time.Time `json:"ended_at"`
	Outcome     string    `json:"outcome"`
	Regulars    int       `json:"regulars"`
	Served      int       `json:"served"`
	AverageRank float64   `json:"average_rank"`
	RankPolicy  string    `json:"rank_policy"`
	QueuePolicy string    `json:"queue_policy"`
}

// Store persists run records.
type Store interface {
	Save(ctx context.Context, rec RunRecord) error
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]RunRecord, error)
	Close() error
}

// Open builds the store selected by cfg.Driver.
func Open(cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "none":
		return Nop{}, nil
	case "jsonl":
		dir := cfg.Path
		if dir == "" {
			d, err := DataDir()
			if err != nil {
				return nil, err
			}
			dir = d
		}
		return NewJSONLStore(dir), nil
	case "sqlite", "postgres":
		if cfg.Driver == "sqlite" && cfg.Path == "" {
			dir, err := DataDir()
			if err != nil {
				return nil, err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create data dir: %w", err)
			}
			cfg.Path = filepath.Join(dir, "history.db")
		}
		return OpenGorm(cfg)
	}
	return nil, fmt.Errorf("unsupported store driver: %s", cfg.Driver)
}

// DataDir follows the XDG Base Directory spec: $XDG_DATA_HOME/donut-tell-me,
// defaulting to ~/.local/share/donut-tell-me.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locate home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "donut-tell-me"), nil
}

// Nop discards every record.
type Nop struct{}

func (Nop) Save(context.Context, RunRecord) error            { return nil }
func (Nop) Recent(context.Context, int) ([]RunRecord, error) { return nil, nil }
func (Nop) Close() error                                     { return nil }
