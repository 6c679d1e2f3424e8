package store

import (
	"context"
	"fmt"
	"time"

	"donut-tell-me/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// RunModel is the runs table.
type RunModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Player      string    `gorm:"column:player;not null"`
	StartedAt   time.Time `gorm:"column:started_at;not null"`
	EndedAt     time.Time `gorm:"column:ended_at;not null;index"`
	Outcome     string    `gorm:"column:outcome;not null"`
	Regulars    int       `gorm:"column:regulars;not null"`
	Served      int       `gorm:"column:served;not null"`
	AverageRank float64   `gorm:"column:average_rank;not null"`
	RankPolicy  string    `gorm:"column:rank_policy"`
	QueuePolicy string    `gorm:"column:queue_policy"`
}

func (RunModel) TableName() string {
	return "runs"
}

// GormStore keeps runs in sqlite or postgres.
type GormStore struct {
	db *gorm.DB
}

// OpenGorm connects and migrates the runs table.
func OpenGorm(cfg config.StoreConfig) (*GormStore, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite":
		path := cfg.Path
		if path == "" {
			path = ":memory:"
		}
		dialector = sqlite.Open(path)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&RunModel{}); err != nil {
		return nil, fmt.Errorf("migrate runs: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Save(ctx context.Context, rec RunRecord) error {
	m := RunModel(rec)
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("save run %s: %w", rec.ID, err)
	}
	return nil
}

func (s *GormStore) Recent(ctx context.Context, limit int) ([]RunRecord, error) {
	var models []RunModel
	q := s.db.WithContext(ctx).Order("ended_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	out := make([]RunRecord, 0, len(models))
	for _, m := range models {
		out = append(out, RunRecord(m))
	}
	return out, nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
