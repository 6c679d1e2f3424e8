package game

import (
	"context"
	"time"

	"donut-tell-me/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// saveTimeout bounds how long a finished run may block on the store.
const saveTimeout = 5 * time.Second

// Record summarizes the session as a history entry.
func (s *Session) Record() store.RunRecord {
	outcome := store.OutcomeQuit
	if s.Won() {
		outcome = store.OutcomeWon
	}
	return store.RunRecord{
		ID:          uuid.NewString(),
		Player:      s.player,
		StartedAt:   s.startedAt,
		EndedAt:     s.now(),
		Outcome:     outcome,
		Regulars:    s.regulars,
		Served:      s.served,
		AverageRank: s.AverageRank(),
		RankPolicy:  s.rules.RankPolicy,
		QueuePolicy: s.rules.Serve.Queue.String(),
	}
}

// saveRun stores the finished session. Errors are logged and otherwise
// dropped so a disk or database problem never ends the game.
func saveRun(ctx context.Context, st store.Store, s *Session, log *zap.Logger) {
	if st == nil {
		return
	}
	rec := s.Record()
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), saveTimeout)
	defer cancel()
	if err := st.Save(ctx, rec); err != nil {
		log.Warn("save run failed", zap.String("run", rec.ID), zap.Error(err))
		return
	}
	log.Info("run saved",
		zap.String("run", rec.ID),
		zap.String("player", rec.Player),
		zap.String("outcome", rec.Outcome),
		zap.Int("regulars", rec.Regulars),
		zap.Int("served", rec.Served),
	)
}
