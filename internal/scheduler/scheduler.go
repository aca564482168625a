package scheduler

import (
	"context"
	"time"

	"github.com/trainops/coursedesk/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type expirySweeper interface {
	NotifyExpiring(ctx context.Context, asOf time.Time, thresholdDays int) ([]*domain.LPOOrder, error)
}

// Scheduler drives the recurring entitlement-expiry sweep. Idempotency
// lives in the ledger's notification log, not here: overlapping or
// repeated ticks on the same calendar day notify nothing twice.
type Scheduler struct {
	ledger        expirySweeper
	interval      time.Duration
	thresholdDays int
	logger        logger.Logger
}

func New(
	ledger expirySweeper,
	interval time.Duration,
	thresholdDays int,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		ledger:        ledger,
		interval:      interval,
		thresholdDays: thresholdDays,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("expiry scheduler started",
		logger.Duration("interval", s.interval),
		logger.Int("threshold_days", s.thresholdDays),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiry scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	notified, err := s.ledger.NotifyExpiring(ctx, time.Now().UTC(), s.thresholdDays)
	if err != nil {
		s.logger.Error("expiry sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, o := range notified {
		s.logger.Info("entitlement expiry notified",
			logger.String("order_id", o.ID),
			logger.String("customer_id", o.CustomerID),
			logger.String("valid_until", o.ValidUntil.Format("2006-01-02")),
		)
	}
}
