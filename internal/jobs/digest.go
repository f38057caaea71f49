// Package jobs holds the scheduled background work.
package jobs

import (
	"context"
	"fmt"
	"time"

	"fuelstation-backend/internal/config"
	"fuelstation-backend/internal/dashboard"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const digestTimeout = 2 * time.Minute

type OverviewSource interface {
	Overview(ctx context.Context, branchID uint) (dashboard.Overview, error)
}

// Digest logs the global variance totals and the pending expense backlog.
type Digest struct {
	src    OverviewSource
	logger *logrus.Logger
}

func NewDigest(src OverviewSource, logger *logrus.Logger) *Digest {
	return &Digest{src: src, logger: logger}
}

func (d *Digest) Run(ctx context.Context) error {
	ov, err := d.src.Overview(ctx, 0)
	if err != nil {
		return fmt.Errorf("daily digest: %w", err)
	}

	for _, row := range ov.Branches {
		if row.TotalVariance == 0 && len(row.PendingExpenses) == 0 {
			continue
		}
		d.logger.WithFields(logrus.Fields{
			"module":             "digest",
			"branch":             row.Branch.Name,
			"total_variance":     row.TotalVariance,
			"effective_variance": row.EffectiveVariance,
			"pending_expenses":   len(row.PendingExpenses),
		}).Info("branch variance")
	}

	t := ov.Totals
	d.logger.WithFields(logrus.Fields{
		"module":                "digest",
		"expense_policy":        ov.Policy,
		"branches":              t.Branches,
		"records":               t.Records,
		"total_expected":        t.TotalExpected,
		"total_cash":            t.TotalCash,
		"total_pos":             t.TotalPOS,
		"total_variance":        t.TotalVariance,
		"effective_variance":    t.EffectiveVariance,
		"pending_expense_count": t.PendingExpenseCount,
		"pending_expense_total": t.PendingExpenseTotal,
	}).Info("daily variance digest")
	return nil
}

// StartDigest schedules d on cfg.DigestSchedule in cfg.Location. An empty
// schedule disables the job and returns a nil scheduler.
func StartDigest(cfg *config.Config, d *Digest) (*cron.Cron, error) {
	if cfg.DigestSchedule == "" {
		d.logger.WithField("module", "digest").Info("daily digest disabled")
		return nil, nil
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc))
	_, err := c.AddFunc(cfg.DigestSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
		defer cancel()
		if err := d.Run(ctx); err != nil {
			config.LogError(d.logger, "digest", "Run", time.Now().In(loc).Format(time.RFC3339), nil, err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule daily digest %q: %w", cfg.DigestSchedule, err)
	}

	c.Start()
	d.logger.WithFields(logrus.Fields{
		"module":   "digest",
		"schedule": cfg.DigestSchedule,
		"timezone": loc.String(),
	}).Info("daily digest scheduled")
	return c, nil
}
