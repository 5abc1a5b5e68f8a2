// internal/workers/dashboard_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/ports"
)

// DashboardProcessor refreshes cached analytics
type DashboardProcessor struct {
	service ports.DashboardService
	now     func() time.Time
	logger  *slog.Logger
}

// NewDashboardProcessor creates a new dashboard processor
func NewDashboardProcessor(service ports.DashboardService, logger *slog.Logger) *DashboardProcessor {
	return &DashboardProcessor{
		service: service,
		now:     time.Now,
		logger:  logger.With(slog.String("processor", "dashboard")),
	}
}

// WarmDashboard drops cached analytics and reloads the landing view rows
// for the default range so the first request after a sync is served from
// cache.
func (p *DashboardProcessor) WarmDashboard(ctx context.Context, _ *asynq.Task) error {
	p.logger.InfoContext(ctx, "warming dashboard cache")

	p.service.Invalidate(ctx)

	if _, err := p.service.Summary(ctx); err != nil {
		return fmt.Errorf("failed to load summary: %w", err)
	}

	rng := domain.DefaultAnalyticsRange(p.now())
	if _, err := p.service.PriceGapByGenre(ctx, rng); err != nil {
		return fmt.Errorf("failed to load price gap: %w", err)
	}
	if _, err := p.service.GamesByDate(ctx, rng); err != nil {
		return fmt.Errorf("failed to load games by date: %w", err)
	}

	p.logger.InfoContext(ctx, "dashboard cache warmed",
		slog.String("date_from", rng.From),
		slog.String("date_to", rng.To))
	return nil
}
