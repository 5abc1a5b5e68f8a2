// internal/workers/sync_processor.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/services"
	"github.com/ammerola/gamedash/internal/pkg/logger"
)

// SyncRunner runs one sync session to completion
type SyncRunner interface {
	Run(ctx context.Context, req domain.SyncRequest, cb services.SyncCallbacks) error
}

var _ SyncRunner = (*services.Orchestrator)(nil)

// Enqueuer schedules follow-up tasks
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// SyncResult is written back to the task on success
type SyncResult struct {
	TaskID          string `json:"task_id"`
	RecordsFetched  *int   `json:"records_fetched,omitempty"`
	RecordsInserted *int   `json:"records_inserted,omitempty"`
	RecordsUpdated  *int   `json:"records_updated,omitempty"`
	RecordsSkipped  *int   `json:"records_skipped,omitempty"`
	Polls           int    `json:"polls"`
	ProcessingTime  string `json:"processing_time"`
}

// SyncProcessor handles sync:games tasks
type SyncProcessor struct {
	runner    SyncRunner
	enqueuer  Enqueuer
	followUps []*asynq.Task
	logger    *slog.Logger
}

// NewSyncProcessor creates a new sync processor. enqueuer may be nil, in
// which case nothing is scheduled after a sync; otherwise a dashboard
// warm-up always follows a successful sync.
func NewSyncProcessor(runner SyncRunner, enqueuer Enqueuer, logger *slog.Logger) *SyncProcessor {
	return &SyncProcessor{
		runner:    runner,
		enqueuer:  enqueuer,
		followUps: []*asynq.Task{NewWarmDashboardTask()},
		logger:    logger.With(slog.String("processor", "sync")),
	}
}

// AfterSync adds tasks enqueued after every successful sync
func (p *SyncProcessor) AfterSync(tasks ...*asynq.Task) *SyncProcessor {
	p.followUps = append(p.followUps, tasks...)
	return p
}

// ProcessSync triggers a backend sync and polls it to a terminal state.
// Backend failures and invalid payloads are not retried.
func (p *SyncProcessor) ProcessSync(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	var payload SyncPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}

	if id, ok := asynq.GetTaskID(ctx); ok {
		ctx = logger.WithRequestID(ctx, id)
	}

	p.logger.InfoContext(ctx, "processing sync",
		slog.Int("limit", payload.Limit),
		slog.Bool("all", payload.All))

	var (
		final *domain.SyncStatus
		polls int
	)
	err := p.runner.Run(ctx, payload.Request(), services.SyncCallbacks{
		OnProgress: func(st domain.SyncStatus) {
			polls++
			p.logger.DebugContext(ctx, "sync progress",
				slog.String("task_id", st.TaskID),
				slog.String("state", string(st.State)),
				slog.Float64("percent", st.Percent()))
		},
		OnSuccess: func(st domain.SyncStatus) {
			final = &st
		},
	})
	if err != nil {
		return p.classify(ctx, err)
	}

	result := SyncResult{Polls: polls, ProcessingTime: time.Since(start).String()}
	if final != nil {
		result.TaskID = final.TaskID
		result.RecordsFetched = final.RecordsFetched
		result.RecordsInserted = final.RecordsInserted
		result.RecordsUpdated = final.RecordsUpdated
		result.RecordsSkipped = final.RecordsSkipped
	}
	p.writeResult(ctx, t, result)

	p.enqueueFollowUps(ctx)

	p.logger.InfoContext(ctx, "sync completed",
		slog.String("task_id", result.TaskID),
		slog.Int("polls", polls),
		slog.String("processing_time", result.ProcessingTime))
	return nil
}

func (p *SyncProcessor) enqueueFollowUps(ctx context.Context) {
	if p.enqueuer == nil {
		return
	}
	for _, task := range p.followUps {
		if _, err := p.enqueuer.EnqueueContext(ctx, task); err != nil {
			p.logger.WarnContext(ctx, "failed to enqueue follow-up task",
				slog.String("type", task.Type()),
				slog.Any("error", err))
		}
	}
}

// classify decides whether the queue may retry err
func (p *SyncProcessor) classify(ctx context.Context, err error) error {
	var failed *services.SyncFailedError
	switch {
	case errors.As(err, &failed), domain.IsValidation(err), errors.Is(err, services.ErrSyncTimeout):
		p.logger.ErrorContext(ctx, "sync failed", slog.Any("error", err))
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	case errors.Is(err, services.ErrSyncInProgress):
		p.logger.WarnContext(ctx, "sync already running, will retry")
		return err
	default:
		p.logger.ErrorContext(ctx, "sync interrupted", slog.Any("error", err))
		return err
	}
}

func (p *SyncProcessor) writeResult(ctx context.Context, t *asynq.Task, result SyncResult) {
	w := t.ResultWriter()
	if w == nil {
		return
	}
	b, err := json.Marshal(result)
	if err != nil {
		return
	}
	if _, err := w.Write(b); err != nil {
		p.logger.WarnContext(ctx, "failed to write task result", slog.Any("error", err))
	}
}
