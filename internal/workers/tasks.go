// internal/workers/tasks.go
package workers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/gamedash/internal/core/domain"
)

const (
	TypeSyncGames      = "sync:games"
	TypeWarmDashboard  = "dashboard:warm"
	TypeExportSnapshot = "export:snapshot"
	TypePruneExports   = "export:prune"
)

// QueueCritical carries sync tasks, QueueLow housekeeping
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// SyncPayload is the sync:games task body
type SyncPayload struct {
	Limit int  `json:"limit"`
	All   bool `json:"all"`
}

// Request converts the payload to an orchestrator request
func (p SyncPayload) Request() domain.SyncRequest {
	return domain.SyncRequest{Limit: p.Limit, All: p.All}
}

// NewSyncTask builds a sync:games task. A sync is never retried by the
// queue and only one may be queued or running per unique window.
func NewSyncTask(req domain.SyncRequest, timeout time.Duration) (*asynq.Task, error) {
	b, err := json.Marshal(SyncPayload{Limit: req.Limit, All: req.All})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sync payload: %w", err)
	}

	opts := []asynq.Option{
		asynq.Queue(QueueCritical),
		asynq.MaxRetry(0),
	}
	if timeout > 0 {
		opts = append(opts, asynq.Timeout(timeout), asynq.Unique(timeout))
	}
	return asynq.NewTask(TypeSyncGames, b, opts...), nil
}

// NewWarmDashboardTask builds a dashboard:warm task
func NewWarmDashboardTask() *asynq.Task {
	return asynq.NewTask(TypeWarmDashboard, nil, asynq.Queue(QueueDefault), asynq.MaxRetry(3))
}

// SnapshotPayload is the export:snapshot task body
type SnapshotPayload struct {
	Kind domain.RecordKind `json:"kind"`
}

// NewExportSnapshotTask builds an export:snapshot task for one record kind
func NewExportSnapshotTask(kind domain.RecordKind) (*asynq.Task, error) {
	b, err := json.Marshal(SnapshotPayload{Kind: kind})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot payload: %w", err)
	}
	return asynq.NewTask(TypeExportSnapshot, b,
		asynq.Queue(QueueLow),
		asynq.MaxRetry(2),
		asynq.Timeout(5*time.Minute)), nil
}

// NewPruneExportsTask builds an export:prune task
func NewPruneExportsTask() *asynq.Task {
	return asynq.NewTask(TypePruneExports, nil, asynq.Queue(QueueLow), asynq.MaxRetry(1))
}
