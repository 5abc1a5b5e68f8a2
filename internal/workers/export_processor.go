// internal/workers/export_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/gamedash/internal/adapters/export"
	"github.com/ammerola/gamedash/internal/core/domain"
)

// RecordSource yields the full filtered and sorted list of one kind
type RecordSource interface {
	Records(ctx context.Context, q domain.QueryState) ([]domain.Record, error)
}

// SnapshotResult is written back to the task on success
type SnapshotResult struct {
	Path    string `json:"path"`
	Records int    `json:"records"`
}

// ExportProcessor writes xlsx snapshots of the catalog and the store
type ExportProcessor struct {
	dir     string
	sources map[domain.RecordKind]RecordSource
	now     func() time.Time
	logger  *slog.Logger
}

// NewExportProcessor creates a processor writing into dir
func NewExportProcessor(dir string, games, sales RecordSource, logger *slog.Logger) *ExportProcessor {
	return &ExportProcessor{
		dir: dir,
		sources: map[domain.RecordKind]RecordSource{
			domain.KindGame: games,
			domain.KindSale: sales,
		},
		now:    time.Now,
		logger: logger.With(slog.String("processor", "export")),
	}
}

// ProcessSnapshot exports every record of the payload's kind, most
// recently updated first. The file appears in dir only once complete.
func (p *ExportProcessor) ProcessSnapshot(ctx context.Context, t *asynq.Task) error {
	var payload SnapshotPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}

	source, ok := p.sources[payload.Kind]
	if !ok || source == nil {
		return fmt.Errorf("unknown export kind %q: %w", payload.Kind, asynq.SkipRetry)
	}

	q := domain.NewQueryState(0, domain.SortState{Key: domain.SortUpdatedAt, Dir: domain.SortDesc})
	records, err := source.Records(ctx, q)
	if err != nil {
		return fmt.Errorf("failed to load %ss: %w", payload.Kind, err)
	}

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(p.dir, export.FileName(payload.Kind, p.now()))
	if err := p.writeAtomic(path, records); err != nil {
		return err
	}

	if w := t.ResultWriter(); w != nil {
		if b, err := json.Marshal(SnapshotResult{Path: path, Records: len(records)}); err == nil {
			_, _ = w.Write(b)
		}
	}

	p.logger.InfoContext(ctx, "snapshot written",
		slog.String("kind", string(payload.Kind)),
		slog.String("path", path),
		slog.Int("records", len(records)))
	return nil
}

func (p *ExportProcessor) writeAtomic(path string, records []domain.Record) error {
	tmp, err := os.CreateTemp(p.dir, ".snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := export.WriteXLSX(tmp, records); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move snapshot into place: %w", err)
	}
	return nil
}
