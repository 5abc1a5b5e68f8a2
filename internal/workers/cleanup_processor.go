// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hibiken/asynq"
)

// CleanupProcessor prunes old export snapshots
type CleanupProcessor struct {
	dir       string
	retention time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(dir string, retention time.Duration, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		dir:       dir,
		retention: retention,
		now:       time.Now,
		logger:    logger.With(slog.String("processor", "cleanup")),
	}
}

// PruneExports removes snapshots and leftover temp files older than the
// retention window. A missing directory means nothing to prune.
func (p *CleanupProcessor) PruneExports(ctx context.Context, _ *asynq.Task) error {
	if p.retention <= 0 {
		return nil
	}
	cutoff := p.now().Add(-p.retention)

	var deleted int
	err := filepath.WalkDir(p.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == p.dir {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() {
			if path != p.dir {
				return fs.SkipDir
			}
			return nil
		}
		if !isSnapshotFile(d.Name()) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.ModTime().After(cutoff) {
			return nil
		}

		if err := os.Remove(path); err != nil {
			p.logger.WarnContext(ctx, "failed to delete snapshot",
				slog.String("file", path),
				slog.Any("error", err))
			return nil
		}
		deleted++
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk export directory: %w", err)
	}

	p.logger.InfoContext(ctx, "export snapshots pruned",
		slog.Int("files_deleted", deleted),
		slog.Duration("retention", p.retention))
	return nil
}

func isSnapshotFile(name string) bool {
	return strings.HasSuffix(name, ".xlsx") ||
		(strings.HasPrefix(name, ".snapshot-") && strings.HasSuffix(name, ".tmp"))
}
