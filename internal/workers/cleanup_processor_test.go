// internal/workers/cleanup_processor_test.go
package workers_test

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/gamedash/internal/workers"
	"github.com/ammerola/gamedash/test/helpers"
)

func touch(t *testing.T, path string, age time.Duration) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	mod := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, mod, mod))
}

func remaining(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestCleanupProcessor_PruneExports(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "games_export_20240101_000000.xlsx"), 10*24*time.Hour)
	touch(t, filepath.Join(dir, "sales_export_20240601_000000.xlsx"), time.Hour)
	touch(t, filepath.Join(dir, ".snapshot-123.tmp"), 9*24*time.Hour)
	touch(t, filepath.Join(dir, "notes.txt"), 30*24*time.Hour)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))
	touch(t, filepath.Join(dir, "archive", "old.xlsx"), 30*24*time.Hour)

	processor := workers.NewCleanupProcessor(dir, 7*24*time.Hour, helpers.TestLogger())
	require.NoError(t, processor.PruneExports(context.Background(), workers.NewPruneExportsTask()))

	assert.Equal(t, []string{"archive", "notes.txt", "sales_export_20240601_000000.xlsx"}, remaining(t, dir))
	assert.FileExists(t, filepath.Join(dir, "archive", "old.xlsx"), "subdirectories are left alone")
}

func TestCleanupProcessor_PruneExports_NoOps(t *testing.T) {
	t.Run("missing_directory", func(t *testing.T) {
		processor := workers.NewCleanupProcessor(filepath.Join(t.TempDir(), "absent"), time.Hour, helpers.TestLogger())
		assert.NoError(t, processor.PruneExports(context.Background(), workers.NewPruneExportsTask()))
	})

	t.Run("zero_retention_keeps_everything", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "games_export_20200101_000000.xlsx"), 365*24*time.Hour)

		processor := workers.NewCleanupProcessor(dir, 0, helpers.TestLogger())
		require.NoError(t, processor.PruneExports(context.Background(), workers.NewPruneExportsTask()))
		assert.Len(t, remaining(t, dir), 1)
	})
}
