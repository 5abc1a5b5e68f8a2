package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ammerola/gamedash/internal/adapters/export"
	"github.com/ammerola/gamedash/internal/core/domain"
)

func runExport() error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	qf := addQueryFlags(fs)
	out := fs.String("o", "", "Output file (default games_export_<timestamp>.xlsx)")
	fs.Parse(os.Args[1:])

	e, err := setup()
	if err != nil {
		return err
	}

	records, err := e.catalog().Records(context.Background(), qf.state(e.cfg.Pagination.PageSize))
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		path = export.FileName(domain.KindGame, time.Now())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := export.WriteXLSX(f, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("wrote %d games to %s\n", len(records), path)
	return nil
}
