package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/services"
)

func runSync() error {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	limit := fs.Int("limit", 0, "Games to fetch, 1-40 (default from config)")
	all := fs.Bool("all", false, "Sync the full catalog")
	fs.Parse(os.Args[1:])

	e, err := setup()
	if err != nil {
		return err
	}

	// Ctrl-C cancels the session
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orchestrator := services.NewOrchestrator(e.client, e.log,
		services.WithPollInterval(e.cfg.Sync.PollInterval),
		services.WithMaxDuration(e.cfg.Sync.MaxDuration),
		services.WithDefaultLimit(e.cfg.Sync.DefaultLimit),
	)

	err = orchestrator.Run(ctx, domain.SyncRequest{Limit: *limit, All: *all}, services.SyncCallbacks{
		OnProgress: func(st domain.SyncStatus) {
			fmt.Printf("%-9s %5.1f%%", st.State, st.Percent())
			if st.Progress != nil {
				fmt.Printf("  %d/%d", st.Progress.Current, st.Progress.Total)
			}
			fmt.Println()
		},
		OnSuccess: func(st domain.SyncStatus) {
			fmt.Printf("done: fetched=%s inserted=%s updated=%s skipped=%s\n",
				count(st.RecordsFetched), count(st.RecordsInserted),
				count(st.RecordsUpdated), count(st.RecordsSkipped))
		},
	})
	if errors.Is(err, services.ErrSyncCancelled) {
		fmt.Println("sync cancelled")
		return nil
	}
	return err
}

func count(v *int) string {
	if v == nil {
		return domain.Placeholder
	}
	return fmt.Sprint(*v)
}
