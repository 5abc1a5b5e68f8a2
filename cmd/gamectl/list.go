package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ammerola/gamedash/internal/core/domain"
)

func runList() error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	qf := addQueryFlags(fs)
	page := fs.Int("page", 1, "Page number")
	pageSize := fs.Int("page-size", 0, "Rows per page (default from config)")
	fs.Parse(os.Args[1:])

	e, err := setup()
	if err != nil {
		return err
	}
	if *pageSize <= 0 {
		*pageSize = e.cfg.Pagination.PageSize
	}

	view, err := e.catalog().View(context.Background(), qf.state(*pageSize).WithPage(*page))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join([]string{"ID", "NAME", "GENRE", "RELEASED", "PRICE", "RATING", "UPDATED"}, "\t"))
	for _, r := range view.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			r.Name,
			domain.DisplayString(r.Genre),
			domain.DisplayDate(r.ReleaseDate),
			domain.DisplayPrice(r.Price),
			domain.DisplayRating(r.Rating),
			domain.DisplayTime(r.UpdatedAt))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Printf("\npage %d/%d  %d games  %d active filters\n",
		view.Page, max(view.TotalPages, 1), view.TotalCount, view.ActiveFilters)
	return nil
}
