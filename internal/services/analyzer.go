package services

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"sales-dashboard/internal/models"
	"sales-dashboard/internal/observability"
	"sales-dashboard/internal/rating"
	"sales-dashboard/internal/report"
)

// Analysis is everything the dashboard shows for one uploaded report pair.
type Analysis struct {
	Rating     models.Rating            `json:"rating"`
	Stars      models.Stars             `json:"stars"`
	Sales      models.SalesCharts       `json:"sales"`
	Categories []models.CategoryRevenue `json:"categories"`
	SalesRows  int                      `json:"sales_rows"`
	ItemsRows  int                      `json:"items_rows"`
}

// Analyzer runs uploads through the loader and rating engine. It keeps no
// report data between calls.
type Analyzer struct {
	loader    *report.Loader
	logger    *slog.Logger
	completed atomic.Int64
	failed    atomic.Int64
	lastRun   atomic.Int64
}

func NewAnalyzer(loader *report.Loader, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		loader: loader,
		logger: logger,
	}
}

// Analyze loads both reports concurrently and rates them.
func (a *Analyzer) Analyze(ctx context.Context, salesCSV, itemsCSV io.Reader) (*Analysis, error) {
	ctx, span := observability.StartSpan(ctx, "analyze reports")
	defer span.Finish()

	start := time.Now()
	analysis, err := a.analyze(ctx, salesCSV, itemsCSV)
	if err != nil {
		span.SetError(err)
		a.failed.Add(1)
		a.logger.WarnContext(ctx, "analysis rejected", "error", err)
		return nil, err
	}

	a.completed.Add(1)
	a.lastRun.Store(time.Now().Unix())
	span.SetTag("rating", analysis.Rating.Value)

	a.logger.InfoContext(ctx, "analysis complete",
		"rating", analysis.Rating.Value,
		"sales_rows", analysis.SalesRows,
		"items_rows", analysis.ItemsRows,
		"duration", time.Since(start),
	)
	return analysis, nil
}

func (a *Analyzer) analyze(ctx context.Context, salesCSV, itemsCSV io.Reader) (*Analysis, error) {
	var (
		sales models.SalesReport
		items models.ItemsReport
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var g errgroup.Group
	g.Go(func() error {
		var err error
		sales, err = a.loader.LoadSales(salesCSV)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = a.loader.LoadItems(itemsCSV)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Rate(sales, items)
}

// Rate builds an analysis from already loaded reports.
func Rate(sales models.SalesReport, items models.ItemsReport) (*Analysis, error) {
	r, err := rating.Compute(sales, items)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Rating:     r,
		Stars:      rating.Stars(r.Value),
		Sales:      SalesCharts(sales),
		Categories: CategoryRevenue(items),
		SalesRows:  len(sales),
		ItemsRows:  len(items),
	}, nil
}

func (a *Analyzer) Stats() map[string]any {
	stats := map[string]any{
		"analyses_completed": a.completed.Load(),
		"analyses_failed":    a.failed.Load(),
	}
	if ts := a.lastRun.Load(); ts > 0 {
		stats["last_analysis"] = time.Unix(ts, 0).UTC()
	}
	return stats
}
