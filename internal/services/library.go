package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"sales-dashboard/internal/models"
	"sales-dashboard/internal/report"
)

const monthlyFileSuffix = " Sales.csv"

// ErrUnknownReport is returned for a month with no sales file on disk.
var ErrUnknownReport = errors.New("monthly report not found")

type cachedReport struct {
	modTime time.Time
	sales   models.SalesReport
}

// Library serves the monthly sales summaries kept in a data directory as
// "<Month> Sales.csv". Loaded reports are cached until the file changes.
type Library struct {
	dir    string
	loader *report.Loader
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[time.Month]cachedReport
}

func NewLibrary(dir string, loader *report.Loader, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}
	return &Library{
		dir:    dir,
		loader: loader,
		logger: logger,
		cache:  make(map[time.Month]cachedReport),
	}
}

// List returns the months that have a sales file, in calendar order.
func (l *Library) List() []string {
	var months []string
	for m := time.January; m <= time.December; m++ {
		info, err := os.Stat(l.path(m))
		if err == nil && info.Mode().IsRegular() {
			months = append(months, m.String())
		}
	}
	return months
}

// Load returns the sales report for a month name such as "March".
func (l *Library) Load(ctx context.Context, name string) (models.SalesReport, error) {
	month, ok := parseMonth(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReport, name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := l.path(month)
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownReport, month)
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	l.mu.RLock()
	cached, hit := l.cache[month]
	l.mu.RUnlock()
	if hit && cached.modTime.Equal(info.ModTime()) {
		return cached.sales, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sales, err := l.loader.LoadSales(f)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[month] = cachedReport{modTime: info.ModTime(), sales: sales}
	l.mu.Unlock()

	l.logger.InfoContext(ctx, "monthly report loaded", "month", month.String(), "rows", len(sales))
	return sales, nil
}

// Charts returns the sales chart series for a month.
func (l *Library) Charts(ctx context.Context, name string) (models.SalesCharts, error) {
	sales, err := l.Load(ctx, name)
	if err != nil {
		return models.SalesCharts{}, err
	}
	return SalesCharts(sales), nil
}

func (l *Library) path(m time.Month) string {
	return filepath.Join(l.dir, m.String()+monthlyFileSuffix)
}

func parseMonth(name string) (time.Month, bool) {
	name = strings.TrimSpace(name)
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), name) {
			return m, true
		}
	}
	return 0, false
}
