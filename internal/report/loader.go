package report

import (
	"fmt"
	"io"

	"sales-dashboard/internal/models"
)

const (
	salesTable = "sales"
	itemsTable = "items"
)

// Loader turns raw sales and itemized CSV tables into validated reports.
// A Loader holds only its column mapping and may be shared between
// goroutines.
type Loader struct {
	sales      SalesColumns
	items      ItemsColumns
	separators string
}

type Option func(*Loader)

func WithSalesColumns(c SalesColumns) Option {
	return func(l *Loader) {
		l.sales = c
	}
}

func WithItemsColumns(c ItemsColumns) Option {
	return func(l *Loader) {
		l.items = c
	}
}

// WithGroupingSeparators sets the characters stripped from numeric cells.
func WithGroupingSeparators(seps string) Option {
	return func(l *Loader) {
		l.separators = seps
	}
}

func NewLoader(opts ...Option) (*Loader, error) {
	l := &Loader{
		sales:      DefaultSalesColumns(),
		items:      DefaultItemsColumns(),
		separators: DefaultGroupingSeparators,
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.sales.Validate(); err != nil {
		return nil, err
	}
	if err := l.items.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Loader) LoadSales(r io.Reader) (models.SalesReport, error) {
	raw, err := ReadTable(r)
	if err != nil {
		return nil, fmt.Errorf("sales report: %w", err)
	}
	return l.SalesFromTable(raw)
}

func (l *Loader) LoadItems(r io.Reader) (models.ItemsReport, error) {
	raw, err := ReadTable(r)
	if err != nil {
		return nil, fmt.Errorf("items report: %w", err)
	}
	return l.ItemsFromTable(raw)
}

// SalesFromTable builds a sales report from pre-parsed rows, header first.
func (l *Loader) SalesFromTable(raw [][]string) (models.SalesReport, error) {
	t, err := newTable(salesTable, raw, l.sales.names())
	if err != nil {
		return nil, err
	}

	c := l.sales
	report := make(models.SalesReport, len(t.rows))
	for i := range t.rows {
		rec := models.SalesRecord{Date: t.cell(i, c.Date)}

		if rec.TotalSales, err = l.amount(t, i, c.TotalSales); err != nil {
			return nil, err
		}
		if rec.TotalBills, err = l.count(t, i, c.TotalBills); err != nil {
			return nil, err
		}
		if rec.Cash, err = l.amount(t, i, c.Cash); err != nil {
			return nil, err
		}
		if rec.Card, err = l.amount(t, i, c.Card); err != nil {
			return nil, err
		}
		if rec.Due, err = l.amount(t, i, c.Due); err != nil {
			return nil, err
		}
		report[i] = rec
	}
	return report, nil
}

// ItemsFromTable builds an items report from pre-parsed rows, header first.
func (l *Loader) ItemsFromTable(raw [][]string) (models.ItemsReport, error) {
	t, err := newTable(itemsTable, raw, l.items.names())
	if err != nil {
		return nil, err
	}

	c := l.items
	report := make(models.ItemsReport, len(t.rows))
	for i := range t.rows {
		rec := models.ItemRecord{
			Item:     t.cell(i, c.Item),
			Category: t.cell(i, c.Category),
		}

		if rec.Quantity, err = l.amount(t, i, c.Quantity); err != nil {
			return nil, err
		}
		if rec.Revenue, err = l.amount(t, i, c.Revenue); err != nil {
			return nil, err
		}
		report[i] = rec
	}
	return report, nil
}

// amount parses a non-negative numeric cell.
func (l *Loader) amount(t *table, row int, column string) (float64, error) {
	raw := t.cell(row, column)
	v, err := parseAmount(raw, l.separators)
	if err != nil {
		return 0, withLocation(err, t, row, column)
	}
	if v < 0 {
		return 0, &MalformedNumberError{Column: column, Row: t.lines[row], Value: raw, Reason: "negative value"}
	}
	return v, nil
}

func (l *Loader) count(t *table, row int, column string) (int, error) {
	raw := t.cell(row, column)
	v, err := parseCount(raw, l.separators)
	if err != nil {
		return 0, withLocation(err, t, row, column)
	}
	if v < 0 {
		return 0, &MalformedNumberError{Column: column, Row: t.lines[row], Value: raw, Reason: "negative value"}
	}
	return v, nil
}

func withLocation(err error, t *table, row int, column string) error {
	if mn, ok := err.(*MalformedNumberError); ok {
		mn.Column = column
		mn.Row = t.lines[row]
	}
	return err
}
