// Package rating scores a pair of sales and itemized reports on a 0 to 5
// scale.
//
// The four component scores (sales per bill, items per bill, distinct
// items per item sold, categories per item sold) are min-max normalized
// against each other, weighted, scaled by five, clamped and rounded to two
// decimal places.
package rating

import (
	"errors"
	"maps"
	"math"
	"slices"

	"github.com/shopspring/decimal"

	"sales-dashboard/internal/models"
	"sales-dashboard/internal/report"
)

const (
	MaxRating = 5.0

	WeightSales       = 0.65
	WeightItemsSold   = 0.2
	WeightUniqueItems = 0.05
	WeightCategories  = 0.1
)

// ErrDivisionByZero is returned when the sales report records no bills.
var ErrDivisionByZero = errors.New("total number of bills is zero")

// DivisionByZeroError reports a per-bill score that cannot be computed.
type DivisionByZeroError struct {
	Denominator string
}

func (e *DivisionByZeroError) Error() string {
	return "cannot compute rating: " + e.Denominator + " is zero"
}

func (e *DivisionByZeroError) Unwrap() error {
	return ErrDivisionByZero
}

// ErrOverflow is returned when report totals exceed the float64 range.
var ErrOverflow = errors.New("report totals overflow")

// OverflowError names the total or score that is not a finite number.
type OverflowError struct {
	Quantity string
}

func (e *OverflowError) Error() string {
	return "cannot compute rating: " + e.Quantity + " is out of range"
}

func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}

// Weights returns the fixed component weights.
func Weights() models.Components {
	return models.Components{
		Sales:       WeightSales,
		ItemsSold:   WeightItemsSold,
		UniqueItems: WeightUniqueItems,
		Categories:  WeightCategories,
	}
}

// Compute derives the rating for one pair of reports. Neither report is
// modified.
func Compute(sales models.SalesReport, items models.ItemsReport) (models.Rating, error) {
	if len(sales) == 0 {
		return models.Rating{}, &report.EmptyTableError{Table: "sales"}
	}
	if len(items) == 0 {
		return models.Rating{}, &report.EmptyTableError{Table: "items"}
	}

	totals := Aggregate(sales, items)
	if totals.TotalBills == 0 {
		return models.Rating{}, &DivisionByZeroError{Denominator: "total number of bills"}
	}

	if err := checkFinite(map[string]float64{
		"total sales":      totals.TotalSales,
		"total items sold": totals.TotalItemsSold,
	}); err != nil {
		return models.Rating{}, err
	}

	bills := float64(totals.TotalBills)
	scores := models.Components{
		Sales:     totals.TotalSales / bills,
		ItemsSold: totals.TotalItemsSold / bills,
	}
	if totals.TotalItemsSold > 0 {
		scores.UniqueItems = float64(totals.UniqueItemsSold) / totals.TotalItemsSold
		scores.Categories = float64(totals.TotalCategories) / totals.TotalItemsSold
	}

	if err := checkFinite(map[string]float64{
		"sales per bill": scores.Sales,
		"items per bill": scores.ItemsSold,
	}); err != nil {
		return models.Rating{}, err
	}

	normalized := normalize(scores)
	w := Weights()

	value := w.Sales*normalized.Sales +
		w.ItemsSold*normalized.ItemsSold +
		w.UniqueItems*normalized.UniqueItems +
		w.Categories*normalized.Categories
	value = math.Min(math.Max(value*MaxRating, 0), MaxRating)

	return models.Rating{
		Value:      round2(value),
		Totals:     totals,
		Scores:     scores,
		Normalized: normalized,
		Weights:    w,
	}, nil
}

// Aggregate sums the report columns the component scores are built from.
func Aggregate(sales models.SalesReport, items models.ItemsReport) models.Totals {
	var t models.Totals
	for _, rec := range sales {
		t.TotalSales += rec.TotalSales
		t.TotalBills += rec.TotalBills
	}

	uniqueItems := make(map[string]struct{})
	categories := make(map[string]struct{})
	for _, rec := range items {
		t.TotalItemsSold += rec.Quantity
		uniqueItems[rec.Item] = struct{}{}
		categories[rec.Category] = struct{}{}
	}
	t.UniqueItemsSold = len(uniqueItems)
	t.TotalCategories = len(categories)
	return t
}

// normalize rescales the scores jointly onto [0, 1]. When every score is
// equal they are returned unchanged.
func normalize(s models.Components) models.Components {
	maxScore := max(s.Sales, s.ItemsSold, s.UniqueItems, s.Categories)
	minScore := min(s.Sales, s.ItemsSold, s.UniqueItems, s.Categories)
	if maxScore == minScore {
		return s
	}

	span := maxScore - minScore
	return models.Components{
		Sales:       (s.Sales - minScore) / span,
		ItemsSold:   (s.ItemsSold - minScore) / span,
		UniqueItems: (s.UniqueItems - minScore) / span,
		Categories:  (s.Categories - minScore) / span,
	}
}

func checkFinite(values map[string]float64) error {
	names := slices.Sorted(maps.Keys(values))
	for _, name := range names {
		if v := values[name]; math.IsInf(v, 0) || math.IsNaN(v) {
			return &OverflowError{Quantity: name}
		}
	}
	return nil
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
