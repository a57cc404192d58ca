package rating

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-dashboard/internal/models"
	"sales-dashboard/internal/report"
)

func regressionReports() (models.SalesReport, models.ItemsReport) {
	sales := models.SalesReport{
		{Date: "01-01-2024", TotalSales: 1000, TotalBills: 10, Cash: 400, Card: 600},
	}
	items := models.ItemsReport{
		{Item: "A", Category: "X", Quantity: 5, Revenue: 500},
		{Item: "B", Category: "Y", Quantity: 5, Revenue: 500},
	}
	return sales, items
}

func TestCompute_RegressionVector(t *testing.T) {
	sales, items := regressionReports()

	r, err := Compute(sales, items)
	require.NoError(t, err)

	assert.Equal(t, models.Totals{
		TotalSales:      1000,
		TotalBills:      10,
		TotalItemsSold:  10,
		UniqueItemsSold: 2,
		TotalCategories: 2,
	}, r.Totals)

	assert.InDelta(t, 100, r.Scores.Sales, 1e-12)
	assert.InDelta(t, 1, r.Scores.ItemsSold, 1e-12)
	assert.InDelta(t, 0.2, r.Scores.UniqueItems, 1e-12)
	assert.InDelta(t, 0.2, r.Scores.Categories, 1e-12)

	assert.InDelta(t, 1, r.Normalized.Sales, 1e-12)
	assert.InDelta(t, 0.8/99.8, r.Normalized.ItemsSold, 1e-12)
	assert.InDelta(t, 0, r.Normalized.UniqueItems, 1e-12)
	assert.InDelta(t, 0, r.Normalized.Categories, 1e-12)

	// (0.65 + 0.2*0.8/99.8) * 5 = 3.2580...
	assert.Equal(t, 3.26, r.Value)
	assert.Equal(t, Weights(), r.Weights)
}

func TestCompute_Deterministic(t *testing.T) {
	sales, items := regressionReports()

	first, err := Compute(sales, items)
	require.NoError(t, err)
	second, err := Compute(sales, items)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompute_DoesNotMutateInputs(t *testing.T) {
	sales, items := regressionReports()
	salesCopy := append(models.SalesReport(nil), sales...)
	itemsCopy := append(models.ItemsReport(nil), items...)

	_, err := Compute(sales, items)
	require.NoError(t, err)

	assert.Equal(t, salesCopy, sales)
	assert.Equal(t, itemsCopy, items)
}

func TestCompute_ZeroBills(t *testing.T) {
	sales := models.SalesReport{{TotalSales: 500, TotalBills: 0}}
	items := models.ItemsReport{{Item: "A", Category: "X", Quantity: 3}}

	_, err := Compute(sales, items)
	require.Error(t, err)

	var dz *DivisionByZeroError
	require.ErrorAs(t, err, &dz)
	assert.True(t, errors.Is(err, ErrDivisionByZero))
}

func TestCompute_ZeroItemsSold(t *testing.T) {
	sales := models.SalesReport{{TotalSales: 300, TotalBills: 3}}
	items := models.ItemsReport{
		{Item: "A", Category: "X", Quantity: 0},
		{Item: "B", Category: "Y", Quantity: 0},
	}

	r, err := Compute(sales, items)
	require.NoError(t, err)

	assert.Zero(t, r.Scores.UniqueItems)
	assert.Zero(t, r.Scores.Categories)
	assert.Zero(t, r.Scores.ItemsSold)
	assert.False(t, math.IsNaN(r.Value))

	// scores [100, 0, 0, 0] normalize to [1, 0, 0, 0]
	assert.Equal(t, 3.25, r.Value)
}

func TestCompute_DegenerateNormalization(t *testing.T) {
	// every component score equals 1
	sales := models.SalesReport{{TotalSales: 2, TotalBills: 2}}
	items := models.ItemsReport{
		{Item: "A", Category: "X", Quantity: 1},
		{Item: "B", Category: "Y", Quantity: 1},
	}

	r, err := Compute(sales, items)
	require.NoError(t, err)

	assert.Equal(t, r.Scores, r.Normalized)
	assert.Equal(t, MaxRating, r.Value)
}

func TestCompute_DegenerateNormalizationBelowOne(t *testing.T) {
	// every component score equals 0.5
	sales := models.SalesReport{{TotalSales: 2, TotalBills: 4}}
	items := models.ItemsReport{{Item: "A", Category: "X", Quantity: 2}}

	r, err := Compute(sales, items)
	require.NoError(t, err)

	assert.Equal(t, r.Scores, r.Normalized)
	assert.Equal(t, 2.5, r.Value)
}

func TestCompute_EmptyReports(t *testing.T) {
	sales, items := regressionReports()

	_, err := Compute(nil, items)
	var et *report.EmptyTableError
	require.ErrorAs(t, err, &et)
	assert.Equal(t, "sales", et.Table)

	_, err = Compute(sales, models.ItemsReport{})
	require.ErrorAs(t, err, &et)
	assert.Equal(t, "items", et.Table)
}

func TestCompute_BoundedAndRounded(t *testing.T) {
	cases := []struct {
		sales models.SalesReport
		items models.ItemsReport
	}{
		{
			models.SalesReport{{TotalSales: 0, TotalBills: 1}},
			models.ItemsReport{{Item: "A", Category: "X", Quantity: 1000}},
		},
		{
			models.SalesReport{{TotalSales: 1e9, TotalBills: 1}, {TotalSales: 3.3, TotalBills: 7}},
			models.ItemsReport{{Item: "A", Category: "X", Quantity: 0.5}},
		},
		{
			models.SalesReport{{TotalSales: 17.17, TotalBills: 3}},
			models.ItemsReport{
				{Item: "A", Category: "X", Quantity: 1},
				{Item: "B", Category: "X", Quantity: 7},
				{Item: "C", Category: "Z", Quantity: 2},
			},
		},
		{
			models.SalesReport{{TotalSales: -50, TotalBills: 2}},
			models.ItemsReport{{Item: "A", Category: "X", Quantity: 4}},
		},
	}

	for i, c := range cases {
		r, err := Compute(c.sales, c.items)
		require.NoError(t, err, "case %d", i)

		assert.GreaterOrEqual(t, r.Value, 0.0, "case %d", i)
		assert.LessOrEqual(t, r.Value, MaxRating, "case %d", i)
		assert.InDelta(t, math.Round(r.Value*100)/100, r.Value, 1e-12, "case %d", i)
	}
}

func TestAggregate_DistinctCounts(t *testing.T) {
	items := models.ItemsReport{
		{Item: "Tea", Category: "Drinks", Quantity: 2},
		{Item: "Tea", Category: "Drinks", Quantity: 1},
		{Item: "Samosa", Category: "Snacks", Quantity: 4},
		{Item: "Lassi", Category: "Drinks", Quantity: 1},
	}

	totals := Aggregate(models.SalesReport{{TotalSales: 10, TotalBills: 2}, {TotalSales: 5, TotalBills: 1}}, items)

	assert.InDelta(t, 15, totals.TotalSales, 1e-12)
	assert.Equal(t, 3, totals.TotalBills)
	assert.InDelta(t, 8, totals.TotalItemsSold, 1e-12)
	assert.Equal(t, 3, totals.UniqueItemsSold)
	assert.Equal(t, 2, totals.TotalCategories)
}

func TestWeightsSumToOne(t *testing.T) {
	w := Weights()
	assert.InDelta(t, 1.0, w.Sales+w.ItemsSold+w.UniqueItems+w.Categories, 1e-12)
}

func TestCompute_SummedOverflow(t *testing.T) {
	sales := models.SalesReport{
		{TotalSales: 1e308, TotalBills: 1},
		{TotalSales: 1e308, TotalBills: 1},
	}
	items := models.ItemsReport{{Item: "A", Category: "X", Quantity: 1}}

	assert.NotPanics(t, func() {
		_, err := Compute(sales, items)

		var oe *OverflowError
		require.ErrorAs(t, err, &oe)
		assert.Equal(t, "total sales", oe.Quantity)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestCompute_ItemsOverflow(t *testing.T) {
	sales := models.SalesReport{{TotalSales: 10, TotalBills: 1}}
	items := models.ItemsReport{
		{Item: "A", Category: "X", Quantity: math.MaxFloat64},
		{Item: "B", Category: "X", Quantity: math.MaxFloat64},
	}

	_, err := Compute(sales, items)
	var oe *OverflowError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "total items sold", oe.Quantity)
}
