package services

import (
	"slices"
	"strings"

	"sales-dashboard/internal/models"
)

// SalesCharts builds the chart series for a sales report.
func SalesCharts(sales models.SalesReport) models.SalesCharts {
	charts := models.SalesCharts{
		Overall:       make([]models.DailySales, 0, len(sales)),
		CashBreakdown: groupByPayment(sales, func(r models.SalesRecord) float64 { return r.Cash }),
		CardBreakdown: groupByPayment(sales, func(r models.SalesRecord) float64 { return r.Card }),
	}

	for _, rec := range sales {
		charts.Overall = append(charts.Overall, models.DailySales{Date: rec.Date, TotalSales: rec.TotalSales})
		charts.Payments.Cash += rec.Cash
		charts.Payments.Card += rec.Card
		charts.Payments.Due += rec.Due
	}
	return charts
}

// groupByPayment sums total sales per distinct payment amount.
func groupByPayment(sales models.SalesReport, amount func(models.SalesRecord) float64) []models.PaymentGroup {
	groups := make(map[float64]float64)
	for _, rec := range sales {
		groups[amount(rec)] += rec.TotalSales
	}

	result := make([]models.PaymentGroup, 0, len(groups))
	for amt, total := range groups {
		result = append(result, models.PaymentGroup{Amount: amt, TotalSales: total})
	}
	slices.SortFunc(result, func(a, b models.PaymentGroup) int {
		switch {
		case a.Amount < b.Amount:
			return -1
		case a.Amount > b.Amount:
			return 1
		}
		return 0
	})
	return result
}

// CategoryRevenue sums revenue and quantity per category, highest revenue first.
func CategoryRevenue(items models.ItemsReport) []models.CategoryRevenue {
	groups := make(map[string]*models.CategoryRevenue)
	for _, rec := range items {
		if groups[rec.Category] == nil {
			groups[rec.Category] = &models.CategoryRevenue{Category: rec.Category}
		}
		groups[rec.Category].Revenue += rec.Revenue
		groups[rec.Category].ItemsSold += rec.Quantity
	}

	result := make([]models.CategoryRevenue, 0, len(groups))
	for _, cr := range groups {
		result = append(result, *cr)
	}
	slices.SortFunc(result, func(a, b models.CategoryRevenue) int {
		if a.Revenue > b.Revenue {
			return -1
		}
		if a.Revenue < b.Revenue {
			return 1
		}
		return strings.Compare(a.Category, b.Category)
	})
	return result
}
