package templates

import (
	"fmt"

	"sales-dashboard/internal/models"
)

type componentScore struct {
	name                      string
	score, normalized, weight float64
}

func componentRows(r models.Rating) []componentScore {
	return []componentScore{
		{"Sales per bill", r.Scores.Sales, r.Normalized.Sales, r.Weights.Sales},
		{"Items per bill", r.Scores.ItemsSold, r.Normalized.ItemsSold, r.Weights.ItemsSold},
		{"Unique items ratio", r.Scores.UniqueItems, r.Normalized.UniqueItems, r.Weights.UniqueItems},
		{"Category diversity", r.Scores.Categories, r.Normalized.Categories, r.Weights.Categories},
	}
}

func totalsSummary(t models.Totals) string {
	return fmt.Sprintf("%d bills, %.2f total sales, %g items sold across %d items and %d categories.",
		t.TotalBills, t.TotalSales, t.TotalItemsSold, t.UniqueItemsSold, t.TotalCategories)
}
