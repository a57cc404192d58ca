package models

// SalesRecord is one reporting period of the periodic sales summary.
type SalesRecord struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"total_sales"`
	TotalBills int     `json:"total_bills"`
	Cash       float64 `json:"cash"`
	Card       float64 `json:"card"`
	Due        float64 `json:"due"`
}

// SalesReport is read-only once loaded.
type SalesReport []SalesRecord

type ItemRecord struct {
	Item     string  `json:"item"`
	Category string  `json:"category"`
	Quantity float64 `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type ItemsReport []ItemRecord

type DailySales struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"total_sales"`
}

// PaymentGroup is total sales grouped by a single payment amount value.
type PaymentGroup struct {
	Amount     float64 `json:"amount"`
	TotalSales float64 `json:"total_sales"`
}

type CategoryRevenue struct {
	Category  string  `json:"category"`
	Revenue   float64 `json:"revenue"`
	ItemsSold float64 `json:"items_sold"`
}

type PaymentTotals struct {
	Cash float64 `json:"cash"`
	Card float64 `json:"card"`
	Due  float64 `json:"due"`
}

// SalesCharts holds the series behind the sales report charts.
type SalesCharts struct {
	Overall       []DailySales   `json:"overall"`
	CashBreakdown []PaymentGroup `json:"cash_breakdown"`
	CardBreakdown []PaymentGroup `json:"card_breakdown"`
	Payments      PaymentTotals  `json:"payments"`
}
