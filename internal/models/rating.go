package models

import "strings"

// Components holds one value per rating component.
type Components struct {
	Sales       float64 `json:"sales"`
	ItemsSold   float64 `json:"items_sold"`
	UniqueItems float64 `json:"unique_items"`
	Categories  float64 `json:"categories"`
}

// Totals are the report aggregates the component scores derive from.
type Totals struct {
	TotalSales      float64 `json:"total_sales"`
	TotalBills      int     `json:"total_bills"`
	TotalItemsSold  float64 `json:"total_items_sold"`
	UniqueItemsSold int     `json:"unique_items_sold"`
	TotalCategories int     `json:"total_categories"`
}

// Rating is a score in [0, 5] rounded to two decimal places.
type Rating struct {
	Value      float64    `json:"value"`
	Totals     Totals     `json:"totals"`
	Scores     Components `json:"scores"`
	Normalized Components `json:"normalized"`
	Weights    Components `json:"weights"`
}

const (
	fullStar    = "★"
	partialStar = "⯪"
	emptyStar   = "☆"
)

// Stars is the five-glyph display of a rating. Empty does not count the
// slot a missing partial star leaves open.
type Stars struct {
	Full    int  `json:"full"`
	Partial bool `json:"partial"`
	Empty   int  `json:"empty"`
}

// Glyphs renders the display as exactly five star characters.
func (s Stars) Glyphs() string {
	glyphs := strings.Repeat(fullStar, s.Full)
	if s.Partial {
		glyphs += partialStar
	} else if s.Full < 5 {
		glyphs += emptyStar
	}
	return glyphs + strings.Repeat(emptyStar, s.Empty)
}
