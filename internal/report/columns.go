package report

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// SalesColumns maps sales report fields to CSV header names.
type SalesColumns struct {
	Date       string `mapstructure:"date" validate:"required"`
	TotalSales string `mapstructure:"total_sales" validate:"required"`
	TotalBills string `mapstructure:"total_bills" validate:"required"`
	Cash       string `mapstructure:"cash" validate:"required"`
	Card       string `mapstructure:"card" validate:"required"`
	Due        string `mapstructure:"due" validate:"required"`
}

// ItemsColumns maps itemized report fields to CSV header names.
type ItemsColumns struct {
	Item     string `mapstructure:"item" validate:"required"`
	Category string `mapstructure:"category" validate:"required"`
	Quantity string `mapstructure:"quantity" validate:"required"`
	Revenue  string `mapstructure:"revenue" validate:"required"`
}

func DefaultSalesColumns() SalesColumns {
	return SalesColumns{
		Date:       "Date",
		TotalSales: "Total Sales",
		TotalBills: "Total no. of bills",
		Cash:       "Cash",
		Card:       "Card",
		Due:        "Due Payment",
	}
}

func DefaultItemsColumns() ItemsColumns {
	return ItemsColumns{
		Item:     "Item",
		Category: "Category",
		Quantity: "Qty.",
		Revenue:  "Total (₹)",
	}
}

func (c SalesColumns) names() []string {
	return []string{c.Date, c.TotalSales, c.TotalBills, c.Cash, c.Card, c.Due}
}

func (c ItemsColumns) names() []string {
	return []string{c.Item, c.Category, c.Quantity, c.Revenue}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c SalesColumns) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("sales columns: %w", err)
	}
	return checkDistinct("sales", c.names())
}

func (c ItemsColumns) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("items columns: %w", err)
	}
	return checkDistinct("items", c.names())
}

func checkDistinct(table string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		key := headerKey(n)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%s columns: %q is mapped more than once", table, n)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// headerKey is the form header names are compared in.
func headerKey(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
