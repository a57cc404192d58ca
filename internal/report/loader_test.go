package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-dashboard/internal/models"
)

const salesCSV = `Date,Total Sales,Total no. of bills,Cash,Card,Due Payment
01-01-2024,"12,345.50",40,"5,000.00","7,000.50",345
02-01-2024,800,5,300,500,0
`

const itemsCSV = `Item,Category,Qty.,Total (₹)
Paneer Tikka,Starters,12,"2,400.00"
Dal Makhani,Mains,8,"1,920"
Paneer Tikka,Starters,3,600
`

func newTestLoader(t *testing.T, opts ...Option) *Loader {
	t.Helper()
	l, err := NewLoader(opts...)
	require.NoError(t, err)
	return l
}

func TestLoader_LoadSales(t *testing.T) {
	l := newTestLoader(t)

	report, err := l.LoadSales(strings.NewReader(salesCSV))
	require.NoError(t, err)
	require.Len(t, report, 2)

	assert.Equal(t, models.SalesRecord{
		Date:       "01-01-2024",
		TotalSales: 12345.50,
		TotalBills: 40,
		Cash:       5000,
		Card:       7000.50,
		Due:        345,
	}, report[0])
	assert.Equal(t, 5, report[1].TotalBills)
}

func TestLoader_LoadItems(t *testing.T) {
	l := newTestLoader(t)

	report, err := l.LoadItems(strings.NewReader(itemsCSV))
	require.NoError(t, err)
	require.Len(t, report, 3)

	assert.Equal(t, "Paneer Tikka", report[0].Item)
	assert.Equal(t, "Starters", report[0].Category)
	assert.InDelta(t, 12, report[0].Quantity, 1e-9)
	assert.InDelta(t, 2400, report[0].Revenue, 1e-9)
	assert.InDelta(t, 1920, report[1].Revenue, 1e-9)
}

func TestLoader_BOMAndBlankRows(t *testing.T) {
	l := newTestLoader(t)

	input := "\xEF\xBB\xBF" + "Item,Category,Qty.,Total (₹)\n,,,\nTea,Drinks,2,40\n\n"
	report, err := l.LoadItems(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, "Tea", report[0].Item)
}

func TestLoader_DecomposedHeader(t *testing.T) {
	l := newTestLoader(t, WithItemsColumns(ItemsColumns{
		Item:     "Item",
		Category: "Category",
		Quantity: "Qty.",
		Revenue:  "Montant payé",
	}))

	// "é" written as e + combining acute accent
	input := "Item,Category,Qty.,Montant paye\u0301\nTea,Drinks,2,40\n"
	report, err := l.LoadItems(strings.NewReader(input))
	require.NoError(t, err)
	assert.InDelta(t, 40, report[0].Revenue, 1e-9)
}

func TestLoader_MissingColumn(t *testing.T) {
	l := newTestLoader(t)

	_, err := l.LoadSales(strings.NewReader("Date,Total Sales,Cash\n01-01-2024,10,10\n"))
	require.Error(t, err)

	var mc *MissingColumnError
	require.ErrorAs(t, err, &mc)
	assert.Equal(t, "sales", mc.Table)
	assert.Equal(t, []string{"Total no. of bills", "Card", "Due Payment"}, mc.Columns)
}

func TestLoader_EmptyTable(t *testing.T) {
	l := newTestLoader(t)

	tests := []struct {
		name  string
		input string
	}{
		{"empty stream", ""},
		{"header only", "Item,Category,Qty.,Total (₹)\n"},
		{"only blank rows", "Item,Category,Qty.,Total (₹)\n,,,\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.LoadItems(strings.NewReader(tt.input))

			var et *EmptyTableError
			require.ErrorAs(t, err, &et)
			assert.Equal(t, "items", et.Table)
		})
	}
}

func TestLoader_MalformedNumber(t *testing.T) {
	l := newTestLoader(t)

	input := "Item,Category,Qty.,Total (₹)\nTea,Drinks,2,40\nCoffee,Drinks,1,\"12,34a\"\n"
	_, err := l.LoadItems(strings.NewReader(input))

	var mn *MalformedNumberError
	require.ErrorAs(t, err, &mn)
	assert.Equal(t, "Total (₹)", mn.Column)
	assert.Equal(t, 3, mn.Row)
	assert.Equal(t, "12,34a", mn.Value)
	assert.Contains(t, mn.Error(), "row 3")
}

func TestLoader_OutOfRangeAmount(t *testing.T) {
	l := newTestLoader(t)

	input := "Date,Total Sales,Total no. of bills,Cash,Card,Due Payment\n01-01-2024,1e400,2,50,50,0\n"
	_, err := l.LoadSales(strings.NewReader(input))

	var mn *MalformedNumberError
	require.ErrorAs(t, err, &mn)
	assert.Equal(t, "Total Sales", mn.Column)
	assert.Equal(t, 2, mn.Row)
	assert.Equal(t, "out of range", mn.Reason)
}

func TestLoader_NegativeValuesRejected(t *testing.T) {
	l := newTestLoader(t)

	input := "Date,Total Sales,Total no. of bills,Cash,Card,Due Payment\n01-01-2024,100,-2,50,50,0\n"
	_, err := l.LoadSales(strings.NewReader(input))

	var mn *MalformedNumberError
	require.ErrorAs(t, err, &mn)
	assert.Equal(t, "Total no. of bills", mn.Column)
	assert.Equal(t, "negative value", mn.Reason)
}

func TestLoader_FromTableDoesNotMutateInput(t *testing.T) {
	l := newTestLoader(t)

	raw := [][]string{
		{"Date", "Total Sales", "Total no. of bills", "Cash", "Card", "Due Payment"},
		{"01-01-2024", " 1,000 ", "10", "400", "600", "0"},
	}
	snapshot := [][]string{
		append([]string(nil), raw[0]...),
		append([]string(nil), raw[1]...),
	}

	report, err := l.SalesFromTable(raw)
	require.NoError(t, err)
	assert.InDelta(t, 1000, report[0].TotalSales, 1e-9)
	assert.Equal(t, snapshot, raw)
}

func TestLoader_ShortRow(t *testing.T) {
	l := newTestLoader(t)

	_, err := l.ItemsFromTable([][]string{
		{"Item", "Category", "Qty.", "Total (₹)"},
		{"Tea", "Drinks", "2"},
	})

	var mn *MalformedNumberError
	require.ErrorAs(t, err, &mn)
	assert.Equal(t, "empty value", mn.Reason)
}

func TestNewLoader_InvalidMapping(t *testing.T) {
	_, err := NewLoader(WithSalesColumns(SalesColumns{Date: "Date"}))
	assert.Error(t, err)

	cols := DefaultItemsColumns()
	cols.Revenue = cols.Quantity
	_, err = NewLoader(WithItemsColumns(cols))
	assert.ErrorContains(t, err, "mapped more than once")
}
