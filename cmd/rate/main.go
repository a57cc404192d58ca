// Command rate scores a sales report and an items report offline using the
// same loader, column mapping and rating engine as the dashboard.
//
//	rate -sales "January Sales.csv" -items items.csv [-json]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"sales-dashboard/internal/config"
	"sales-dashboard/internal/report"
	"sales-dashboard/internal/services"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	salesPath := fs.String("sales", "", "path to the sales report CSV")
	itemsPath := fs.String("items", "", "path to the items report CSV")
	asJSON := fs.Bool("json", false, "print the full analysis as JSON")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *salesPath == "" || *itemsPath == "" {
		fmt.Fprintln(stderr, "rate: both -sales and -items are required")
		fs.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "rate: %v\n", err)
		return 1
	}

	analysis, err := rateFiles(cfg, *salesPath, *itemsPath)
	if err != nil {
		fmt.Fprintf(stderr, "rate: %v\n", err)
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(analysis); err != nil {
			fmt.Fprintf(stderr, "rate: %v\n", err)
			return 1
		}
		return 0
	}

	printSummary(stdout, analysis)
	return 0
}

func rateFiles(cfg *config.Config, salesPath, itemsPath string) (*services.Analysis, error) {
	loader, err := report.NewLoader(cfg.LoaderOptions()...)
	if err != nil {
		return nil, err
	}

	salesFile, err := os.Open(salesPath)
	if err != nil {
		return nil, err
	}
	defer salesFile.Close()

	itemsFile, err := os.Open(itemsPath)
	if err != nil {
		return nil, err
	}
	defer itemsFile.Close()

	sales, err := loader.LoadSales(salesFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", salesPath, err)
	}
	items, err := loader.LoadItems(itemsFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", itemsPath, err)
	}

	return services.Rate(sales, items)
}

func printSummary(w io.Writer, a *services.Analysis) {
	r := a.Rating
	fmt.Fprintf(w, "Rating: %.2f / 5 %s\n\n", r.Value, a.Stars.Glyphs())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "component\tscore\tnormalized\tweight")
	rows := []struct {
		name                      string
		score, normalized, weight float64
	}{
		{"sales per bill", r.Scores.Sales, r.Normalized.Sales, r.Weights.Sales},
		{"items per bill", r.Scores.ItemsSold, r.Normalized.ItemsSold, r.Weights.ItemsSold},
		{"unique items", r.Scores.UniqueItems, r.Normalized.UniqueItems, r.Weights.UniqueItems},
		{"categories", r.Scores.Categories, r.Normalized.Categories, r.Weights.Categories},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.2f\n", row.name, row.score, row.normalized, row.weight)
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "\n%d sales rows, %d item rows, total sales %.2f over %d bills\n",
		a.SalesRows, a.ItemsRows, r.Totals.TotalSales, r.Totals.TotalBills)
}
