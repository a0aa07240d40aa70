package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"kharcha/internal/core"
)

// CategoryTotals sums amounts per category over the given ledger snapshot.
// Rows missing a category or amount are dropped, as are rows whose amount
// does not parse. Result order is first appearance of each category among the
// surviving rows; categories with no surviving rows are absent entirely.
func CategoryTotals(ledger core.Ledger) []core.CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, row := range ledger.Rows {
		if row.Category == "" || row.Amount == "" {
			continue
		}
		amount, err := decimal.NewFromString(row.Amount)
		if err != nil {
			continue
		}
		if _, seen := totals[row.Category]; !seen {
			order = append(order, row.Category)
		}
		totals[row.Category] = totals[row.Category].Add(amount)
	}

	out := make([]core.CategoryTotal, 0, len(order))
	for _, name := range order {
		out = append(out, core.CategoryTotal{Category: name, Total: totals[name]})
	}
	return out
}

// MonthlyTotals sums amounts per calendar year-month across all rows, sorted
// chronologically. Unlike CategoryTotals there is no pre-filtering: a row
// whose date or amount does not parse fails the whole call.
func MonthlyTotals(ledger core.Ledger) ([]core.MonthTotal, error) {
	totals := make(map[string]decimal.Decimal)

	for i, row := range ledger.Rows {
		date, err := time.Parse(core.DateLayout, row.Date)
		if err != nil {
			return nil, fmt.Errorf("row %d: parse date %q: %w", i, row.Date, err)
		}
		amount, err := decimal.NewFromString(row.Amount)
		if err != nil {
			return nil, fmt.Errorf("row %d: parse amount %q: %w", i, row.Amount, err)
		}
		bucket := date.Format(core.MonthLayout)
		totals[bucket] = totals[bucket].Add(amount)
	}

	months := make([]string, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	// YYYY-MM sorts chronologically as text.
	sort.Strings(months)

	out := make([]core.MonthTotal, 0, len(months))
	for _, m := range months {
		out = append(out, core.MonthTotal{Month: m, Total: totals[m]})
	}
	return out, nil
}

// OverallTotal sums the amount of every row with no filtering. An empty
// ledger totals zero; a missing or non-numeric amount is an error.
func OverallTotal(ledger core.Ledger) (decimal.Decimal, error) {
	total := decimal.Zero
	for i, row := range ledger.Rows {
		amount, err := decimal.NewFromString(row.Amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("row %d: parse amount %q: %w", i, row.Amount, err)
		}
		total = total.Add(amount)
	}
	return total, nil
}
