package console

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"kharcha/internal/services"
)

// reportFlow loads a ledger snapshot and prints the three report sections.
// An empty ledger is an informational notice, not an error. Malformed rows
// that survive category filtering still fail monthly and overall aggregation,
// and that failure aborts the whole report.
func (s *Shell) reportFlow(ctx context.Context) error {
	ledger, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}
	if ledger.Empty() {
		fmt.Fprintln(s.out, "No expenses recorded yet. Please record some first.")
		return nil
	}

	fmt.Fprintln(s.out, "\n--- Running Expense Analysis ---")
	section := color.New(color.FgYellow, color.Bold)

	section.Fprintln(s.out, "\n--- Category Spending Breakdown ---")
	categories := services.CategoryTotals(ledger)
	if len(categories) == 0 {
		fmt.Fprintln(s.out, "No category data available.")
	}
	for _, ct := range categories {
		fmt.Fprintf(s.out, "%s: Rs %s\n", ct.Category, ct.Total.StringFixed(2))
	}

	section.Fprintln(s.out, "\n--- Monthly Spending Breakdown ---")
	months, err := services.MonthlyTotals(ledger)
	if err != nil {
		return fmt.Errorf("generate monthly report: %w", err)
	}
	if len(months) == 0 {
		fmt.Fprintln(s.out, "No monthly data available.")
	}
	for _, mt := range months {
		fmt.Fprintf(s.out, "%s: Rs %s\n", mt.Month, mt.Total.StringFixed(2))
	}

	section.Fprintln(s.out, "\n--- Overall Summary ---")
	total, err := services.OverallTotal(ledger)
	if err != nil {
		return fmt.Errorf("generate overall summary: %w", err)
	}
	fmt.Fprintf(s.out, "Total Balance: Rs %s\n", total.StringFixed(2))

	return nil
}
