// Package console implements the interactive menu loop and the report
// display. It owns no ledger state; every turn goes through the recorder or
// the store and returns before the next prompt.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"kharcha/internal/core"
	"kharcha/internal/services"
	"kharcha/internal/storage"
)

type Shell struct {
	in       *bufio.Scanner
	out      io.Writer
	store    *storage.CSVStore
	recorder *services.Recorder
}

func New(in io.Reader, out io.Writer, store *storage.CSVStore, recorder *services.Recorder) *Shell {
	return &Shell{
		in:       bufio.NewScanner(in),
		out:      out,
		store:    store,
		recorder: recorder,
	}
}

// Run shows the banner and serves menu turns until the user exits or input
// ends. Report generation failures propagate to the caller; the tool is
// allowed to terminate with a diagnostic on malformed ledger data.
func (s *Shell) Run(ctx context.Context) error {
	s.banner()

	for {
		fmt.Fprintln(s.out, "\n--- Kharcha Menu ---")
		fmt.Fprintln(s.out, "1. Record New Expense/Income")
		fmt.Fprintln(s.out, "2. Run Analysis & View Reports")
		fmt.Fprintln(s.out, "3. Exit")
		fmt.Fprint(s.out, "Enter your choice (1-3): ")

		choice, ok := s.readLine()
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			s.recordFlow(ctx)
		case "2":
			if err := s.reportFlow(ctx); err != nil {
				return err
			}
		case "3":
			fmt.Fprintln(s.out, "Exiting Kharcha. Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please enter 1, 2, or 3.")
		}
	}
}

func (s *Shell) banner() {
	header := color.New(color.FgCyan, color.Bold)
	header.Fprintln(s.out, "===================================================")
	header.Fprintln(s.out, "          Welcome to the Kharcha Tracker           ")
	header.Fprintln(s.out, " All amounts are recorded and displayed in Rs      ")
	header.Fprintln(s.out, "===================================================")
}

// recordFlow gathers a validated category selector and amount, re-prompting
// until each is acceptable, then delegates to the recorder.
func (s *Shell) recordFlow(ctx context.Context) {
	fmt.Fprintln(s.out, "\nSelect Category:")
	for _, n := range core.Selectors() {
		name, _ := core.CategoryName(n)
		fmt.Fprintf(s.out, "  %d: %s\n", n, name)
	}

	selector, ok := s.promptCategory()
	if !ok {
		return
	}
	amount, ok := s.promptAmount()
	if !ok {
		return
	}

	if _, err := s.recorder.Record(ctx, selector, amount); err != nil {
		fmt.Fprintf(s.out, "Failed to record transaction: %v\n", err)
		return
	}
	color.New(color.FgGreen).Fprintln(s.out, "Expense/Income recorded successfully.")
}

func (s *Shell) promptCategory() (int, bool) {
	for {
		fmt.Fprint(s.out, "Enter category number: ")
		line, ok := s.readLine()
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter a number.")
			continue
		}
		if _, known := core.CategoryName(n); !known {
			fmt.Fprintln(s.out, "Invalid category number. Please try again.")
			continue
		}
		return n, true
	}
}

func (s *Shell) promptAmount() (string, bool) {
	for {
		fmt.Fprint(s.out, "Enter amount (e.g., 50.75 or -20 for income): ")
		line, ok := s.readLine()
		if !ok {
			return "", false
		}
		// Same parser the recorder uses, so anything accepted here records.
		if _, err := decimal.NewFromString(line); err != nil {
			fmt.Fprintln(s.out, "Invalid amount. Please enter a number.")
			continue
		}
		return line, true
	}
}

// readLine returns the next trimmed input line, or false when input ends.
func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}
