package core

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DateLayout is the timestamp format written to the ledger file.
	DateLayout = "2006-01-02 15:04:05"
	// MonthLayout is the calendar bucket key used by monthly aggregation.
	MonthLayout = "2006-01"
)

type (
	// Row is one persisted ledger line. Cells hold the text exactly as
	// stored; an empty cell is the null marker for a value that was never
	// recorded.
	Row struct {
		Date     string
		Category string
		Amount   string
	}

	// Ledger is the full ordered sequence of recorded rows. Order is
	// insertion order and is never re-sorted.
	Ledger struct {
		Rows []Row
	}

	// Transaction is a validated entry before it becomes a ledger row.
	// Positive amounts are expenses, negative amounts are income.
	Transaction struct {
		Date     time.Time
		Category string
		Amount   decimal.Decimal
	}

	CategoryTotal struct {
		Category string
		Total    decimal.Decimal
	}

	MonthTotal struct {
		Month string // YYYY-MM
		Total decimal.Decimal
	}
)

var (
	ErrUnknownCategory = errors.New("unknown category number")
	ErrInvalidAmount   = errors.New("invalid amount")
)

// Complete reports whether the row carries all three canonical cells.
// Incomplete rows stay in storage but are excluded from category totals.
func (r Row) Complete() bool {
	return r.Date != "" && r.Category != "" && r.Amount != ""
}

// Row converts the transaction into its persisted form.
func (t Transaction) Row() Row {
	return Row{
		Date:     t.Date.Format(DateLayout),
		Category: t.Category,
		Amount:   t.Amount.String(),
	}
}

// Empty reports whether the ledger holds no rows.
func (l Ledger) Empty() bool {
	return len(l.Rows) == 0
}

// Append returns a ledger with the row added last, leaving existing rows
// untouched.
func (l Ledger) Append(r Row) Ledger {
	rows := make([]Row, 0, len(l.Rows)+1)
	rows = append(rows, l.Rows...)
	rows = append(rows, r)
	return Ledger{Rows: rows}
}
