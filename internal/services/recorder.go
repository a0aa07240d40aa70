package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"kharcha/internal/core"
	applog "kharcha/internal/log"
	"kharcha/internal/storage"
)

// Recorder builds validated transactions and appends them to the ledger
// through the store. Recording is load-append-save; it is not atomic with
// respect to other processes, single-user use is assumed.
type Recorder struct {
	store *storage.CSVStore
	now   func() time.Time
}

func NewRecorder(store *storage.CSVStore) *Recorder {
	return &Recorder{store: store, now: time.Now}
}

// Record resolves the category selector, parses the amount as typed, stamps
// the current local time at second precision, and persists the new row last.
func (r *Recorder) Record(ctx context.Context, selector int, amountInput string) (core.Transaction, error) {
	name, ok := core.CategoryName(selector)
	if !ok {
		return core.Transaction{}, fmt.Errorf("category %d: %w", selector, core.ErrUnknownCategory)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(amountInput))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("amount %q: %w", amountInput, core.ErrInvalidAmount)
	}

	tx := core.Transaction{
		Date:     r.now(),
		Category: name,
		Amount:   amount,
	}

	ledger, err := r.store.Load(ctx)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("load ledger: %w", err)
	}

	if err := r.store.Save(ctx, ledger.Append(tx.Row())); err != nil {
		return core.Transaction{}, fmt.Errorf("save ledger: %w", err)
	}

	slog.InfoContext(ctx, "Transaction recorded",
		applog.FieldCategory, name,
		applog.FieldAmount, amount.String(),
		applog.FieldDate, tx.Date.Format(core.DateLayout))

	return tx, nil
}
