package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"kharcha/internal/core"
	applog "kharcha/internal/log"
)

// canonicalColumns is the authoritative ledger schema. Load reorders and
// back-fills whatever is on disk to match it; Save writes nothing else.
var canonicalColumns = []string{"date", "category", "amount"}

// CSVStore owns the flat-file ledger. It is the only component that touches
// the storage file; callers hold transient in-memory copies obtained via Load.
type CSVStore struct {
	dir  string
	file string
}

func NewCSVStore(dir, file string) *CSVStore {
	return &CSVStore{dir: dir, file: file}
}

// Path returns the full location of the ledger file.
func (s *CSVStore) Path() string {
	return filepath.Join(s.dir, s.file)
}

// EnsureStorage creates the data directory and a header-only ledger file if
// either is missing. Idempotent; an existing file is left untouched.
func (s *CSVStore) EnsureStorage() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	path := s.Path()
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat ledger file: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create ledger file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(canonicalColumns); err != nil {
		return fmt.Errorf("write ledger header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write ledger header: %w", err)
	}

	slog.Info("Ledger storage initialized", applog.FieldPath, path)
	return nil
}

// Load reads the whole ledger into memory, normalized to the canonical
// schema. A zero-byte file yields an empty ledger, not an error. Columns
// missing from the file are back-filled with empty null markers, columns the
// schema does not know are dropped, and row order is preserved as on disk.
func (s *CSVStore) Load(ctx context.Context) (core.Ledger, error) {
	if err := s.EnsureStorage(); err != nil {
		return core.Ledger{}, err
	}

	f, err := os.Open(s.Path())
	if err != nil {
		return core.Ledger{}, fmt.Errorf("open ledger file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return core.Ledger{}, nil
	}
	if err != nil {
		return core.Ledger{}, fmt.Errorf("read ledger header: %w", err)
	}

	idx := columnIndex(header)

	var ledger core.Ledger
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return core.Ledger{}, fmt.Errorf("read ledger row: %w", err)
		}
		ledger.Rows = append(ledger.Rows, core.Row{
			Date:     cell(record, idx["date"]),
			Category: cell(record, idx["category"]),
			Amount:   cell(record, idx["amount"]),
		})
	}

	slog.DebugContext(ctx, "Ledger loaded", applog.FieldRows, len(ledger.Rows))
	return ledger, nil
}

// Save rewrites the ledger file with the canonical header and every row of
// the given ledger, replacing previous content entirely. The overwrite is not
// transactional; a failed write surfaces as an error with no rollback.
func (s *CSVStore) Save(ctx context.Context, ledger core.Ledger) error {
	if err := s.EnsureStorage(); err != nil {
		return err
	}

	f, err := os.Create(s.Path())
	if err != nil {
		return fmt.Errorf("open ledger file for write: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(canonicalColumns); err != nil {
		return fmt.Errorf("write ledger header: %w", err)
	}
	for _, row := range ledger.Rows {
		if err := w.Write([]string{row.Date, row.Category, row.Amount}); err != nil {
			return fmt.Errorf("write ledger row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush ledger file: %w", err)
	}

	slog.InfoContext(ctx, "Ledger saved", applog.FieldRows, len(ledger.Rows), applog.FieldPath, s.Path())
	return nil
}

// columnIndex maps each canonical column to its position in the file header,
// or -1 when the file does not carry it. Header names match case-insensitively
// so files written by other tools still load.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(canonicalColumns))
	for _, col := range canonicalColumns {
		idx[col] = -1
	}
	for pos, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, ok := idx[name]; ok && idx[name] == -1 {
			idx[name] = pos
		}
	}
	return idx
}

func cell(record []string, pos int) string {
	if pos < 0 || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
