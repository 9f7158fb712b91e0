// Package memory is an in-memory stand-in for the spreadsheet, used by
// tests and local development. It stores raw text cells exactly like the
// real sheet so the normalizer sees the same shapes either way.
package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/ceugb69-B/yen-tracker2/internal/core"
	"github.com/ceugb69-B/yen-tracker2/internal/ledger"
	ports "github.com/ceugb69-B/yen-tracker2/internal/sheets"
)

type Store struct {
	mu     sync.Mutex
	header []string
	rows   [][]string
	budget string
}

var (
	_ ports.RecordReader = (*Store)(nil)
	_ ports.RowAppender  = (*Store)(nil)
	_ ports.BulkReplacer = (*Store)(nil)
	_ ports.BudgetCell   = (*Store)(nil)
)

// New creates an empty store with the canonical header.
func New() *Store {
	return &Store{header: ledger.Header()}
}

// Seed replaces the raw contents wholesale, header included. Rows are
// positional cell text, matching what the Sheets API would return.
func (s *Store) Seed(header []string, rows [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.header = append([]string(nil), header...)
	s.rows = make([][]string, len(rows))
	for i, r := range rows {
		s.rows[i] = append([]string(nil), r...)
	}
}

func (s *Store) ReadAll(_ context.Context) ([]ledger.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]ledger.Record, 0, len(s.rows))
	for _, row := range s.rows {
		rec := make(ledger.Record, len(s.header))
		for i, name := range s.header {
			if name == "" {
				continue
			}
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *Store) AppendRow(_ context.Context, e core.Entry) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, entryRow(e))
	return fmt.Sprintf("mem:%d", len(s.rows)), nil
}

func (s *Store) ReplaceAll(_ context.Context, header []string, entries []core.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.header = append([]string(nil), header...)
	s.rows = make([][]string, 0, len(entries))
	for _, e := range entries {
		s.rows = append(s.rows, entryRow(e))
	}
	return nil
}

func (s *Store) ReadBudgetCell(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budget, nil
}

func (s *Store) WriteBudgetCell(_ context.Context, yen int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget = strconv.FormatInt(yen, 10)
	return nil
}

// Len reports the number of stored data rows.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func entryRow(e core.Entry) []string {
	return []string{
		e.Date.String(),
		e.Item,
		strconv.FormatInt(e.Amount.Yen, 10),
		string(e.Category),
		e.Description,
	}
}
