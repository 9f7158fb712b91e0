// Package services orchestrates the engine's operations over the backing
// store, the local queue, and the classifier.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ceugb69-B/yen-tracker2/internal/core"
	"github.com/ceugb69-B/yen-tracker2/internal/ledger"
	"github.com/ceugb69-B/yen-tracker2/internal/sheets"
)

// ValidationError reports the fields that block a submit. It is surfaced to
// the user synchronously; no write is attempted when it fires.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid entry: " + strings.Join(e.Fields, ", ")
}

// SyncPublisher publishes a best-effort "row saved locally, sync it" signal.
// Implemented by the AMQP client; nil when the deployment writes straight to
// the sheet.
type SyncPublisher interface {
	PublishEntrySync(ctx context.Context, id, version int64) error
}

// Store is the full set of backing-store capabilities the service needs.
type Store interface {
	sheets.RecordReader
	sheets.RowAppender
	sheets.BulkReplacer
	sheets.BudgetCell
}

// LedgerService owns the validated write path and the read-side analytics.
// It holds no state between calls: every operation re-reads the full record
// set, so concurrent manual sheet edits are tolerated as stale reads.
type LedgerService struct {
	store     sheets.RecordReader
	appender  sheets.RowAppender
	replacer  sheets.BulkReplacer
	budget    sheets.BudgetCell
	publisher SyncPublisher
}

// NewLedgerService wires the service against one store. publisher may be nil.
func NewLedgerService(store Store, publisher SyncPublisher) *LedgerService {
	return &LedgerService{
		store:     store,
		appender:  store,
		replacer:  store,
		budget:    store,
		publisher: publisher,
	}
}

// Append validates and writes one entry. Validation failures return a
// *ValidationError naming every offending field and leave the store
// untouched. When a sync publisher is configured the saved row's reference
// is forwarded best-effort; a publish failure never fails the append, the
// row is already durable locally.
func (s *LedgerService) Append(ctx context.Context, e core.Entry) (string, error) {
	var missing []string
	if err := e.Date.Validate(); err != nil {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(e.Item) == "" {
		missing = append(missing, "item")
	}
	if e.Amount.Yen <= 0 {
		missing = append(missing, "amount")
	}
	if len(missing) > 0 {
		return "", &ValidationError{Fields: missing}
	}

	ref, err := s.appender.AppendRow(ctx, e)
	if err != nil {
		return "", fmt.Errorf("append entry: %w", err)
	}

	if s.publisher != nil {
		if id, perr := strconv.ParseInt(ref, 10, 64); perr == nil {
			if perr := s.publisher.PublishEntrySync(ctx, id, 1); perr != nil {
				slog.WarnContext(ctx, "Failed to publish sync message",
					"id", id, "error", perr)
			}
		}
	}

	return ref, nil
}

// Rewrite is the bulk cleanup path: it re-normalizes every stored row and
// replaces the sheet with canonically serialized entries. For well-formed
// rows the operation is idempotent and lossless; malformed rows are dropped
// for good. A failed replace leaves the store in an unknown state and the
// caller must re-read before retrying.
func (s *LedgerService) Rewrite(ctx context.Context) (int, error) {
	records, err := s.store.ReadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("read ledger: %w", err)
	}
	entries := ledger.Normalize(records)
	ledger.SortByDate(entries)

	if err := s.replacer.ReplaceAll(ctx, ledger.Header(), entries); err != nil {
		return 0, fmt.Errorf("rewrite ledger: %w", err)
	}

	slog.InfoContext(ctx, "Ledger rewritten",
		"rows_in", len(records),
		"rows_out", len(entries))
	return len(entries), nil
}

// Overview is the dashboard view: the budget report for the current period
// plus the aggregates behind the trend and category breakdown.
type Overview struct {
	Report         ledger.Report
	MonthTotals    []ledger.MonthTotal
	CategoryTotals []core.CategoryAmount
	Recent         []core.Entry
}

// recentLimit bounds the history shown on the dashboard.
const recentLimit = 15

// Overview reads the full ledger and the budget cell (concurrently, they
// are independent calls), normalizes, and evaluates the current period.
// The evaluation instant is injected by the caller.
func (s *LedgerService) Overview(ctx context.Context, now time.Time) (Overview, error) {
	var (
		records []ledger.Record
		cell    string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.store.ReadAll(gctx)
		if err != nil {
			return fmt.Errorf("read ledger: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cell, err = s.budget.ReadBudgetCell(gctx)
		if err != nil {
			return fmt.Errorf("read budget cell: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}

	entries := ledger.Normalize(records)
	period := ledger.CurrentPeriod(now)
	spent := ledger.PeriodTotal(entries, period)
	budget := ledger.ParseBudget(cell)

	recent := append([]core.Entry(nil), entries...)
	ledger.SortByDate(recent)
	if len(recent) > recentLimit {
		recent = recent[len(recent)-recentLimit:]
	}
	// Newest first for display.
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}

	return Overview{
		Report:         ledger.Evaluate(spent.Yen, budget, now),
		MonthTotals:    ledger.ByMonth(entries),
		CategoryTotals: ledger.ByCategory(entries, period),
		Recent:         recent,
	}, nil
}

// Budget returns the effective monthly budget, already defaulted.
func (s *LedgerService) Budget(ctx context.Context) (int64, error) {
	cell, err := s.budget.ReadBudgetCell(ctx)
	if err != nil {
		return 0, fmt.Errorf("read budget cell: %w", err)
	}
	return ledger.ParseBudget(cell), nil
}

// SetBudget stores a new monthly budget. Non-positive values are rejected
// up front; the defined-zero semantics of evaluation are for reading legacy
// data, not for writing new nonsense.
func (s *LedgerService) SetBudget(ctx context.Context, yen int64) error {
	if yen <= 0 {
		return &ValidationError{Fields: []string{"budget"}}
	}
	if err := s.budget.WriteBudgetCell(ctx, yen); err != nil {
		return fmt.Errorf("write budget cell: %w", err)
	}
	return nil
}
