// Package storage is the local SQLite backend: the fast, always-available
// copy of the ledger that the sync worker later pushes to the spreadsheet.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ceugb69-B/yen-tracker2/internal/core"
	"github.com/ceugb69-B/yen-tracker2/internal/ledger"
	ports "github.com/ceugb69-B/yen-tracker2/internal/sheets"

	_ "modernc.org/sqlite"
)

const budgetSettingKey = "monthly_budget"

type SQLiteRepository struct {
	db *sql.DB
}

var (
	_ ports.RecordReader = (*SQLiteRepository)(nil)
	_ ports.RowAppender  = (*SQLiteRepository)(nil)
	_ ports.BulkReplacer = (*SQLiteRepository)(nil)
	_ ports.BudgetCell   = (*SQLiteRepository)(nil)
)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ReadAll implements sheets.RecordReader. Rows come back as the same
// untyped column mappings the spreadsheet adapter produces, so the
// normalizer treats both stores identically.
func (r *SQLiteRepository) ReadAll(ctx context.Context) ([]ledger.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT entry_date, item, amount_yen, category, description
		 FROM entries ORDER BY entry_date, id`)
	if err != nil {
		return nil, fmt.Errorf("select entries: %w", err)
	}
	defer rows.Close()

	var records []ledger.Record
	for rows.Next() {
		var date, item, category, description string
		var yen int64
		if err := rows.Scan(&date, &item, &yen, &category, &description); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		records = append(records, ledger.Record{
			ledger.ColDate:        date,
			ledger.ColItem:        item,
			ledger.ColAmount:      strconv.FormatInt(yen, 10),
			ledger.ColCategory:    category,
			ledger.ColDescription: description,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return records, nil
}

// AppendRow implements sheets.RowAppender. The returned reference is the
// numeric row ID, which the sync path later uses to find the pending entry.
func (r *SQLiteRepository) AppendRow(ctx context.Context, e core.Entry) (string, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO entries (entry_date, item, amount_yen, category, description)
		 VALUES (?, ?, ?, ?, ?)`,
		e.Date.String(), e.Item, e.Amount.Yen, string(e.Category), e.Description)
	if err != nil {
		return "", fmt.Errorf("insert entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("entry id: %w", err)
	}

	slog.InfoContext(ctx, "Entry saved to SQLite",
		"id", id,
		"item", e.Item,
		"amount_yen", e.Amount.Yen,
		"date", e.Date.String())
	return strconv.FormatInt(id, 10), nil
}

// ReplaceAll implements sheets.BulkReplacer inside one transaction, so the
// local store actually is atomic even though the spreadsheet is not.
//
// Rewritten rows are inserted with synced=1, pending ones included: the
// rewrite renumbers every row, so pending flags carried across it would
// point the queue at IDs that no longer match their entries, and re-pushing
// the whole normalized set would duplicate everything already appended to
// the sheet. The cost is that a row saved but not yet synced when a rewrite
// lands never reaches the sheet on its own; run the rewrite only when the
// pending queue is drained.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, _ []string, entries []core.Entry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rewrite: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	for _, e := range entries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO entries (entry_date, item, amount_yen, category, description, synced)
			 VALUES (?, ?, ?, ?, ?, 1)`,
			e.Date.String(), e.Item, e.Amount.Yen, string(e.Category), e.Description); err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rewrite: %w", err)
	}
	return nil
}

// ReadBudgetCell implements sheets.BudgetCell.
func (r *SQLiteRepository) ReadBudgetCell(ctx context.Context) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, budgetSettingKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("select budget setting: %w", err)
	}
	return value, nil
}

// WriteBudgetCell implements sheets.BudgetCell.
func (r *SQLiteRepository) WriteBudgetCell(ctx context.Context, yen int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		budgetSettingKey, strconv.FormatInt(yen, 10))
	if err != nil {
		return fmt.Errorf("upsert budget setting: %w", err)
	}
	return nil
}

// StoredEntry is one local row with its sync bookkeeping.
type StoredEntry struct {
	ID        int64
	Entry     core.Entry
	Synced    bool
	SyncError bool
	CreatedAt time.Time
}

// GetEntry fetches one row by ID for the sync worker.
func (r *SQLiteRepository) GetEntry(ctx context.Context, id int64) (StoredEntry, error) {
	var (
		out        StoredEntry
		date       string
		yen        int64
		item       string
		category   string
		desc       string
		synced     int
		syncErrStt int
		createdAt  sql.NullTime
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, entry_date, item, amount_yen, category, description, synced, sync_error, created_at
		 FROM entries WHERE id = ?`, id).
		Scan(&out.ID, &date, &item, &yen, &category, &desc, &synced, &syncErrStt, &createdAt)
	if err != nil {
		return StoredEntry{}, fmt.Errorf("select entry %d: %w", id, err)
	}
	out.CreatedAt = createdAt.Time

	d, err := core.ParseDate(date)
	if err != nil {
		return StoredEntry{}, fmt.Errorf("stored date %q: %w", date, err)
	}
	out.Entry = core.Entry{
		Date:        d,
		Item:        item,
		Amount:      core.Money{Yen: yen},
		Category:    core.Category(category),
		Description: desc,
	}
	out.Synced = synced == 1
	out.SyncError = syncErrStt == 1
	return out, nil
}

// GetPendingSync lists rows not yet pushed to the spreadsheet, oldest first.
func (r *SQLiteRepository) GetPendingSync(ctx context.Context, limit int) ([]StoredEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM entries WHERE synced = 0 AND sync_error = 0 ORDER BY id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("select pending entries: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan pending id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending ids: %w", err)
	}

	out := make([]StoredEntry, 0, len(ids))
	for _, id := range ids {
		se, err := r.GetEntry(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, se)
	}
	return out, nil
}

// MarkSynced records a successful push to the spreadsheet.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE entries SET synced = 1, sync_error = 0 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("mark entry synced: %w", err)
	}
	slog.InfoContext(ctx, "Entry marked as synced", "id", id)
	return nil
}

// MarkSyncError flags a row so it is not retried forever.
func (r *SQLiteRepository) MarkSyncError(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE entries SET sync_error = 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("mark entry sync error: %w", err)
	}
	return nil
}
