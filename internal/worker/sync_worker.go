// Package worker pushes locally saved ledger entries to the spreadsheet.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ceugb69-B/yen-tracker2/internal/amqp"
	"github.com/ceugb69-B/yen-tracker2/internal/sheets"
	"github.com/ceugb69-B/yen-tracker2/internal/storage"
)

// SyncWorker drains the sync queue: for each message it loads the entry
// from SQLite, appends it to the sheet, and records the outcome.
type SyncWorker struct {
	storage   *storage.SQLiteRepository
	appender  sheets.RowAppender
	batchSize int
}

func NewSyncWorker(storage *storage.SQLiteRepository, appender sheets.RowAppender, batchSize int) *SyncWorker {
	return &SyncWorker{
		storage:   storage,
		appender:  appender,
		batchSize: batchSize,
	}
}

// HandleSyncMessage processes a single entry sync message from AMQP.
func (w *SyncWorker) HandleSyncMessage(ctx context.Context, msg *amqp.EntrySyncMessage) error {
	slog.InfoContext(ctx, "Processing sync message",
		"id", msg.ID,
		"version", msg.Version)

	stored, err := w.storage.GetEntry(ctx, msg.ID)
	if err != nil {
		return fmt.Errorf("get entry from storage: %w", err)
	}
	if stored.Synced {
		slog.InfoContext(ctx, "Entry already synced, skipping", "id", msg.ID)
		return nil
	}

	return w.syncOne(ctx, stored)
}

// SyncPending pushes every not-yet-synced entry, oldest first. It runs on
// worker startup so rows queued while the worker was down still make it to
// the sheet even if their AMQP message was lost.
func (w *SyncWorker) SyncPending(ctx context.Context) error {
	pending, err := w.storage.GetPendingSync(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("list pending entries: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Syncing pending entries", "count", len(pending))
	for _, stored := range pending {
		if err := w.syncOne(ctx, stored); err != nil {
			slog.ErrorContext(ctx, "Failed to sync pending entry",
				"id", stored.ID, "error", err)
			// Keep going; one poisoned row must not block the rest.
		}
	}
	return nil
}

func (w *SyncWorker) syncOne(ctx context.Context, stored storage.StoredEntry) error {
	ref, err := w.appender.AppendRow(ctx, stored.Entry)
	if err != nil {
		if markErr := w.storage.MarkSyncError(ctx, stored.ID); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark sync error",
				"id", stored.ID, "error", markErr)
		}
		return fmt.Errorf("append entry to sheet: %w", err)
	}

	if err := w.storage.MarkSynced(ctx, stored.ID); err != nil {
		return fmt.Errorf("mark entry synced: %w", err)
	}

	slog.InfoContext(ctx, "Entry synced to sheet",
		"id", stored.ID,
		"ref", ref,
		"item", stored.Entry.Item,
		"amount_yen", stored.Entry.Amount.Yen)
	return nil
}
