// Package sheets defines the ports to the backing record store. The engine
// only ever talks to the store through these narrow interfaces; schema
// enforcement happens entirely in the ledger normalizer.
package sheets

import (
	"context"

	"github.com/ceugb69-B/yen-tracker2/internal/core"
	"github.com/ceugb69-B/yen-tracker2/internal/ledger"
)

// Ports for outbound adapters.
type (
	// RecordReader returns every data row as an untyped column mapping.
	RecordReader interface {
		ReadAll(ctx context.Context) ([]ledger.Record, error)
	}

	// RowAppender appends one finalized entry as a row in the fixed
	// positional order [date, item, amount, category, description].
	RowAppender interface {
		AppendRow(ctx context.Context, e core.Entry) (rowRef string, err error)
	}

	// BulkReplacer overwrites the entire sheet content with a header row
	// and canonically serialized entries. The store itself may not be
	// atomic: a failed replace leaves it in an unknown intermediate state
	// and callers must re-read before retrying.
	BulkReplacer interface {
		ReplaceAll(ctx context.Context, header []string, entries []core.Entry) error
	}

	// BudgetCell reads and writes the single monthly-budget setting.
	// ReadBudgetCell returns the raw cell text ("" when absent); parsing
	// and defaulting are the ledger package's job.
	BudgetCell interface {
		ReadBudgetCell(ctx context.Context) (string, error)
		WriteBudgetCell(ctx context.Context, yen int64) error
	}
)
