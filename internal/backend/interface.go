// Package backend selects and assembles the configured record store.
package backend

import (
	"context"

	"github.com/ceugb69-B/yen-tracker2/internal/services"
	"github.com/ceugb69-B/yen-tracker2/internal/sheets"
)

// Backend is the full backing-store surface the application needs.
type Backend interface {
	sheets.RecordReader
	sheets.RowAppender
	sheets.BulkReplacer
	sheets.BudgetCell
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result contains the backend instance, an optional sync publisher for the
// local-store deployment, and a cleanup function.
type Result struct {
	Backend   Backend
	Publisher services.SyncPublisher
	Cleanup   CleanupFunc
}

// Factory creates backends based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for backend creation.
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

// Type names a backing-store implementation.
type Type string

const (
	SheetsBackend Type = "sheets"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid reports whether t names a known backend.
func (t Type) IsValid() bool {
	switch t {
	case SheetsBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
