package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ceugb69-B/yen-tracker2/internal/amqp"
	"github.com/ceugb69-B/yen-tracker2/internal/sheets/google"
	"github.com/ceugb69-B/yen-tracker2/internal/sheets/memory"
	"github.com/ceugb69-B/yen-tracker2/internal/storage"
)

// DefaultFactory implements the Factory interface.
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory.
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateBackend implements Factory.CreateBackend.
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SheetsBackend:
		return f.createSheetsBackend(ctx)
	case SQLiteBackend:
		return f.createSQLiteBackend(config)
	case MemoryBackend:
		return f.createMemoryBackend()
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSheetsBackend(ctx context.Context) (*Result, error) {
	cli, err := google.NewFromEnv(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize Google Sheets client: %w", err)
	}
	f.logger.Info("Initialized Google Sheets backend")
	return &Result{
		Backend: cli,
		Cleanup: func() error { return nil },
	}, nil
}

func (f *DefaultFactory) createSQLiteBackend(config Config) (*Result, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("initialize SQLite repository: %w", err)
	}

	// AMQP is optional: without it entries stay local until the worker's
	// startup sweep picks them up.
	var amqpClient *amqp.Client
	if config.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
		if err != nil {
			f.logger.Warn("Failed to initialize AMQP client, continuing without sync", "error", err)
			amqpClient = nil
		} else {
			f.logger.Info("Initialized AMQP client",
				"exchange", config.AMQPExchange,
				"queue", config.AMQPQueue)
		}
	}

	f.logger.Info("Initialized SQLite backend", "path", config.SQLiteDBPath)
	result := &Result{
		Backend: repo,
		Cleanup: func() error {
			var firstErr error
			if amqpClient != nil {
				firstErr = amqpClient.Close()
			}
			if err := repo.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
			return firstErr
		},
	}
	if amqpClient != nil {
		result.Publisher = amqpClient
	}
	return result, nil
}

func (f *DefaultFactory) createMemoryBackend() (*Result, error) {
	store := memory.New()
	f.logger.Info("Initialized memory backend")
	return &Result{
		Backend: store,
		Cleanup: func() error { return nil },
	}, nil
}
