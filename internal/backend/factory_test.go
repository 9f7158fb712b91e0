package backend

import (
	"context"
	"path/filepath"
	"testing"
)

func TestTypeIsValid(t *testing.T) {
	tests := []struct {
		t    Type
		want bool
	}{
		{SheetsBackend, true},
		{SQLiteBackend, true},
		{MemoryBackend, true},
		{Type("postgres"), false},
		{Type(""), false},
	}
	for _, tt := range tests {
		if got := tt.t.IsValid(); got != tt.want {
			t.Errorf("Type(%q).IsValid() = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestCreateMemoryBackend(t *testing.T) {
	f := NewFactory(nil)
	result, err := f.CreateBackend(context.Background(), Config{Type: MemoryBackend})
	if err != nil {
		t.Fatalf("CreateBackend(memory) error = %v", err)
	}
	defer result.Cleanup()

	if result.Backend == nil {
		t.Fatal("memory backend is nil")
	}
	if result.Publisher != nil {
		t.Error("memory backend has a publisher, want nil")
	}
	if err := result.Cleanup(); err != nil {
		t.Errorf("Cleanup() error = %v", err)
	}
}

func TestCreateSQLiteBackendWithoutAMQP(t *testing.T) {
	f := NewFactory(nil)
	result, err := f.CreateBackend(context.Background(), Config{
		Type:         SQLiteBackend,
		SQLiteDBPath: filepath.Join(t.TempDir(), "backend.db"),
	})
	if err != nil {
		t.Fatalf("CreateBackend(sqlite) error = %v", err)
	}
	defer result.Cleanup()

	if result.Backend == nil {
		t.Fatal("sqlite backend is nil")
	}
	// No AMQP URL configured, entries wait for the worker's startup sweep
	if result.Publisher != nil {
		t.Error("sqlite backend without AMQP has a publisher, want nil")
	}
}

func TestCreateBackendInvalidType(t *testing.T) {
	f := NewFactory(nil)
	if _, err := f.CreateBackend(context.Background(), Config{Type: Type("bogus")}); err == nil {
		t.Error("expected error for invalid backend type")
	}
}
