package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newBufferLogger(component string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := &Logger{Logger: slog.New(handler), component: component}
	return l, &buf
}

func TestLoggerStampsComponent(t *testing.T) {
	l, buf := newBufferLogger(ComponentLedger)

	l.Info("entry appended", "item", "Lunch")

	out := buf.String()
	if !strings.Contains(out, "component=ledger") {
		t.Errorf("log line missing component: %s", out)
	}
	if !strings.Contains(out, "item=Lunch") {
		t.Errorf("log line missing attribute: %s", out)
	}
}

func TestWithComponent(t *testing.T) {
	l, buf := newBufferLogger(ComponentApp)

	l.WithComponent(ComponentScan).Warn("classifier unavailable")

	if out := buf.String(); !strings.Contains(out, "component=scan") {
		t.Errorf("log line missing narrowed component: %s", out)
	}
}

func TestFromContext(t *testing.T) {
	l, buf := newBufferLogger(ComponentHTTP)
	ctx := context.WithValue(context.Background(), LoggerContextKey, l)

	FromContext(ctx).ErrorContext(ctx, "append failed")

	if out := buf.String(); !strings.Contains(out, "append failed") {
		t.Errorf("stored logger not returned, got: %s", out)
	}

	// A bare context falls back to a usable default instead of panicking.
	if fallback := FromContext(context.Background()); fallback == nil {
		t.Fatal("FromContext without a stored logger returned nil")
	}
}
