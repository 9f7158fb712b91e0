package amqp

import (
	"testing"
	"time"
)

func TestEntrySyncMessageJSON(t *testing.T) {
	msg := NewEntrySyncMessage(42, 1)
	if msg.ID != 42 || msg.Version != 1 {
		t.Fatalf("message = %+v", msg)
	}
	if msg.Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	got, err := EntrySyncMessageFromJSON(body)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if got.ID != msg.ID || got.Version != msg.Version {
		t.Errorf("round trip = %+v, want %+v", got, msg)
	}
	if !got.Timestamp.Equal(msg.Timestamp.Truncate(time.Nanosecond)) && got.Timestamp.IsZero() {
		t.Errorf("timestamp lost in round trip: %v", got.Timestamp)
	}
}

func TestEntrySyncMessageFromJSONErrors(t *testing.T) {
	if _, err := EntrySyncMessageFromJSON([]byte("not json")); err == nil {
		t.Error("expected decode error")
	}
}
