package core

import (
	"strings"
	"testing"
	"time"
)

func TestContentIDs(t *testing.T) {
	at := time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)

	growID := GrowID(GrowKey("Lentinula edodes (Shiitake)", "A"))
	if !strings.HasPrefix(growID, "grow_") {
		t.Errorf("growID = %q, want grow_ prefix", growID)
	}
	if growID != GrowID(GrowKey("Lentinula edodes (Shiitake)", "A")) {
		t.Error("grow ID not deterministic")
	}
	if growID == GrowID(GrowKey("Lentinula edodes (Shiitake)", "B")) {
		t.Error("different blocks must derive different grow IDs")
	}

	if GrowKey("X", "") != "X::default" {
		t.Errorf("empty block key = %q, want X::default", GrowKey("X", ""))
	}

	logID := LogID(growID, at, 0)
	if logID != LogID(growID, at, 0) {
		t.Error("log ID not deterministic")
	}
	if logID == LogID(growID, at, 1) {
		t.Error("row index must disambiguate identical timestamps")
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID("event"), NewID("event")
	if !strings.HasPrefix(a, "event_") {
		t.Errorf("NewID = %q, want event_ prefix", a)
	}
	if a == b {
		t.Error("NewID must not repeat")
	}
}
