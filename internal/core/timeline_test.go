package core

import (
	"testing"
	"time"
)

func ts(day int) time.Time {
	return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
}

func TestLatestLog(t *testing.T) {
	logs := []Log{
		{ID: "l1", GrowID: "g", Timestamp: ts(1)},
		{ID: "l3", GrowID: "g", Timestamp: ts(3)},
		{ID: "l2", GrowID: "g", Timestamp: ts(2)},
		{ID: "other", GrowID: "x", Timestamp: ts(9)},
	}

	got := LatestLog(logs, "g")
	if got == nil || got.ID != "l3" {
		t.Fatalf("LatestLog = %+v, want l3", got)
	}
	if LatestLog(logs, "missing") != nil {
		t.Error("expected nil for grow with no logs")
	}

	// Ties keep the first seen, deterministically.
	tied := []Log{
		{ID: "first", GrowID: "g", Timestamp: ts(5)},
		{ID: "second", GrowID: "g", Timestamp: ts(5)},
	}
	if got := LatestLog(tied, "g"); got.ID != "first" {
		t.Errorf("tie broken to %q, want first", got.ID)
	}
}

func TestTimeline(t *testing.T) {
	logs := []Log{{ID: "l", GrowID: "g", Timestamp: ts(2)}}
	events := []Event{{ID: "e", GrowID: "g", Timestamp: ts(3), Type: EventMist}}
	harvests := []Harvest{
		{ID: "h", GrowID: "g", Date: ts(1)},
		{ID: "other", GrowID: "x", Date: ts(9)},
	}

	items := Timeline("g", logs, events, harvests)

	wantOrder := []string{"e", "l", "h"}
	if len(items) != len(wantOrder) {
		t.Fatalf("items = %d, want %d", len(items), len(wantOrder))
	}
	for i, want := range wantOrder {
		if items[i].ID != want {
			t.Errorf("items[%d].ID = %q, want %q", i, items[i].ID, want)
		}
	}
	if items[0].Kind != "event" || items[0].Event == nil {
		t.Errorf("payload not attached: %+v", items[0])
	}
}
