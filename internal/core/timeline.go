package core

import (
	"sort"
	"time"
)

// LogsForGrow returns the logs belonging to one grow, in input order.
func LogsForGrow(logs []Log, growID string) []Log {
	var out []Log
	for _, l := range logs {
		if l.GrowID == growID {
			out = append(out, l)
		}
	}
	return out
}

// EventsForGrow returns the events belonging to one grow, in input order.
func EventsForGrow(events []Event, growID string) []Event {
	var out []Event
	for _, e := range events {
		if e.GrowID == growID {
			out = append(out, e)
		}
	}
	return out
}

// HarvestsForGrow returns the harvests belonging to one grow, in input order.
func HarvestsForGrow(harvests []Harvest, growID string) []Harvest {
	var out []Harvest
	for _, h := range harvests {
		if h.GrowID == growID {
			out = append(out, h)
		}
	}
	return out
}

// LatestLog returns the grow's log with the maximum timestamp, or nil
// when the grow has none. Ties keep the earlier input position, so the
// result is deterministic for identical input ordering.
func LatestLog(logs []Log, growID string) *Log {
	var latest *Log
	for i := range logs {
		if logs[i].GrowID != growID {
			continue
		}
		if latest == nil || logs[i].Timestamp.After(latest.Timestamp) {
			latest = &logs[i]
		}
	}
	return latest
}

// TimelineItem is one entry in a grow's merged history.
type TimelineItem struct {
	ID        string
	Kind      string // "log", "event" or "harvest"
	Timestamp time.Time
	Log       *Log
	Event     *Event
	Harvest   *Harvest
}

// Timeline merges a grow's logs, events and harvests into a single
// reverse-chronological sequence.
func Timeline(growID string, logs []Log, events []Event, harvests []Harvest) []TimelineItem {
	var items []TimelineItem
	for i := range logs {
		if logs[i].GrowID == growID {
			items = append(items, TimelineItem{
				ID: logs[i].ID, Kind: "log", Timestamp: logs[i].Timestamp, Log: &logs[i],
			})
		}
	}
	for i := range events {
		if events[i].GrowID == growID {
			items = append(items, TimelineItem{
				ID: events[i].ID, Kind: "event", Timestamp: events[i].Timestamp, Event: &events[i],
			})
		}
	}
	for i := range harvests {
		if harvests[i].GrowID == growID {
			items = append(items, TimelineItem{
				ID: harvests[i].ID, Kind: "harvest", Timestamp: harvests[i].Date, Harvest: &harvests[i],
			})
		}
	}
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Timestamp.After(items[b].Timestamp)
	})
	return items
}
