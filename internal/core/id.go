package core

import (
	"hash/fnv"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// isoInstant renders a timestamp the way the document store does:
// UTC, millisecond precision, trailing Z. Content IDs hash this form,
// so it must never change once data has been imported.
func isoInstant(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

// contentID derives a stable ID from an input string using FNV-1a.
// Determinism is the only requirement here: re-deriving from the same
// input must give the same ID so repeated imports overwrite cleanly
// instead of accumulating duplicates.
func contentID(prefix, input string) string {
	h := fnv.New64a()
	h.Write([]byte(input))
	return prefix + "_" + strconv.FormatUint(h.Sum64(), 36)
}

// GrowKey builds the deduplication key for an imported grow: rows that
// share a canonical species and block belong to the same grow.
func GrowKey(species, block string) string {
	if block == "" {
		block = "default"
	}
	return species + "::" + block
}

// GrowID derives the deterministic ID for an imported grow from its
// grouping key.
func GrowID(groupKey string) string {
	return contentID("grow", groupKey)
}

// LogID derives the deterministic ID for an imported log. The row index
// keeps two rows with identical timestamps under the same grow from
// colliding.
func LogID(growID string, timestamp time.Time, rowIndex int) string {
	return contentID("log", growID+"|"+isoInstant(timestamp)+"|"+strconv.Itoa(rowIndex))
}

// NewID mints a random ID for user-created records (prefix "grow",
// "log", "event", "harvest").
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
