package analytics

import (
	"sort"
	"time"
)

// Accepted timestamp shapes, most specific first. Upstream loggers have
// historically written both zoned and naive timestamps, plus bare dates.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

const isoDateLayout = "2006-01-02"

// parseTimestamp returns false instead of an error: malformed timestamps are
// skipped by every aggregation, never surfaced. Integrity checks belong to the
// collaborator that writes the logs.
func parseTimestamp(raw string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// dateOf collapses a timestamp to its calendar day, anchored at UTC midnight
// so day arithmetic stays exact.
func dateOf(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween is b-a in whole days. Both arguments must come from dateOf.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func sortedDates(days map[time.Time]bool) []time.Time {
	out := make([]time.Time, 0, len(days))
	for d := range days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// lenientName resolves a supplement display name, degrading to a placeholder
// when the directory has no entry. CheckInteractions deliberately does NOT use
// this: it hard-fails on unresolved IDs instead.
func lenientName(names map[string]string, id string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return "Unknown Supplement"
}
