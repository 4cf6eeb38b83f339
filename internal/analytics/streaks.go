package analytics

import (
	"sort"
	"time"
)

// CalculateStreaks computes run-length adherence streaks overall and per
// supplement. "today" is injected by the caller so the function stays pure;
// the wall-clock read belongs at the call boundary, not here.
func CalculateStreaks(intakes []IntakeRecord, today time.Time, names map[string]string) StreakReport {
	allDays := map[time.Time]bool{}
	perSupplement := map[string]map[time.Time]bool{}
	for _, record := range intakes {
		ts, ok := parseTimestamp(record.Timestamp)
		if !ok {
			continue
		}
		day := dateOf(ts)
		allDays[day] = true
		if record.SupplementID == "" {
			continue
		}
		if perSupplement[record.SupplementID] == nil {
			perSupplement[record.SupplementID] = map[time.Time]bool{}
		}
		perSupplement[record.SupplementID][day] = true
	}

	report := StreakReport{
		CurrentStreak: currentStreak(allDays, today),
		LongestStreak: longestStreak(allDays),
		Supplements:   []SupplementStreak{},
	}

	supplementIDs := make([]string, 0, len(perSupplement))
	for id := range perSupplement {
		supplementIDs = append(supplementIDs, id)
	}
	sort.Strings(supplementIDs)

	for _, id := range supplementIDs {
		days := perSupplement[id]
		dates := sortedDates(days)
		isoDates := make([]string, 0, len(dates))
		for _, d := range dates {
			isoDates = append(isoDates, d.Format(isoDateLayout))
		}
		report.Supplements = append(report.Supplements, SupplementStreak{
			SupplementID:   id,
			SupplementName: lenientName(names, id),
			CurrentStreak:  currentStreak(days, today),
			LongestStreak:  longestStreak(days),
			Dates:          isoDates,
		})
	}
	return report
}

// currentStreak walks backward from today one day at a time. A day without a
// log ends the walk immediately: no partial credit for a run that stopped
// yesterday.
func currentStreak(days map[time.Time]bool, today time.Time) int {
	day := dateOf(today)
	streak := 0
	for days[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// longestStreak scans the distinct days in ascending order, extending a run
// while consecutive days are exactly one apart. The final run is compared
// after the loop as well, so a streak ending on the last logged day counts.
func longestStreak(days map[time.Time]bool) int {
	if len(days) == 0 {
		return 0
	}
	dates := sortedDates(days)
	longest := 1
	run := 1
	for i := 1; i < len(dates); i++ {
		if daysBetween(dates[i-1], dates[i]) == 1 {
			run++
			continue
		}
		if run > longest {
			longest = run
		}
		run = 1
	}
	if run > longest {
		longest = run
	}
	return longest
}
