package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// approxMonthDays is the consistency divisor for every month regardless of its
// calendar length. Historical reports were generated with this approximation,
// so it must not be swapped for the real day count without a product decision.
const approxMonthDays = 30

// Milestone thresholds, evaluated against the full history.
const (
	milestoneTotalIntakeCount   = 100
	milestoneConsistencyPercent = 90.0
	milestoneUniqueDaysInMonth  = 28
)

// Trend thresholds: the last month's average per-supplement consistency must
// move more than 10% relative to the first month's to leave "stable".
const (
	trendIncreaseFactor = 1.10
	trendDecreaseFactor = 0.90
)

const monthLayout = "2006-01"

type monthBucket struct {
	count int
	days  map[time.Time]bool
}

// CalculateProgress buckets intake logs by (month, supplement) and derives
// monthly consistency, an overall trend label and milestone hits.
//
// Note the "streak" milestone here is unique-days-per-month >= 28, which is a
// different notion from the run-length streaks in CalculateStreaks. The two
// are intentionally kept separate.
func CalculateProgress(userID string, intakes []IntakeRecord, names map[string]string) ProgressReport {
	buckets := map[string]map[string]*monthBucket{}
	totalCount := 0
	for _, record := range intakes {
		ts, ok := parseTimestamp(record.Timestamp)
		if !ok || record.SupplementID == "" {
			continue
		}
		month := ts.Format(monthLayout)
		if buckets[month] == nil {
			buckets[month] = map[string]*monthBucket{}
		}
		bucket := buckets[month][record.SupplementID]
		if bucket == nil {
			bucket = &monthBucket{days: map[time.Time]bool{}}
			buckets[month][record.SupplementID] = bucket
		}
		bucket.count++
		bucket.days[dateOf(ts)] = true
		totalCount++
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Strings(months)

	report := ProgressReport{
		UserID:        userID,
		Supplements:   []SupplementProgress{},
		MonthlyTotals: []MonthlyTotal{},
		Milestones:    []Milestone{},
	}

	perSupplement := map[string][]MonthlyStat{}
	for _, month := range months {
		total := MonthlyTotal{Month: month}
		supplementIDs := make([]string, 0, len(buckets[month]))
		for id := range buckets[month] {
			supplementIDs = append(supplementIDs, id)
		}
		sort.Strings(supplementIDs)
		for _, id := range supplementIDs {
			bucket := buckets[month][id]
			uniqueDays := len(bucket.days)
			stat := MonthlyStat{
				Month:       month,
				Count:       bucket.count,
				UniqueDays:  uniqueDays,
				Consistency: roundToOneDecimal(float64(uniqueDays) / approxMonthDays * 100),
			}
			perSupplement[id] = append(perSupplement[id], stat)
			total.Count += bucket.count
			total.UniqueDays += uniqueDays
		}
		report.MonthlyTotals = append(report.MonthlyTotals, total)
	}

	supplementIDs := make([]string, 0, len(perSupplement))
	for id := range perSupplement {
		supplementIDs = append(supplementIDs, id)
	}
	sort.Strings(supplementIDs)
	for _, id := range supplementIDs {
		report.Supplements = append(report.Supplements, SupplementProgress{
			SupplementID:   id,
			SupplementName: lenientName(names, id),
			Monthly:        perSupplement[id],
		})
	}

	report.ConsistencyTrend = consistencyTrend(months, buckets)
	report.Milestones = milestones(totalCount, supplementIDs, perSupplement, names)
	return report
}

// consistencyTrend compares the average per-supplement consistency of the
// first month against the last. With fewer than two months there is nothing to
// compare and the label defaults to "increasing" (documented default).
func consistencyTrend(months []string, buckets map[string]map[string]*monthBucket) string {
	if len(months) < 2 {
		return TrendIncreasing
	}
	first := averageConsistency(buckets[months[0]])
	last := averageConsistency(buckets[months[len(months)-1]])
	switch {
	case last > first*trendIncreaseFactor:
		return TrendIncreasing
	case last < first*trendDecreaseFactor:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

func averageConsistency(monthBuckets map[string]*monthBucket) float64 {
	if len(monthBuckets) == 0 {
		return 0
	}
	sum := 0.0
	for _, bucket := range monthBuckets {
		sum += roundToOneDecimal(float64(len(bucket.days)) / approxMonthDays * 100)
	}
	return sum / float64(len(monthBuckets))
}

// milestones emits at most one milestone per type: the first qualifying
// supplement-month in (supplement, month) order for the per-supplement types.
func milestones(totalCount int, supplementIDs []string, perSupplement map[string][]MonthlyStat, names map[string]string) []Milestone {
	out := []Milestone{}
	if totalCount >= milestoneTotalIntakeCount {
		out = append(out, Milestone{
			Type:    MilestoneTotalIntake,
			Value:   float64(totalCount),
			Message: fmt.Sprintf("Logged %d total intakes", totalCount),
		})
	}
	if m, ok := firstQualifying(supplementIDs, perSupplement, func(stat MonthlyStat) bool {
		return stat.Consistency >= milestoneConsistencyPercent
	}); ok {
		out = append(out, Milestone{
			Type:           MilestoneConsistency,
			SupplementID:   m.supplementID,
			SupplementName: lenientName(names, m.supplementID),
			Month:          m.stat.Month,
			Value:          m.stat.Consistency,
			Message:        fmt.Sprintf("Reached %.1f%% consistency for %s in %s", m.stat.Consistency, lenientName(names, m.supplementID), m.stat.Month),
		})
	}
	if m, ok := firstQualifying(supplementIDs, perSupplement, func(stat MonthlyStat) bool {
		return stat.UniqueDays >= milestoneUniqueDaysInMonth
	}); ok {
		out = append(out, Milestone{
			Type:           MilestoneStreak,
			SupplementID:   m.supplementID,
			SupplementName: lenientName(names, m.supplementID),
			Month:          m.stat.Month,
			Value:          float64(m.stat.UniqueDays),
			Message:        fmt.Sprintf("Logged %s on %d days in %s", lenientName(names, m.supplementID), m.stat.UniqueDays, m.stat.Month),
		})
	}
	return out
}

type qualifyingStat struct {
	supplementID string
	stat         MonthlyStat
}

func firstQualifying(supplementIDs []string, perSupplement map[string][]MonthlyStat, qualifies func(MonthlyStat) bool) (qualifyingStat, bool) {
	for _, id := range supplementIDs {
		for _, stat := range perSupplement[id] {
			if qualifies(stat) {
				return qualifyingStat{supplementID: id, stat: stat}, true
			}
		}
	}
	return qualifyingStat{}, false
}

func roundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}
