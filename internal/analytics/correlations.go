package analytics

import (
	"sort"
	"time"
)

// Fixed heuristic constants. These are part of the engine's external behavior:
// existing reports were generated against exactly these values.
const (
	// CorrelationWindowDays is the closed window after an intake day in which
	// a symptom occurrence counts toward a correlation: same day through two
	// days later.
	CorrelationWindowDays = 2
	// MinCorrelationOccurrences is the minimum matched occurrence count for a
	// (supplement, symptom) pair to be reported at all.
	MinCorrelationOccurrences = 3
)

type symptomOccurrence struct {
	date     time.Time
	severity int
}

// AnalyzeCorrelations pairs every supplement's intake days against every
// symptom type's occurrences and reports pairs with at least
// MinCorrelationOccurrences matches inside the window. Name resolution is
// lenient here: a missing directory entry degrades to "Unknown Supplement"
// rather than failing the whole analysis.
func AnalyzeCorrelations(intakes []IntakeRecord, symptoms []SymptomRecord, names map[string]string) []CorrelationFinding {
	supplementDays := map[string]map[time.Time]bool{}
	for _, record := range intakes {
		ts, ok := parseTimestamp(record.Timestamp)
		if !ok || record.SupplementID == "" {
			continue
		}
		day := dateOf(ts)
		if supplementDays[record.SupplementID] == nil {
			supplementDays[record.SupplementID] = map[time.Time]bool{}
		}
		supplementDays[record.SupplementID][day] = true
	}

	symptomOccurrences := map[string][]symptomOccurrence{}
	for _, record := range symptoms {
		ts, ok := parseTimestamp(record.Timestamp)
		if !ok || record.SymptomType == "" {
			continue
		}
		symptomOccurrences[record.SymptomType] = append(symptomOccurrences[record.SymptomType], symptomOccurrence{
			date:     dateOf(ts),
			severity: record.Severity,
		})
	}

	supplementIDs := make([]string, 0, len(supplementDays))
	for id := range supplementDays {
		supplementIDs = append(supplementIDs, id)
	}
	sort.Strings(supplementIDs)

	symptomTypes := make([]string, 0, len(symptomOccurrences))
	for symptomType := range symptomOccurrences {
		symptomTypes = append(symptomTypes, symptomType)
	}
	sort.Strings(symptomTypes)

	findings := []CorrelationFinding{}
	for _, supplementID := range supplementIDs {
		intakeDates := sortedDates(supplementDays[supplementID])
		for _, symptomType := range symptomTypes {
			var matched []CorrelationOccurrence
			for _, intakeDate := range intakeDates {
				for _, occ := range symptomOccurrences[symptomType] {
					offset := daysBetween(intakeDate, occ.date)
					if offset < 0 || offset > CorrelationWindowDays {
						continue
					}
					matched = append(matched, CorrelationOccurrence{
						IntakeDate:     intakeDate.Format(isoDateLayout),
						SymptomDate:    occ.date.Format(isoDateLayout),
						DaysDifference: offset,
						Severity:       occ.severity,
					})
				}
			}
			if len(matched) < MinCorrelationOccurrences {
				continue
			}
			findings = append(findings, CorrelationFinding{
				SupplementID:    supplementID,
				SupplementName:  lenientName(names, supplementID),
				SymptomType:     symptomType,
				OccurrenceCount: len(matched),
				Occurrences:     matched,
			})
		}
	}
	return findings
}
