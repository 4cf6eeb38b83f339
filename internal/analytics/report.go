package analytics

import "time"

// SummarizeIntakes reduces the intake window to headline numbers for the
// report. Date bounds come from parseable timestamps only.
func SummarizeIntakes(intakes []IntakeRecord) IntakeSummary {
	summary := IntakeSummary{TotalLogs: len(intakes)}
	supplements := map[string]bool{}
	var first, last time.Time
	seen := false
	for _, record := range intakes {
		if record.SupplementID != "" {
			supplements[record.SupplementID] = true
		}
		ts, ok := parseTimestamp(record.Timestamp)
		if !ok {
			continue
		}
		day := dateOf(ts)
		if !seen || day.Before(first) {
			first = day
		}
		if !seen || day.After(last) {
			last = day
		}
		seen = true
	}
	summary.UniqueSupplements = len(supplements)
	if seen {
		summary.FirstDate = first.Format(isoDateLayout)
		summary.LastDate = last.Format(isoDateLayout)
	}
	return summary
}

func SummarizeSymptoms(symptoms []SymptomRecord) SymptomSummary {
	summary := SymptomSummary{TotalLogs: len(symptoms)}
	symptomTypes := map[string]bool{}
	var first, last time.Time
	seen := false
	for _, record := range symptoms {
		if record.SymptomType != "" {
			symptomTypes[record.SymptomType] = true
		}
		ts, ok := parseTimestamp(record.Timestamp)
		if !ok {
			continue
		}
		day := dateOf(ts)
		if !seen || day.Before(first) {
			first = day
		}
		if !seen || day.After(last) {
			last = day
		}
		seen = true
	}
	summary.UniqueSymptomTypes = len(symptomTypes)
	if seen {
		summary.FirstDate = first.Format(isoDateLayout)
		summary.LastDate = last.Format(isoDateLayout)
	}
	return summary
}

// BuildReport runs the full engine over one user's window and packages the
// results. It performs no I/O: logs and resolved names are supplied by the
// caller, and "today" is injected for the streak walk.
func BuildReport(userID string, intakes []IntakeRecord, symptoms []SymptomRecord, names map[string]string, today time.Time) Report {
	return Report{
		IntakeSummary:   SummarizeIntakes(intakes),
		SymptomSummary:  SummarizeSymptoms(symptoms),
		Correlations:    AnalyzeCorrelations(intakes, symptoms, names),
		Streaks:         CalculateStreaks(intakes, today, names),
		Progress:        CalculateProgress(userID, intakes, names),
		Recommendations: GenerateRecommendations(userID, intakes, symptoms, names),
	}
}
