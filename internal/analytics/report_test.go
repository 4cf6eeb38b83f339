package analytics

import (
	"reflect"
	"testing"
)

func TestSummaries(t *testing.T) {
	intakes := []IntakeRecord{
		intakeOf("d3", "2025-05-03"),
		intakeOf("mag", "2025-05-01"),
		intakeOf("d3", "2025-05-10"),
		intakeOf("d3", "broken-timestamp"),
	}
	symptoms := []SymptomRecord{
		symptomOn("headache", "2025-05-02", 2),
		symptomOn("fatigue", "2025-05-08", 3),
	}

	intakeSummary := SummarizeIntakes(intakes)
	if intakeSummary.TotalLogs != 4 || intakeSummary.UniqueSupplements != 2 {
		t.Fatalf("intake summary = %+v", intakeSummary)
	}
	if intakeSummary.FirstDate != "2025-05-01" || intakeSummary.LastDate != "2025-05-10" {
		t.Fatalf("intake date bounds = %q..%q", intakeSummary.FirstDate, intakeSummary.LastDate)
	}

	symptomSummary := SummarizeSymptoms(symptoms)
	if symptomSummary.TotalLogs != 2 || symptomSummary.UniqueSymptomTypes != 2 {
		t.Fatalf("symptom summary = %+v", symptomSummary)
	}
	if symptomSummary.FirstDate != "2025-05-02" || symptomSummary.LastDate != "2025-05-08" {
		t.Fatalf("symptom date bounds = %q..%q", symptomSummary.FirstDate, symptomSummary.LastDate)
	}
}

func TestBuildReportIdempotent(t *testing.T) {
	names := map[string]string{"d3": "Vitamin D3", "mag": "Magnesium"}
	intakes := []IntakeRecord{
		intakeOf("d3", "2025-05-01"),
		intakeOf("d3", "2025-05-02"),
		intakeOf("d3", "2025-05-03"),
		intakeOf("mag", "2025-05-02"),
	}
	symptoms := []SymptomRecord{
		symptomOn("headache", "2025-05-01", 2),
		symptomOn("headache", "2025-05-02", 3),
		symptomOn("headache", "2025-05-03", 2),
	}
	today := day("2025-05-03")

	first := BuildReport("user-1", intakes, symptoms, names, today)
	second := BuildReport("user-1", intakes, symptoms, names, today)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("BuildReport is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if first.Streaks.CurrentStreak != 3 {
		t.Fatalf("current streak = %d, want 3", first.Streaks.CurrentStreak)
	}
	if len(first.Correlations) == 0 {
		t.Fatal("expected a headache correlation in the report")
	}
}
