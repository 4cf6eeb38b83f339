package analytics

import (
	"reflect"
	"testing"
)

func symptomOn(symptomType, timestamp string, severity int) SymptomRecord {
	return SymptomRecord{SymptomType: symptomType, Timestamp: timestamp, Severity: severity}
}

func TestAnalyzeCorrelationsThreshold(t *testing.T) {
	names := map[string]string{"zinc": "Zinc"}

	cases := []struct {
		name         string
		symptoms     []SymptomRecord
		wantFindings int
		wantCount    int
	}{
		{
			name: "three_occurrences_in_window",
			symptoms: []SymptomRecord{
				symptomOn("headache", "2025-04-01", 3),
				symptomOn("headache", "2025-04-02", 4),
				symptomOn("headache", "2025-04-03", 2),
			},
			wantFindings: 1,
			wantCount:    3,
		},
		{
			name: "two_occurrences_not_enough",
			symptoms: []SymptomRecord{
				symptomOn("headache", "2025-04-01", 3),
				symptomOn("headache", "2025-04-02", 4),
			},
			wantFindings: 0,
		},
		{
			name: "occurrences_outside_window_ignored",
			symptoms: []SymptomRecord{
				symptomOn("headache", "2025-04-01", 3),
				symptomOn("headache", "2025-04-03", 4),
				symptomOn("headache", "2025-04-04", 2), // day +3, outside [d, d+2]
			},
			wantFindings: 0,
		},
		{
			name: "symptoms_before_intake_ignored",
			symptoms: []SymptomRecord{
				symptomOn("headache", "2025-03-30", 3),
				symptomOn("headache", "2025-03-31", 3),
				symptomOn("headache", "2025-04-01", 3),
			},
			wantFindings: 1,
			wantCount:    1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			intakes := []IntakeRecord{intakeOf("zinc", "2025-04-01")}
			findings := AnalyzeCorrelations(intakes, tc.symptoms, names)
			if tc.wantFindings == 0 {
				if len(findings) != 0 {
					t.Fatalf("expected no findings, got %d", len(findings))
				}
				return
			}
			if len(findings) != tc.wantFindings {
				t.Fatalf("expected %d finding(s), got %d", tc.wantFindings, len(findings))
			}
			if tc.wantCount > 0 && findings[0].OccurrenceCount != tc.wantCount {
				t.Fatalf("occurrence count = %d, want %d", findings[0].OccurrenceCount, tc.wantCount)
			}
		})
	}
}

func TestAnalyzeCorrelationsFindingDetail(t *testing.T) {
	names := map[string]string{"zinc": "Zinc"}
	intakes := []IntakeRecord{intakeOf("zinc", "2025-04-01T08:30:00Z")}
	symptoms := []SymptomRecord{
		symptomOn("nausea", "2025-04-01T12:00:00Z", 2),
		symptomOn("nausea", "2025-04-02", 3),
		symptomOn("nausea", "2025-04-03", 5),
	}

	findings := AnalyzeCorrelations(intakes, symptoms, names)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	finding := findings[0]
	if finding.SupplementName != "Zinc" || finding.SymptomType != "nausea" {
		t.Fatalf("finding identity = %q/%q, want Zinc/nausea", finding.SupplementName, finding.SymptomType)
	}
	want := []CorrelationOccurrence{
		{IntakeDate: "2025-04-01", SymptomDate: "2025-04-01", DaysDifference: 0, Severity: 2},
		{IntakeDate: "2025-04-01", SymptomDate: "2025-04-02", DaysDifference: 1, Severity: 3},
		{IntakeDate: "2025-04-01", SymptomDate: "2025-04-03", DaysDifference: 2, Severity: 5},
	}
	if !reflect.DeepEqual(finding.Occurrences, want) {
		t.Fatalf("occurrences = %+v, want %+v", finding.Occurrences, want)
	}
}

func TestAnalyzeCorrelationsUnknownSupplementName(t *testing.T) {
	intakes := []IntakeRecord{intakeOf("mystery", "2025-04-01")}
	symptoms := []SymptomRecord{
		symptomOn("rash", "2025-04-01", 1),
		symptomOn("rash", "2025-04-02", 1),
		symptomOn("rash", "2025-04-03", 1),
	}

	findings := AnalyzeCorrelations(intakes, symptoms, map[string]string{})
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].SupplementName != "Unknown Supplement" {
		t.Fatalf("name = %q, want Unknown Supplement", findings[0].SupplementName)
	}
}

func TestAnalyzeCorrelationsSkipsUnparsableTimestamps(t *testing.T) {
	names := map[string]string{"zinc": "Zinc"}
	intakes := []IntakeRecord{
		intakeOf("zinc", "not-a-timestamp"),
		intakeOf("zinc", "2025-04-01"),
	}
	symptoms := []SymptomRecord{
		symptomOn("headache", "garbage", 3),
		symptomOn("headache", "2025-04-01", 3),
		symptomOn("headache", "2025-04-02", 3),
		symptomOn("headache", "2025-04-03", 3),
	}

	findings := AnalyzeCorrelations(intakes, symptoms, names)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].OccurrenceCount != 3 {
		t.Fatalf("occurrence count = %d, want 3 (unparsable records skipped)", findings[0].OccurrenceCount)
	}
}
