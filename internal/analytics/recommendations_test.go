package analytics

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// sparseIntakes spreads `days` distinct intake days across a span of
// `spanDays` days starting 2025-05-01: first and last day always logged.
func sparseIntakes(supplementID string, days, spanDays int) []IntakeRecord {
	out := []IntakeRecord{intakeOf(supplementID, "2025-05-01")}
	for i := 1; i < days-1; i++ {
		out = append(out, intakeOf(supplementID, fmt.Sprintf("2025-05-%02d", 1+i)))
	}
	out = append(out, intakeOf(supplementID, fmt.Sprintf("2025-05-%02d", spanDays)))
	return out
}

func TestConsistencyRecommendation(t *testing.T) {
	names := map[string]string{"d3": "Vitamin D3"}

	cases := []struct {
		name         string
		days         int
		spanDays     int
		wantEmitted  bool
		wantPriority string
	}{
		{
			name:         "35_percent_is_high_priority",
			days:         7,
			spanDays:     20,
			wantEmitted:  true,
			wantPriority: PriorityHigh,
		},
		{
			name:        "70_percent_boundary_not_emitted",
			days:        7,
			spanDays:    10,
			wantEmitted: false,
		},
		{
			name:         "64_percent_is_medium_priority",
			days:         7,
			spanDays:     11,
			wantEmitted:  true,
			wantPriority: PriorityMedium,
		},
		{
			name:        "under_seven_days_skipped",
			days:        6,
			spanDays:    20,
			wantEmitted: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			intakes := sparseIntakes("d3", tc.days, tc.spanDays)
			recs := GenerateRecommendations("user-1", intakes, nil, names)
			var consistency []Recommendation
			for _, rec := range recs {
				if rec.Type == RecommendationConsistency {
					consistency = append(consistency, rec)
				}
			}
			if !tc.wantEmitted {
				if len(consistency) != 0 {
					t.Fatalf("expected no consistency recommendation, got %+v", consistency)
				}
				return
			}
			if len(consistency) != 1 {
				t.Fatalf("expected 1 consistency recommendation, got %d", len(consistency))
			}
			rec := consistency[0]
			if rec.Priority != tc.wantPriority {
				t.Fatalf("priority = %q, want %q", rec.Priority, tc.wantPriority)
			}
			if !strings.Contains(rec.Message, "Vitamin D3") {
				t.Fatalf("message %q does not name the supplement", rec.Message)
			}
			if !strings.Contains(rec.Message, fmt.Sprintf("%d", tc.days)) || !strings.Contains(rec.Message, fmt.Sprintf("%d", tc.spanDays)) {
				t.Fatalf("message %q must include distinct-day count and day span", rec.Message)
			}
		})
	}
}

func TestTimingRecommendation(t *testing.T) {
	names := map[string]string{"mag": "Magnesium"}

	timedIntake := func(day, timing string) IntakeRecord {
		return IntakeRecord{SupplementID: "mag", Timestamp: day, Timing: timing}
	}

	cases := []struct {
		name        string
		timings     []string
		wantEmitted bool
	}{
		{
			name:        "scattered_timing_emits",
			timings:     []string{"morning", "evening", "morning", "afternoon", "evening", "night"},
			wantEmitted: true,
		},
		{
			name:        "dominant_timing_quiet",
			timings:     []string{"morning", "morning", "morning", "morning", "evening"},
			wantEmitted: false, // 4/5 = 80%
		},
		{
			name:        "too_few_labels_skipped",
			timings:     []string{"morning", "evening", "night", "afternoon"},
			wantEmitted: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var intakes []IntakeRecord
			for i, timing := range tc.timings {
				intakes = append(intakes, timedIntake(fmt.Sprintf("2025-05-%02d", i+1), timing))
			}
			recs := GenerateRecommendations("user-1", intakes, nil, names)
			var timing []Recommendation
			for _, rec := range recs {
				if rec.Type == RecommendationTiming {
					timing = append(timing, rec)
				}
			}
			if tc.wantEmitted && len(timing) != 1 {
				t.Fatalf("expected 1 timing recommendation, got %d", len(timing))
			}
			if !tc.wantEmitted && len(timing) != 0 {
				t.Fatalf("expected no timing recommendation, got %+v", timing)
			}
			if tc.wantEmitted && timing[0].Priority != PriorityMedium {
				t.Fatalf("timing priority = %q, want medium", timing[0].Priority)
			}
		})
	}
}

func TestTrackingRecommendation(t *testing.T) {
	symptoms := []SymptomRecord{
		symptomOn("headache", "2025-05-01", 2),
		symptomOn("headache", "2025-05-03", 3),
		symptomOn("headache", "2025-05-06", 2),
		symptomOn("fatigue", "2025-05-02", 4),
		symptomOn("fatigue", "2025-05-04", 4),
		symptomOn("fatigue", "2025-05-05", 4),
		symptomOn("nausea", "2025-05-05", 1), // only once, under threshold
	}

	recs := GenerateRecommendations("user-1", nil, symptoms, nil)
	if len(recs) != 1 {
		t.Fatalf("expected exactly 1 recommendation, got %d", len(recs))
	}
	rec := recs[0]
	if rec.Type != RecommendationTracking {
		t.Fatalf("type = %q, want tracking", rec.Type)
	}
	if !reflect.DeepEqual(rec.Symptoms, []string{"fatigue", "headache"}) {
		t.Fatalf("symptoms = %v, want [fatigue headache]", rec.Symptoms)
	}
}

func TestRecommendationEmissionOrder(t *testing.T) {
	names := map[string]string{"a-supp": "A", "b-supp": "B"}

	// Two supplements with poor consistency, b-supp also with scattered timing.
	var intakes []IntakeRecord
	intakes = append(intakes, sparseIntakes("b-supp", 7, 20)...)
	intakes = append(intakes, sparseIntakes("a-supp", 7, 20)...)
	timings := []string{"morning", "evening", "afternoon", "night", "morning", "evening"}
	for i, timing := range timings {
		intakes = append(intakes, IntakeRecord{SupplementID: "b-supp", Timestamp: fmt.Sprintf("2025-05-%02d", i+1), Timing: timing})
	}
	symptoms := []SymptomRecord{
		symptomOn("headache", "2025-05-01", 2),
		symptomOn("headache", "2025-05-02", 2),
		symptomOn("headache", "2025-05-03", 2),
	}

	recs := GenerateRecommendations("user-1", intakes, symptoms, names)
	var order []string
	for _, rec := range recs {
		order = append(order, rec.Type+":"+rec.SupplementID)
	}
	want := []string{
		"consistency:a-supp",
		"consistency:b-supp",
		"timing:b-supp",
		"tracking:",
	}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("emission order = %v, want %v", order, want)
	}
}
