package analytics

import (
	"reflect"
	"testing"
	"time"
)

func day(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalculateStreaks(t *testing.T) {
	names := map[string]string{"d3": "Vitamin D3"}

	cases := []struct {
		name        string
		dates       []string
		today       string
		wantCurrent int
		wantLongest int
	}{
		{
			name:        "three_consecutive_days_ending_today",
			dates:       []string{"2025-05-01", "2025-05-02", "2025-05-03"},
			today:       "2025-05-03",
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name:        "gap_then_today",
			dates:       []string{"2025-05-01", "2025-05-02", "2025-05-06"},
			today:       "2025-05-06",
			wantCurrent: 1,
			wantLongest: 2,
		},
		{
			name:        "gap_today_not_logged",
			dates:       []string{"2025-05-01", "2025-05-02", "2025-05-06"},
			today:       "2025-05-07",
			wantCurrent: 0,
			wantLongest: 2,
		},
		{
			name:        "no_partial_credit_for_yesterday",
			dates:       []string{"2025-05-01", "2025-05-02"},
			today:       "2025-05-03",
			wantCurrent: 0,
			wantLongest: 2,
		},
		{
			name:        "single_log_not_today",
			dates:       []string{"2025-05-01"},
			today:       "2025-05-10",
			wantCurrent: 0,
			wantLongest: 1,
		},
		{
			name:        "longest_run_at_tail",
			dates:       []string{"2025-05-01", "2025-05-05", "2025-05-06", "2025-05-07", "2025-05-08"},
			today:       "2025-05-20",
			wantCurrent: 0,
			wantLongest: 4,
		},
		{
			name:        "multiple_gaps",
			dates:       []string{"2025-05-01", "2025-05-02", "2025-05-03", "2025-05-07", "2025-05-08", "2025-05-12"},
			today:       "2025-05-12",
			wantCurrent: 1,
			wantLongest: 3,
		},
		{
			name:        "empty",
			dates:       nil,
			today:       "2025-05-12",
			wantCurrent: 0,
			wantLongest: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var intakes []IntakeRecord
			for _, d := range tc.dates {
				intakes = append(intakes, intakeOf("d3", d))
			}
			report := CalculateStreaks(intakes, day(tc.today), names)
			if report.CurrentStreak != tc.wantCurrent {
				t.Fatalf("current streak = %d, want %d", report.CurrentStreak, tc.wantCurrent)
			}
			if report.LongestStreak != tc.wantLongest {
				t.Fatalf("longest streak = %d, want %d", report.LongestStreak, tc.wantLongest)
			}
			if len(tc.dates) == 0 && len(report.Supplements) != 0 {
				t.Fatalf("empty input should yield empty per-supplement list, got %d entries", len(report.Supplements))
			}
		})
	}
}

func TestCalculateStreaksPerSupplement(t *testing.T) {
	names := map[string]string{"d3": "Vitamin D3", "mag": "Magnesium"}
	intakes := []IntakeRecord{
		intakeOf("d3", "2025-05-01"),
		intakeOf("d3", "2025-05-02"),
		intakeOf("d3", "2025-05-03"),
		intakeOf("mag", "2025-05-03"),
		intakeOf("d3", "2025-05-01T20:00:00Z"), // same day, second dose
	}

	report := CalculateStreaks(intakes, day("2025-05-03"), names)
	if len(report.Supplements) != 2 {
		t.Fatalf("expected 2 per-supplement entries, got %d", len(report.Supplements))
	}
	// Sorted by supplement ID.
	d3 := report.Supplements[0]
	mag := report.Supplements[1]
	if d3.SupplementID != "d3" || mag.SupplementID != "mag" {
		t.Fatalf("per-supplement order = %q, %q, want d3, mag", d3.SupplementID, mag.SupplementID)
	}
	if d3.CurrentStreak != 3 || d3.LongestStreak != 3 {
		t.Fatalf("d3 streaks = %d/%d, want 3/3", d3.CurrentStreak, d3.LongestStreak)
	}
	if mag.CurrentStreak != 1 || mag.LongestStreak != 1 {
		t.Fatalf("mag streaks = %d/%d, want 1/1", mag.CurrentStreak, mag.LongestStreak)
	}
	if !reflect.DeepEqual(d3.Dates, []string{"2025-05-01", "2025-05-02", "2025-05-03"}) {
		t.Fatalf("d3 dates = %v", d3.Dates)
	}
	if d3.SupplementName != "Vitamin D3" {
		t.Fatalf("d3 name = %q", d3.SupplementName)
	}
}

func TestCalculateStreaksSkipsUnparsableTimestamps(t *testing.T) {
	intakes := []IntakeRecord{
		intakeOf("d3", "bogus"),
		intakeOf("d3", "2025-05-03"),
	}
	report := CalculateStreaks(intakes, day("2025-05-03"), nil)
	if report.CurrentStreak != 1 || report.LongestStreak != 1 {
		t.Fatalf("streaks = %d/%d, want 1/1", report.CurrentStreak, report.LongestStreak)
	}
}
