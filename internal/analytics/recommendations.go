package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	// Consistency suggestions only fire for supplements with enough history.
	consistencyMinDistinctDays = 7
	consistencyEmitBelow       = 70.0
	consistencyHighBelow       = 50.0

	// Timing suggestions need a minimum number of recorded timing labels and
	// fire when no single label dominates.
	timingMinLabels       = 5
	timingDominantPercent = 70.0

	// Symptom types seen at least this often roll into one tracking
	// suggestion.
	trackingMinOccurrences = 3
)

type supplementUsage struct {
	count   int
	days    map[time.Time]bool
	first   time.Time
	last    time.Time
	timings []string
}

// GenerateRecommendations derives behavioral suggestions from raw logs.
// Emission order is fixed: consistency suggestions (per qualifying supplement,
// in supplement-ID order), then timing suggestions, then at most one combined
// tracking suggestion.
func GenerateRecommendations(userID string, intakes []IntakeRecord, symptoms []SymptomRecord, names map[string]string) []Recommendation {
	usage := map[string]*supplementUsage{}
	for _, record := range intakes {
		if record.SupplementID == "" {
			continue
		}
		u := usage[record.SupplementID]
		if u == nil {
			u = &supplementUsage{days: map[time.Time]bool{}}
			usage[record.SupplementID] = u
		}
		u.count++
		if record.Timing != "" {
			u.timings = append(u.timings, record.Timing)
		}
		ts, ok := parseTimestamp(record.Timestamp)
		if !ok {
			continue
		}
		day := dateOf(ts)
		if len(u.days) == 0 || day.Before(u.first) {
			u.first = day
		}
		if len(u.days) == 0 || day.After(u.last) {
			u.last = day
		}
		u.days[day] = true
	}

	supplementIDs := make([]string, 0, len(usage))
	for id := range usage {
		supplementIDs = append(supplementIDs, id)
	}
	sort.Strings(supplementIDs)

	recommendations := []Recommendation{}
	for _, id := range supplementIDs {
		if rec, ok := consistencyRecommendation(id, usage[id], names); ok {
			recommendations = append(recommendations, rec)
		}
	}
	for _, id := range supplementIDs {
		if rec, ok := timingRecommendation(id, usage[id], names); ok {
			recommendations = append(recommendations, rec)
		}
	}
	if rec, ok := trackingRecommendation(symptoms); ok {
		recommendations = append(recommendations, rec)
	}
	return recommendations
}

func consistencyRecommendation(id string, u *supplementUsage, names map[string]string) (Recommendation, bool) {
	distinctDays := len(u.days)
	if distinctDays < consistencyMinDistinctDays {
		return Recommendation{}, false
	}
	spanDays := daysBetween(u.first, u.last) + 1
	percent := float64(distinctDays) / float64(spanDays) * 100
	if percent >= consistencyEmitBelow {
		return Recommendation{}, false
	}
	priority := PriorityMedium
	if percent < consistencyHighBelow {
		priority = PriorityHigh
	}
	name := lenientName(names, id)
	return Recommendation{
		Type:           RecommendationConsistency,
		SupplementID:   id,
		SupplementName: name,
		Message:        fmt.Sprintf("You logged %s on %d of %d days. Taking it daily improves its effect.", name, distinctDays, spanDays),
		Priority:       priority,
	}, true
}

func timingRecommendation(id string, u *supplementUsage, names map[string]string) (Recommendation, bool) {
	if len(u.timings) < timingMinLabels {
		return Recommendation{}, false
	}
	counts := map[string]int{}
	for _, label := range u.timings {
		counts[label]++
	}
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	dominantLabel := ""
	dominantCount := 0
	for _, label := range labels {
		if counts[label] > dominantCount {
			dominantLabel = label
			dominantCount = counts[label]
		}
	}
	share := float64(dominantCount) / float64(len(u.timings)) * 100
	if share >= timingDominantPercent {
		return Recommendation{}, false
	}
	name := lenientName(names, id)
	return Recommendation{
		Type:           RecommendationTiming,
		SupplementID:   id,
		SupplementName: name,
		Message:        fmt.Sprintf("Your timing for %s varies; you most often take it in the %s. A fixed time of day makes it easier to stay consistent.", name, dominantLabel),
		Priority:       PriorityMedium,
	}, true
}

func trackingRecommendation(symptoms []SymptomRecord) (Recommendation, bool) {
	counts := map[string]int{}
	for _, record := range symptoms {
		if record.SymptomType != "" {
			counts[record.SymptomType]++
		}
	}
	var recurring []string
	for symptomType, count := range counts {
		if count >= trackingMinOccurrences {
			recurring = append(recurring, symptomType)
		}
	}
	if len(recurring) == 0 {
		return Recommendation{}, false
	}
	sort.Strings(recurring)
	return Recommendation{
		Type:     RecommendationTracking,
		Symptoms: recurring,
		Message:  fmt.Sprintf("You reported %s several times. Consider tracking these symptoms closely and discussing them with a professional.", strings.Join(recurring, ", ")),
		Priority: PriorityMedium,
	}, true
}
