package analytics

import (
	"fmt"
	"sort"
	"strings"
)

// MissingSupplementsError reports every intake supplement ID the directory
// could not resolve, not just the first one. Callers must never receive a
// partial alert list silently.
type MissingSupplementsError struct {
	IDs []string
}

func (e *MissingSupplementsError) Error() string {
	return fmt.Sprintf("Unresolved supplement ids: %s", strings.Join(e.IDs, ", "))
}

// pairKey is the canonical form of an unordered pair. Keeping it a struct in a
// hash set (rather than a concatenated string) preserves the same collision
// semantics without the string plumbing.
type pairKey struct {
	a string
	b string
}

func normalizedPair(id1, id2 string) pairKey {
	if id2 < id1 {
		id1, id2 = id2, id1
	}
	return pairKey{a: id1, b: id2}
}

// CheckInteractions matches the supplements present in the intake list (and
// the given food items) against the rule catalog. Alerts come back in rule
// iteration order; symmetric duplicates collapse to a single alert per
// unordered pair. Unresolved supplement IDs are a hard error; empty inputs
// are not.
func CheckInteractions(intakes []IntakeRecord, foodItems []string, rules []InteractionRule, names map[string]string) ([]Alert, error) {
	alerts := []Alert{}
	if len(intakes) == 0 {
		return alerts, nil
	}

	intakeIDs := map[string]bool{}
	for _, record := range intakes {
		if record.SupplementID != "" {
			intakeIDs[record.SupplementID] = true
		}
	}

	var missing []string
	for id := range intakeIDs {
		if _, ok := names[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingSupplementsError{IDs: missing}
	}

	foods := map[string]bool{}
	for _, item := range foodItems {
		if item != "" {
			foods[item] = true
		}
	}

	// Separate sets keep supplement pairs and food pairs in distinct key
	// spaces, the same way the old "supp:"/"food:" key prefixes did.
	seenPairs := map[pairKey]bool{}
	seenFoodPairs := map[pairKey]bool{}
	for _, rule := range rules {
		switch rule.InteractionType {
		case RuleTypeSupplementSupplement:
			if !intakeIDs[rule.SupplementID1] || !intakeIDs[rule.SupplementID2] {
				continue
			}
			key := normalizedPair(rule.SupplementID1, rule.SupplementID2)
			if seenPairs[key] {
				continue
			}
			seenPairs[key] = true
			name1 := names[rule.SupplementID1]
			name2 := names[rule.SupplementID2]
			alerts = append(alerts, Alert{
				Type:           RuleTypeSupplementSupplement,
				Supplement1:    &AlertParty{ID: rule.SupplementID1, Name: name1},
				Supplement2:    &AlertParty{ID: rule.SupplementID2, Name: name2},
				Message:        fmt.Sprintf("%s may interact with %s: %s", name1, name2, rule.Description),
				Severity:       rule.Severity,
				Recommendation: rule.Recommendation,
			})
		case RuleTypeSupplementFood:
			if !intakeIDs[rule.SupplementID1] || !foods[rule.FoodItem] {
				continue
			}
			key := pairKey{a: rule.SupplementID1, b: rule.FoodItem}
			if seenFoodPairs[key] {
				continue
			}
			seenFoodPairs[key] = true
			name := names[rule.SupplementID1]
			alerts = append(alerts, Alert{
				Type:           RuleTypeSupplementFood,
				Supplement:     &AlertParty{ID: rule.SupplementID1, Name: name},
				Food:           rule.FoodItem,
				Message:        fmt.Sprintf("%s may interact with %s: %s", name, rule.FoodItem, rule.Description),
				Severity:       rule.Severity,
				Recommendation: rule.Recommendation,
			})
		}
	}
	return alerts, nil
}
