package analytics

// Input records are handed to the engine already fetched and scoped to a single
// user and time window. Timestamps stay raw ISO-8601 strings; records whose
// timestamps fail to parse are skipped during aggregation (see parseTimestamp).

type IntakeRecord struct {
	SupplementID   string `json:"supplementId"`
	SupplementName string `json:"supplementName,omitempty"`
	Timestamp      string `json:"timestamp"`
	Dosage         string `json:"dosage,omitempty"`
	Timing         string `json:"timing,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

type SymptomRecord struct {
	SymptomType string `json:"symptomType"`
	Timestamp   string `json:"timestamp"`
	Severity    int    `json:"severity,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

const (
	RuleTypeSupplementSupplement = "supplement-supplement"
	RuleTypeSupplementFood       = "supplement-food"
)

// InteractionRule is one catalog entry. Exactly one of SupplementID2 and
// FoodItem is set, matching the rule's InteractionType.
type InteractionRule struct {
	InteractionID   string `json:"interactionId"`
	InteractionType string `json:"interactionType"`
	SupplementID1   string `json:"supplementId1"`
	SupplementID2   string `json:"supplementId2,omitempty"`
	FoodItem        string `json:"foodItem,omitempty"`
	Severity        string `json:"severity"`
	Description     string `json:"description"`
	Recommendation  string `json:"recommendation"`
}

type AlertParty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Alert struct {
	Type           string      `json:"type"`
	Supplement1    *AlertParty `json:"supplement1,omitempty"`
	Supplement2    *AlertParty `json:"supplement2,omitempty"`
	Supplement     *AlertParty `json:"supplement,omitempty"`
	Food           string      `json:"food,omitempty"`
	Message        string      `json:"message"`
	Severity       string      `json:"severity"`
	Recommendation string      `json:"recommendation"`
}

type CorrelationOccurrence struct {
	IntakeDate     string `json:"intakeDate"`
	SymptomDate    string `json:"symptomDate"`
	DaysDifference int    `json:"daysDifference"`
	Severity       int    `json:"severity"`
}

type CorrelationFinding struct {
	SupplementID    string                  `json:"supplementId"`
	SupplementName  string                  `json:"supplementName"`
	SymptomType     string                  `json:"symptomType"`
	OccurrenceCount int                     `json:"occurrenceCount"`
	Occurrences     []CorrelationOccurrence `json:"occurrences"`
}

type SupplementStreak struct {
	SupplementID   string   `json:"supplementId"`
	SupplementName string   `json:"supplementName"`
	CurrentStreak  int      `json:"currentStreak"`
	LongestStreak  int      `json:"longestStreak"`
	Dates          []string `json:"dates"`
}

type StreakReport struct {
	CurrentStreak int                `json:"currentStreak"`
	LongestStreak int                `json:"longestStreak"`
	Supplements   []SupplementStreak `json:"supplements"`
}

type MonthlyStat struct {
	Month       string  `json:"month"`
	Count       int     `json:"count"`
	UniqueDays  int     `json:"uniqueDays"`
	Consistency float64 `json:"consistency"`
}

type SupplementProgress struct {
	SupplementID   string        `json:"supplementId"`
	SupplementName string        `json:"supplementName"`
	Monthly        []MonthlyStat `json:"monthly"`
}

type MonthlyTotal struct {
	Month      string `json:"month"`
	Count      int    `json:"count"`
	UniqueDays int    `json:"uniqueDays"`
}

const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

const (
	MilestoneTotalIntake = "totalIntake"
	MilestoneConsistency = "consistency"
	MilestoneStreak      = "streak"
)

type Milestone struct {
	Type           string  `json:"type"`
	SupplementID   string  `json:"supplementId,omitempty"`
	SupplementName string  `json:"supplementName,omitempty"`
	Month          string  `json:"month,omitempty"`
	Value          float64 `json:"value"`
	Message        string  `json:"message"`
}

type ProgressReport struct {
	UserID           string               `json:"userId"`
	Supplements      []SupplementProgress `json:"supplements"`
	MonthlyTotals    []MonthlyTotal       `json:"monthlyTotals"`
	ConsistencyTrend string               `json:"consistencyTrend"`
	Milestones       []Milestone          `json:"milestones"`
}

const (
	RecommendationConsistency = "consistency"
	RecommendationTiming      = "timing"
	RecommendationTracking    = "tracking"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

type Recommendation struct {
	Type           string   `json:"type"`
	SupplementID   string   `json:"supplementId,omitempty"`
	SupplementName string   `json:"supplementName,omitempty"`
	Symptoms       []string `json:"symptoms,omitempty"`
	Message        string   `json:"message"`
	Priority       string   `json:"priority"`
}

type IntakeSummary struct {
	TotalLogs         int    `json:"totalLogs"`
	UniqueSupplements int    `json:"uniqueSupplements"`
	FirstDate         string `json:"firstDate,omitempty"`
	LastDate          string `json:"lastDate,omitempty"`
}

type SymptomSummary struct {
	TotalLogs          int    `json:"totalLogs"`
	UniqueSymptomTypes int    `json:"uniqueSymptomTypes"`
	FirstDate          string `json:"firstDate,omitempty"`
	LastDate           string `json:"lastDate,omitempty"`
}

// Report is the aggregate handed back to the HTTP layer. It is rebuilt from
// scratch on every request; nothing in it is cached or persisted.
type Report struct {
	IntakeSummary   IntakeSummary        `json:"intakeSummary"`
	SymptomSummary  SymptomSummary       `json:"symptomSummary"`
	Correlations    []CorrelationFinding `json:"correlations"`
	Streaks         StreakReport         `json:"streaks"`
	Progress        ProgressReport       `json:"progress"`
	Recommendations []Recommendation     `json:"recommendations"`
}
