package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrilog/nutrilog-backend/internal/analytics"
	"github.com/nutrilog/nutrilog-backend/internal/logger"
	"github.com/nutrilog/nutrilog-backend/internal/normalization"
	"github.com/nutrilog/nutrilog-backend/internal/repos"
)

// AnalyticsService assembles engine inputs (logs, rules, resolved names) and
// runs the pure analytics functions. Results are recomputed on every call;
// nothing is cached or persisted.
type AnalyticsService interface {
	GetReport(ctx context.Context, from, to time.Time) (*analytics.Report, error)
	GetStreaks(ctx context.Context, from, to time.Time) (*analytics.StreakReport, error)
	GetProgress(ctx context.Context, from, to time.Time) (*analytics.ProgressReport, error)
	GetCorrelations(ctx context.Context, from, to time.Time) ([]analytics.CorrelationFinding, error)
	GetRecommendations(ctx context.Context, from, to time.Time) ([]analytics.Recommendation, error)
	CheckInteractions(ctx context.Context, foodItems []string, from, to time.Time) ([]analytics.Alert, error)
}

type analyticsService struct {
	db             *gorm.DB
	log            *logger.Logger
	intakeLogRepo  repos.IntakeLogRepo
	symptomLogRepo repos.SymptomLogRepo
	supplementRepo repos.SupplementRepo
	ruleRepo       repos.InteractionRuleRepo
	// now is injectable so the streak walk is deterministic under test; the
	// wall clock is read here, at the call boundary, never inside the engine.
	now func() time.Time
}

func NewAnalyticsService(
	db *gorm.DB,
	log *logger.Logger,
	intakeLogRepo repos.IntakeLogRepo,
	symptomLogRepo repos.SymptomLogRepo,
	supplementRepo repos.SupplementRepo,
	ruleRepo repos.InteractionRuleRepo,
) AnalyticsService {
	return &analyticsService{
		db:             db,
		log:            log.With("service", "AnalyticsService"),
		intakeLogRepo:  intakeLogRepo,
		symptomLogRepo: symptomLogRepo,
		supplementRepo: supplementRepo,
		ruleRepo:       ruleRepo,
		now:            time.Now,
	}
}

func (as *analyticsService) fetchIntakeRecords(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]analytics.IntakeRecord, error) {
	logs, err := as.intakeLogRepo.GetByUserIDInRange(ctx, nil, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("Failed to fetch intake logs: %w", err)
	}
	records := make([]analytics.IntakeRecord, 0, len(logs))
	for _, intakeLog := range logs {
		records = append(records, analytics.IntakeRecord{
			SupplementID: intakeLog.SupplementID.String(),
			Timestamp:    intakeLog.TakenAt.UTC().Format(time.RFC3339),
			Dosage:       intakeLog.Dosage,
			Timing:       intakeLog.Timing,
			Notes:        intakeLog.Notes,
		})
	}
	return records, nil
}

func (as *analyticsService) fetchSymptomRecords(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]analytics.SymptomRecord, error) {
	logs, err := as.symptomLogRepo.GetByUserIDInRange(ctx, nil, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("Failed to fetch symptom logs: %w", err)
	}
	records := make([]analytics.SymptomRecord, 0, len(logs))
	for _, symptomLog := range logs {
		records = append(records, analytics.SymptomRecord{
			SymptomType: symptomLog.SymptomType,
			Timestamp:   symptomLog.OccurredAt.UTC().Format(time.RFC3339),
			Severity:    symptomLog.Severity,
			Notes:       symptomLog.Notes,
		})
	}
	return records, nil
}

// resolveNames batch-resolves the caller's supplement directory into an
// id -> display-name index, once per analytics call. The engine decides per
// component whether a missing entry is a hard error (interactions) or a
// placeholder name (everything else).
func (as *analyticsService) resolveNames(ctx context.Context, userID uuid.UUID) (map[string]string, error) {
	supplements, err := as.supplementRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("Failed to resolve supplement names: %w", err)
	}
	names := make(map[string]string, len(supplements))
	for _, supplement := range supplements {
		names[supplement.ID.String()] = supplement.Name
	}
	return names, nil
}

func (as *analyticsService) GetReport(ctx context.Context, from, to time.Time) (*analytics.Report, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	intakes, err := as.fetchIntakeRecords(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	symptoms, err := as.fetchSymptomRecords(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	names, err := as.resolveNames(ctx, userID)
	if err != nil {
		return nil, err
	}
	report := analytics.BuildReport(userID.String(), intakes, symptoms, names, as.now())
	return &report, nil
}

func (as *analyticsService) GetStreaks(ctx context.Context, from, to time.Time) (*analytics.StreakReport, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	intakes, err := as.fetchIntakeRecords(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	names, err := as.resolveNames(ctx, userID)
	if err != nil {
		return nil, err
	}
	report := analytics.CalculateStreaks(intakes, as.now(), names)
	return &report, nil
}

func (as *analyticsService) GetProgress(ctx context.Context, from, to time.Time) (*analytics.ProgressReport, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	intakes, err := as.fetchIntakeRecords(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	names, err := as.resolveNames(ctx, userID)
	if err != nil {
		return nil, err
	}
	report := analytics.CalculateProgress(userID.String(), intakes, names)
	return &report, nil
}

func (as *analyticsService) GetCorrelations(ctx context.Context, from, to time.Time) ([]analytics.CorrelationFinding, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	intakes, err := as.fetchIntakeRecords(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	symptoms, err := as.fetchSymptomRecords(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	names, err := as.resolveNames(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.AnalyzeCorrelations(intakes, symptoms, names), nil
}

func (as *analyticsService) GetRecommendations(ctx context.Context, from, to time.Time) ([]analytics.Recommendation, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	intakes, err := as.fetchIntakeRecords(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	symptoms, err := as.fetchSymptomRecords(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	names, err := as.resolveNames(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.GenerateRecommendations(userID.String(), intakes, symptoms, names), nil
}

func (as *analyticsService) CheckInteractions(ctx context.Context, foodItems []string, from, to time.Time) ([]analytics.Alert, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	intakes, err := as.fetchIntakeRecords(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	names, err := as.resolveNames(ctx, userID)
	if err != nil {
		return nil, err
	}

	supplementIDs := make([]uuid.UUID, 0, len(intakes))
	seen := map[string]bool{}
	for _, record := range intakes {
		if seen[record.SupplementID] {
			continue
		}
		seen[record.SupplementID] = true
		if id, parseErr := uuid.Parse(record.SupplementID); parseErr == nil {
			supplementIDs = append(supplementIDs, id)
		}
	}
	rules, err := as.ruleRepo.GetBySupplementIDs(ctx, nil, supplementIDs)
	if err != nil {
		return nil, fmt.Errorf("Failed to fetch interaction rules: %w", err)
	}

	engineRules := make([]analytics.InteractionRule, 0, len(rules))
	for _, rule := range rules {
		engineRule := analytics.InteractionRule{
			InteractionID:   rule.ID.String(),
			InteractionType: rule.InteractionType,
			SupplementID1:   rule.SupplementID1.String(),
			FoodItem:        rule.FoodItem,
			Severity:        rule.Severity,
			Description:     rule.Description,
			Recommendation:  rule.Recommendation,
		}
		if rule.SupplementID2 != nil {
			engineRule.SupplementID2 = rule.SupplementID2.String()
		}
		engineRules = append(engineRules, engineRule)
	}

	normalizedFoods := make([]string, 0, len(foodItems))
	for _, item := range foodItems {
		if normalized := normalization.ParseInputString(item); normalized != "" {
			normalizedFoods = append(normalizedFoods, normalized)
		}
	}

	alerts, err := analytics.CheckInteractions(intakes, normalizedFoods, engineRules, names)
	if err != nil {
		as.log.Warn("Interaction check failed", "error", err)
		return nil, err
	}
	return alerts, nil
}
