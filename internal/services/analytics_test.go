package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrilog/nutrilog-backend/internal/analytics"
	"github.com/nutrilog/nutrilog-backend/internal/logger"
	"github.com/nutrilog/nutrilog-backend/internal/requestdata"
	"github.com/nutrilog/nutrilog-backend/internal/types"
)

type fakeIntakeLogRepo struct {
	logs []*types.IntakeLog
}

func (f *fakeIntakeLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.IntakeLog) ([]*types.IntakeLog, error) {
	f.logs = append(f.logs, logs...)
	return logs, nil
}

func (f *fakeIntakeLogRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.IntakeLog, error) {
	return nil, nil
}

func (f *fakeIntakeLogRepo) GetByUserIDInRange(ctx context.Context, tx *gorm.DB, userID uuid.UUID, from, to time.Time) ([]*types.IntakeLog, error) {
	out := []*types.IntakeLog{}
	for _, intakeLog := range f.logs {
		if intakeLog.UserID == userID {
			out = append(out, intakeLog)
		}
	}
	return out, nil
}

func (f *fakeIntakeLogRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	return nil
}

type fakeSymptomLogRepo struct {
	logs []*types.SymptomLog
}

func (f *fakeSymptomLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.SymptomLog) ([]*types.SymptomLog, error) {
	f.logs = append(f.logs, logs...)
	return logs, nil
}

func (f *fakeSymptomLogRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.SymptomLog, error) {
	return nil, nil
}

func (f *fakeSymptomLogRepo) GetByUserIDInRange(ctx context.Context, tx *gorm.DB, userID uuid.UUID, from, to time.Time) ([]*types.SymptomLog, error) {
	out := []*types.SymptomLog{}
	for _, symptomLog := range f.logs {
		if symptomLog.UserID == userID {
			out = append(out, symptomLog)
		}
	}
	return out, nil
}

func (f *fakeSymptomLogRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	return nil
}

type fakeSupplementRepo struct {
	supplements []*types.Supplement
}

func (f *fakeSupplementRepo) Create(ctx context.Context, tx *gorm.DB, supplements []*types.Supplement) ([]*types.Supplement, error) {
	f.supplements = append(f.supplements, supplements...)
	return supplements, nil
}

func (f *fakeSupplementRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Supplement, error) {
	return nil, nil
}

func (f *fakeSupplementRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Supplement, error) {
	out := []*types.Supplement{}
	for _, supplement := range f.supplements {
		if supplement.UserID == userID {
			out = append(out, supplement)
		}
	}
	return out, nil
}

func (f *fakeSupplementRepo) Update(ctx context.Context, tx *gorm.DB, supplement *types.Supplement) error {
	return nil
}

func (f *fakeSupplementRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	return nil
}

type fakeInteractionRuleRepo struct {
	rules []*types.InteractionRule
}

func (f *fakeInteractionRuleRepo) Create(ctx context.Context, tx *gorm.DB, rules []*types.InteractionRule) ([]*types.InteractionRule, error) {
	f.rules = append(f.rules, rules...)
	return rules, nil
}

func (f *fakeInteractionRuleRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.InteractionRule, error) {
	return f.rules, nil
}

func (f *fakeInteractionRuleRepo) GetBySupplementIDs(ctx context.Context, tx *gorm.DB, supplementIDs []uuid.UUID) ([]*types.InteractionRule, error) {
	return f.rules, nil
}

func testAnalyticsService(t *testing.T, intakes *fakeIntakeLogRepo, symptoms *fakeSymptomLogRepo, supplements *fakeSupplementRepo, rules *fakeInteractionRuleRepo, now time.Time) AnalyticsService {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	svc := NewAnalyticsService(nil, log, intakes, symptoms, supplements, rules).(*analyticsService)
	svc.now = func() time.Time { return now }
	return svc
}

func authedContext(userID uuid.UUID) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: userID})
}

func TestAnalyticsServiceGetStreaks(t *testing.T) {
	userID := uuid.New()
	magnesium := &types.Supplement{ID: uuid.New(), UserID: userID, Name: "Magnesium"}
	now := time.Date(2025, 6, 3, 15, 0, 0, 0, time.UTC)

	intakes := &fakeIntakeLogRepo{}
	for day := 1; day <= 3; day++ {
		intakes.logs = append(intakes.logs, &types.IntakeLog{
			ID:           uuid.New(),
			UserID:       userID,
			SupplementID: magnesium.ID,
			TakenAt:      time.Date(2025, 6, day, 9, 0, 0, 0, time.UTC),
		})
	}
	svc := testAnalyticsService(t, intakes, &fakeSymptomLogRepo{}, &fakeSupplementRepo{supplements: []*types.Supplement{magnesium}}, &fakeInteractionRuleRepo{}, now)

	report, err := svc.GetStreaks(authedContext(userID), time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("GetStreaks: %v", err)
	}
	if report.CurrentStreak != 3 || report.LongestStreak != 3 {
		t.Fatalf("expected current=3 longest=3, got current=%d longest=%d", report.CurrentStreak, report.LongestStreak)
	}
	if len(report.Supplements) != 1 || report.Supplements[0].SupplementName != "Magnesium" {
		t.Fatalf("unexpected supplement streaks: %+v", report.Supplements)
	}
}

func TestAnalyticsServiceGetStreaksRequiresAuth(t *testing.T) {
	svc := testAnalyticsService(t, &fakeIntakeLogRepo{}, &fakeSymptomLogRepo{}, &fakeSupplementRepo{}, &fakeInteractionRuleRepo{}, time.Now())
	if _, err := svc.GetStreaks(context.Background(), time.Time{}, time.Time{}); err == nil {
		t.Fatal("expected error without request data in context")
	}
}

func TestAnalyticsServiceCheckInteractions(t *testing.T) {
	userID := uuid.New()
	magnesium := &types.Supplement{ID: uuid.New(), UserID: userID, Name: "Magnesium"}
	calcium := &types.Supplement{ID: uuid.New(), UserID: userID, Name: "Calcium"}
	now := time.Date(2025, 6, 3, 15, 0, 0, 0, time.UTC)

	intakes := &fakeIntakeLogRepo{logs: []*types.IntakeLog{
		{ID: uuid.New(), UserID: userID, SupplementID: magnesium.ID, TakenAt: now},
		{ID: uuid.New(), UserID: userID, SupplementID: calcium.ID, TakenAt: now},
	}}
	rules := &fakeInteractionRuleRepo{rules: []*types.InteractionRule{{
		ID:              uuid.New(),
		InteractionType: analytics.RuleTypeSupplementSupplement,
		SupplementID1:   magnesium.ID,
		SupplementID2:   &calcium.ID,
		Severity:        "moderate",
		Description:     "Competes for absorption",
	}}}
	supplements := &fakeSupplementRepo{supplements: []*types.Supplement{magnesium, calcium}}
	svc := testAnalyticsService(t, intakes, &fakeSymptomLogRepo{}, supplements, rules, now)

	alerts, err := svc.CheckInteractions(authedContext(userID), nil, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("CheckInteractions: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].Severity != "moderate" {
		t.Fatalf("unexpected alert severity %q", alerts[0].Severity)
	}
}

func TestAnalyticsServiceCheckInteractionsMissingName(t *testing.T) {
	userID := uuid.New()
	orphanID := uuid.New()
	now := time.Date(2025, 6, 3, 15, 0, 0, 0, time.UTC)

	intakes := &fakeIntakeLogRepo{logs: []*types.IntakeLog{
		{ID: uuid.New(), UserID: userID, SupplementID: orphanID, TakenAt: now},
	}}
	svc := testAnalyticsService(t, intakes, &fakeSymptomLogRepo{}, &fakeSupplementRepo{}, &fakeInteractionRuleRepo{}, now)

	_, err := svc.CheckInteractions(authedContext(userID), nil, time.Time{}, time.Time{})
	var missing *analytics.MissingSupplementsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *analytics.MissingSupplementsError, got %v", err)
	}
	if len(missing.IDs) != 1 || missing.IDs[0] != orphanID.String() {
		t.Fatalf("unexpected missing ids %v", missing.IDs)
	}
}

func TestAnalyticsServiceGetReport(t *testing.T) {
	userID := uuid.New()
	magnesium := &types.Supplement{ID: uuid.New(), UserID: userID, Name: "Magnesium"}
	now := time.Date(2025, 6, 3, 15, 0, 0, 0, time.UTC)

	intakes := &fakeIntakeLogRepo{logs: []*types.IntakeLog{
		{ID: uuid.New(), UserID: userID, SupplementID: magnesium.ID, TakenAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), UserID: userID, SupplementID: magnesium.ID, TakenAt: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)},
	}}
	symptoms := &fakeSymptomLogRepo{logs: []*types.SymptomLog{
		{ID: uuid.New(), UserID: userID, SymptomType: "headache", OccurredAt: time.Date(2025, 6, 2, 20, 0, 0, 0, time.UTC), Severity: 4},
	}}
	supplements := &fakeSupplementRepo{supplements: []*types.Supplement{magnesium}}
	svc := testAnalyticsService(t, intakes, symptoms, supplements, &fakeInteractionRuleRepo{}, now)

	report, err := svc.GetReport(authedContext(userID), time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if report.Progress.UserID != userID.String() {
		t.Fatalf("report for wrong user: %q", report.Progress.UserID)
	}
	if report.IntakeSummary.TotalLogs != 2 || report.IntakeSummary.UniqueSupplements != 1 {
		t.Fatalf("unexpected intake summary %+v", report.IntakeSummary)
	}
	if report.SymptomSummary.TotalLogs != 1 {
		t.Fatalf("unexpected symptom summary %+v", report.SymptomSummary)
	}
}
