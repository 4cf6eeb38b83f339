package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrilog/nutrilog-backend/internal/logger"
	"github.com/nutrilog/nutrilog-backend/internal/normalization"
	"github.com/nutrilog/nutrilog-backend/internal/repos"
	"github.com/nutrilog/nutrilog-backend/internal/types"
)

type SymptomService interface {
	LogSymptom(ctx context.Context, log *types.SymptomLog) (*types.SymptomLog, error)
	ListSymptoms(ctx context.Context, from, to time.Time) ([]*types.SymptomLog, error)
	DeleteSymptom(ctx context.Context, id uuid.UUID) error
}

type symptomService struct {
	db             *gorm.DB
	log            *logger.Logger
	symptomLogRepo repos.SymptomLogRepo
}

func NewSymptomService(db *gorm.DB, log *logger.Logger, symptomLogRepo repos.SymptomLogRepo) SymptomService {
	return &symptomService{db: db, log: log.With("service", "SymptomService"), symptomLogRepo: symptomLogRepo}
}

func (ss *symptomService) LogSymptom(ctx context.Context, symptomLog *types.SymptomLog) (*types.SymptomLog, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	symptomLog.SymptomType = normalization.ParseInputString(symptomLog.SymptomType)
	if symptomLog.SymptomType == "" {
		return nil, fmt.Errorf("A symptom type is required")
	}
	if symptomLog.OccurredAt.IsZero() {
		symptomLog.OccurredAt = time.Now()
	}
	symptomLog.ID = uuid.New()
	symptomLog.UserID = userID
	if _, err := ss.symptomLogRepo.Create(ctx, nil, []*types.SymptomLog{symptomLog}); err != nil {
		return nil, fmt.Errorf("Failed to create symptom log: %w", err)
	}
	return symptomLog, nil
}

func (ss *symptomService) ListSymptoms(ctx context.Context, from, to time.Time) ([]*types.SymptomLog, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := ss.symptomLogRepo.GetByUserIDInRange(ctx, nil, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("Failed to list symptom logs: %w", err)
	}
	return logs, nil
}

func (ss *symptomService) DeleteSymptom(ctx context.Context, id uuid.UUID) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	logs, err := ss.symptomLogRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
	if err != nil {
		return fmt.Errorf("Failed to load symptom log: %w", err)
	}
	if len(logs) == 0 || logs[0].UserID != userID {
		return fmt.Errorf("Symptom log not found")
	}
	if err := ss.symptomLogRepo.DeleteByIDs(ctx, nil, []uuid.UUID{id}); err != nil {
		return fmt.Errorf("Failed to delete symptom log: %w", err)
	}
	return nil
}
