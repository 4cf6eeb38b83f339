package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrilog/nutrilog-backend/internal/logger"
	"github.com/nutrilog/nutrilog-backend/internal/repos"
	"github.com/nutrilog/nutrilog-backend/internal/types"
)

type IntakeService interface {
	LogIntake(ctx context.Context, log *types.IntakeLog) (*types.IntakeLog, error)
	ListIntakes(ctx context.Context, from, to time.Time) ([]*types.IntakeLog, error)
	DeleteIntake(ctx context.Context, id uuid.UUID) error
}

type intakeService struct {
	db             *gorm.DB
	log            *logger.Logger
	intakeLogRepo  repos.IntakeLogRepo
	supplementRepo repos.SupplementRepo
}

func NewIntakeService(db *gorm.DB, log *logger.Logger, intakeLogRepo repos.IntakeLogRepo, supplementRepo repos.SupplementRepo) IntakeService {
	return &intakeService{
		db:             db,
		log:            log.With("service", "IntakeService"),
		intakeLogRepo:  intakeLogRepo,
		supplementRepo: supplementRepo,
	}
}

func (is *intakeService) LogIntake(ctx context.Context, intakeLog *types.IntakeLog) (*types.IntakeLog, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if intakeLog.SupplementID == uuid.Nil {
		return nil, fmt.Errorf("A supplement id is required to log an intake")
	}
	supplements, err := is.supplementRepo.GetByIDs(ctx, nil, []uuid.UUID{intakeLog.SupplementID})
	if err != nil {
		return nil, fmt.Errorf("Failed to load supplement: %w", err)
	}
	if len(supplements) == 0 || supplements[0].UserID != userID {
		return nil, fmt.Errorf("Supplement not found")
	}
	if intakeLog.TakenAt.IsZero() {
		intakeLog.TakenAt = time.Now()
	}
	intakeLog.ID = uuid.New()
	intakeLog.UserID = userID
	if _, err := is.intakeLogRepo.Create(ctx, nil, []*types.IntakeLog{intakeLog}); err != nil {
		return nil, fmt.Errorf("Failed to create intake log: %w", err)
	}
	return intakeLog, nil
}

func (is *intakeService) ListIntakes(ctx context.Context, from, to time.Time) ([]*types.IntakeLog, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := is.intakeLogRepo.GetByUserIDInRange(ctx, nil, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("Failed to list intake logs: %w", err)
	}
	return logs, nil
}

func (is *intakeService) DeleteIntake(ctx context.Context, id uuid.UUID) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	logs, err := is.intakeLogRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
	if err != nil {
		return fmt.Errorf("Failed to load intake log: %w", err)
	}
	if len(logs) == 0 || logs[0].UserID != userID {
		return fmt.Errorf("Intake log not found")
	}
	if err := is.intakeLogRepo.DeleteByIDs(ctx, nil, []uuid.UUID{id}); err != nil {
		return fmt.Errorf("Failed to delete intake log: %w", err)
	}
	return nil
}
