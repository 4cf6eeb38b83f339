package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrilog/nutrilog-backend/internal/logger"
	"github.com/nutrilog/nutrilog-backend/internal/types"
)

type IntakeLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, logs []*types.IntakeLog) ([]*types.IntakeLog, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.IntakeLog, error)
	GetByUserIDInRange(ctx context.Context, tx *gorm.DB, userID uuid.UUID, from, to time.Time) ([]*types.IntakeLog, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type intakeLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIntakeLogRepo(db *gorm.DB, baseLog *logger.Logger) IntakeLogRepo {
	return &intakeLogRepo{db: db, log: baseLog.With("repo", "IntakeLogRepo")}
}

func (ilr *intakeLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.IntakeLog) ([]*types.IntakeLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = ilr.db
	}
	if len(logs) == 0 {
		return []*types.IntakeLog{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (ilr *intakeLogRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.IntakeLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = ilr.db
	}
	var results []*types.IntakeLog
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByUserIDInRange returns a user's intake logs inside [from, to]. Zero
// bounds widen the window on that side.
func (ilr *intakeLogRepo) GetByUserIDInRange(ctx context.Context, tx *gorm.DB, userID uuid.UUID, from, to time.Time) ([]*types.IntakeLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = ilr.db
	}
	query := transaction.WithContext(ctx).Where("user_id = ?", userID)
	if !from.IsZero() {
		query = query.Where("taken_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("taken_at <= ?", to)
	}
	var results []*types.IntakeLog
	if err := query.Order("taken_at asc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ilr *intakeLogRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ilr.db
	}
	if len(ids) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&types.IntakeLog{}).Error
}
