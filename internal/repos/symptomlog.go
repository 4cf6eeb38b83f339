package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrilog/nutrilog-backend/internal/logger"
	"github.com/nutrilog/nutrilog-backend/internal/types"
)

type SymptomLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, logs []*types.SymptomLog) ([]*types.SymptomLog, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.SymptomLog, error)
	GetByUserIDInRange(ctx context.Context, tx *gorm.DB, userID uuid.UUID, from, to time.Time) ([]*types.SymptomLog, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type symptomLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSymptomLogRepo(db *gorm.DB, baseLog *logger.Logger) SymptomLogRepo {
	return &symptomLogRepo{db: db, log: baseLog.With("repo", "SymptomLogRepo")}
}

func (slr *symptomLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.SymptomLog) ([]*types.SymptomLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = slr.db
	}
	if len(logs) == 0 {
		return []*types.SymptomLog{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (slr *symptomLogRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.SymptomLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = slr.db
	}
	var results []*types.SymptomLog
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

func (slr *symptomLogRepo) GetByUserIDInRange(ctx context.Context, tx *gorm.DB, userID uuid.UUID, from, to time.Time) ([]*types.SymptomLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = slr.db
	}
	query := transaction.WithContext(ctx).Where("user_id = ?", userID)
	if !from.IsZero() {
		query = query.Where("occurred_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("occurred_at <= ?", to)
	}
	var results []*types.SymptomLog
	if err := query.Order("occurred_at asc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (slr *symptomLogRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = slr.db
	}
	if len(ids) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&types.SymptomLog{}).Error
}
