package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrilog/nutrilog-backend/internal/logger"
	"github.com/nutrilog/nutrilog-backend/internal/types"
)

type SupplementRepo interface {
	Create(ctx context.Context, tx *gorm.DB, supplements []*types.Supplement) ([]*types.Supplement, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Supplement, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Supplement, error)
	Update(ctx context.Context, tx *gorm.DB, supplement *types.Supplement) error
	DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type supplementRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSupplementRepo(db *gorm.DB, baseLog *logger.Logger) SupplementRepo {
	return &supplementRepo{db: db, log: baseLog.With("repo", "SupplementRepo")}
}

func (sr *supplementRepo) Create(ctx context.Context, tx *gorm.DB, supplements []*types.Supplement) ([]*types.Supplement, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if len(supplements) == 0 {
		return []*types.Supplement{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&supplements).Error; err != nil {
		return nil, err
	}
	return supplements, nil
}

func (sr *supplementRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Supplement, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Supplement
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

func (sr *supplementRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Supplement, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Supplement
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *supplementRepo) Update(ctx context.Context, tx *gorm.DB, supplement *types.Supplement) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).Save(supplement).Error
}

func (sr *supplementRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if len(ids) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&types.Supplement{}).Error
}
