package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrilog/nutrilog-backend/internal/logger"
	"github.com/nutrilog/nutrilog-backend/internal/types"
)

type InteractionRuleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rules []*types.InteractionRule) ([]*types.InteractionRule, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.InteractionRule, error)
	GetBySupplementIDs(ctx context.Context, tx *gorm.DB, supplementIDs []uuid.UUID) ([]*types.InteractionRule, error)
}

type interactionRuleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInteractionRuleRepo(db *gorm.DB, baseLog *logger.Logger) InteractionRuleRepo {
	return &interactionRuleRepo{db: db, log: baseLog.With("repo", "InteractionRuleRepo")}
}

func (irr *interactionRuleRepo) Create(ctx context.Context, tx *gorm.DB, rules []*types.InteractionRule) ([]*types.InteractionRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = irr.db
	}
	if len(rules) == 0 {
		return []*types.InteractionRule{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (irr *interactionRuleRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.InteractionRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = irr.db
	}
	var results []*types.InteractionRule
	if err := transaction.WithContext(ctx).
		Order("created_at asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetBySupplementIDs returns every rule touching any of the given supplements
// on either side. Food rules are keyed by supplement_id_1 only.
func (irr *interactionRuleRepo) GetBySupplementIDs(ctx context.Context, tx *gorm.DB, supplementIDs []uuid.UUID) ([]*types.InteractionRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = irr.db
	}
	var results []*types.InteractionRule
	if len(supplementIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("supplement_id_1 IN ? OR supplement_id_2 IN ?", supplementIDs, supplementIDs).
		Order("created_at asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
