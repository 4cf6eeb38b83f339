package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrilog/nutrilog-backend/internal/analytics"
	"github.com/nutrilog/nutrilog-backend/internal/logger"
	"github.com/nutrilog/nutrilog-backend/internal/normalization"
	"github.com/nutrilog/nutrilog-backend/internal/repos"
	"github.com/nutrilog/nutrilog-backend/internal/types"
)

// InteractionService manages the interaction-rule catalog. Rules are global,
// not per user; seeding them is an operator concern.
type InteractionService interface {
	ListRules(ctx context.Context) ([]*types.InteractionRule, error)
	CreateRule(ctx context.Context, rule *types.InteractionRule) (*types.InteractionRule, error)
}

type interactionService struct {
	db       *gorm.DB
	log      *logger.Logger
	ruleRepo repos.InteractionRuleRepo
}

func NewInteractionService(db *gorm.DB, log *logger.Logger, ruleRepo repos.InteractionRuleRepo) InteractionService {
	return &interactionService{db: db, log: log.With("service", "InteractionService"), ruleRepo: ruleRepo}
}

func (is *interactionService) ListRules(ctx context.Context) ([]*types.InteractionRule, error) {
	rules, err := is.ruleRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("Failed to list interaction rules: %w", err)
	}
	return rules, nil
}

func (is *interactionService) CreateRule(ctx context.Context, rule *types.InteractionRule) (*types.InteractionRule, error) {
	rule.FoodItem = normalization.ParseInputString(rule.FoodItem)
	switch rule.InteractionType {
	case analytics.RuleTypeSupplementSupplement:
		if rule.SupplementID2 == nil || *rule.SupplementID2 == uuid.Nil {
			return nil, fmt.Errorf("A supplement-supplement rule needs both supplement ids")
		}
		if rule.FoodItem != "" {
			return nil, fmt.Errorf("A supplement-supplement rule cannot carry a food item")
		}
	case analytics.RuleTypeSupplementFood:
		if rule.FoodItem == "" {
			return nil, fmt.Errorf("A supplement-food rule needs a food item")
		}
		if rule.SupplementID2 != nil {
			return nil, fmt.Errorf("A supplement-food rule cannot carry a second supplement id")
		}
	default:
		return nil, fmt.Errorf("Unknown interaction type %q", rule.InteractionType)
	}
	if rule.SupplementID1 == uuid.Nil {
		return nil, fmt.Errorf("A rule needs a primary supplement id")
	}
	if rule.Description == "" {
		return nil, fmt.Errorf("A rule needs a description")
	}
	rule.ID = uuid.New()
	if _, err := is.ruleRepo.Create(ctx, nil, []*types.InteractionRule{rule}); err != nil {
		return nil, fmt.Errorf("Failed to create interaction rule: %w", err)
	}
	return rule, nil
}
