package types

import (
	"time"

	"github.com/google/uuid"
)

// InteractionRule is one catalog entry of a known supplement-supplement or
// supplement-food interaction. Exactly one of SupplementID2 and FoodItem is
// set, matching InteractionType.
type InteractionRule struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	InteractionType string     `gorm:"not null;column:interaction_type" json:"interaction_type"`
	SupplementID1   uuid.UUID  `gorm:"type:uuid;index;not null;column:supplement_id_1" json:"supplement_id_1"`
	SupplementID2   *uuid.UUID `gorm:"type:uuid;index;column:supplement_id_2" json:"supplement_id_2,omitempty"`
	FoodItem        string     `gorm:"column:food_item" json:"food_item,omitempty"`
	Severity        string     `gorm:"not null;column:severity" json:"severity"`
	Description     string     `gorm:"not null;column:description" json:"description"`
	Recommendation  string     `gorm:"column:recommendation" json:"recommendation"`
	CreatedAt       time.Time  `gorm:"not null;default:now()" json:"created_at"`
}

func (InteractionRule) TableName() string {
	return "interaction_rule"
}
