package types

import (
	"time"

	"github.com/google/uuid"
)

type SymptomLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null;column:user_id" json:"user_id"`
	SymptomType string    `gorm:"not null;column:symptom_type" json:"symptom_type"`
	OccurredAt  time.Time `gorm:"index;not null;column:occurred_at" json:"occurred_at"`
	Severity    int       `gorm:"column:severity" json:"severity,omitempty"`
	Notes       string    `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (SymptomLog) TableName() string {
	return "symptom_log"
}
