package types

import (
	"time"

	"github.com/google/uuid"
)

// IntakeLog records that a user took a supplement at a point in time. TakenAt
// is validated at this boundary so downstream analytics never sees a malformed
// timestamp from our own storage; the engine's skip-on-parse-failure policy
// only matters for imported or legacy data.
type IntakeLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null;column:user_id" json:"user_id"`
	SupplementID uuid.UUID `gorm:"type:uuid;index;not null;column:supplement_id" json:"supplement_id"`
	TakenAt      time.Time `gorm:"index;not null;column:taken_at" json:"taken_at"`
	Dosage       string    `gorm:"column:dosage" json:"dosage,omitempty"`
	Timing       string    `gorm:"column:timing" json:"timing,omitempty"`
	Notes        string    `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (IntakeLog) TableName() string {
	return "intake_log"
}
