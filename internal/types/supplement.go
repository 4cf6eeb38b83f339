package types

import (
	"time"

	"github.com/google/uuid"
)

// Supplement is one entry in a user's supplement directory. The analytics
// service batch-resolves display names from this table.
type Supplement struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;index;not null;column:user_id" json:"user_id"`
	Name          string    `gorm:"not null;column:name" json:"name"`
	Brand         string    `gorm:"column:brand" json:"brand,omitempty"`
	DefaultDosage string    `gorm:"column:default_dosage" json:"default_dosage,omitempty"`
	Notes         string    `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Supplement) TableName() string {
	return "supplement"
}
