package model

import (
	"time"

	"github.com/google/uuid"
)

// BindingModel mirrors the 'monitoreo' table. Each row links a caregiver
// account to one bracelet token; the unique index on token keeps a bracelet
// bound to at most one caregiver.
type BindingModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Token         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	NombrePulsera string    `gorm:"type:varchar(100);not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BindingModel) TableName() string {
	return "monitoreo"
}
