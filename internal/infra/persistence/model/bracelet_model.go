package model

import (
	"time"

	"github.com/google/uuid"
)

// BraceletModel mirrors the 'pulseras' table. The token column carries a
// unique index so concurrent find-or-create during ingestion cannot insert
// the same device twice.
type BraceletModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Codigo    string    `gorm:"type:varchar(100);not null"`
	Token     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Estado    string    `gorm:"type:varchar(20);not null;default:'activa'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Events []SensorEventModel `gorm:"foreignKey:BraceletID"`
}

// TableName explicitly sets the table name for GORM.
func (BraceletModel) TableName() string {
	return "pulseras"
}
