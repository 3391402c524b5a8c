package model

import (
	"time"

	"github.com/google/uuid"
)

// SensorEventModel mirrors the 'alertas' table. Telemetry fields are nullable
// because bracelets may report message-only heartbeats without readings.
type SensorEventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BraceletID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Mensaje     string    `gorm:"type:text;not null"`
	Temperatura *float64  `gorm:"type:decimal(5,2)"`
	Ax          *float64  `gorm:"type:decimal(8,4)"`
	Ay          *float64  `gorm:"type:decimal(8,4)"`
	Az          *float64  `gorm:"type:decimal(8,4)"`
	Gx          *float64  `gorm:"type:decimal(8,4)"`
	Gy          *float64  `gorm:"type:decimal(8,4)"`
	Gz          *float64  `gorm:"type:decimal(8,4)"`
	Fecha       time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (SensorEventModel) TableName() string {
	return "alertas"
}
