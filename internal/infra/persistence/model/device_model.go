package model

import (
	"time"

	"github.com/google/uuid"
)

// CaregiverDeviceModel mirrors the 'dispositivos' table holding FCM push
// tokens registered by caregiver apps.
type CaregiverDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FCMToken  string    `gorm:"column:fcm_token;type:text;not null"`
	Platform  string    `gorm:"type:varchar(20);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CaregiverDeviceModel) TableName() string {
	return "dispositivos"
}
