// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CaregiverDevice represents a caregiver's phone registered for push
// notifications. Fall alerts fan out to every active device of the bound
// account in addition to the WhatsApp message.
type CaregiverDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"usuario_id"` // The caregiver account that owns this device.
	FCMToken  string    `json:"fcm_token"`  // Firebase Cloud Messaging token for push notifications.
	Platform  string    `json:"platform"`   // Device platform (ios, android).
	IsActive  bool      `json:"is_active"`  // Indicates if this device is active for notifications.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
