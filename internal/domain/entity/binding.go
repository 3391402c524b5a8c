// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Binding links a caregiver account to a bracelet through the device token.
// A token has at most one binding; the bound account receives the fall
// alerts for that bracelet.
type Binding struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"usuario_id"`     // The caregiver account monitoring this bracelet.
	Token         string    `json:"token"`          // Device token of the monitored bracelet.
	NombrePulsera string    `json:"nombre_pulsera"` // Caregiver-chosen display name for the bracelet.
	CreatedAt     time.Time `json:"fecha_registro"`
}
