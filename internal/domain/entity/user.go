// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the system, either a caregiver ("usuario")
// or an administrator. Its phone number is the destination for fall alerts
// of every bracelet the account monitors.
type User struct {
	ID           uuid.UUID `json:"id"`             // The Global Unique Identifier (GUID) for the account.
	Nombres      string    `json:"nombres"`        // Given names.
	Apellidos    string    `json:"apellidos"`      // Family names.
	Telefono     string    `json:"telefono"`       // Contact phone in E.164 format, the WhatsApp alert destination.
	Correo       string    `json:"correo"`         // Login email, unique across the system.
	PasswordHash string    `json:"-"`              // bcrypt hash of the credential. Never serialized.
	Rol          Role      `json:"rol"`            // Account role (admin or usuario).
	CreatedAt    time.Time `json:"fecha_registro"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"-"`              // Timestamp of the last modification.
}
