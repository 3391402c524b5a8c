// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BraceletStatus is the lifecycle state of a bracelet.
type BraceletStatus string

const (
	// BraceletActiva marks a bracelet that is emitting telemetry.
	BraceletActiva BraceletStatus = "activa"
	// BraceletInactiva marks a bracelet that has been retired by an administrator.
	BraceletInactiva BraceletStatus = "inactiva"
)

// Bracelet represents a wrist-worn sensor unit. Its identity across the
// whole system is the device token burned into the firmware; the token is
// also used as the human-readable code when a bracelet self-registers on
// first telemetry receipt.
type Bracelet struct {
	ID        uuid.UUID      `json:"id"`
	Codigo    string         `json:"codigo"` // Human-readable code shown on dashboards.
	Token     string         `json:"token"`  // Device-unique token, unique across the system.
	Estado    BraceletStatus `json:"estado"`
	CreatedAt time.Time      `json:"fecha_registro"`
	UpdatedAt time.Time      `json:"-"`
}
