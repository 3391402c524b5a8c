// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SensorEvent is one persisted telemetry record emitted by a bracelet.
// Rows are append-only: they are never updated and never deleted by the
// normal flow. Temperature and the six-axis motion sample are optional;
// absent fields are stored as NULL.
type SensorEvent struct {
	ID          uuid.UUID `json:"id"`
	BraceletID  uuid.UUID `json:"pulsera_id"`
	Mensaje     string    `json:"mensaje"`
	Temperatura *float64  `json:"temperatura"`
	Ax          *float64  `json:"ax"`
	Ay          *float64  `json:"ay"`
	Az          *float64  `json:"az"`
	Gx          *float64  `json:"gx"`
	Gy          *float64  `json:"gy"`
	Gz          *float64  `json:"gz"`
	Fecha       time.Time `json:"fecha"`
}

// HasMotionSample reports whether the event carries a complete six-axis
// accelerometer/gyroscope sample.
func (e *SensorEvent) HasMotionSample() bool {
	return e.Ax != nil && e.Ay != nil && e.Az != nil &&
		e.Gx != nil && e.Gy != nil && e.Gz != nil
}
