package usecase

import (
	"context"
)

// FallAlert carries the facts a caregiver needs when a fall is detected.
type FallAlert struct {
	Token       string
	Mensaje     string
	Temperatura *float64
}

// AlertUsecase defines the interface for caregiver alerting.
type AlertUsecase interface {
	// NotifyFallDetected looks up the caregiver bound to the bracelet and
	// delivers the alert on every configured channel. Delivery is
	// best-effort per channel; an unbound bracelet is not an error.
	NotifyFallDetected(ctx context.Context, alert *FallAlert) error
}
