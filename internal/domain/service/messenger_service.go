package service

import "context"

// MessengerService defines the contract for the outbound messaging gateway
// used to reach a caregiver's phone. Delivery is best effort: callers log
// and swallow failures, there is no retry or delivery confirmation.
type MessengerService interface {
	// SendWhatsApp sends a single WhatsApp message to a phone number in
	// E.164 format.
	SendWhatsApp(ctx context.Context, to, body string) error
}
