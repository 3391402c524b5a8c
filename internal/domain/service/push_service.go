package service

import "context"

// PushService defines the contract for push notification delivery to a
// caregiver's registered devices.
type PushService interface {
	// SendPush sends a push notification to a single device token.
	SendPush(ctx context.Context, token, title, body string, data map[string]string) error
}
