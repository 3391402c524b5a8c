// Package notification contains the outbound alert channels: WhatsApp via
// the Twilio gateway and push via Firebase Cloud Messaging.
package notification

import (
	"context"
	"fmt"

	"vigia/config"
	"vigia/internal/domain/service"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type twilioService struct {
	client     *twilio.RestClient
	fromNumber string
}

// NewTwilioService creates the WhatsApp messaging gateway client.
func NewTwilioService(cfg *config.TwilioConfig) (service.MessengerService, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		return nil, fmt.Errorf("twilio credentials are incomplete")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &twilioService{
		client:     client,
		fromNumber: cfg.FromNumber,
	}, nil
}

// SendWhatsApp sends a single WhatsApp message through the Twilio API.
// The gateway applies its own request timeout; callers treat any error as
// "alert not sent" and never retry.
func (s *twilioService) SendWhatsApp(_ context.Context, to, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetFrom("whatsapp:" + s.fromNumber)
	params.SetTo("whatsapp:" + to)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send WhatsApp message: %w", err)
	}

	return nil
}
