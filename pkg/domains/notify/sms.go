package notify

import (
	"context"
	"fmt"

	"github.com/staybluo/pkg/config"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSender sends SMS through Twilio's messaging API.
type TwilioSender struct {
	cfg    config.SMS
	client *twilio.RestClient
}

func NewTwilioSender(cfg config.SMS) *TwilioSender {
	var client *twilio.RestClient
	if cfg.AccountSID != "" && cfg.AuthToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		})
	}
	return &TwilioSender{cfg: cfg, client: client}
}

func (t *TwilioSender) Channel() string {
	return ChannelSMS
}

func (t *TwilioSender) SendText(ctx context.Context, to, body string) error {
	if t.client == nil || t.cfg.From == "" {
		return fmt.Errorf("%w: twilio account sid, auth token and sender number are required", ErrNotConfigured)
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.cfg.From)
	params.SetBody(body)

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send sms to %s: %w", to, err)
	}
	return nil
}
