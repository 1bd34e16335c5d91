package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/staybluo/pkg/utils"
)

// Failure classes of a dispatch attempt. Everything here is a server-side
// condition from the caller's point of view: the store write that preceded
// the dispatch has already happened.
var (
	ErrMissingRecipient = errors.New("email or phone number is required to send OTP")
	ErrInvalidPhone     = errors.New("phone number must be in E.164 format")
	ErrNotConfigured    = errors.New("transport configuration is missing")
)

const (
	ChannelEmail    = "email"
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"

	KindOTP     = "otp"
	KindInquiry = "inquiry"

	StatusSent   = "sent"
	StatusFailed = "failed"
)

// MailSender delivers a plain-text email through the SMTP transport.
type MailSender interface {
	SendMail(ctx context.Context, to, subject, body string) error
}

// TextSender delivers a short text to a phone number. Implemented by the
// Twilio client and the operator WhatsApp channel.
type TextSender interface {
	Channel() string
	SendText(ctx context.Context, to, body string) error
}

// Dispatcher fans a message out to the requested channels. One attempt per
// invocation, no retry; a failure in either channel fails the dispatch.
type Dispatcher struct {
	mail     MailSender
	text     TextSender
	recorder Recorder
}

func NewDispatcher(mail MailSender, text TextSender, recorder Recorder) *Dispatcher {
	return &Dispatcher{
		mail:     mail,
		text:     text,
		recorder: recorder,
	}
}

// SendOTP delivers the code to every channel the user has an address for.
// The email leg runs first; its failure short-circuits the SMS leg, matching
// the no-partial-success contract.
func (d *Dispatcher) SendOTP(ctx context.Context, email, phone, code string) error {
	if email == "" && phone == "" {
		return ErrMissingRecipient
	}

	body := "Your OTP is: " + code

	if email != "" {
		err := d.mail.SendMail(ctx, email, "OTP Verification", body)
		d.record(ctx, ChannelEmail, email, KindOTP, err)
		if err != nil {
			return err
		}
	}

	if phone != "" {
		if !utils.IsE164(phone) {
			err := fmt.Errorf("%w: %s", ErrInvalidPhone, phone)
			d.record(ctx, d.text.Channel(), phone, KindOTP, err)
			return err
		}
		err := d.text.SendText(ctx, phone, body)
		d.record(ctx, d.text.Channel(), phone, KindOTP, err)
		if err != nil {
			return err
		}
	}

	return nil
}

// SendInquiry forwards a booking inquiry to the site operator's mailbox.
func (d *Dispatcher) SendInquiry(ctx context.Context, to, subject, body string) error {
	err := d.mail.SendMail(ctx, to, subject, body)
	d.record(ctx, ChannelEmail, to, KindInquiry, err)
	return err
}

func (d *Dispatcher) record(ctx context.Context, channel, recipient, kind string, err error) {
	if d.recorder == nil {
		return
	}
	status, detail := StatusSent, ""
	if err != nil {
		status, detail = StatusFailed, err.Error()
	}
	d.recorder.Record(ctx, channel, recipient, kind, status, detail)
}
