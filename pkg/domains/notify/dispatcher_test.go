package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/staybluo/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mailCall struct {
	to, subject, body string
}

type fakeMail struct {
	calls []mailCall
	err   error
}

func (m *fakeMail) SendMail(ctx context.Context, to, subject, body string) error {
	m.calls = append(m.calls, mailCall{to: to, subject: subject, body: body})
	return m.err
}

type textCall struct {
	to, body string
}

type fakeText struct {
	calls []textCall
	err   error
}

func (t *fakeText) Channel() string { return ChannelSMS }

func (t *fakeText) SendText(ctx context.Context, to, body string) error {
	t.calls = append(t.calls, textCall{to: to, body: body})
	return t.err
}

type recordedEntry struct {
	channel, recipient, kind, status, detail string
}

type fakeRecorder struct {
	entries []recordedEntry
}

func (r *fakeRecorder) Record(ctx context.Context, channel, recipient, kind, status, detail string) {
	r.entries = append(r.entries, recordedEntry{channel, recipient, kind, status, detail})
}

func newTestDispatcher() (*Dispatcher, *fakeMail, *fakeText, *fakeRecorder) {
	mail := &fakeMail{}
	text := &fakeText{}
	rec := &fakeRecorder{}
	return NewDispatcher(mail, text, rec), mail, text, rec
}

func TestSendOTP_MissingRecipient(t *testing.T) {
	d, mail, text, _ := newTestDispatcher()

	err := d.SendOTP(context.Background(), "", "", "483920")
	assert.ErrorIs(t, err, ErrMissingRecipient)
	assert.Empty(t, mail.calls)
	assert.Empty(t, text.calls)
}

func TestSendOTP_EmailOnly(t *testing.T) {
	d, mail, text, rec := newTestDispatcher()

	require.NoError(t, d.SendOTP(context.Background(), "a@x.com", "", "483920"))

	require.Len(t, mail.calls, 1)
	assert.Equal(t, "a@x.com", mail.calls[0].to)
	assert.Equal(t, "OTP Verification", mail.calls[0].subject)
	assert.Contains(t, mail.calls[0].body, "483920")
	assert.Empty(t, text.calls)

	require.Len(t, rec.entries, 1)
	assert.Equal(t, StatusSent, rec.entries[0].status)
}

func TestSendOTP_BothChannels(t *testing.T) {
	d, mail, text, rec := newTestDispatcher()

	require.NoError(t, d.SendOTP(context.Background(), "a@x.com", "+11234567890", "483920"))

	require.Len(t, mail.calls, 1)
	require.Len(t, text.calls, 1)
	assert.Equal(t, "+11234567890", text.calls[0].to)
	assert.Contains(t, text.calls[0].body, "483920")

	require.Len(t, rec.entries, 2)
	assert.Equal(t, ChannelEmail, rec.entries[0].channel)
	assert.Equal(t, ChannelSMS, rec.entries[1].channel)
}

func TestSendOTP_InvalidPhone(t *testing.T) {
	d, _, text, rec := newTestDispatcher()

	// Missing "+": not E.164
	err := d.SendOTP(context.Background(), "", "12345", "483920")
	assert.ErrorIs(t, err, ErrInvalidPhone)
	assert.Empty(t, text.calls, "no provider call for a malformed number")

	require.Len(t, rec.entries, 1)
	assert.Equal(t, StatusFailed, rec.entries[0].status)
}

func TestSendOTP_EmailFailureShortCircuits(t *testing.T) {
	d, mail, text, rec := newTestDispatcher()
	mail.err = errors.New("smtp: connection refused")

	err := d.SendOTP(context.Background(), "a@x.com", "+11234567890", "483920")
	assert.EqualError(t, err, "smtp: connection refused")
	assert.Empty(t, text.calls)

	require.Len(t, rec.entries, 1)
	assert.Equal(t, StatusFailed, rec.entries[0].status)
	assert.Contains(t, rec.entries[0].detail, "connection refused")
}

func TestSendOTP_TextFailureSurfaces(t *testing.T) {
	d, _, text, _ := newTestDispatcher()
	text.err = errors.New("provider unavailable")

	err := d.SendOTP(context.Background(), "", "+11234567890", "483920")
	assert.EqualError(t, err, "provider unavailable")
}

func TestSendOTP_NilRecorder(t *testing.T) {
	d := NewDispatcher(&fakeMail{}, &fakeText{}, nil)
	assert.NoError(t, d.SendOTP(context.Background(), "a@x.com", "", "483920"))
}

func TestSendInquiry_RecordsInquiryKind(t *testing.T) {
	d, mail, _, rec := newTestDispatcher()

	require.NoError(t, d.SendInquiry(context.Background(), "ops@staybluo.com", "New booking inquiry", "details"))

	require.Len(t, mail.calls, 1)
	assert.Equal(t, "ops@staybluo.com", mail.calls[0].to)
	require.Len(t, rec.entries, 1)
	assert.Equal(t, KindInquiry, rec.entries[0].kind)
}

func TestSMTPSender_MissingConfig(t *testing.T) {
	s := NewSMTPSender(config.Mail{Host: "smtp.example.com", Port: "587"})

	err := s.SendMail(context.Background(), "a@x.com", "s", "b")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSMTPSender_BadPort(t *testing.T) {
	s := NewSMTPSender(config.Mail{Host: "smtp.example.com", Port: "not-a-port", User: "u", Pass: "p"})

	err := s.SendMail(context.Background(), "a@x.com", "s", "b")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestTwilioSender_MissingConfig(t *testing.T) {
	s := NewTwilioSender(config.SMS{})

	err := s.SendText(context.Background(), "+11234567890", "body")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestTwilioSender_MissingSenderNumber(t *testing.T) {
	s := NewTwilioSender(config.SMS{AccountSID: "AC123", AuthToken: "token"})

	err := s.SendText(context.Background(), "+11234567890", "body")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestWhatsAppChannel_NotPaired(t *testing.T) {
	ch := NewWhatsAppChannel(config.WhatsApp{StoreDSN: ":memory:"})

	err := ch.SendText(context.Background(), "+11234567890", "body")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestFormatJID(t *testing.T) {
	jid, err := formatJID("+1 (123) 456-7890")
	require.NoError(t, err)
	assert.Equal(t, "11234567890", jid.User)

	_, err = formatJID("+12345")
	assert.Error(t, err)
}
