package inquiry

import (
	"context"
	"fmt"
	"strings"

	"github.com/staybluo/pkg/domains/notify"
	"github.com/staybluo/pkg/dtos"
)

// Mailer is the slice of the notification dispatcher the inquiry flow needs.
type Mailer interface {
	SendInquiry(ctx context.Context, to, subject, body string) error
}

type Service interface {
	Submit(ctx context.Context, req dtos.InquiryDTO) error
}

type service struct {
	mailer   Mailer
	operator string
}

// NewService wires the inquiry flow to the operator's mailbox. Inquiries are
// forwarded, never persisted.
func NewService(m Mailer, operatorEmail string) Service {
	return &service{
		mailer:   m,
		operator: operatorEmail,
	}
}

func (s *service) Submit(ctx context.Context, req dtos.InquiryDTO) error {
	if s.operator == "" {
		return fmt.Errorf("%w: inquiry recipient address is not set", notify.ErrNotConfigured)
	}

	subject := "New booking inquiry: " + req.Hotel.Name
	body := formatInquiry(req)

	return s.mailer.SendInquiry(ctx, s.operator, subject, body)
}

func formatInquiry(req dtos.InquiryDTO) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A visitor submitted a booking inquiry.\n\n")
	fmt.Fprintf(&b, "Room:     %s\n", req.Hotel.Name)
	fmt.Fprintf(&b, "Location: %s\n", req.Hotel.Location)
	fmt.Fprintf(&b, "Price:    %s\n", req.Hotel.Price)
	fmt.Fprintf(&b, "Type:     %s\n\n", req.Hotel.Type)
	fmt.Fprintf(&b, "Name:  %s\n", req.UserDetails.Name)
	fmt.Fprintf(&b, "Email: %s\n", req.UserDetails.Email)
	fmt.Fprintf(&b, "Phone: %s\n", req.UserDetails.Phone)
	return b.String()
}
