package auth

import "strings"

type identifierKind int

const (
	byEmail identifierKind = iota + 1
	byPhone
)

// Identifier locates a user by exactly one of email or phone. The zero value
// is invalid; construct one with EmailIdentifier, PhoneIdentifier or
// ResolveIdentifier.
type Identifier struct {
	kind  identifierKind
	value string
}

func EmailIdentifier(email string) Identifier {
	return Identifier{kind: byEmail, value: strings.ToLower(strings.TrimSpace(email))}
}

func PhoneIdentifier(phone string) Identifier {
	return Identifier{kind: byPhone, value: strings.TrimSpace(phone)}
}

// ResolveIdentifier builds an Identifier from the dual-field request shape.
// Email wins when both are present; neither is ErrMissingIdentifier.
func ResolveIdentifier(email, phone string) (Identifier, error) {
	switch {
	case strings.TrimSpace(email) != "":
		return EmailIdentifier(email), nil
	case strings.TrimSpace(phone) != "":
		return PhoneIdentifier(phone), nil
	default:
		return Identifier{}, ErrMissingIdentifier
	}
}

func (id Identifier) IsZero() bool {
	return id.kind == 0
}

func (id Identifier) String() string {
	return id.value
}
