package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/staybluo/pkg/dtos"
	"github.com/staybluo/pkg/entities"
	"github.com/staybluo/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OTP codes issued on signup and forgot-password are good for this long.
// The original flow never expired them; any guess stayed valid until a new
// code overwrote it.
const otpTTL = 10 * time.Minute

const tokenTTL = 24 * time.Hour

// OTPDispatcher delivers a one-time code through the configured channels.
type OTPDispatcher interface {
	SendOTP(ctx context.Context, email, phone, code string) error
}

type Service interface {
	Signup(ctx context.Context, req dtos.SignupDTO) error
	Login(ctx context.Context, req dtos.LoginDTO) (string, error)
	VerifyOTP(ctx context.Context, id Identifier, code string) error
	ForgotPassword(ctx context.Context, id Identifier) error
	ResetPassword(ctx context.Context, id Identifier, code string, newPassword string) error
	Profile(ctx context.Context, userID uint) (entities.User, error)
}

type service struct {
	repository Repository
	dispatcher OTPDispatcher
	secret     string
}

func NewService(r Repository, d OTPDispatcher, secret string) Service {
	return &service{
		repository: r,
		dispatcher: d,
		secret:     secret,
	}
}

func (s *service) Signup(ctx context.Context, req dtos.SignupDTO) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Check if user already exists
	_, err := s.repository.FindUserByEmail(ctx, email)
	if err == nil {
		return ErrDuplicateUser
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	// Hash password
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	code := utils.GenerateOTP()
	expiresAt := time.Now().Add(otpTTL)

	// Create user unverified, holding the pending code
	user := entities.User{
		Name:         req.Name,
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		Password:     string(passwordHash),
		IsVerified:   false,
		Otp:          &code,
		OtpExpiresAt: &expiresAt,
	}

	if err := s.repository.CreateUser(ctx, &user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	// The user record persists even if dispatch fails; the failure surfaces
	// to the caller and the dispatch log records the attempt.
	return s.dispatcher.SendOTP(ctx, user.Email, user.Phone, code)
}

func (s *service) Login(ctx context.Context, req dtos.LoginDTO) (string, error) {
	user, err := s.repository.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	// An unverified user cannot authenticate regardless of the password.
	if !user.IsVerified {
		return "", ErrNotVerified
	}

	return s.signToken(user.ID)
}

func (s *service) VerifyOTP(ctx context.Context, id Identifier, code string) error {
	user, err := s.findByIdentifier(ctx, id)
	if err != nil {
		return err
	}

	if !otpMatches(user, code) {
		return ErrOTPMismatch
	}

	user.IsVerified = true
	user.Otp = nil
	user.OtpExpiresAt = nil

	if err := s.repository.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (s *service) ForgotPassword(ctx context.Context, id Identifier) error {
	user, err := s.findByIdentifier(ctx, id)
	if err != nil {
		return err
	}

	code := utils.GenerateOTP()
	expiresAt := time.Now().Add(otpTTL)
	user.Otp = &code
	user.OtpExpiresAt = &expiresAt

	if err := s.repository.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	// Stored code stays in place whether or not dispatch succeeds.
	return s.dispatcher.SendOTP(ctx, user.Email, user.Phone, code)
}

func (s *service) ResetPassword(ctx context.Context, id Identifier, code string, newPassword string) error {
	user, err := s.findByIdentifier(ctx, id)
	if err != nil {
		return err
	}

	if !otpMatches(user, code) {
		return ErrOTPMismatch
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(passwordHash)
	user.Otp = nil
	user.OtpExpiresAt = nil

	if err := s.repository.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (s *service) Profile(ctx context.Context, userID uint) (entities.User, error) {
	user, err := s.repository.FindUserByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return entities.User{}, ErrUserNotFound
		}
		return entities.User{}, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

func (s *service) findByIdentifier(ctx context.Context, id Identifier) (entities.User, error) {
	if id.IsZero() {
		return entities.User{}, ErrMissingIdentifier
	}
	user, err := s.repository.FindUserByIdentifier(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return entities.User{}, ErrUserNotFound
		}
		return entities.User{}, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

// otpMatches reports whether the supplied code equals the stored one and the
// stored one has not expired. A cleared code never matches, so a repeated
// verify with an already-consumed code fails.
func otpMatches(user entities.User, code string) bool {
	if user.Otp == nil || code == "" || *user.Otp != code {
		return false
	}
	if user.OtpExpiresAt != nil && time.Now().After(*user.OtpExpiresAt) {
		return false
	}
	return true
}

func (s *service) signToken(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(tokenTTL).Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
