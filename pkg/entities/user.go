package entities

import (
	"time"

	"gorm.io/gorm"
)

// User is a credential record. Otp holds the current one-time code between
// signup/forgot-password and the matching verify/reset; it is NULL at all
// other times. The password hash never leaves this struct as JSON.
type User struct {
	gorm.Model
	Name         string     `json:"name" gorm:"type:varchar(255);not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	Phone        string     `json:"phone" gorm:"uniqueIndex;type:varchar(20);not null"`
	Password     string     `json:"-" gorm:"not null"`
	IsVerified   bool       `json:"is_verified" gorm:"default:false"`
	Otp          *string    `json:"-" gorm:"type:varchar(10)"`
	OtpExpiresAt *time.Time `json:"-"`
}
