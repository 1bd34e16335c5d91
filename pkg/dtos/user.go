package dtos

// DTO for user signup
type SignupDTO struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required,isphone"`
}

// DTO for user login
type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Identifier operations take email OR phone; neither is rejected by the
// service, not by binding, so the response message matches the other
// identifier failures.
type VerifyOTPDTO struct {
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
	Otp   string `json:"otp" binding:"required"`
}

type ForgotPasswordDTO struct {
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

type ResetPasswordDTO struct {
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Otp         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type ProfileDTO struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	IsVerified bool   `json:"is_verified"`
}
