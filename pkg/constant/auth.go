package constant

const (
	INVALID_REQUEST     = "Invalid request payload"
	OTP_SENT            = "OTP sent successfully"
	OTP_VERIFIED        = "OTP verified successfully"
	LOGIN_SUCCESS       = "Login successful"
	PASSWORD_RESET      = "Password reset successfully"
	USER_CREATED        = "User created successfully"
	UNAUTHORIZED_ACCESS = "Unauthorized access"
)
