package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/staybluo/pkg/constant"
	"github.com/staybluo/pkg/domains/auth"
	"github.com/staybluo/pkg/dtos"
	"github.com/staybluo/pkg/middleware"
	"github.com/staybluo/pkg/state"
)

func AuthRoutes(r *gin.RouterGroup, s auth.Service, secret string) {
	r.POST("/signup", signup(s))
	r.POST("/login", login(s))
	r.POST("/verify-otp", verifyOTP(s))
	r.POST("/forgot-password", forgotPassword(s))
	r.POST("/reset-password", resetPassword(s))
	r.GET("/me", middleware.CheckAuth(secret), me(s))
}

func signup(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.SignupDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"message": constant.INVALID_REQUEST})
			return
		}

		if err := s.Signup(c, req); err != nil {
			c.JSON(statusFor(err), gin.H{"message": err.Error()})
			return
		}

		c.JSON(201, gin.H{"message": constant.OTP_SENT})
	}
}

func login(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.LoginDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"message": constant.INVALID_REQUEST})
			return
		}

		token, err := s.Login(c, req)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"message": err.Error()})
			return
		}

		c.JSON(200, gin.H{
			"message": constant.LOGIN_SUCCESS,
			"token":   token,
		})
	}
}

func verifyOTP(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.VerifyOTPDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"message": constant.INVALID_REQUEST})
			return
		}

		id, err := auth.ResolveIdentifier(req.Email, req.Phone)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"message": err.Error()})
			return
		}

		if err := s.VerifyOTP(c, id, req.Otp); err != nil {
			c.JSON(statusFor(err), gin.H{"message": err.Error()})
			return
		}

		c.JSON(200, gin.H{"message": constant.OTP_VERIFIED})
	}
}

func forgotPassword(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.ForgotPasswordDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"message": constant.INVALID_REQUEST})
			return
		}

		id, err := auth.ResolveIdentifier(req.Email, req.Phone)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"message": err.Error()})
			return
		}

		if err := s.ForgotPassword(c, id); err != nil {
			c.JSON(statusFor(err), gin.H{"message": err.Error()})
			return
		}

		c.JSON(200, gin.H{"message": constant.OTP_SENT})
	}
}

func resetPassword(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.ResetPasswordDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"message": constant.INVALID_REQUEST})
			return
		}

		id, err := auth.ResolveIdentifier(req.Email, req.Phone)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"message": err.Error()})
			return
		}

		if err := s.ResetPassword(c, id, req.Otp, req.NewPassword); err != nil {
			c.JSON(statusFor(err), gin.H{"message": err.Error()})
			return
		}

		c.JSON(200, gin.H{"message": constant.PASSWORD_RESET})
	}
}

func me(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		userID := state.CurrentUser(c)
		if userID == 0 {
			c.JSON(401, gin.H{"message": constant.UNAUTHORIZED_ACCESS})
			return
		}

		user, err := s.Profile(c, userID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"message": err.Error()})
			return
		}

		c.JSON(200, gin.H{"user": dtos.ProfileDTO{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			Phone:      user.Phone,
			IsVerified: user.IsVerified,
		}})
	}
}
