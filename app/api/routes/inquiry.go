package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/staybluo/pkg/constant"
	"github.com/staybluo/pkg/domains/inquiry"
	"github.com/staybluo/pkg/dtos"
)

// InquiryRoutes registers the inquiry endpoint at the engine root; the
// front-end posts to /send-email directly, outside the /api group.
func InquiryRoutes(r *gin.Engine, s inquiry.Service) {
	r.POST("/send-email", sendInquiry(s))
}

func sendInquiry(s inquiry.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.InquiryDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"success": false, "message": constant.INVALID_REQUEST})
			return
		}

		if err := s.Submit(c, req); err != nil {
			c.JSON(500, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(200, gin.H{"success": true})
	}
}
