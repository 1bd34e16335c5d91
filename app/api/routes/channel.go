package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/staybluo/pkg/constant"
	"github.com/staybluo/pkg/domains/notify"
	"github.com/staybluo/pkg/middleware"
)

// ChannelRoutes manages the operator WhatsApp channel. Pairing exposes a QR
// code, so everything here sits behind the admin key.
func ChannelRoutes(r *gin.RouterGroup, ch *notify.WhatsAppChannel, adminKey string) {
	adminGroup := r.Group("", middleware.Admin(adminKey))
	{
		adminGroup.GET("/qr", pairChannel(ch))
		adminGroup.GET("/status", channelStatus(ch))
		adminGroup.POST("/disconnect", disconnectChannel(ch))
	}
}

func pairChannel(ch *notify.WhatsAppChannel) func(c *gin.Context) {
	return func(c *gin.Context) {
		code, err := ch.Pair(c)
		if err != nil {
			c.JSON(500, gin.H{"message": err.Error()})
			return
		}

		c.JSON(200, gin.H{
			"message": constant.QR_CODE_GENERATED,
			"qr_code": code,
		})
	}
}

func channelStatus(ch *notify.WhatsAppChannel) func(c *gin.Context) {
	return func(c *gin.Context) {
		status, err := ch.Status(c)
		if err != nil {
			c.JSON(500, gin.H{"message": err.Error()})
			return
		}

		c.JSON(200, gin.H{
			"message": constant.STATUS_RETRIEVED,
			"status":  status,
		})
	}
}

func disconnectChannel(ch *notify.WhatsAppChannel) func(c *gin.Context) {
	return func(c *gin.Context) {
		if err := ch.Disconnect(c); err != nil {
			c.JSON(500, gin.H{"message": err.Error()})
			return
		}

		c.JSON(200, gin.H{"message": constant.CHANNEL_DISCONNECTED})
	}
}
