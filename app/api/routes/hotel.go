package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/staybluo/pkg/domains/hotel"
)

func HotelRoutes(r *gin.RouterGroup, catalog *hotel.Catalog) {
	r.GET("", listHotels(catalog))
}

func listHotels(catalog *hotel.Catalog) func(c *gin.Context) {
	return func(c *gin.Context) {
		city := c.Query("city")
		roomType := c.Query("room_type")

		c.JSON(200, gin.H{"hotels": catalog.Filter(city, roomType)})
	}
}
