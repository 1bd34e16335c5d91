package main

import (
	"github.com/staybluo/app/cmd"
)

// @title Staybluo API
// @version 1.0
// @description Serviced-apartment booking-inquiry API with OTP-verified user authentication.

// @host  localhost:5000
// @BasePath /api

func main() {
	cmd.StartApp()
}
