package cmd

import (
	"github.com/staybluo/pkg/config"
	"github.com/staybluo/pkg/database"
	"github.com/staybluo/pkg/server"
	"github.com/staybluo/pkg/utils"
)

func StartApp() {
	utils.LoadEnv()
	config := config.InitConfig()
	database.InitDB(config.Database)
	server.LaunchHttpServer(config)
}
