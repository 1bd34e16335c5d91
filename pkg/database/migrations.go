package database

import (
	"github.com/staybluo/pkg/entities"
	"gorm.io/gorm"
)

// AutoMigrate runs database migrations
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.User{},
		&entities.ChannelStatus{},
		&entities.DispatchLog{},
	)
}
