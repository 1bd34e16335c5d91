package entities

import (
	"time"

	"gorm.io/gorm"
)

// ChannelStatus tracks the liveness of a notification channel that keeps a
// long-lived session (currently only the operator WhatsApp channel).
type ChannelStatus struct {
	gorm.Model
	Channel      string    `json:"channel" gorm:"uniqueIndex;type:varchar(20);not null"`
	IsConnected  bool      `json:"is_connected" gorm:"default:false"`
	IsLoggedIn   bool      `json:"is_logged_in" gorm:"default:false"`
	LastActiveAt time.Time `json:"last_active_at"`
}

// DispatchLog records every outbound dispatch attempt. The message body is
// never stored, only where it went and whether it got there.
type DispatchLog struct {
	gorm.Model
	Channel   string `json:"channel" gorm:"type:varchar(20);not null"`
	Recipient string `json:"recipient" gorm:"type:varchar(255);not null"`
	Kind      string `json:"kind" gorm:"type:varchar(20);not null"`
	Status    string `json:"status" gorm:"type:varchar(20);not null"`
	Detail    string `json:"detail" gorm:"type:text"`
}
