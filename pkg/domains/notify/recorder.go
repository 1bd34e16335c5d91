package notify

import (
	"context"
	"log"

	"github.com/staybluo/pkg/database"
	"github.com/staybluo/pkg/entities"
)

// Recorder persists dispatch attempts. Recording is best effort: a failed
// insert never fails the dispatch itself.
type Recorder interface {
	Record(ctx context.Context, channel, recipient, kind, status, detail string)
}

type gormRecorder struct{}

func NewRecorder() Recorder {
	return gormRecorder{}
}

func (gormRecorder) Record(ctx context.Context, channel, recipient, kind, status, detail string) {
	entry := entities.DispatchLog{
		Channel:   channel,
		Recipient: recipient,
		Kind:      kind,
		Status:    status,
		Detail:    detail,
	}
	if err := database.DBClient().WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("[error] failed to record dispatch attempt: %v", err)
	}
}
