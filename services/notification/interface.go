// File: services/notification/interface.go
package notification

import (
	"context"

	"medibook/config"
	"medibook/models"
	"medibook/services/tasks"

	"github.com/hibiken/asynq"
)

// NotificationService hands booking notices to the out-of-band delivery
// queue. Enqueue failures are the caller's to log; delivery itself happens
// in the worker.
type NotificationService interface {
	EnqueueBookingNotice(ctx context.Context, payload models.NotificationPayload) error
}

// DefaultNotificationService enqueues notices onto the asynq queue backed by
// Redis.
type DefaultNotificationService struct {
	Client *asynq.Client
}

// NewDefaultNotificationService builds the service with a queue client on
// the configured Redis notification DB.
func NewDefaultNotificationService() *DefaultNotificationService {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	})
	return &DefaultNotificationService{Client: client}
}

func (s *DefaultNotificationService) EnqueueBookingNotice(ctx context.Context, payload models.NotificationPayload) error {
	task, err := tasks.NewBookingNoticeTask(payload)
	if err != nil {
		return err
	}
	_, err = s.Client.EnqueueContext(ctx, task, asynq.MaxRetry(3))
	return err
}
