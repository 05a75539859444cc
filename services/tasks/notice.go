package tasks

import (
	"encoding/json"

	"medibook/models"

	"github.com/hibiken/asynq"
)

// TypeBookingNotice is the queue task type for booking confirmation and
// cancellation notices.
const TypeBookingNotice = "notice:booking"

// NewBookingNoticeTask builds the queued task for a booking notice.
func NewBookingNoticeTask(payload models.NotificationPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingNotice, b), nil
}
