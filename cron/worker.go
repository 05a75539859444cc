package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"medibook/config"
	"medibook/models"
	"medibook/services/tasks"
	"medibook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NoticeSender delivers one booking notice. The default sender writes the
// composed notice to the log; an SMTP or push implementation can be swapped
// in without touching the worker.
type NoticeSender interface {
	Send(ctx context.Context, payload models.NotificationPayload) error
}

type logSender struct{}

func (logSender) Send(_ context.Context, p models.NotificationPayload) error {
	var body string
	switch p.Kind {
	case "cancelled":
		body = fmt.Sprintf("Dear %s, your appointment with Dr. %s scheduled for %s has been cancelled.",
			p.PatientName, p.DoctorName, p.StartTime)
	default:
		body = fmt.Sprintf("Dear %s, your appointment with Dr. %s has been confirmed for %s - %s. Please arrive 10 minutes early.",
			p.PatientName, p.DoctorName, p.StartTime, p.EndTime)
	}
	utils.GetLogger().Info("booking notice",
		zap.String("kind", p.Kind),
		zap.String("to", p.PatientEmail),
		zap.String("appointmentID", p.AppointmentID),
		zap.String("body", body),
	)
	return nil
}

// InitNoticeWorker runs the async notice worker in the background.
func InitNoticeWorker(sender NoticeSender) {
	if sender == nil {
		sender = logSender{}
	}

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingNotice, handleBookingNotice(sender))

	go func() {
		log.Println("[NoticeWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NoticeWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)
				time.Sleep(time.Duration(attempts) * time.Second)
				continue
			}
			return
		}
		log.Printf("[NoticeWorker] Giving up after %d attempts; notices will not be delivered", maxAttempts)
	}()
}

func handleBookingNotice(sender NoticeSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload models.NotificationPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to decode booking notice payload: %w", err)
		}
		return sender.Send(ctx, payload)
	}
}
