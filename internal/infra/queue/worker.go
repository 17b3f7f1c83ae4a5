package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
)

// ActivityWriter is the slice of the activity repository the worker needs.
type ActivityWriter interface {
	Insert(ctx context.Context, activity *entity.Activity) error
}

// Worker drains the activity queue and persists events. Tracking is
// best-effort telemetry: a dropped event must never surface to the visitor
// whose click produced it, so failures end on the DLQ, not in a response.
type Worker struct {
	Channel *amqp.Channel
	Repo    ActivityWriter
}

func NewWorker(ch *amqp.Channel, repo ActivityWriter) *Worker {
	return &Worker{
		Channel: ch,
		Repo:    repo,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // queue
		"",        // consumer
		false,     // auto-ack (manual is safer)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload ActivityPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] Invalid JSON: %s", err)
				// Malformed message. Reject without requeue so it does not jam the queue.
				d.Nack(false, false)
				continue
			}

			if err := w.processMessage(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] Failed to persist activity %s: %s", payload.ActivityID, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Activity worker waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) processMessage(ctx context.Context, payload ActivityPayload) error {
	// Events published before validation existed, or by unknown clients, get
	// acked and dropped: there is nothing useful to retry.
	if !entity.IsValidActivityType(payload.Type) {
		log.Printf("⚠️ [WORKER] Unknown activity type %q, dropping", payload.Type)
		return nil
	}
	if payload.UserID == "" && payload.SessionID == "" {
		log.Printf("⚠️ [WORKER] Activity %s has no actor reference, dropping", payload.ActivityID)
		return nil
	}

	activity := &entity.Activity{
		ID:        payload.ActivityID,
		UserID:    payload.UserID,
		SessionID: payload.SessionID,
		Type:      payload.Type,
		Metadata:  payload.Metadata,
		CreatedAt: payload.OccurredAt,
	}

	return w.Repo.Insert(ctx, activity)
}
