package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReminderNotifier is any channel that can carry a follow-up nudge to
// the account owner (WhatsApp template, email).
type ReminderNotifier interface {
	SendFollowUpReminder(ownerPhone, leadName, date, timeOfDay string) error
}

type ReminderEmailer interface {
	SendFollowUpReminder(to, leadName, date, timeOfDay string) error
}

type Worker struct {
	Channel    *amqp.Channel
	Notifier   ReminderNotifier
	Emailer    ReminderEmailer
	OwnerEmail string // optional; empty disables the email channel
}


func NewWorker(ch *amqp.Channel, notifier ReminderNotifier, emailer ReminderEmailer, ownerEmail string) *Worker {
	return &Worker{
		Channel:    ch,
		Notifier:   notifier,
		Emailer:    emailer,
		OwnerEmail: ownerEmail,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload ReminderPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Malformed message: reject without requeue so the queue keeps moving.
				d.Nack(false, false)
				continue
			}

			log.Printf("⏰ [WORKER] Follow-up due: lead=%s (%s) ns=%s",
				payload.LeadName, payload.LeadID, payload.Namespace)

			if err := w.dispatch(payload); err != nil {
				log.Printf("❌ [WORKER] Reminder delivery failed: %s", err)
				d.Nack(false, false) // off to the DLQ
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Reminder worker aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) dispatch(payload ReminderPayload) error {
	var lastErr error
	delivered := false

	if w.Notifier != nil && payload.OwnerPhone != "" {
		if err := w.Notifier.SendFollowUpReminder(
			payload.OwnerPhone, payload.LeadName, payload.FollowUpDate, payload.FollowUpTime,
		); err != nil {
			lastErr = err
		} else {
			delivered = true
		}
	}

	if w.Emailer != nil && w.OwnerEmail != "" {
		if err := w.Emailer.SendFollowUpReminder(
			w.OwnerEmail, payload.LeadName, payload.FollowUpDate, payload.FollowUpTime,
		); err != nil {
			lastErr = err
		} else {
			delivered = true
		}
	}

	// One successful channel is enough for an Ack.
	if delivered {
		return nil
	}
	return lastErr
}
