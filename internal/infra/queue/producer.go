package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)


// ReminderPayload is what the due-follow-up scanner hands to the
// dispatch worker. OwnerPhone is the namespace phone, not the lead's.
type ReminderPayload struct {
	LeadID         string `json:"lead_id"`
	Namespace      string `json:"namespace"`
	OwnerPhone     string `json:"owner_phone"`
	LeadName       string `json:"lead_name"`
	WhatsappNumber string `json:"whatsapp_number_"`
	FollowUpDate   string `json:"followUpDate"`
	FollowUpTime   string `json:"followUpTime"`
}

type ReminderProducerInterface interface {
	PublishReminder(ctx context.Context, payload ReminderPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}


func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishReminder(ctx context.Context, payload ReminderPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
