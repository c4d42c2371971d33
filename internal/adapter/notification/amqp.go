package notification

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
)

// Routing keys for transfer outcome events, published on the default
// exchange so each key doubles as a queue name.
const (
	succeededRoutingKey = "wallet.transfer.succeeded"
	deniedRoutingKey    = "wallet.transfer.denied"
)

const publishTimeout = 5 * time.Second

// transferSucceededEvent is the payload published after a completed debit
type transferSucceededEvent struct {
	Amount    string    `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// transferDeniedEvent is the payload published after a gateway denial
type transferDeniedEvent struct {
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// EventSink is a domain.NotificationSink that publishes transfer
// outcome events to RabbitMQ. Publishing is fire-and-forget: delivery
// errors are logged and never surfaced to the caller.
type EventSink struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// NewEventSink connects to RabbitMQ and declares the outcome queues
func NewEventSink(amqpURL string) (*EventSink, error) {
	// Bounded dial timeout so startup does not hang indefinitely
	conn, err := amqp091.DialConfig(amqpURL, amqp091.Config{Dial: amqp091.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	for _, queue := range []string{succeededRoutingKey, deniedRoutingKey} {
		if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, err
		}
	}

	return &EventSink{conn: conn, channel: ch}, nil
}

// NotifySuccess publishes a transfer-succeeded event
func (s *EventSink) NotifySuccess(amount decimal.Decimal) {
	s.publish(succeededRoutingKey, transferSucceededEvent{
		Amount:    amount.String(),
		Timestamp: time.Now().UTC(),
	})
}

// NotifyDenied publishes a transfer-denied event
func (s *EventSink) NotifyDenied(reason string) {
	s.publish(deniedRoutingKey, transferDeniedEvent{
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	})
}

// Close closes the channel and the connection
func (s *EventSink) Close() {
	if s.channel != nil {
		s.channel.Close()
	}
	if s.conn != nil {
		s.conn.Close()
	}
}

func (s *EventSink) publish(routingKey string, event interface{}) {
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("level=warn component=notification msg=\"failed to marshal event\" routing_key=%s error=%v", routingKey, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = s.channel.PublishWithContext(ctx,
		"",         // default exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		log.Printf("level=warn component=notification msg=\"publish failed\" routing_key=%s error=%v", routingKey, err)
	}
}
