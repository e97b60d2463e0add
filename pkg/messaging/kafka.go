package messaging

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Publisher emits storefront activity events. A nil Publisher is a valid
// no-op, so local setups can run without brokers.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish fires the event without blocking the caller. Delivery failures are
// logged and dropped; events never affect a user action.
func (p *Publisher) Publish(key string, event interface{}) {
	if p == nil {
		return
	}

	jsonData, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal event: %v", err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		message := kafka.Message{
			Key:   []byte(key),
			Value: jsonData,
		}
		if err := p.writer.WriteMessages(ctx, message); err != nil {
			log.Printf("Failed to publish event: %v", err)
		}
	}()
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.writer.Close()
}

// Event types for storefront activity

type OrderPlacedEvent struct {
	Type                string  `json:"type"`
	UserID              string  `json:"user_id"`
	RestaurantID        string  `json:"restaurant_id"`
	OrderTrackingNumber string  `json:"order_tracking_number"`
	TotalAmount         float64 `json:"total_amount"`
}

type LoginEvent struct {
	Type   string `json:"type"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
