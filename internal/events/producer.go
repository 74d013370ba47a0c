// Package events publishes storefront domain events to Kafka. Publishing is
// best effort: callers log a failed publish and move on, the request that
// triggered the event never fails because of it.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	TopicOrders       = "storefront.orders"
	TopicTestimonials = "storefront.testimonials"
	TopicArtworks     = "storefront.artworks"
)

type Producer struct {
	writer *kafka.Writer
}

// NewProducer returns nil when address is empty, and a nil *Producer is a
// safe no-op publisher.
func NewProducer(address string) *Producer {
	if address == "" {
		return nil
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(address),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: w}
}

func (p *Producer) PublishEvent(ctx context.Context, topic, key string, event interface{}) error {
	if p == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: json.Marshal failed: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write failed: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
