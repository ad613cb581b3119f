package events

import (
	"context"
	"fmt"
	"time"

	"smartride/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

// Producer publishes booking lifecycle events to a single topic. The funnel
// works without one; wiring passes a nil IEventPublisher when Kafka is not
// configured.

type Producer struct {
	writer *kafka.Writer
}

var _ interfaces.IEventPublisher = (*Producer)(nil)

func NewProducer(brokers []string, topic string) *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		MaxAttempts:            5,
		ReadTimeout:            10 * time.Second,
		WriteTimeout:           10 * time.Second,
		Async:                  false,
		AllowAutoTopicCreation: true,
	}

	return &Producer{writer: w}
}

func (p *Producer) Publish(ctx context.Context, key string, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
