package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/config"
)

const source = "geocoord-backend"

// KafkaPublisher writes CloudEvents to a single topic, keyed so that events
// about the same record land on the same partition.
type KafkaPublisher struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

func NewKafkaPublisher(cfg config.KafkaConfig, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafkago.Writer{
			Addr:                   kafkago.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafkago.Hash{},
			RequiredAcks:           kafkago.RequireOne,
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
		logger: logger,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, eventType, key string, data any) error {
	event, err := NewCloudEvent(source, eventType, data)
	if err != nil {
		return err
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling cloud event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafkago.Header{
			{Key: "ce_type", Value: []byte(eventType)},
		},
	})
	if err != nil {
		return fmt.Errorf("writing kafka message: %w", err)
	}

	p.logger.Debug("event published",
		zap.String("type", eventType),
		zap.String("key", key),
		zap.String("event_id", event.ID),
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops every event. It is used when no brokers are
// configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, string, any) error { return nil }

func (NoopPublisher) Close() error { return nil }
