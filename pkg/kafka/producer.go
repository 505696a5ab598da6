package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// Producer publishes events to Kafka, one topic per routing key.
type Producer struct {
	producer sarama.SyncProducer
	logger   *zap.Logger
}

// NewProducer creates a synchronous producer that waits for all in-sync replicas.
func NewProducer(brokers []string, logger *zap.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Version = sarama.V2_6_0_0

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &Producer{
		producer: producer,
		logger:   logger,
	}, nil
}

// Publish sends body to the topic named routingKey, partitioned by key.
func (p *Producer) Publish(ctx context.Context, routingKey, key string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: routingKey,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(body),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message to %s: %w", routingKey, err)
	}

	p.logger.Debug("event published to kafka",
		zap.String("topic", routingKey),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
		zap.String("key", key))
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
