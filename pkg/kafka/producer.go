package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
)

const (
	_defaultWriteTimeout = 10 * time.Second
	_defaultBatchSize    = 100
	_defaultBatchTimeout = time.Second
)

// Producer - Kafka message producer.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string, opts ...ProducerOption) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka producer: brokers list is empty")
	}

	if topic == "" {
		return nil, errors.New("kafka producer: topic is empty")
	}

	config := &producerConfig{
		writeTimeout: _defaultWriteTimeout,
		batchSize:    _defaultBatchSize,
		batchTimeout: _defaultBatchTimeout,
		compression:  kafka.Snappy,
	}

	for _, opt := range opts {
		opt(config)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: config.writeTimeout,
		BatchSize:    config.batchSize,
		BatchTimeout: config.batchTimeout,
		Compression:  config.compression,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	return &Producer{writer: writer}, nil
}

// WriteMessage - marshal a value and send it under the given key.
func (p *Producer) WriteMessage(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kafka producer - marshal: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka producer - write message: %w", err)
	}

	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

type producerConfig struct {
	writeTimeout time.Duration
	batchSize    int
	batchTimeout time.Duration
	compression  kafka.Compression
}

// ProducerOption - producer settings.
type ProducerOption func(*producerConfig)

func WithWriteTimeout(timeout time.Duration) ProducerOption {
	return func(c *producerConfig) {
		c.writeTimeout = timeout
	}
}

func WithBatchSize(size int) ProducerOption {
	return func(c *producerConfig) {
		c.batchSize = size
	}
}

func WithBatchTimeout(timeout time.Duration) ProducerOption {
	return func(c *producerConfig) {
		c.batchTimeout = timeout
	}
}

func WithCompression(compression kafka.Compression) ProducerOption {
	return func(c *producerConfig) {
		c.compression = compression
	}
}
