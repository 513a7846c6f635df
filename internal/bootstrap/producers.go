package bootstrap

import (
	"fmt"

	"github.com/skinpulse/skinpulse/config"
	"github.com/skinpulse/skinpulse/pkg/kafka"
)

// InitPriceProducer builds the price-update producer, or nothing at all
// when Kafka is disabled.
func InitPriceProducer(cfg *config.Config) (*kafka.Producer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}

	producer, err := kafka.NewProducer(
		cfg.Kafka.Brokers,
		cfg.Kafka.TopicPriceUpdated,
		kafka.WithBatchSize(50),
	)
	if err != nil {
		return nil, fmt.Errorf("init price producer: %w", err)
	}

	return producer, nil
}
