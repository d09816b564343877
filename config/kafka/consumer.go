package kafka

import (
	"errors"
	"fmt"
	"sync"

	"insight-srv/config"
	"insight-srv/pkg/kafka"
)

var (
	consumerInstance kafka.IConsumer
	consumerMu       sync.Mutex
)

// ConnectConsumer joins the analysis request consumer group. Returns the existing
// group when already connected; a failed attempt can be retried.
func ConnectConsumer(cfg config.KafkaConfig) (kafka.IConsumer, error) {
	consumerMu.Lock()
	defer consumerMu.Unlock()

	if consumerInstance != nil {
		return consumerInstance, nil
	}
	if cfg.RequestTopic == "" {
		return nil, errors.New("kafka.request_topic is required for the consumer")
	}

	client, err := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka consumer: %w", err)
	}

	consumerInstance = client
	return consumerInstance, nil
}

// DisconnectConsumer leaves the consumer group and resets the singleton.
func DisconnectConsumer() error {
	consumerMu.Lock()
	defer consumerMu.Unlock()

	if consumerInstance == nil {
		return nil
	}
	err := consumerInstance.Close()
	consumerInstance = nil
	return err
}
