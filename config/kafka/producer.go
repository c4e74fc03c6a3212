package kafka

import (
	"fmt"

	"chatbot-srv/config"
	"chatbot-srv/pkg/kafka"
)

// ConnectProducer creates a Kafka producer for the configured topic.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	client, err := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}
	return client, nil
}
