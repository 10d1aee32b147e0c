package services

import (
	"github.com/segmentio/kafka-go"

	"github.com/light-bringer/storefront-admin/internal/config"
)

// NewKafkaWriter builds the outbox publisher. Messages are hashed by key so
// every event of one aggregate lands on the same partition.
func NewKafkaWriter(cfg *config.Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}
