package services

import (
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/storefront-admin/internal/config"
)

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter(&config.Config{KafkaBrokers: []string{"b1:9092", "b2:9092"}, KafkaTopic: "storefront-events"})

	assert.Equal(t, "storefront-events", w.Topic)
	assert.Equal(t, "b1:9092", w.Addr.String())
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
	assert.Equal(t, kafka.RequireAll, w.RequiredAcks)
}
