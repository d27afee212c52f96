package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/codetrackr/internal/application/service"
	"github.com/khoahotran/codetrackr/internal/config"
	"github.com/khoahotran/codetrackr/internal/domain/activity"
)

const TopicActivityEvents = "activity.events"

// KafkaProducerClient publishes derived activity rows for downstream
// consumers (notifications, analytics). Publication happens after the
// owning transaction commits and is best-effort.
type KafkaProducerClient struct {
	ActivityEventsWriter *kafka.Writer
}

var _ service.EventPublisher = (*KafkaProducerClient)(nil)

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	activityWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicActivityEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		ActivityEventsWriter: activityWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishActivity(ctx context.Context, a *activity.Activity) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal activity event failed: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(a.OwnerID.String()),
		Value: payload,
	}
	if err := c.ActivityEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write activity event failed: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ActivityEventsWriter != nil {
		c.ActivityEventsWriter.Close()
	}
}
