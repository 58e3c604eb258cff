package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/baonguyen/folio-api/internal/application/service"
	"github.com/baonguyen/folio-api/internal/config"
)

const (
	TopicContentEvents = "content.events"
	TopicAssetCleanup  = "asset.cleanup"
)

type ContentEventPayload struct {
	EventType  service.ContentEventType `json:"event_type"`
	Entity     string                   `json:"entity"`
	EntityID   uuid.UUID                `json:"entity_id"`
	OccurredAt time.Time                `json:"occurred_at"`
}

type AssetCleanupPayload struct {
	PublicID    string    `json:"public_id"`
	RequestedAt time.Time `json:"requested_at"`
}

type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
	AssetCleanupWriter  *kafka.Writer
}

var _ service.Publisher = (*KafkaProducerClient)(nil)

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contentWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContentEvents,
		Balancer: &kafka.LeastBytes{},
	}

	cleanupWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicAssetCleanup,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		ContentEventsWriter: contentWriter,
		AssetCleanupWriter:  cleanupWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishContentEvent(ctx context.Context, entity string, eventType service.ContentEventType, entityID uuid.UUID) error {
	payload := ContentEventPayload{
		EventType:  eventType,
		Entity:     entity,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal content event: %w", err)
	}
	return c.ContentEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(entity),
		Value: value,
	})
}

func (c *KafkaProducerClient) PublishAssetCleanup(ctx context.Context, publicID string) error {
	payload := AssetCleanupPayload{
		PublicID:    publicID,
		RequestedAt: time.Now().UTC(),
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal asset cleanup event: %w", err)
	}
	return c.AssetCleanupWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(publicID),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		c.ContentEventsWriter.Close()
	}
	if c.AssetCleanupWriter != nil {
		c.AssetCleanupWriter.Close()
	}
}
