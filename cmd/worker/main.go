package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"

	"github.com/baonguyen/folio-api/adapters/event"
	"github.com/baonguyen/folio-api/adapters/media_storage"
	"github.com/baonguyen/folio-api/internal/config"
)

// The worker drains the asset.cleanup topic and deletes the referenced
// remote assets. Content mutations only ever schedule deletes here, after
// the replacing upload and row update have landed.
func main() {
	log.Println("Starting Folio asset-cleanup worker...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		log.Fatalf("FATAL: failed to initialize uploader: %v", err)
	}

	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicAssetCleanup,
		GroupID:  "asset-cleanup-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicAssetCleanup)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Println("Shutdown signal received, stopping worker.")
				return
			}
			log.Printf("ERROR: failed to read message from Kafka: %v", err)
			continue
		}

		var payload event.AssetCleanupPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: failed to unmarshal cleanup event: %v. Skipping.", err)
			commitMessage(consumer, msg)
			continue
		}

		log.Printf("Deleting remote asset %s", payload.PublicID)

		if err := uploader.Delete(ctx, payload.PublicID); err != nil {
			// Left uncommitted so the delete is retried on the next poll.
			log.Printf("ERROR: failed to delete asset %s: %v", payload.PublicID, err)
			continue
		}

		commitMessage(consumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: failed to commit message: %v", err)
	}
}
