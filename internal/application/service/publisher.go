package service

import (
	"context"

	"github.com/google/uuid"
)

type ContentEventType string

const (
	ContentEventCreated ContentEventType = "created"
	ContentEventUpdated ContentEventType = "updated"
	ContentEventDeleted ContentEventType = "deleted"
)

// Publisher emits content-change events for downstream consumers and
// asset-cleanup requests for the worker. Failures are logged by callers,
// never surfaced to the client.
type Publisher interface {
	PublishContentEvent(ctx context.Context, entity string, eventType ContentEventType, entityID uuid.UUID) error
	PublishAssetCleanup(ctx context.Context, publicID string) error
}
