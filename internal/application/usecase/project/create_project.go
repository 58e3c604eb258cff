package project

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/baonguyen/folio-api/internal/application/service"
	"github.com/baonguyen/folio-api/internal/domain/project"
	"github.com/baonguyen/folio-api/pkg/apperror"
	"github.com/baonguyen/folio-api/pkg/logger"
)

const (
	cacheKeyList = "project:list"
	cacheTTL     = 10 * time.Minute
	assetFolder  = "folio/projects"
	entityName   = "project"
)

func invalidateAndPublish(
	ctx context.Context,
	cache service.Cache,
	publisher service.Publisher,
	log logger.Logger,
	eventType service.ContentEventType,
	id uuid.UUID,
) {
	if err := cache.Del(ctx, cacheKeyList); err != nil {
		log.Warn("project list cache invalidation failed", zap.Error(err))
	}
	if err := publisher.PublishContentEvent(ctx, entityName, eventType, id); err != nil {
		log.Error("Failed to publish content event", err, zap.String("entity", entityName))
	}
}

func requestAssetCleanup(ctx context.Context, publisher service.Publisher, log logger.Logger, publicID *string) {
	if publicID == nil {
		return
	}
	if err := publisher.PublishAssetCleanup(ctx, *publicID); err != nil {
		log.Error("Failed to publish asset cleanup", err, zap.String("public_id", *publicID))
	}
}

type CreateProjectUseCase struct {
	projectRepo project.Repository
	uploader    service.Uploader
	publisher   service.Publisher
	cache       service.Cache
	logger      logger.Logger
}

func NewCreateProjectUseCase(
	repo project.Repository,
	uploader service.Uploader,
	publisher service.Publisher,
	cache service.Cache,
	log logger.Logger,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: repo,
		uploader:    uploader,
		publisher:   publisher,
		cache:       cache,
		logger:      log,
	}
}

type CreateProjectInput struct {
	Title        string
	Technologies []string
	Link         *string
	Image        io.Reader
}

type CreateProjectOutput struct {
	ProjectID uuid.UUID
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	now := time.Now().UTC()
	newProject := &project.Project{
		ID:           uuid.New(),
		Title:        input.Title,
		Technologies: input.Technologies,
		Link:         input.Link,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := newProject.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if input.Image != nil {
		publicID := uuid.NewString()
		url, err := uc.uploader.Upload(ctx, input.Image, assetFolder, publicID)
		if err != nil {
			return nil, apperror.NewInternal("failed to upload project image", err)
		}
		newProject.ImageURL = &url
		newProject.ImagePublicID = &publicID
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		if newProject.ImagePublicID != nil {
			go uc.uploader.Delete(context.Background(), *newProject.ImagePublicID)
		}
		return nil, err
	}

	invalidateAndPublish(ctx, uc.cache, uc.publisher, uc.logger, service.ContentEventCreated, newProject.ID)
	return &CreateProjectOutput{ProjectID: newProject.ID}, nil
}
