package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/baonguyen/folio-api/internal/application/service"
	"github.com/baonguyen/folio-api/internal/domain/project"
	"github.com/baonguyen/folio-api/pkg/logger"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	publisher   service.Publisher
	cache       service.Cache
	logger      logger.Logger
}

func NewDeleteProjectUseCase(
	repo project.Repository,
	publisher service.Publisher,
	cache service.Cache,
	log logger.Logger,
) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: repo,
		publisher:   publisher,
		cache:       cache,
		logger:      log,
	}
}

type DeleteProjectInput struct {
	ProjectID uuid.UUID
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {
	p, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return err
	}

	if err := uc.projectRepo.Delete(ctx, input.ProjectID); err != nil {
		return err
	}

	requestAssetCleanup(ctx, uc.publisher, uc.logger, p.ImagePublicID)
	invalidateAndPublish(ctx, uc.cache, uc.publisher, uc.logger, service.ContentEventDeleted, p.ID)
	return nil
}
