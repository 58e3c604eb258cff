package project

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/baonguyen/folio-api/internal/application/service"
	"github.com/baonguyen/folio-api/internal/domain/project"
	"github.com/baonguyen/folio-api/pkg/apperror"
	"github.com/baonguyen/folio-api/pkg/logger"
)

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	uploader    service.Uploader
	publisher   service.Publisher
	cache       service.Cache
	logger      logger.Logger
}

func NewUpdateProjectUseCase(
	repo project.Repository,
	uploader service.Uploader,
	publisher service.Publisher,
	cache service.Cache,
	log logger.Logger,
) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: repo,
		uploader:    uploader,
		publisher:   publisher,
		cache:       cache,
		logger:      log,
	}
}

type UpdateProjectInput struct {
	ProjectID    uuid.UUID
	Title        string
	Technologies []string
	Link         *string
	Image        io.Reader
}

type UpdateProjectOutput struct {
	Project *project.Project
}

// Execute replaces the image upload-first: the previous asset is only
// scheduled for removal after the new one is stored and the row is updated,
// so a failed upload never strands the record without an image.
func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	p, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	p.Title = input.Title
	p.Technologies = input.Technologies
	p.Link = input.Link

	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	var oldPublicID *string
	if input.Image != nil {
		publicID := uuid.NewString()
		url, err := uc.uploader.Upload(ctx, input.Image, assetFolder, publicID)
		if err != nil {
			return nil, apperror.NewInternal("failed to upload project image", err)
		}
		oldPublicID = p.ImagePublicID
		p.ImageURL = &url
		p.ImagePublicID = &publicID
	}

	p.UpdatedAt = time.Now().UTC()

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		if input.Image != nil && p.ImagePublicID != nil {
			go uc.uploader.Delete(context.Background(), *p.ImagePublicID)
		}
		return nil, err
	}

	requestAssetCleanup(ctx, uc.publisher, uc.logger, oldPublicID)
	invalidateAndPublish(ctx, uc.cache, uc.publisher, uc.logger, service.ContentEventUpdated, p.ID)
	return &UpdateProjectOutput{Project: p}, nil
}
