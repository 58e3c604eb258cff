package project

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/baonguyen/folio-api/internal/application/service"
	"github.com/baonguyen/folio-api/internal/domain/project"
	"github.com/baonguyen/folio-api/pkg/logger"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
	cache       service.Cache
	logger      logger.Logger
}

func NewListProjectsUseCase(repo project.Repository, cache service.Cache, log logger.Logger) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: repo,
		cache:       cache,
		logger:      log,
	}
}

type ListProjectsOutput struct {
	Projects []*project.Project
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context) (*ListProjectsOutput, error) {
	if raw, ok, err := uc.cache.Get(ctx, cacheKeyList); err != nil {
		uc.logger.Warn("project list cache read failed", zap.Error(err))
	} else if ok {
		var cached []*project.Project
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &ListProjectsOutput{Projects: cached}, nil
		}
	}

	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects failed: %w", err)
	}

	if raw, err := json.Marshal(projects); err == nil {
		if err := uc.cache.Set(ctx, cacheKeyList, raw, cacheTTL); err != nil {
			uc.logger.Warn("project list cache write failed", zap.Error(err))
		}
	}
	return &ListProjectsOutput{Projects: projects}, nil
}
