package experience

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/baonguyen/folio-api/internal/application/service"
	"github.com/baonguyen/folio-api/internal/domain/experience"
	"github.com/baonguyen/folio-api/pkg/logger"
)

const (
	cacheKeyList = "experience:list"
	cacheTTL     = 10 * time.Minute
	entityName   = "experience"
)

type ExperienceUseCase struct {
	experienceRepo experience.Repository
	publisher      service.Publisher
	cache          service.Cache
	logger         logger.Logger
}

func NewExperienceUseCase(
	repo experience.Repository,
	publisher service.Publisher,
	cache service.Cache,
	log logger.Logger,
) *ExperienceUseCase {
	return &ExperienceUseCase{
		experienceRepo: repo,
		publisher:      publisher,
		cache:          cache,
		logger:         log,
	}
}

type CreateExperienceInput struct {
	Role        string
	Company     string
	StartDate   time.Time
	EndDate     time.Time
	Description []string
}

type CreateExperienceOutput struct {
	ExperienceID uuid.UUID
}

func (uc *ExperienceUseCase) ExecuteCreate(ctx context.Context, input CreateExperienceInput) (*CreateExperienceOutput, error) {
	now := time.Now().UTC()
	newExperience := &experience.Experience{
		ID:          uuid.New(),
		Role:        input.Role,
		Company:     input.Company,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.experienceRepo.Save(ctx, newExperience); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, service.ContentEventCreated, newExperience.ID)
	return &CreateExperienceOutput{ExperienceID: newExperience.ID}, nil
}

type ListExperiencesOutput struct {
	Experiences []*experience.Experience
}

func (uc *ExperienceUseCase) ExecuteList(ctx context.Context) (*ListExperiencesOutput, error) {
	if raw, ok, err := uc.cache.Get(ctx, cacheKeyList); err != nil {
		uc.logger.Warn("experience list cache read failed", zap.Error(err))
	} else if ok {
		var cached []*experience.Experience
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &ListExperiencesOutput{Experiences: cached}, nil
		}
	}

	experiences, err := uc.experienceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list experiences failed: %w", err)
	}

	if raw, err := json.Marshal(experiences); err == nil {
		if err := uc.cache.Set(ctx, cacheKeyList, raw, cacheTTL); err != nil {
			uc.logger.Warn("experience list cache write failed", zap.Error(err))
		}
	}
	return &ListExperiencesOutput{Experiences: experiences}, nil
}

type UpdateExperienceInput struct {
	ExperienceID uuid.UUID
	Role         string
	Company      string
	StartDate    time.Time
	EndDate      time.Time
	Description  []string
}

type UpdateExperienceOutput struct {
	Experience *experience.Experience
}

func (uc *ExperienceUseCase) ExecuteUpdate(ctx context.Context, input UpdateExperienceInput) (*UpdateExperienceOutput, error) {
	e, err := uc.experienceRepo.FindByID(ctx, input.ExperienceID)
	if err != nil {
		return nil, err
	}

	e.Role = input.Role
	e.Company = input.Company
	e.StartDate = input.StartDate
	e.EndDate = input.EndDate
	e.Description = input.Description
	e.UpdatedAt = time.Now().UTC()

	if err := uc.experienceRepo.Update(ctx, e); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, service.ContentEventUpdated, e.ID)
	return &UpdateExperienceOutput{Experience: e}, nil
}

type DeleteExperienceInput struct {
	ExperienceID uuid.UUID
}

func (uc *ExperienceUseCase) ExecuteDelete(ctx context.Context, input DeleteExperienceInput) error {
	if err := uc.experienceRepo.Delete(ctx, input.ExperienceID); err != nil {
		return err
	}

	uc.afterMutation(ctx, service.ContentEventDeleted, input.ExperienceID)
	return nil
}

func (uc *ExperienceUseCase) afterMutation(ctx context.Context, eventType service.ContentEventType, id uuid.UUID) {
	if err := uc.cache.Del(ctx, cacheKeyList); err != nil {
		uc.logger.Warn("experience list cache invalidation failed", zap.Error(err))
	}
	if err := uc.publisher.PublishContentEvent(ctx, entityName, eventType, id); err != nil {
		uc.logger.Error("Failed to publish content event", err, zap.String("entity", entityName))
	}
}
