package skill

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/baonguyen/folio-api/internal/application/service"
	"github.com/baonguyen/folio-api/internal/domain/skill"
	"github.com/baonguyen/folio-api/pkg/apperror"
	"github.com/baonguyen/folio-api/pkg/logger"
)

const (
	cacheKeyList = "skill:list"
	cacheTTL     = 10 * time.Minute
	assetFolder  = "folio/skills"
	entityName   = "skill"
)

type SkillUseCase struct {
	skillRepo skill.Repository
	uploader  service.Uploader
	publisher service.Publisher
	cache     service.Cache
	logger    logger.Logger
}

func NewSkillUseCase(
	repo skill.Repository,
	uploader service.Uploader,
	publisher service.Publisher,
	cache service.Cache,
	log logger.Logger,
) *SkillUseCase {
	return &SkillUseCase{
		skillRepo: repo,
		uploader:  uploader,
		publisher: publisher,
		cache:     cache,
		logger:    log,
	}
}

type CreateSkillInput struct {
	Title       string
	Description string
	Logo        io.Reader
}

type CreateSkillOutput struct {
	SkillID uuid.UUID
}

func (uc *SkillUseCase) ExecuteCreate(ctx context.Context, input CreateSkillInput) (*CreateSkillOutput, error) {
	now := time.Now().UTC()
	newSkill := &skill.Skill{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if input.Logo != nil {
		publicID := uuid.NewString()
		url, err := uc.uploader.Upload(ctx, input.Logo, assetFolder, publicID)
		if err != nil {
			return nil, apperror.NewInternal("failed to upload skill logo", err)
		}
		newSkill.LogoURL = &url
		newSkill.LogoPublicID = &publicID
	}

	if err := uc.skillRepo.Save(ctx, newSkill); err != nil {
		if newSkill.LogoPublicID != nil {
			go uc.uploader.Delete(context.Background(), *newSkill.LogoPublicID)
		}
		return nil, err
	}

	uc.afterMutation(ctx, service.ContentEventCreated, newSkill.ID)
	return &CreateSkillOutput{SkillID: newSkill.ID}, nil
}

type ListSkillsOutput struct {
	Skills []*skill.Skill
}

func (uc *SkillUseCase) ExecuteList(ctx context.Context) (*ListSkillsOutput, error) {
	if raw, ok, err := uc.cache.Get(ctx, cacheKeyList); err != nil {
		uc.logger.Warn("skill list cache read failed", zap.Error(err))
	} else if ok {
		var cached []*skill.Skill
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &ListSkillsOutput{Skills: cached}, nil
		}
	}

	skills, err := uc.skillRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills failed: %w", err)
	}

	if raw, err := json.Marshal(skills); err == nil {
		if err := uc.cache.Set(ctx, cacheKeyList, raw, cacheTTL); err != nil {
			uc.logger.Warn("skill list cache write failed", zap.Error(err))
		}
	}
	return &ListSkillsOutput{Skills: skills}, nil
}

type UpdateSkillInput struct {
	SkillID     uuid.UUID
	Title       string
	Description string
	Logo        io.Reader
}

type UpdateSkillOutput struct {
	Skill *skill.Skill
}

// ExecuteUpdate replaces the logo by uploading the new asset first; the old
// one is removed only after the row update succeeds, via the cleanup topic.
// A failed upload leaves the existing reference untouched.
func (uc *SkillUseCase) ExecuteUpdate(ctx context.Context, input UpdateSkillInput) (*UpdateSkillOutput, error) {
	s, err := uc.skillRepo.FindByID(ctx, input.SkillID)
	if err != nil {
		return nil, err
	}

	var oldPublicID *string
	if input.Logo != nil {
		publicID := uuid.NewString()
		url, err := uc.uploader.Upload(ctx, input.Logo, assetFolder, publicID)
		if err != nil {
			return nil, apperror.NewInternal("failed to upload skill logo", err)
		}
		oldPublicID = s.LogoPublicID
		s.LogoURL = &url
		s.LogoPublicID = &publicID
	}

	s.Title = input.Title
	s.Description = input.Description
	s.UpdatedAt = time.Now().UTC()

	if err := uc.skillRepo.Update(ctx, s); err != nil {
		if input.Logo != nil && s.LogoPublicID != nil {
			go uc.uploader.Delete(context.Background(), *s.LogoPublicID)
		}
		return nil, err
	}

	uc.requestAssetCleanup(ctx, oldPublicID)
	uc.afterMutation(ctx, service.ContentEventUpdated, s.ID)
	return &UpdateSkillOutput{Skill: s}, nil
}

type DeleteSkillInput struct {
	SkillID uuid.UUID
}

func (uc *SkillUseCase) ExecuteDelete(ctx context.Context, input DeleteSkillInput) error {
	s, err := uc.skillRepo.FindByID(ctx, input.SkillID)
	if err != nil {
		return err
	}

	if err := uc.skillRepo.Delete(ctx, input.SkillID); err != nil {
		return err
	}

	uc.requestAssetCleanup(ctx, s.LogoPublicID)
	uc.afterMutation(ctx, service.ContentEventDeleted, s.ID)
	return nil
}

func (uc *SkillUseCase) requestAssetCleanup(ctx context.Context, publicID *string) {
	if publicID == nil {
		return
	}
	if err := uc.publisher.PublishAssetCleanup(ctx, *publicID); err != nil {
		uc.logger.Error("Failed to publish asset cleanup", err, zap.String("public_id", *publicID))
	}
}

func (uc *SkillUseCase) afterMutation(ctx context.Context, eventType service.ContentEventType, id uuid.UUID) {
	if err := uc.cache.Del(ctx, cacheKeyList); err != nil {
		uc.logger.Warn("skill list cache invalidation failed", zap.Error(err))
	}
	if err := uc.publisher.PublishContentEvent(ctx, entityName, eventType, id); err != nil {
		uc.logger.Error("Failed to publish content event", err, zap.String("entity", entityName))
	}
}
