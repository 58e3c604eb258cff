package about

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/baonguyen/folio-api/internal/application/service"
	"github.com/baonguyen/folio-api/internal/domain/about"
	"github.com/baonguyen/folio-api/pkg/apperror"
	"github.com/baonguyen/folio-api/pkg/logger"
)

const (
	cacheKey    = "about"
	cacheTTL    = 10 * time.Minute
	assetFolder = "folio/about"
	entityName  = "about"
)

type AboutUseCase struct {
	aboutRepo about.Repository
	uploader  service.Uploader
	publisher service.Publisher
	cache     service.Cache
	logger    logger.Logger
}

func NewAboutUseCase(
	repo about.Repository,
	uploader service.Uploader,
	publisher service.Publisher,
	cache service.Cache,
	log logger.Logger,
) *AboutUseCase {
	return &AboutUseCase{
		aboutRepo: repo,
		uploader:  uploader,
		publisher: publisher,
		cache:     cache,
		logger:    log,
	}
}

type GetAboutOutput struct {
	About *about.About
}

func (uc *AboutUseCase) ExecuteGet(ctx context.Context) (*GetAboutOutput, error) {
	if raw, ok, err := uc.cache.Get(ctx, cacheKey); err != nil {
		uc.logger.Warn("about cache read failed", zap.Error(err))
	} else if ok {
		var cached about.About
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &GetAboutOutput{About: &cached}, nil
		}
	}

	a, err := uc.aboutRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get about failed: %w", err)
	}

	if raw, err := json.Marshal(a); err == nil {
		if err := uc.cache.Set(ctx, cacheKey, raw, cacheTTL); err != nil {
			uc.logger.Warn("about cache write failed", zap.Error(err))
		}
	}
	return &GetAboutOutput{About: a}, nil
}

type CreateAboutInput struct {
	HeroTitle         string
	HeroDescription   string
	AboutDescription  string
	ProjectsCompleted int
	YearsOfExperience int
	HeroImage         io.Reader
	WorkImage         io.Reader
}

type CreateAboutOutput struct {
	About *about.About
}

func (uc *AboutUseCase) ExecuteCreate(ctx context.Context, input CreateAboutInput) (*CreateAboutOutput, error) {
	heroPublicID := uuid.NewString()
	heroURL, err := uc.uploader.Upload(ctx, input.HeroImage, assetFolder, heroPublicID)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload hero image", err)
	}

	workPublicID := uuid.NewString()
	workURL, err := uc.uploader.Upload(ctx, input.WorkImage, assetFolder, workPublicID)
	if err != nil {
		go uc.uploader.Delete(context.Background(), heroPublicID)
		return nil, apperror.NewInternal("failed to upload work image", err)
	}

	newAbout := &about.About{
		ID:                uuid.New(),
		HeroImageURL:      heroURL,
		HeroImagePublicID: heroPublicID,
		WorkImageURL:      workURL,
		WorkImagePublicID: workPublicID,
		HeroTitle:         input.HeroTitle,
		HeroDescription:   input.HeroDescription,
		AboutDescription:  input.AboutDescription,
		ProjectsCompleted: input.ProjectsCompleted,
		YearsOfExperience: input.YearsOfExperience,
		UpdatedAt:         time.Now().UTC(),
	}

	if err := uc.aboutRepo.Save(ctx, newAbout); err != nil {
		go uc.uploader.Delete(context.Background(), heroPublicID)
		go uc.uploader.Delete(context.Background(), workPublicID)
		return nil, err
	}

	uc.afterMutation(ctx, service.ContentEventCreated, newAbout.ID)
	return &CreateAboutOutput{About: newAbout}, nil
}

type UpdateAboutInput struct {
	AboutID           uuid.UUID
	HeroTitle         string
	HeroDescription   string
	AboutDescription  string
	ProjectsCompleted int
	YearsOfExperience int
	HeroImage         io.Reader
	WorkImage         io.Reader
}

type UpdateAboutOutput struct {
	About *about.About
}

// ExecuteUpdate swaps each supplied image upload-first; the replaced assets
// are scheduled for cleanup only after the row update lands.
func (uc *AboutUseCase) ExecuteUpdate(ctx context.Context, input UpdateAboutInput) (*UpdateAboutOutput, error) {
	a, err := uc.aboutRepo.FindByID(ctx, input.AboutID)
	if err != nil {
		return nil, err
	}

	var replaced []string
	var uploaded []string

	if input.HeroImage != nil {
		publicID := uuid.NewString()
		url, err := uc.uploader.Upload(ctx, input.HeroImage, assetFolder, publicID)
		if err != nil {
			return nil, apperror.NewInternal("failed to upload hero image", err)
		}
		replaced = append(replaced, a.HeroImagePublicID)
		uploaded = append(uploaded, publicID)
		a.HeroImageURL = url
		a.HeroImagePublicID = publicID
	}

	if input.WorkImage != nil {
		publicID := uuid.NewString()
		url, err := uc.uploader.Upload(ctx, input.WorkImage, assetFolder, publicID)
		if err != nil {
			for _, id := range uploaded {
				go uc.uploader.Delete(context.Background(), id)
			}
			return nil, apperror.NewInternal("failed to upload work image", err)
		}
		replaced = append(replaced, a.WorkImagePublicID)
		uploaded = append(uploaded, publicID)
		a.WorkImageURL = url
		a.WorkImagePublicID = publicID
	}

	a.HeroTitle = input.HeroTitle
	a.HeroDescription = input.HeroDescription
	a.AboutDescription = input.AboutDescription
	a.ProjectsCompleted = input.ProjectsCompleted
	a.YearsOfExperience = input.YearsOfExperience
	a.UpdatedAt = time.Now().UTC()

	if err := uc.aboutRepo.Update(ctx, a); err != nil {
		for _, id := range uploaded {
			go uc.uploader.Delete(context.Background(), id)
		}
		return nil, err
	}

	for _, id := range replaced {
		if err := uc.publisher.PublishAssetCleanup(ctx, id); err != nil {
			uc.logger.Error("Failed to publish asset cleanup", err, zap.String("public_id", id))
		}
	}
	uc.afterMutation(ctx, service.ContentEventUpdated, a.ID)
	return &UpdateAboutOutput{About: a}, nil
}

func (uc *AboutUseCase) afterMutation(ctx context.Context, eventType service.ContentEventType, id uuid.UUID) {
	if err := uc.cache.Del(ctx, cacheKey); err != nil {
		uc.logger.Warn("about cache invalidation failed", zap.Error(err))
	}
	if err := uc.publisher.PublishContentEvent(ctx, entityName, eventType, id); err != nil {
		uc.logger.Error("Failed to publish content event", err, zap.String("entity", entityName))
	}
}
