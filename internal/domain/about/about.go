package about

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// About is the landing-page section. One row is expected in practice; Get
// returns the first one the storage layer holds.
type About struct {
	ID                uuid.UUID `json:"id"`
	HeroImageURL      string    `json:"hero_image"`
	HeroImagePublicID string    `json:"-"`
	WorkImageURL      string    `json:"work_image"`
	WorkImagePublicID string    `json:"-"`
	HeroTitle         string    `json:"hero_title"`
	HeroDescription   string    `json:"hero_description"`
	AboutDescription  string    `json:"about_description"`
	ProjectsCompleted int       `json:"projects_completed"`
	YearsOfExperience int       `json:"years_of_experience"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type Repository interface {
	Save(ctx context.Context, a *About) error
	Get(ctx context.Context) (*About, error)
	FindByID(ctx context.Context, id uuid.UUID) (*About, error)
	Update(ctx context.Context, a *About) error
}
