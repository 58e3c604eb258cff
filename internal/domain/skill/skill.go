package skill

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Skill is one entry of the skills section. Logo is optional; when present,
// LogoPublicID holds the remote asset identifier so deletes never have to
// parse it back out of the URL.
type Skill struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	LogoURL      *string   `json:"logo"`
	LogoPublicID *string   `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Repository interface {
	Save(ctx context.Context, s *Skill) error
	List(ctx context.Context) ([]*Skill, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Skill, error)
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}
