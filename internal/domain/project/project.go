package project

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyTechnologies = errors.New("a project needs at least one technology")

type Project struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Technologies  []string  `json:"technologies"`
	Link          *string   `json:"link"`
	ImageURL      *string   `json:"image"`
	ImagePublicID *string   `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate is the second line of defense behind request binding.
func (p *Project) Validate() error {
	if len(p.Technologies) == 0 {
		return ErrEmptyTechnologies
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	List(ctx context.Context) ([]*Project, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}
