package experience

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Experience struct {
	ID          uuid.UUID `json:"id"`
	Role        string    `json:"role"`
	Company     string    `json:"company"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Description []string  `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Repository interface {
	Save(ctx context.Context, e *Experience) error
	List(ctx context.Context) ([]*Experience, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Experience, error)
	Update(ctx context.Context, e *Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
}
