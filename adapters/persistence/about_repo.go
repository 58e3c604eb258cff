package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baonguyen/folio-api/internal/domain/about"
	"github.com/baonguyen/folio-api/pkg/apperror"
)

type postgresAboutRepo struct {
	db *pgxpool.Pool
}

func NewPostgresAboutRepo(db *pgxpool.Pool) about.Repository {
	return &postgresAboutRepo{db: db}
}

const aboutColumns = `id, hero_image_url, hero_image_public_id, work_image_url, work_image_public_id,
	hero_title, hero_description, about_description, projects_completed, years_of_experience, updated_at`

func scanAbout(row pgx.Row) (*about.About, error) {
	a := &about.About{}
	err := row.Scan(
		&a.ID,
		&a.HeroImageURL,
		&a.HeroImagePublicID,
		&a.WorkImageURL,
		&a.WorkImagePublicID,
		&a.HeroTitle,
		&a.HeroDescription,
		&a.AboutDescription,
		&a.ProjectsCompleted,
		&a.YearsOfExperience,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("about", "")
		}
		return nil, apperror.NewInternal("failed to scan about row", err)
	}
	return a, nil
}

func (r *postgresAboutRepo) Save(ctx context.Context, a *about.About) error {
	query := `
		INSERT INTO abouts (id, hero_image_url, hero_image_public_id, work_image_url, work_image_public_id,
			hero_title, hero_description, about_description, projects_completed, years_of_experience, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.HeroImageURL, a.HeroImagePublicID, a.WorkImageURL, a.WorkImagePublicID,
		a.HeroTitle, a.HeroDescription, a.AboutDescription, a.ProjectsCompleted, a.YearsOfExperience, a.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save about", err)
	}
	return nil
}

// Get returns the least-recently-updated row. The table is a singleton in
// practice but the schema does not enforce it.
func (r *postgresAboutRepo) Get(ctx context.Context) (*about.About, error) {
	query := `SELECT ` + aboutColumns + ` FROM abouts ORDER BY updated_at ASC LIMIT 1`
	return scanAbout(r.db.QueryRow(ctx, query))
}

func (r *postgresAboutRepo) FindByID(ctx context.Context, id uuid.UUID) (*about.About, error) {
	query := `SELECT ` + aboutColumns + ` FROM abouts WHERE id = $1`
	a, err := scanAbout(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("about", id.String())
		}
		return nil, err
	}
	return a, nil
}

func (r *postgresAboutRepo) Update(ctx context.Context, a *about.About) error {
	query := `
		UPDATE abouts SET
			hero_image_url = $2, hero_image_public_id = $3, work_image_url = $4, work_image_public_id = $5,
			hero_title = $6, hero_description = $7, about_description = $8,
			projects_completed = $9, years_of_experience = $10, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		a.ID, a.HeroImageURL, a.HeroImagePublicID, a.WorkImageURL, a.WorkImagePublicID,
		a.HeroTitle, a.HeroDescription, a.AboutDescription, a.ProjectsCompleted, a.YearsOfExperience,
	)
	if err != nil {
		return apperror.NewInternal("failed to update about", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("about", a.ID.String())
	}
	return nil
}
