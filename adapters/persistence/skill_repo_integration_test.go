package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/baonguyen/folio-api/internal/domain/skill"
	"github.com/baonguyen/folio-api/internal/domain/user"
	"github.com/baonguyen/folio-api/pkg/apperror"
)

type RepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	skillRepo   skill.Repository
	userRepo    user.Repository
}

func (s *RepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.skillRepo = NewPostgresSkillRepo(s.dbPool)
	s.userRepo = NewPostgresUserRepo(s.dbPool)
}

func (s *RepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RepoIntegrationTestSuite))
}

func newTestSkill(title string) *skill.Skill {
	now := time.Now().UTC()
	logoURL := "https://assets.example.com/folio/skills/" + title + ".png"
	logoID := "folio/skills/" + title
	return &skill.Skill{
		ID:           uuid.New(),
		Title:        title,
		Description:  "integration test skill",
		LogoURL:      &logoURL,
		LogoPublicID: &logoID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (s *RepoIntegrationTestSuite) Test_Skill_SaveAndFindByID() {
	ctx := context.Background()
	newSkill := newTestSkill("postgresql")

	s.NoError(s.skillRepo.Save(ctx, newSkill))

	found, err := s.skillRepo.FindByID(ctx, newSkill.ID)
	s.NoError(err)
	s.Equal(newSkill.Title, found.Title)
	s.Require().NotNil(found.LogoPublicID)
	s.Equal(*newSkill.LogoPublicID, *found.LogoPublicID)
}

func (s *RepoIntegrationTestSuite) Test_Skill_NullableLogoRoundTrip() {
	ctx := context.Background()
	bare := &skill.Skill{
		ID:          uuid.New(),
		Title:       "bash",
		Description: "no logo attached",
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	s.NoError(s.skillRepo.Save(ctx, bare))

	found, err := s.skillRepo.FindByID(ctx, bare.ID)
	s.NoError(err)
	s.Nil(found.LogoURL)
	s.Nil(found.LogoPublicID)
}

func (s *RepoIntegrationTestSuite) Test_Skill_UpdateUnknownID_NotFound() {
	ctx := context.Background()
	ghost := newTestSkill("ghost")

	err := s.skillRepo.Update(ctx, ghost)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *RepoIntegrationTestSuite) Test_Skill_DeleteTwice() {
	ctx := context.Background()
	newSkill := newTestSkill("redis")
	s.NoError(s.skillRepo.Save(ctx, newSkill))

	s.NoError(s.skillRepo.Delete(ctx, newSkill.ID))
	s.ErrorIs(s.skillRepo.Delete(ctx, newSkill.ID), apperror.ErrNotFound)
}

func (s *RepoIntegrationTestSuite) Test_User_DuplicateEmail_Conflict() {
	ctx := context.Background()
	now := time.Now().UTC()

	first := &user.User{
		ID:           uuid.New(),
		Name:         "Original",
		Email:        "dup@example.com",
		PasswordHash: "hash-one",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	second := &user.User{
		ID:           uuid.New(),
		Name:         "Impostor",
		Email:        "dup@example.com",
		PasswordHash: "hash-two",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.NoError(s.userRepo.Save(ctx, first))
	s.ErrorIs(s.userRepo.Save(ctx, second), apperror.ErrConflict)

	stored, err := s.userRepo.FindByEmail(ctx, "dup@example.com")
	s.NoError(err)
	s.Equal(first.ID, stored.ID)
	s.Equal("hash-one", stored.PasswordHash)
}
