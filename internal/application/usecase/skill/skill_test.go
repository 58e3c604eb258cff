package skill

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baonguyen/folio-api/internal/application/service"
	"github.com/baonguyen/folio-api/internal/domain/skill"
	"github.com/baonguyen/folio-api/pkg/apperror"
	"github.com/baonguyen/folio-api/pkg/logger"
)

// callRecorder tracks the order of uploader and repository calls so the
// upload-first replacement protocol can be asserted directly.
type callRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *callRecorder) record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
}

func (r *callRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

type stubRepo struct {
	rec    *callRecorder
	stored map[uuid.UUID]*skill.Skill
}

func newStubRepo(rec *callRecorder) *stubRepo {
	return &stubRepo{rec: rec, stored: make(map[uuid.UUID]*skill.Skill)}
}

func (r *stubRepo) Save(_ context.Context, s *skill.Skill) error {
	r.rec.record("repo.Save")
	cp := *s
	r.stored[s.ID] = &cp
	return nil
}

func (r *stubRepo) List(_ context.Context) ([]*skill.Skill, error) {
	out := make([]*skill.Skill, 0, len(r.stored))
	for _, s := range r.stored {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubRepo) FindByID(_ context.Context, id uuid.UUID) (*skill.Skill, error) {
	s, ok := r.stored[id]
	if !ok {
		return nil, apperror.NewNotFound("skill", id.String())
	}
	cp := *s
	return &cp, nil
}

func (r *stubRepo) Update(_ context.Context, s *skill.Skill) error {
	r.rec.record("repo.Update")
	if _, ok := r.stored[s.ID]; !ok {
		return apperror.NewNotFound("skill", s.ID.String())
	}
	cp := *s
	r.stored[s.ID] = &cp
	return nil
}

func (r *stubRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.rec.record("repo.Delete")
	if _, ok := r.stored[id]; !ok {
		return apperror.NewNotFound("skill", id.String())
	}
	delete(r.stored, id)
	return nil
}

type stubUploader struct {
	rec      *callRecorder
	failNext bool
}

func (u *stubUploader) Upload(_ context.Context, file io.Reader, folder string, publicID string) (string, error) {
	u.rec.record("uploader.Upload")
	if u.failNext {
		u.failNext = false
		return "", fmt.Errorf("upload rejected")
	}
	if _, err := io.ReadAll(file); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://assets.example.com/%s/%s.png", folder, publicID), nil
}

func (u *stubUploader) Delete(_ context.Context, publicID string) error {
	u.rec.record("uploader.Delete:" + publicID)
	return nil
}

type stubPublisher struct {
	mu       sync.Mutex
	cleanups []string
}

func (p *stubPublisher) PublishContentEvent(_ context.Context, _ string, _ service.ContentEventType, _ uuid.UUID) error {
	return nil
}

func (p *stubPublisher) PublishAssetCleanup(_ context.Context, publicID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cleanups = append(p.cleanups, publicID)
	return nil
}

type noopCache struct{}

func (noopCache) Get(_ context.Context, _ string) ([]byte, bool, error) { return nil, false, nil }
func (noopCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}
func (noopCache) Del(_ context.Context, _ ...string) error { return nil }

func newTestUseCase() (*SkillUseCase, *stubRepo, *stubUploader, *stubPublisher, *callRecorder) {
	rec := &callRecorder{}
	repo := newStubRepo(rec)
	uploader := &stubUploader{rec: rec}
	publisher := &stubPublisher{}
	uc := NewSkillUseCase(repo, uploader, publisher, noopCache{}, logger.NewNop())
	return uc, repo, uploader, publisher, rec
}

func seedSkill(t *testing.T, uc *SkillUseCase) uuid.UUID {
	t.Helper()
	out, err := uc.ExecuteCreate(context.Background(), CreateSkillInput{
		Title:       "Go",
		Description: "Backend services",
		Logo:        bytes.NewReader([]byte("logo-bytes")),
	})
	require.NoError(t, err)
	return out.SkillID
}

func TestExecuteUpdate_UploadsBeforePersisting(t *testing.T) {
	uc, _, _, _, rec := newTestUseCase()
	id := seedSkill(t, uc)

	_, err := uc.ExecuteUpdate(context.Background(), UpdateSkillInput{
		SkillID:     id,
		Title:       "Go",
		Description: "Backend services",
		Logo:        bytes.NewReader([]byte("new-logo")),
	})
	require.NoError(t, err)

	calls := rec.snapshot()
	// create: upload then save; update: upload then update
	assert.Equal(t, []string{"uploader.Upload", "repo.Save", "uploader.Upload", "repo.Update"}, calls)
}

func TestExecuteUpdate_FailedUpload_LeavesRowUntouched(t *testing.T) {
	uc, repo, uploader, publisher, rec := newTestUseCase()
	id := seedSkill(t, uc)
	before := *repo.stored[id]

	uploader.failNext = true
	_, err := uc.ExecuteUpdate(context.Background(), UpdateSkillInput{
		SkillID:     id,
		Title:       "Changed",
		Description: "Changed too",
		Logo:        bytes.NewReader([]byte("new-logo")),
	})
	require.Error(t, err)

	after := *repo.stored[id]
	assert.Equal(t, before, after)
	assert.Empty(t, publisher.cleanups)
	for _, call := range rec.snapshot() {
		assert.NotEqual(t, "repo.Update", call)
	}
}

func TestExecuteUpdate_SuccessfulReplacement_QueuesOldAsset(t *testing.T) {
	uc, repo, _, publisher, _ := newTestUseCase()
	id := seedSkill(t, uc)
	oldPublicID := *repo.stored[id].LogoPublicID

	out, err := uc.ExecuteUpdate(context.Background(), UpdateSkillInput{
		SkillID:     id,
		Title:       "Go",
		Description: "Backend services",
		Logo:        bytes.NewReader([]byte("new-logo")),
	})
	require.NoError(t, err)

	require.NotNil(t, out.Skill.LogoPublicID)
	assert.NotEqual(t, oldPublicID, *out.Skill.LogoPublicID)
	assert.Equal(t, []string{oldPublicID}, publisher.cleanups)
}

func TestExecuteUpdate_NoNewLogo_KeepsAssetAndQueuesNothing(t *testing.T) {
	uc, repo, _, publisher, _ := newTestUseCase()
	id := seedSkill(t, uc)
	oldPublicID := *repo.stored[id].LogoPublicID

	out, err := uc.ExecuteUpdate(context.Background(), UpdateSkillInput{
		SkillID:     id,
		Title:       "Golang",
		Description: "Backend services and CLIs",
	})
	require.NoError(t, err)

	require.NotNil(t, out.Skill.LogoPublicID)
	assert.Equal(t, oldPublicID, *out.Skill.LogoPublicID)
	assert.Empty(t, publisher.cleanups)
}

func TestExecuteDelete_QueuesLogoCleanup(t *testing.T) {
	uc, repo, _, publisher, _ := newTestUseCase()
	id := seedSkill(t, uc)
	publicID := *repo.stored[id].LogoPublicID

	require.NoError(t, uc.ExecuteDelete(context.Background(), DeleteSkillInput{SkillID: id}))
	assert.Equal(t, []string{publicID}, publisher.cleanups)

	err := uc.ExecuteDelete(context.Background(), DeleteSkillInput{SkillID: id})
	require.Error(t, err)
}
