package http

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/baonguyen/folio-api/internal/application/service"
	"github.com/baonguyen/folio-api/internal/domain/about"
	"github.com/baonguyen/folio-api/internal/domain/experience"
	"github.com/baonguyen/folio-api/internal/domain/project"
	"github.com/baonguyen/folio-api/internal/domain/skill"
	"github.com/baonguyen/folio-api/internal/domain/user"
	"github.com/baonguyen/folio-api/pkg/apperror"
)

// In-memory doubles for the ports and repositories so the full router can be
// exercised without Postgres, Redis, Kafka, or Cloudinary.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*user.User)}
}

func (r *fakeUserRepo) Save(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return apperror.NewConflict("user", "email", u.Email)
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperror.NewNotFound("user", id.String())
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("user", email)
}

type fakeSkillRepo struct {
	mu     sync.Mutex
	skills map[uuid.UUID]*skill.Skill
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: make(map[uuid.UUID]*skill.Skill)}
}

func (r *fakeSkillRepo) Save(_ context.Context, s *skill.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.skills[s.ID] = &cp
	return nil
}

func (r *fakeSkillRepo) List(_ context.Context) ([]*skill.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*skill.Skill, 0, len(r.skills))
	for _, s := range r.skills {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeSkillRepo) FindByID(_ context.Context, id uuid.UUID) (*skill.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.skills[id]
	if !ok {
		return nil, apperror.NewNotFound("skill", id.String())
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSkillRepo) Update(_ context.Context, s *skill.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.skills[s.ID]; !ok {
		return apperror.NewNotFound("skill", s.ID.String())
	}
	cp := *s
	r.skills[s.ID] = &cp
	return nil
}

func (r *fakeSkillRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.skills[id]; !ok {
		return apperror.NewNotFound("skill", id.String())
	}
	delete(r.skills, id)
	return nil
}

type fakeExperienceRepo struct {
	mu          sync.Mutex
	experiences map[uuid.UUID]*experience.Experience
}

func newFakeExperienceRepo() *fakeExperienceRepo {
	return &fakeExperienceRepo{experiences: make(map[uuid.UUID]*experience.Experience)}
}

func (r *fakeExperienceRepo) Save(_ context.Context, e *experience.Experience) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.experiences[e.ID] = &cp
	return nil
}

func (r *fakeExperienceRepo) List(_ context.Context) ([]*experience.Experience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*experience.Experience, 0, len(r.experiences))
	for _, e := range r.experiences {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeExperienceRepo) FindByID(_ context.Context, id uuid.UUID) (*experience.Experience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.experiences[id]
	if !ok {
		return nil, apperror.NewNotFound("experience", id.String())
	}
	cp := *e
	return &cp, nil
}

func (r *fakeExperienceRepo) Update(_ context.Context, e *experience.Experience) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.experiences[e.ID]; !ok {
		return apperror.NewNotFound("experience", e.ID.String())
	}
	cp := *e
	r.experiences[e.ID] = &cp
	return nil
}

func (r *fakeExperienceRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.experiences[id]; !ok {
		return apperror.NewNotFound("experience", id.String())
	}
	delete(r.experiences, id)
	return nil
}

type fakeProjectRepo struct {
	mu       sync.Mutex
	projects map[uuid.UUID]*project.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[uuid.UUID]*project.Project)}
}

func (r *fakeProjectRepo) Save(_ context.Context, p *project.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) List(_ context.Context) ([]*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*project.Project, 0, len(r.projects))
	for _, p := range r.projects {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeProjectRepo) FindByID(_ context.Context, id uuid.UUID) (*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[id]
	if !ok {
		return nil, apperror.NewNotFound("project", id.String())
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p *project.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[p.ID]; !ok {
		return apperror.NewNotFound("project", p.ID.String())
	}
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[id]; !ok {
		return apperror.NewNotFound("project", id.String())
	}
	delete(r.projects, id)
	return nil
}

type fakeAboutRepo struct {
	mu     sync.Mutex
	abouts map[uuid.UUID]*about.About
}

func newFakeAboutRepo() *fakeAboutRepo {
	return &fakeAboutRepo{abouts: make(map[uuid.UUID]*about.About)}
}

func (r *fakeAboutRepo) Save(_ context.Context, a *about.About) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.abouts[a.ID] = &cp
	return nil
}

func (r *fakeAboutRepo) Get(_ context.Context) (*about.About, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.abouts {
		cp := *a
		return &cp, nil
	}
	return nil, apperror.NewNotFound("about", "")
}

func (r *fakeAboutRepo) FindByID(_ context.Context, id uuid.UUID) (*about.About, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.abouts[id]
	if !ok {
		return nil, apperror.NewNotFound("about", id.String())
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAboutRepo) Update(_ context.Context, a *about.About) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.abouts[a.ID]; !ok {
		return apperror.NewNotFound("about", a.ID.String())
	}
	cp := *a
	r.abouts[a.ID] = &cp
	return nil
}

type fakeUploader struct {
	mu       sync.Mutex
	failNext bool
	uploads  []string
	deletes  []string
}

func (u *fakeUploader) Upload(_ context.Context, file io.Reader, folder string, publicID string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.failNext {
		u.failNext = false
		return "", fmt.Errorf("simulated upload failure")
	}
	if _, err := io.ReadAll(file); err != nil {
		return "", err
	}
	u.uploads = append(u.uploads, publicID)
	return fmt.Sprintf("https://assets.example.com/%s/%s.png", folder, publicID), nil
}

func (u *fakeUploader) Delete(_ context.Context, publicID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.deletes = append(u.deletes, publicID)
	return nil
}

type fakePublisher struct {
	mu       sync.Mutex
	events   []string
	cleanups []string
}

func (p *fakePublisher) PublishContentEvent(_ context.Context, entity string, eventType service.ContentEventType, _ uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, entity+":"+string(eventType))
	return nil
}

func (p *fakePublisher) PublishAssetCleanup(_ context.Context, publicID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cleanups = append(p.cleanups, publicID)
	return nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	val, ok := c.entries[key]
	return val, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}
