package http

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/baonguyen/folio-api/internal/domain/about"
	"github.com/baonguyen/folio-api/internal/domain/experience"
	"github.com/baonguyen/folio-api/internal/domain/project"
	"github.com/baonguyen/folio-api/internal/domain/skill"
	"github.com/baonguyen/folio-api/internal/domain/user"
)

// Auth DTOs

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// Skill DTOs

type SkillRequest struct {
	Title       string `json:"title" binding:"required,min=3"`
	Description string `json:"description" binding:"required,min=3"`
	Logo        string `json:"logo" binding:"omitempty"`
}

type SkillDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Logo        *string   `json:"logo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToSkillDTO(s *skill.Skill) SkillDTO {
	return SkillDTO{
		ID:          s.ID.String(),
		Title:       s.Title,
		Description: s.Description,
		Logo:        s.LogoURL,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// Experience DTOs

type ExperienceRequest struct {
	Role        string   `json:"role" binding:"required,min=3"`
	Company     string   `json:"company" binding:"required,min=3"`
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	Description []string `json:"description" binding:"required,min=1,dive,min=3"`
}

type ExperienceDTO struct {
	ID          string    `json:"id"`
	Role        string    `json:"role"`
	Company     string    `json:"company"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Description []string  `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToExperienceDTO(e *experience.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:          e.ID.String(),
		Role:        e.Role,
		Company:     e.Company,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// Project DTOs

type ProjectRequest struct {
	Title        string   `json:"title" binding:"required,min=3"`
	Technologies []string `json:"technologies" binding:"required,min=1,dive,min=3"`
	Link         *string  `json:"link" binding:"omitempty,http_url"`
	Image        string   `json:"image" binding:"omitempty"`
}

type ProjectDTO struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Technologies []string  `json:"technologies"`
	Link         *string   `json:"link"`
	Image        *string   `json:"image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:           p.ID.String(),
		Title:        p.Title,
		Technologies: p.Technologies,
		Link:         p.Link,
		Image:        p.ImageURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// About DTOs

type CreateAboutRequest struct {
	HeroTitle         string `json:"hero_title" binding:"required,min=3"`
	HeroDescription   string `json:"hero_description" binding:"required,min=3"`
	AboutDescription  string `json:"about_description" binding:"required,min=3"`
	ProjectsCompleted int    `json:"projects_completed" binding:"gte=0"`
	YearsOfExperience int    `json:"years_of_experience" binding:"gte=0"`
	HeroImage         string `json:"hero_image" binding:"required"`
	WorkImage         string `json:"work_image" binding:"required"`
}

type UpdateAboutRequest struct {
	HeroTitle         string `json:"hero_title" binding:"required,min=3"`
	HeroDescription   string `json:"hero_description" binding:"required,min=3"`
	AboutDescription  string `json:"about_description" binding:"required,min=3"`
	ProjectsCompleted int    `json:"projects_completed" binding:"gte=0"`
	YearsOfExperience int    `json:"years_of_experience" binding:"gte=0"`
	HeroImage         string `json:"hero_image" binding:"omitempty"`
	WorkImage         string `json:"work_image" binding:"omitempty"`
}

type AboutDTO struct {
	ID                string    `json:"id"`
	HeroImage         string    `json:"hero_image"`
	WorkImage         string    `json:"work_image"`
	HeroTitle         string    `json:"hero_title"`
	HeroDescription   string    `json:"hero_description"`
	AboutDescription  string    `json:"about_description"`
	ProjectsCompleted int       `json:"projects_completed"`
	YearsOfExperience int       `json:"years_of_experience"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func ToAboutDTO(a *about.About) AboutDTO {
	return AboutDTO{
		ID:                a.ID.String(),
		HeroImage:         a.HeroImageURL,
		WorkImage:         a.WorkImageURL,
		HeroTitle:         a.HeroTitle,
		HeroDescription:   a.HeroDescription,
		AboutDescription:  a.AboutDescription,
		ProjectsCompleted: a.ProjectsCompleted,
		YearsOfExperience: a.YearsOfExperience,
		UpdatedAt:         a.UpdatedAt,
	}
}

// decodeImagePayload turns a base64 (optionally data-URI) image string into a
// reader for the uploader. An empty payload means no image was supplied.
func decodeImagePayload(payload string) (io.Reader, error) {
	if payload == "" {
		return nil, nil
	}
	if idx := strings.Index(payload, ";base64,"); idx != -1 {
		payload = payload[idx+len(";base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("image payload is not valid base64: %w", err)
	}
	return bytes.NewReader(data), nil
}

// parseDate accepts both plain dates from the admin form and full timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s': expected YYYY-MM-DD or RFC3339", value)
	}
	return t, nil
}
