package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	aboutUC "github.com/baonguyen/folio-api/internal/application/usecase/about"
	"github.com/baonguyen/folio-api/pkg/apperror"
	"github.com/baonguyen/folio-api/pkg/logger"
)

type AboutHandler struct {
	aboutUseCase *aboutUC.AboutUseCase
	logger       logger.Logger
}

func NewAboutHandler(uc *aboutUC.AboutUseCase, log logger.Logger) *AboutHandler {
	return &AboutHandler{
		aboutUseCase: uc,
		logger:       log,
	}
}

func (h *AboutHandler) GetAbout(c *gin.Context) {
	output, err := h.aboutUseCase.ExecuteGet(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToAboutDTO(output.About))
}

func (h *AboutHandler) CreateAbout(c *gin.Context) {
	var req CreateAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewValidation(toFieldErrors(err)))
		return
	}

	heroImage, err := decodeImagePayload(req.HeroImage)
	if err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return
	}
	workImage, err := decodeImagePayload(req.WorkImage)
	if err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return
	}

	output, err := h.aboutUseCase.ExecuteCreate(c.Request.Context(), aboutUC.CreateAboutInput{
		HeroTitle:         req.HeroTitle,
		HeroDescription:   req.HeroDescription,
		AboutDescription:  req.AboutDescription,
		ProjectsCompleted: req.ProjectsCompleted,
		YearsOfExperience: req.YearsOfExperience,
		HeroImage:         heroImage,
		WorkImage:         workImage,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "About created successfully",
		"about":   ToAboutDTO(output.About),
	})
}

func (h *AboutHandler) UpdateAbout(c *gin.Context) {
	aboutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid about ID", err))
		return
	}

	var req UpdateAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewValidation(toFieldErrors(err)))
		return
	}

	heroImage, err := decodeImagePayload(req.HeroImage)
	if err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return
	}
	workImage, err := decodeImagePayload(req.WorkImage)
	if err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return
	}

	output, err := h.aboutUseCase.ExecuteUpdate(c.Request.Context(), aboutUC.UpdateAboutInput{
		AboutID:           aboutID,
		HeroTitle:         req.HeroTitle,
		HeroDescription:   req.HeroDescription,
		AboutDescription:  req.AboutDescription,
		ProjectsCompleted: req.ProjectsCompleted,
		YearsOfExperience: req.YearsOfExperience,
		HeroImage:         heroImage,
		WorkImage:         workImage,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToAboutDTO(output.About))
}
