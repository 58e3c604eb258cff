package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	experienceUC "github.com/baonguyen/folio-api/internal/application/usecase/experience"
	"github.com/baonguyen/folio-api/pkg/apperror"
	"github.com/baonguyen/folio-api/pkg/logger"
)

type ExperienceHandler struct {
	experienceUseCase *experienceUC.ExperienceUseCase
	logger            logger.Logger
}

func NewExperienceHandler(uc *experienceUC.ExperienceUseCase, log logger.Logger) *ExperienceHandler {
	return &ExperienceHandler{
		experienceUseCase: uc,
		logger:            log,
	}
}

func (h *ExperienceHandler) parseDates(c *gin.Context, req *ExperienceRequest) (start, end time.Time, ok bool) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return start, end, false
	}
	end, err = parseDate(req.EndDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return start, end, false
	}
	return start, end, true
}

func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewValidation(toFieldErrors(err)))
		return
	}

	start, end, ok := h.parseDates(c, &req)
	if !ok {
		return
	}

	output, err := h.experienceUseCase.ExecuteCreate(c.Request.Context(), experienceUC.CreateExperienceInput{
		Role:        req.Role,
		Company:     req.Company,
		StartDate:   start,
		EndDate:     end,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Experience created successfully", "experience_id": output.ExperienceID})
}

func (h *ExperienceHandler) ListExperiences(c *gin.Context) {
	output, err := h.experienceUseCase.ExecuteList(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ExperienceDTO, len(output.Experiences))
	for i, e := range output.Experiences {
		dtos[i] = ToExperienceDTO(e)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	experienceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience ID", err))
		return
	}

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewValidation(toFieldErrors(err)))
		return
	}

	start, end, ok := h.parseDates(c, &req)
	if !ok {
		return
	}

	output, err := h.experienceUseCase.ExecuteUpdate(c.Request.Context(), experienceUC.UpdateExperienceInput{
		ExperienceID: experienceID,
		Role:         req.Role,
		Company:      req.Company,
		StartDate:    start,
		EndDate:      end,
		Description:  req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToExperienceDTO(output.Experience))
}

func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	experienceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience ID", err))
		return
	}

	input := experienceUC.DeleteExperienceInput{ExperienceID: experienceID}
	if err := h.experienceUseCase.ExecuteDelete(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Experience deleted successfully"})
}
