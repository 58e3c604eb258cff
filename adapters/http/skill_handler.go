package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	skillUC "github.com/baonguyen/folio-api/internal/application/usecase/skill"
	"github.com/baonguyen/folio-api/pkg/apperror"
	"github.com/baonguyen/folio-api/pkg/logger"
)

type SkillHandler struct {
	skillUseCase *skillUC.SkillUseCase
	logger       logger.Logger
}

func NewSkillHandler(uc *skillUC.SkillUseCase, log logger.Logger) *SkillHandler {
	return &SkillHandler{
		skillUseCase: uc,
		logger:       log,
	}
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewValidation(toFieldErrors(err)))
		return
	}

	logo, err := decodeImagePayload(req.Logo)
	if err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return
	}

	output, err := h.skillUseCase.ExecuteCreate(c.Request.Context(), skillUC.CreateSkillInput{
		Title:       req.Title,
		Description: req.Description,
		Logo:        logo,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Skill created successfully", "skill_id": output.SkillID})
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	output, err := h.skillUseCase.ExecuteList(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]SkillDTO, len(output.Skills))
	for i, s := range output.Skills {
		dtos[i] = ToSkillDTO(s)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	skillID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill ID", err))
		return
	}

	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewValidation(toFieldErrors(err)))
		return
	}

	logo, err := decodeImagePayload(req.Logo)
	if err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return
	}

	output, err := h.skillUseCase.ExecuteUpdate(c.Request.Context(), skillUC.UpdateSkillInput{
		SkillID:     skillID,
		Title:       req.Title,
		Description: req.Description,
		Logo:        logo,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToSkillDTO(output.Skill))
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	skillID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill ID", err))
		return
	}

	if err := h.skillUseCase.ExecuteDelete(c.Request.Context(), skillUC.DeleteSkillInput{SkillID: skillID}); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}
