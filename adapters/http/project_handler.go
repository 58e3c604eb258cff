package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	projectUC "github.com/baonguyen/folio-api/internal/application/usecase/project"
	"github.com/baonguyen/folio-api/pkg/apperror"
	"github.com/baonguyen/folio-api/pkg/logger"
)

type ProjectHandler struct {
	createProjectUC *projectUC.CreateProjectUseCase
	listProjectsUC  *projectUC.ListProjectsUseCase
	updateProjectUC *projectUC.UpdateProjectUseCase
	deleteProjectUC *projectUC.DeleteProjectUseCase
	logger          logger.Logger
}

func NewProjectHandler(
	createUC *projectUC.CreateProjectUseCase,
	listUC *projectUC.ListProjectsUseCase,
	updateUC *projectUC.UpdateProjectUseCase,
	deleteUC *projectUC.DeleteProjectUseCase,
	log logger.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUC: createUC,
		listProjectsUC:  listUC,
		updateProjectUC: updateUC,
		deleteProjectUC: deleteUC,
		logger:          log,
	}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewValidation(toFieldErrors(err)))
		return
	}

	image, err := decodeImagePayload(req.Image)
	if err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return
	}

	output, err := h.createProjectUC.Execute(c.Request.Context(), projectUC.CreateProjectInput{
		Title:        req.Title,
		Technologies: req.Technologies,
		Link:         req.Link,
		Image:        image,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Project created successfully", "project_id": output.ProjectID})
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	output, err := h.listProjectsUC.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ProjectDTO, len(output.Projects))
	for i, p := range output.Projects {
		dtos[i] = ToProjectDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewValidation(toFieldErrors(err)))
		return
	}

	image, err := decodeImagePayload(req.Image)
	if err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return
	}

	output, err := h.updateProjectUC.Execute(c.Request.Context(), projectUC.UpdateProjectInput{
		ProjectID:    projectID,
		Title:        req.Title,
		Technologies: req.Technologies,
		Link:         req.Link,
		Image:        image,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProjectDTO(output.Project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}

	if err := h.deleteProjectUC.Execute(c.Request.Context(), projectUC.DeleteProjectInput{ProjectID: projectID}); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
