package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/worknow-dev/worknow/internal/models"
	"github.com/worknow-dev/worknow/internal/utils"
)

type ProjectHandler struct {
	db *gorm.DB
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{db: db}
}

type ProjectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Duration     string   `json:"duration"`
	Modality     string   `json:"modality"`
	Remuneration string   `json:"remuneration"`
	Format       string   `json:"format"`
	Criteria     string   `json:"criteria"`
	Skills       []string `json:"skills"`
}

type ProjectResponse struct {
	ID           uint     `json:"id"`
	CompanyID    uint     `json:"company_id"`
	CompanyName  string   `json:"company_name,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Duration     string   `json:"duration"`
	Modality     string   `json:"modality"`
	Remuneration string   `json:"remuneration"`
	Format       string   `json:"format"`
	Criteria     string   `json:"criteria"`
	Skills       []string `json:"skills"`
	CreatedAt    string   `json:"created_at"`
}

func (h *ProjectHandler) Create(ctx *gin.Context) {
	companyID, err := utils.GetCurrentAccountID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	var body ProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project := models.Project{
		CompanyID:    companyID,
		Title:        body.Title,
		Description:  body.Description,
		Duration:     body.Duration,
		Modality:     body.Modality,
		Remuneration: body.Remuneration,
		Format:       body.Format,
		Criteria:     body.Criteria,
		Skills:       marshalSkills(body.Skills),
	}

	if err := h.db.Create(&project).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	ctx.JSON(http.StatusCreated, projectResponse(project, ""))
}

func (h *ProjectHandler) List(ctx *gin.Context) {
	var projects []models.Project

	if err := h.db.Preload("Company").Order("created_at DESC").Find(&projects).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := make([]ProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, projectResponse(project, project.Company.CompanyName))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ProjectHandler) Get(ctx *gin.Context) {
	projectID := ctx.Param("project_id")

	var project models.Project

	if err := h.db.Preload("Company").First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	ctx.JSON(http.StatusOK, projectResponse(project, project.Company.CompanyName))
}

func (h *ProjectHandler) ListMine(ctx *gin.Context) {
	companyID, err := utils.GetCurrentAccountID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	var projects []models.Project

	if err := h.db.Where("company_id = ?", companyID).Order("created_at DESC").Find(&projects).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := make([]ProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, projectResponse(project, ""))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ProjectHandler) Update(ctx *gin.Context) {
	companyID, err := utils.GetCurrentAccountID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	var body ProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var project models.Project
	projectID := ctx.Param("project_id")

	if err := h.db.Where("id = ? AND company_id = ?", projectID, companyID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	project.Title = body.Title
	project.Description = body.Description
	project.Duration = body.Duration
	project.Modality = body.Modality
	project.Remuneration = body.Remuneration
	project.Format = body.Format
	project.Criteria = body.Criteria
	project.Skills = marshalSkills(body.Skills)

	if err := h.db.Save(&project).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	ctx.JSON(http.StatusOK, projectResponse(project, ""))
}

func (h *ProjectHandler) Delete(ctx *gin.Context) {
	companyID, err := utils.GetCurrentAccountID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	var project models.Project
	projectID := ctx.Param("project_id")

	if err := h.db.Where("id = ? AND company_id = ?", projectID, companyID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	if err := h.db.Delete(&project).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

func projectResponse(project models.Project, companyName string) ProjectResponse {
	return ProjectResponse{
		ID:           project.ID,
		CompanyID:    project.CompanyID,
		CompanyName:  companyName,
		Title:        project.Title,
		Description:  project.Description,
		Duration:     project.Duration,
		Modality:     project.Modality,
		Remuneration: project.Remuneration,
		Format:       project.Format,
		Criteria:     project.Criteria,
		Skills:       unmarshalSkills(project.Skills),
		CreatedAt:    project.CreatedAt.Format("2006-01-02"),
	}
}
