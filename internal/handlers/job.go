package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/worknow-dev/worknow/internal/models"
	"github.com/worknow-dev/worknow/internal/utils"
)

type JobHandler struct {
	db *gorm.DB
}

func NewJobHandler(db *gorm.DB) *JobHandler {
	return &JobHandler{db: db}
}

type JobRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Modality     string   `json:"modality"`
	Remuneration string   `json:"remuneration"`
	Duration     string   `json:"duration"`
	Skills       []string `json:"skills"`
}

type JobResponse struct {
	ID           uint     `json:"id"`
	CompanyID    uint     `json:"company_id"`
	CompanyName  string   `json:"company_name,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Modality     string   `json:"modality"`
	Remuneration string   `json:"remuneration"`
	Duration     string   `json:"duration"`
	Skills       []string `json:"skills"`
	CreatedAt    string   `json:"created_at"`
}

func (h *JobHandler) Create(ctx *gin.Context) {
	companyID, err := utils.GetCurrentAccountID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	var body JobRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	job := models.Job{
		CompanyID:    companyID,
		Title:        body.Title,
		Description:  body.Description,
		Location:     body.Location,
		Modality:     body.Modality,
		Remuneration: body.Remuneration,
		Duration:     body.Duration,
		Skills:       marshalSkills(body.Skills),
	}

	if err := h.db.Create(&job).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}

	ctx.JSON(http.StatusCreated, jobResponse(job, ""))
}

func (h *JobHandler) List(ctx *gin.Context) {
	var jobs []models.Job

	if err := h.db.Preload("Company").Order("created_at DESC").Find(&jobs).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}

	response := make([]JobResponse, 0, len(jobs))

	for _, job := range jobs {
		response = append(response, jobResponse(job, job.Company.CompanyName))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *JobHandler) Get(ctx *gin.Context) {
	jobID := ctx.Param("job_id")

	var job models.Job

	if err := h.db.Preload("Company").First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	ctx.JSON(http.StatusOK, jobResponse(job, job.Company.CompanyName))
}

func (h *JobHandler) ListMine(ctx *gin.Context) {
	companyID, err := utils.GetCurrentAccountID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	var jobs []models.Job

	if err := h.db.Where("company_id = ?", companyID).Order("created_at DESC").Find(&jobs).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}

	response := make([]JobResponse, 0, len(jobs))

	for _, job := range jobs {
		response = append(response, jobResponse(job, ""))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *JobHandler) Update(ctx *gin.Context) {
	companyID, err := utils.GetCurrentAccountID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	var body JobRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var job models.Job
	jobID := ctx.Param("job_id")

	if err := h.db.Where("id = ? AND company_id = ?", jobID, companyID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	job.Title = body.Title
	job.Description = body.Description
	job.Location = body.Location
	job.Modality = body.Modality
	job.Remuneration = body.Remuneration
	job.Duration = body.Duration
	job.Skills = marshalSkills(body.Skills)

	if err := h.db.Save(&job).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		return
	}

	ctx.JSON(http.StatusOK, jobResponse(job, ""))
}

func (h *JobHandler) Delete(ctx *gin.Context) {
	companyID, err := utils.GetCurrentAccountID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	var job models.Job
	jobID := ctx.Param("job_id")

	if err := h.db.Where("id = ? AND company_id = ?", jobID, companyID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	if err := h.db.Delete(&job).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func jobResponse(job models.Job, companyName string) JobResponse {
	return JobResponse{
		ID:           job.ID,
		CompanyID:    job.CompanyID,
		CompanyName:  companyName,
		Title:        job.Title,
		Description:  job.Description,
		Location:     job.Location,
		Modality:     job.Modality,
		Remuneration: job.Remuneration,
		Duration:     job.Duration,
		Skills:       unmarshalSkills(job.Skills),
		CreatedAt:    job.CreatedAt.Format("2006-01-02"),
	}
}

func marshalSkills(skills []string) datatypes.JSON {
	if len(skills) == 0 {
		return nil
	}
	raw, err := json.Marshal(skills)
	if err != nil {
		return nil
	}
	return raw
}

func unmarshalSkills(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var skills []string
	if err := json.Unmarshal(raw, &skills); err != nil {
		return nil
	}
	return skills
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
