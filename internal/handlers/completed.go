package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/worknow-dev/worknow/internal/lifecycle"
	"github.com/worknow-dev/worknow/internal/models"
	"github.com/worknow-dev/worknow/internal/utils"
)

// CompletedHandler serves the applicant's completed-work history. Records are
// created and removed by the completion projector; the applicant can only
// list them and prune entries from the profile.
type CompletedHandler struct {
	completed lifecycle.CompletedWorkStore
}

func NewCompletedHandler(completed lifecycle.CompletedWorkStore) *CompletedHandler {
	return &CompletedHandler{completed: completed}
}

type CompletedProjectResponse struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	CompanyName  string   `json:"company_name"`
	Description  string   `json:"description"`
	Duration     string   `json:"duration"`
	Modality     string   `json:"modality"`
	Remuneration string   `json:"remuneration"`
	Skills       []string `json:"skills"`
	StartedAt    string   `json:"started_at"`
	CompletedAt  string   `json:"completed_at"`
}

func (h *CompletedHandler) ListMine(ctx *gin.Context) {
	userID, err := utils.GetCurrentAccountID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	projects, err := h.completed.ListByApplicant(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]CompletedProjectResponse, 0, len(projects))
	for _, project := range projects {
		response = append(response, completedProjectResponse(project))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *CompletedHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentAccountID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := h.completed.DeleteByID(ctx.Request.Context(), userID, id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Completed project removed"})
}

func completedProjectResponse(project models.CompletedProject) CompletedProjectResponse {
	return CompletedProjectResponse{
		ID:           project.ID,
		Title:        project.Title,
		CompanyName:  project.CompanyName,
		Description:  project.Description,
		Duration:     project.Duration,
		Modality:     project.Modality,
		Remuneration: project.Remuneration,
		Skills:       unmarshalSkills(project.Skills),
		StartedAt:    project.StartedAt.Format("2006-01-02"),
		CompletedAt:  project.CompletedAt.Format("2006-01-02"),
	}
}
