package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/worknow-dev/worknow/internal/lifecycle"
	"github.com/worknow-dev/worknow/internal/models"
	"github.com/worknow-dev/worknow/internal/utils"
)

// ApplicationHandler exposes the lifecycle engine over HTTP. All status
// mutation goes through the engine; the handler only binds requests and maps
// errors.
type ApplicationHandler struct {
	engine      *lifecycle.Engine
	candidacies lifecycle.CandidacyStore
	postings    lifecycle.PostingResolver
}

func NewApplicationHandler(engine *lifecycle.Engine, candidacies lifecycle.CandidacyStore, postings lifecycle.PostingResolver) *ApplicationHandler {
	return &ApplicationHandler{engine: engine, candidacies: candidacies, postings: postings}
}

type ApplyRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ReviewRequest struct {
	Status string `json:"status" binding:"required"`
}

type CompletionRequest struct {
	Done *bool `json:"done" binding:"required"`
}

type ApplicationResponse struct {
	ID              uint   `json:"id"`
	Status          string `json:"status"`
	PostingKind     string `json:"posting_kind"`
	PostingID       uint   `json:"posting_id"`
	PostingTitle    string `json:"posting_title,omitempty"`
	CompanyName     string `json:"company_name,omitempty"`
	ApplicantName   string `json:"applicant_name,omitempty"`
	ApplicantEmail  string `json:"applicant_email,omitempty"`
	SeenByApplicant bool   `json:"seen_by_applicant"`
	SeenByOwner     bool   `json:"seen_by_owner"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// ApplyJob handles a user applying to a job posting.
func (h *ApplicationHandler) ApplyJob(ctx *gin.Context) {
	h.apply(ctx, lifecycle.KindJob, "job_id")
}

// ApplyProject handles a user applying to a project posting.
func (h *ApplicationHandler) ApplyProject(ctx *gin.Context) {
	h.apply(ctx, lifecycle.KindProject, "project_id")
}

func (h *ApplicationHandler) apply(ctx *gin.Context, kind lifecycle.PostingKind, param string) {
	userID, err := utils.GetCurrentAccountID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	postingID, ok := parseIDParam(ctx, param)
	if !ok {
		return
	}

	// Body is optional: it only carries the contact backfill.
	var body ApplyRequest
	_ = ctx.ShouldBindJSON(&body)

	app, err := h.engine.Apply(ctx.Request.Context(), userID, kind, postingID, body.Name, body.Email)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, applicationResponse(app))
}

// ListMine returns the authenticated user's candidacies, newest first, with
// posting titles resolved for display.
func (h *ApplicationHandler) ListMine(ctx *gin.Context) {
	userID, err := utils.GetCurrentAccountID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	apps, err := h.candidacies.ListByApplicant(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		item := applicationResponse(&apps[i])
		if kind, err := lifecycle.ParsePostingKind(apps[i].PostingKind); err == nil {
			if ref, err := h.postings.ResolvePosting(ctx.Request.Context(), kind, apps[i].PostingID); err == nil {
				item.PostingTitle = ref.Title
				item.CompanyName = ref.CompanyName
			}
		}
		response = append(response, item)
	}

	ctx.JSON(http.StatusOK, response)
}

// ListCompany returns every candidacy on the authenticated company's
// postings, with applicant contact data for review.
func (h *ApplicationHandler) ListCompany(ctx *gin.Context) {
	companyID, err := utils.GetCurrentAccountID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	apps, err := h.candidacies.ListByOwner(ctx.Request.Context(), companyID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		item := applicationResponse(&apps[i])
		item.ApplicantName = apps[i].User.Name
		item.ApplicantEmail = apps[i].User.Email
		if kind, err := lifecycle.ParsePostingKind(apps[i].PostingKind); err == nil {
			if ref, err := h.postings.ResolvePosting(ctx.Request.Context(), kind, apps[i].PostingID); err == nil {
				item.PostingTitle = ref.Title
			}
		}
		response = append(response, item)
	}

	ctx.JSON(http.StatusOK, response)
}

// Review lets the posting owner move a candidacy to UNDER_REVIEW, ACCEPTED
// or REJECTED. Accepting rejects every sibling candidacy atomically.
func (h *ApplicationHandler) Review(ctx *gin.Context) {
	companyID, err := utils.GetCurrentAccountID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	applicationID, ok := parseIDParam(ctx, "application_id")
	if !ok {
		return
	}

	var body ReviewRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	target, err := lifecycle.ParseStatus(body.Status)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	app, err := h.engine.Review(ctx.Request.Context(), companyID, applicationID, target)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, applicationResponse(app))
}

// ConfirmCompletion lets the applicant mark an accepted engagement done or
// not done. A failed completed-work projection is reported as a warning but
// does not undo the transition.
func (h *ApplicationHandler) ConfirmCompletion(ctx *gin.Context) {
	userID, err := utils.GetCurrentAccountID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	applicationID, ok := parseIDParam(ctx, "application_id")
	if !ok {
		return
	}

	var body CompletionRequest

	if err := ctx.BindJSON(&body); err != nil || body.Done == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result, err := h.engine.ConfirmCompletion(ctx.Request.Context(), userID, applicationID, *body.Done)
	if err != nil {
		respondError(ctx, err)
		return
	}

	payload := gin.H{"application": applicationResponse(result.Application)}
	if result.ProjectionWarning != nil {
		payload["warning"] = "completed work record could not be updated"
	}
	ctx.JSON(http.StatusOK, payload)
}

func applicationResponse(app *models.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:              app.ID,
		Status:          app.Status,
		PostingKind:     app.PostingKind,
		PostingID:       app.PostingID,
		SeenByApplicant: app.SeenByApplicant,
		SeenByOwner:     app.SeenByOwner,
		CreatedAt:       app.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       app.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
