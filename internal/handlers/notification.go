package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/worknow-dev/worknow/internal/auth"
	"github.com/worknow-dev/worknow/internal/lifecycle"
	"github.com/worknow-dev/worknow/internal/utils"
)

// NotificationHandler exposes the unread counters. Counts are computed live
// on every request; the frontend polls these endpoints.
type NotificationHandler struct {
	aggregator *lifecycle.Aggregator
}

func NewNotificationHandler(aggregator *lifecycle.Aggregator) *NotificationHandler {
	return &NotificationHandler{aggregator: aggregator}
}

type MarkReadRequest struct {
	ApplicationIDs []uint `json:"application_ids"`
}

// Count returns the unread count for the authenticated account, in its role.
func (h *NotificationHandler) Count(ctx *gin.Context) {
	account, err := utils.GetCurrentAccount(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	count, err := h.aggregator.CountFor(ctx.Request.Context(), account.ID, roleFor(account.Role))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkRead flags notifications as seen. Without ids, everything currently
// unread for the account is marked; zero updated rows is still a success.
func (h *NotificationHandler) MarkRead(ctx *gin.Context) {
	account, err := utils.GetCurrentAccount(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	// Body is optional: absent means mark everything.
	var body MarkReadRequest
	_ = ctx.ShouldBindJSON(&body)

	updated, err := h.aggregator.MarkRead(ctx.Request.Context(), account.ID, roleFor(account.Role), body.ApplicationIDs)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"updated": updated})
}

func roleFor(accountRole string) lifecycle.Role {
	if accountRole == auth.RoleCompany {
		return lifecycle.RoleOwner
	}
	return lifecycle.RoleApplicant
}
