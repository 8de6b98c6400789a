package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/worknow-dev/worknow/internal/apperrors"
)

// respondError maps the lifecycle error taxonomy onto HTTP status codes.
// Internal errors are logged and masked.
func respondError(ctx *gin.Context, err error) {
	code := apperrors.CodeOf(err)

	var appErr *apperrors.Error
	message := "Internal server error"
	if errors.As(err, &appErr) && code != apperrors.CodeInternal {
		message = appErr.Message
	}

	switch code {
	case apperrors.CodeNotFound:
		ctx.JSON(http.StatusNotFound, gin.H{"error": message})
	case apperrors.CodeForbidden:
		ctx.JSON(http.StatusForbidden, gin.H{"error": message})
	case apperrors.CodeDuplicate, apperrors.CodeConflict:
		ctx.JSON(http.StatusConflict, gin.H{"error": message})
	case apperrors.CodeInvalidTransition:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": message})
	default:
		log.Printf("internal error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}
