package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardcast-dev/cardcast/internal/services"
)

// handleServiceError maps service-layer sentinel errors onto HTTP
// statuses. Anything unrecognized is a 500.
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPredictionNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Prediction not found"})
	case errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrCardNotFound),
		errors.Is(err, services.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrTeamExists),
		errors.Is(err, services.ErrCardExists),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUsernameTaken):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotTeamMember),
		errors.Is(err, services.ErrNotTeamAdmin):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrYearOutOfRange),
		errors.Is(err, services.ErrCardFinalized),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidPeriod),
		errors.Is(err, services.ErrExcludedPeriod),
		errors.Is(err, services.ErrQuotaNotMet),
		errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrWrongPassword):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("unexpected service error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
