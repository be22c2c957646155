package handlers

import (
	"errors"
	"net/http"

	"asset-management-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrTradeNotFound),
		errors.Is(err, domain.ErrAssetNotFound),
		errors.Is(err, domain.ErrLoanNotFound),
		errors.Is(err, domain.ErrPropertyNotFound),
		errors.Is(err, domain.ErrValuationNotFound),
		errors.Is(err, domain.ErrNoValuation),
		errors.Is(err, domain.ErrStateAssumptionNotFound),
		errors.Is(err, domain.ErrGlobalAssumptionNotFound),
		errors.Is(err, domain.ErrOverrideNotFound),
		errors.Is(err, domain.ErrOutcomeNotFound),
		errors.Is(err, domain.ErrServicerRecordNotFound),
		errors.Is(err, domain.ErrExtractionJobNotFound),
		errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrContactNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrTradeNameConflict),
		errors.Is(err, domain.ErrAssetAlreadyExists),
		errors.Is(err, domain.ErrOutcomeAlreadyActive):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidTradeName),
		errors.Is(err, domain.ErrInvalidTradeStatus),
		errors.Is(err, domain.ErrTradeHasAssets),
		errors.Is(err, domain.ErrInvalidLoanNumber),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrInvalidValueSource),
		errors.Is(err, domain.ErrInvalidOutcomeType),
		errors.Is(err, domain.ErrOutcomeNotModeled),
		errors.Is(err, domain.ErrMissingKeyColumn),
		errors.Is(err, domain.ErrInvalidTaskType),
		errors.Is(err, domain.ErrInvalidEventTime),
		errors.Is(err, domain.ErrInvalidContact),
		errors.Is(err, domain.ErrEmptyDocument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Service unavailable errors
	case errors.Is(err, domain.ErrGraphNotAvailable),
		errors.Is(err, domain.ErrExtractorNotAvailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
