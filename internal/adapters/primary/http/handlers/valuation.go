package handlers

import (
	"net/http"
	"time"

	"asset-management-service/internal/adapters/primary/http/dto"
	"asset-management-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListValuations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return
	}

	valuations, err := h.valuationSvc.ListByHub(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": valuations})
}

func (h *Handler) CreateValuation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return
	}

	var req dto.CreateValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var asOf time.Time
	if req.AsOfDate != nil {
		asOf = *req.AsOfDate
	}

	valuation, err := h.valuationSvc.Create(c.Request.Context(), &domain.Valuation{
		AssetHubID:    id,
		Source:        domain.ValueSource(req.Source),
		AsOfDate:      asOf,
		AsIsValue:     req.AsIsValue,
		ARVValue:      req.ARVValue,
		RehabEstimate: req.RehabEstimate,
	})
	if err != nil {
		log.WithError(err).Error("create valuation failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, valuation)
}

// GetResolvedValuation returns the valuation the modeling layer trusts for the
// asset: best source first, freshest within a source.
func (h *Handler) GetResolvedValuation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return
	}

	valuation, err := h.valuationSvc.Resolved(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, valuation)
}

func (h *Handler) DeleteValuation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid valuation id"})
		return
	}

	if err := h.valuationSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete valuation failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
