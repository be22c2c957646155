package handlers

import (
	"net/http"
	"strings"

	"asset-management-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) GetGlobalAssumptions(c *gin.Context) {
	global, err := h.assumptionSvc.GetGlobal(c.Request.Context())
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, global)
}

func (h *Handler) UpsertGlobalAssumptions(c *gin.Context) {
	var req dto.UpsertGlobalAssumptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	global, err := h.assumptionSvc.UpsertGlobal(c.Request.Context(), req.ToDomain())
	if err != nil {
		log.WithError(err).Error("upsert global assumptions failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, global)
}

func (h *Handler) ListStateAssumptions(c *gin.Context) {
	states, err := h.assumptionSvc.ListStates(c.Request.Context())
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": states})
}

func (h *Handler) GetStateAssumptions(c *gin.Context) {
	state := strings.ToUpper(c.Param("state"))

	assumptions, err := h.assumptionSvc.GetState(c.Request.Context(), state)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, assumptions)
}

func (h *Handler) UpsertStateAssumptions(c *gin.Context) {
	state := strings.ToUpper(c.Param("state"))

	var req dto.UpsertStateAssumptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assumptions, err := h.assumptionSvc.UpsertState(c.Request.Context(), req.ToDomain(state))
	if err != nil {
		log.WithError(err).Error("upsert state assumptions failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, assumptions)
}

// GetResolvedAssumptions previews the flattened input set the outcome models
// would consume for this asset: override, then state, then global.
func (h *Handler) GetResolvedAssumptions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return
	}

	hub, err := h.assetSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	resolved, err := h.assumptionSvc.Resolve(c.Request.Context(), hub)
	if err != nil {
		log.WithError(err).Error("resolve assumptions failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resolved)
}

func (h *Handler) GetOverride(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return
	}

	override, err := h.assumptionSvc.GetOverride(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, override)
}

func (h *Handler) UpsertOverride(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return
	}

	var req dto.UpsertOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	override := req.ToDomain()
	override.AssetHubID = id

	saved, err := h.assumptionSvc.UpsertOverride(c.Request.Context(), override)
	if err != nil {
		log.WithError(err).Error("upsert assumption override failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

func (h *Handler) DeleteOverride(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return
	}

	if err := h.assumptionSvc.DeleteOverride(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete assumption override failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
