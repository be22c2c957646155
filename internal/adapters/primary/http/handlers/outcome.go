package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ListOutcomes returns every outcome on the asset; ?type=FC narrows to one.
func (h *Handler) ListOutcomes(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return
	}

	if outcomeType := c.Query("type"); outcomeType != "" {
		outcome, err := h.outcomeSvc.Get(c.Request.Context(), id, strings.ToUpper(outcomeType))
		if err != nil {
			mapDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, outcome)
		return
	}

	outcomes, err := h.outcomeSvc.ListByHub(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": outcomes})
}

func (h *Handler) GetOutcomeSummary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return
	}

	summary, err := h.outcomeSvc.Summary(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("outcome summary failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) ModelOutcome(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return
	}

	outcome, err := h.outcomeSvc.Model(c.Request.Context(), id, strings.ToUpper(c.Param("type")))
	if err != nil {
		log.WithError(err).Error("model outcome failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

func (h *Handler) ModelAllOutcomes(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return
	}

	outcomes, err := h.outcomeSvc.ModelAll(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("model all outcomes failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": outcomes})
}

func (h *Handler) ActivateOutcome(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return
	}

	outcome, err := h.outcomeSvc.Activate(c.Request.Context(), id, strings.ToUpper(c.Param("type")))
	if err != nil {
		log.WithError(err).Error("activate outcome failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}
