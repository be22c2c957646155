package handlers

import (
	"net/http"

	"asset-management-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// RunExtraction extracts structured loan fields from document text through the
// configured AI extractor. The job record is returned whether or not the model
// call succeeded; a failed run carries status FAILED and the error text.
func (h *Handler) RunExtraction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return
	}

	var req dto.RunExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.extractionSvc.Run(c.Request.Context(), id, req.DocumentName, req.DocumentText)
	if err != nil {
		log.WithError(err).Error("run extraction failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *Handler) ListExtractions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return
	}

	jobs, err := h.extractionSvc.ListByHub(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": jobs})
}

func (h *Handler) GetExtraction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid extraction id"})
		return
	}

	job, err := h.extractionSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}
