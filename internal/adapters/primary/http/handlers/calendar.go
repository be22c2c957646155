package handlers

import (
	"net/http"
	"time"

	"asset-management-service/internal/adapters/primary/http/dto"
	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListEvents(c *gin.Context) {
	filter := ports.EventListFilter{
		Type: c.Query("type"),
	}
	if hubID := c.Query("asset_hub_id"); hubID != "" {
		id, err := uuid.Parse(hubID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset_hub_id"})
			return
		}
		filter.AssetHubID = id
	}
	if v := c.Query("from"); v != "" {
		from, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date, expected YYYY-MM-DD"})
			return
		}
		filter.From = from
	}
	if v := c.Query("to"); v != "" {
		to, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date, expected YYYY-MM-DD"})
			return
		}
		filter.To = to
	}

	events, err := h.calendarSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list events failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": events})
}

func (h *Handler) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	event, err := h.calendarSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.calendarSvc.Create(c.Request.Context(), &domain.CalendarEvent{
		AssetHubID: req.AssetHubID,
		Type:       domain.EventType(req.Type),
		Title:      req.Title,
		Notes:      req.Notes,
		StartAt:    req.StartAt,
		EndAt:      req.EndAt,
	})
	if err != nil {
		log.WithError(err).Error("create event failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.StartAt != nil {
		updates["start_at"] = *req.StartAt
	}
	if req.EndAt != nil {
		updates["end_at"] = req.EndAt
	}

	event, err := h.calendarSvc.Update(c.Request.Context(), id, updates)
	if err != nil {
		log.WithError(err).Error("update event failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := h.calendarSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete event failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
