package handlers

import (
	"net/http"
	"strconv"

	"asset-management-service/internal/adapters/primary/http/dto"
	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListContacts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.ContactListFilter{
		Tag:    c.Query("tag"),
		State:  c.Query("state"),
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	}

	contacts, total, err := h.contactSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list contacts failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListContactsResponse{
		Items:      contacts,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(contacts),
	})
}

func (h *Handler) GetContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}

	contact, err := h.contactSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (h *Handler) CreateContact(c *gin.Context) {
	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactSvc.Create(c.Request.Context(), &domain.Contact{
		Name:  req.Name,
		Firm:  req.Firm,
		Tag:   domain.ContactTag(req.Tag),
		Email: req.Email,
		Phone: req.Phone,
		State: req.State,
		Notes: req.Notes,
	})
	if err != nil {
		log.WithError(err).Error("create contact failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

func (h *Handler) UpdateContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}

	var req dto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Firm != nil {
		updates["firm"] = *req.Firm
	}
	if req.Tag != nil {
		updates["tag"] = *req.Tag
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	contact, err := h.contactSvc.Update(c.Request.Context(), id, updates)
	if err != nil {
		log.WithError(err).Error("update contact failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (h *Handler) DeleteContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}

	if err := h.contactSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete contact failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
