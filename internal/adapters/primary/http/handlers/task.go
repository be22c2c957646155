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

func (h *Handler) ListTasks(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.TaskListFilter{
		Status:   c.Query("status"),
		TaskType: c.Query("task_type"),
		Limit:    limit,
		Offset:   offset,
	}
	if hubID := c.Query("asset_hub_id"); hubID != "" {
		id, err := uuid.Parse(hubID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset_hub_id"})
			return
		}
		filter.AssetHubID = id
	}

	tasks, total, err := h.taskSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list tasks failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListTasksResponse{
		Items:      tasks,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(tasks),
	})
}

func (h *Handler) GetTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	task, err := h.taskSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskSvc.Create(c.Request.Context(), &domain.Task{
		AssetHubID: req.AssetHubID,
		TaskType:   req.TaskType,
		Status:     domain.TaskStatus(req.Status),
		DueDate:    req.DueDate,
		Notes:      req.Notes,
	})
	if err != nil {
		log.WithError(err).Error("create task failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.DueDate != nil {
		updates["due_date"] = req.DueDate
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	task, err := h.taskSvc.Update(c.Request.Context(), id, updates)
	if err != nil {
		log.WithError(err).Error("update task failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	if err := h.taskSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete task failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
