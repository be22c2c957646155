package dto

import (
	"time"

	"github.com/google/uuid"

	"asset-management-service/internal/core/domain"
)

// ============================================================================
// Tasks
// ============================================================================

type CreateTaskRequest struct {
	AssetHubID uuid.UUID  `json:"asset_hub_id" binding:"required"`
	TaskType   string     `json:"task_type" binding:"required"`
	Status     string     `json:"status"`
	DueDate    *time.Time `json:"due_date"`
	Notes      string     `json:"notes"`
}

type UpdateTaskRequest struct {
	Status  *string    `json:"status"`
	DueDate *time.Time `json:"due_date"`
	Notes   *string    `json:"notes"`
}

type ListTasksResponse struct {
	Items      []*domain.Task `json:"items"`
	Total      int            `json:"total"`
	PageSize   int            `json:"page_size"`
	NextOffset int            `json:"next_offset"`
}

// ============================================================================
// Calendar
// ============================================================================

type CreateEventRequest struct {
	AssetHubID *uuid.UUID `json:"asset_hub_id"`
	Type       string     `json:"type"`
	Title      string     `json:"title" binding:"required"`
	Notes      string     `json:"notes"`
	StartAt    time.Time  `json:"start_at" binding:"required"`
	EndAt      *time.Time `json:"end_at"`
}

type UpdateEventRequest struct {
	Type    *string    `json:"type"`
	Title   *string    `json:"title"`
	Notes   *string    `json:"notes"`
	StartAt *time.Time `json:"start_at"`
	EndAt   *time.Time `json:"end_at"`
}

// ============================================================================
// Contacts
// ============================================================================

type CreateContactRequest struct {
	Name  string `json:"name" binding:"required"`
	Firm  string `json:"firm"`
	Tag   string `json:"tag"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	State string `json:"state"`
	Notes string `json:"notes"`
}

type UpdateContactRequest struct {
	Name  *string `json:"name"`
	Firm  *string `json:"firm"`
	Tag   *string `json:"tag"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	State *string `json:"state"`
	Notes *string `json:"notes"`
}

type ListContactsResponse struct {
	Items      []*domain.Contact `json:"items"`
	Total      int               `json:"total"`
	PageSize   int               `json:"page_size"`
	NextOffset int               `json:"next_offset"`
}

// ============================================================================
// Extraction
// ============================================================================

type RunExtractionRequest struct {
	DocumentName string `json:"document_name"`
	DocumentText string `json:"document_text" binding:"required"`
}
