package domain

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusOpen      TaskStatus = "OPEN"
	TaskStatusInProcess TaskStatus = "IN_PROCESS"
	TaskStatusDone      TaskStatus = "DONE"
	TaskStatusCancelled TaskStatus = "CANCELLED"
)

// Task is an asset-management work item on a hub. Tasks named after an outcome
// type drive which outcome is active on the hub.
type Task struct {
	ID         uuid.UUID  `json:"id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	AssetHubID uuid.UUID  `json:"asset_hub_id"`
	TaskType   string     `json:"task_type"`
	Status     TaskStatus `json:"status"`
	DueDate    *time.Time `json:"due_date"`
	Notes      string     `json:"notes"`
}

// OutcomeType reports the outcome path this task aligns with, if any.
func (t *Task) OutcomeType() (OutcomeType, bool) {
	for _, ot := range OutcomeTypes {
		if t.TaskType == string(ot) {
			return ot, true
		}
	}
	return "", false
}
