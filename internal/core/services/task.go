package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
)

// TaskService owns the asset-management work items. Opening a task named
// after an outcome type flips that outcome active on the hub.
type TaskService struct {
	tasks    ports.TaskRepository
	assets   ports.AssetRepository
	outcomes ports.OutcomeRepository
}

func NewTaskService(tasks ports.TaskRepository, assets ports.AssetRepository, outcomes ports.OutcomeRepository) *TaskService {
	return &TaskService{tasks: tasks, assets: assets, outcomes: outcomes}
}

func (s *TaskService) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task.TaskType == "" {
		return nil, domain.ErrInvalidTaskType
	}
	if _, err := s.assets.GetHub(ctx, task.AssetHubID); err != nil {
		return nil, err
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusOpen
	}

	now := time.Now()
	task.ID = uuid.New()
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	s.syncActiveOutcome(ctx, task)

	return s.tasks.GetByID(ctx, task.ID)
}

func (s *TaskService) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *TaskService) List(ctx context.Context, filter ports.TaskListFilter) ([]*domain.Task, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return s.tasks.List(ctx, filter)
}

func (s *TaskService) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["status"]; ok && v != nil {
		task.Status = domain.TaskStatus(v.(string))
	}
	if v, ok := updates["due_date"]; ok {
		task.DueDate, _ = v.(*time.Time)
	}
	if v, ok := updates["notes"]; ok && v != nil {
		task.Notes = v.(string)
	}

	task.UpdatedAt = time.Now()
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	// A cancelled outcome task releases the active flag.
	if task.Status == domain.TaskStatusCancelled {
		if _, ok := task.OutcomeType(); ok {
			if err := s.outcomes.ClearActive(ctx, task.AssetHubID); err != nil {
				log.WithError(err).WithField("task_id", task.ID).Warn("clear active outcome failed")
			}
		}
	}

	return s.tasks.GetByID(ctx, id)
}

func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.tasks.GetByID(ctx, id); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}

// syncActiveOutcome activates the outcome aligned with an opened outcome task.
// Best effort: the outcome may not be modeled yet.
func (s *TaskService) syncActiveOutcome(ctx context.Context, task *domain.Task) {
	ot, ok := task.OutcomeType()
	if !ok || task.Status != domain.TaskStatusOpen {
		return
	}
	if err := s.outcomes.SetActive(ctx, task.AssetHubID, ot); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"hub_id": task.AssetHubID,
			"type":   ot,
		}).Warn("activate outcome for task failed")
	}
}
