package ports

import (
	"context"

	"github.com/google/uuid"

	"asset-management-service/internal/core/domain"
)

type OutcomeRepository interface {
	Upsert(ctx context.Context, outcome *domain.Outcome) error
	GetByHubAndType(ctx context.Context, hubID uuid.UUID, outcomeType domain.OutcomeType) (*domain.Outcome, error)
	ListByHub(ctx context.Context, hubID uuid.UUID) ([]*domain.Outcome, error)
	SetActive(ctx context.Context, hubID uuid.UUID, outcomeType domain.OutcomeType) error
	ClearActive(ctx context.Context, hubID uuid.UUID) error
}

type TaskListFilter struct {
	AssetHubID uuid.UUID
	Status     string
	TaskType   string
	Limit      int
	Offset     int
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter TaskListFilter) ([]*domain.Task, int, error)
}
