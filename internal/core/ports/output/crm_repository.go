package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"asset-management-service/internal/core/domain"
)

type EventListFilter struct {
	AssetHubID uuid.UUID
	Type       string
	From       time.Time
	To         time.Time
}

type CalendarEventRepository interface {
	Create(ctx context.Context, event *domain.CalendarEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CalendarEvent, error)
	Update(ctx context.Context, event *domain.CalendarEvent) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter EventListFilter) ([]*domain.CalendarEvent, error)
}

type ContactListFilter struct {
	Tag    string
	State  string
	Search string
	Limit  int
	Offset int
}

type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	Update(ctx context.Context, contact *domain.Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ContactListFilter) ([]*domain.Contact, int, error)
}
