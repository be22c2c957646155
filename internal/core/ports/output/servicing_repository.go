package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"asset-management-service/internal/core/domain"
)

type ServicerRecordRepository interface {
	Upsert(ctx context.Context, record *domain.ServicerRecord) error
	GetLatest(ctx context.Context, hubID uuid.UUID) (*domain.ServicerRecord, error)
	ListByHub(ctx context.Context, hubID uuid.UUID, from, to time.Time) ([]*domain.ServicerRecord, error)
}

type ExtractionJobRepository interface {
	Create(ctx context.Context, job *domain.ExtractionJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ExtractionJob, error)
	Update(ctx context.Context, job *domain.ExtractionJob) error
	ListByHub(ctx context.Context, hubID uuid.UUID) ([]*domain.ExtractionJob, error)
}
