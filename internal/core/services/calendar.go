package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
)

type CalendarService struct {
	repo   ports.CalendarEventRepository
	assets ports.AssetRepository
}

func NewCalendarService(repo ports.CalendarEventRepository, assets ports.AssetRepository) *CalendarService {
	return &CalendarService{repo: repo, assets: assets}
}

func (s *CalendarService) Create(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	if event.EndAt != nil && event.EndAt.Before(event.StartAt) {
		return nil, domain.ErrInvalidEventTime
	}
	if event.AssetHubID != nil {
		if _, err := s.assets.GetHub(ctx, *event.AssetHubID); err != nil {
			return nil, err
		}
	}
	if event.Type == "" {
		event.Type = domain.EventGeneral
	}

	now := time.Now()
	event.ID = uuid.New()
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, event.ID)
}

func (s *CalendarService) Get(ctx context.Context, id uuid.UUID) (*domain.CalendarEvent, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CalendarService) List(ctx context.Context, filter ports.EventListFilter) ([]*domain.CalendarEvent, error) {
	if filter.To.IsZero() {
		filter.To = filter.From.AddDate(1, 0, 0)
	}
	return s.repo.List(ctx, filter)
}

func (s *CalendarService) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*domain.CalendarEvent, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["title"]; ok && v != nil {
		event.Title = v.(string)
	}
	if v, ok := updates["notes"]; ok && v != nil {
		event.Notes = v.(string)
	}
	if v, ok := updates["type"]; ok && v != nil {
		event.Type = domain.EventType(v.(string))
	}
	if v, ok := updates["start_at"]; ok && v != nil {
		event.StartAt = v.(time.Time)
	}
	if v, ok := updates["end_at"]; ok {
		event.EndAt, _ = v.(*time.Time)
	}
	if event.EndAt != nil && event.EndAt.Before(event.StartAt) {
		return nil, domain.ErrInvalidEventTime
	}

	event.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *CalendarService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
