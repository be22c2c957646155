package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
)

type ContactService struct {
	repo ports.ContactRepository
}

func NewContactService(repo ports.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

func (s *ContactService) Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	if contact.Name == "" {
		return nil, domain.ErrInvalidContact
	}
	if contact.Tag == "" {
		contact.Tag = domain.ContactOther
	}

	now := time.Now()
	contact.ID = uuid.New()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, contact.ID)
}

func (s *ContactService) Get(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ContactService) List(ctx context.Context, filter ports.ContactListFilter) ([]*domain.Contact, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}

func (s *ContactService) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*domain.Contact, error) {
	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["name"]; ok && v != nil {
		contact.Name = v.(string)
	}
	if v, ok := updates["firm"]; ok && v != nil {
		contact.Firm = v.(string)
	}
	if v, ok := updates["tag"]; ok && v != nil {
		contact.Tag = domain.ContactTag(v.(string))
	}
	if v, ok := updates["email"]; ok && v != nil {
		contact.Email = v.(string)
	}
	if v, ok := updates["phone"]; ok && v != nil {
		contact.Phone = v.(string)
	}
	if v, ok := updates["state"]; ok && v != nil {
		contact.State = v.(string)
	}
	if v, ok := updates["notes"]; ok && v != nil {
		contact.Notes = v.(string)
	}

	contact.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
