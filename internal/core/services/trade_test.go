package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
	"asset-management-service/internal/testutil"
)

func TestTradeService_Create(t *testing.T) {
	repo := new(testutil.MockTradeRepo)
	svc := NewTradeService(repo)

	returned := &domain.Trade{Name: "2024-Q1-NPL", Status: domain.TradeStatusPending}
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Trade")).Return(nil)
	repo.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(returned, nil)

	result, err := svc.Create(context.Background(), "2024-Q1-NPL", "Seller Bank", "", nil, nil, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "2024-Q1-NPL", result.Name)
	assert.Equal(t, domain.TradeStatusPending, result.Status)
}

func TestTradeService_Create_MissingName(t *testing.T) {
	svc := NewTradeService(new(testutil.MockTradeRepo))

	_, err := svc.Create(context.Background(), "", "", "", nil, nil, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidTradeName)
}

func TestTradeService_Create_InvalidStatus(t *testing.T) {
	svc := NewTradeService(new(testutil.MockTradeRepo))

	_, err := svc.Create(context.Background(), "t", "", "SHIPPED", nil, nil, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidTradeStatus)
}

func TestTradeService_List_ClampsLimit(t *testing.T) {
	repo := new(testutil.MockTradeRepo)
	svc := NewTradeService(repo)

	repo.On("List", mock.Anything, mock.MatchedBy(func(f ports.TradeListFilter) bool {
		return f.Limit == 100
	})).Return([]*domain.Trade{}, 0, nil)

	_, _, err := svc.List(context.Background(), ports.TradeListFilter{Limit: 5000})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestTradeService_Delete_WithAssets(t *testing.T) {
	repo := new(testutil.MockTradeRepo)
	svc := NewTradeService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&domain.Trade{ID: id}, nil)
	repo.On("CountAssets", mock.Anything, id).Return(42, nil)

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrTradeHasAssets)
	repo.AssertNotCalled(t, "Delete", mock.Anything, id)
}

func TestTradeService_Delete_Empty(t *testing.T) {
	repo := new(testutil.MockTradeRepo)
	svc := NewTradeService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&domain.Trade{ID: id}, nil)
	repo.On("CountAssets", mock.Anything, id).Return(0, nil)
	repo.On("Delete", mock.Anything, id).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), id))
}
