package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"asset-management-service/internal/core/domain"
	"asset-management-service/internal/testutil"
)

func TestServicingService_ImportFeed(t *testing.T) {
	records := new(testutil.MockServicerRecordRepo)
	assets := new(testutil.MockAssetRepo)
	svc := NewServicingService(records, assets)

	hubID := uuid.New()
	hub := &domain.AssetIdHub{ID: hubID, ServicerLoanNumber: "1000001"}
	loan := &domain.Loan{AssetHubID: hubID, CurrentBalance: dec("90000")}

	assets.On("GetHubByLoanNumber", mock.Anything, "1000001").Return(hub, nil)
	assets.On("GetHubByLoanNumber", mock.Anything, "9999999").Return(nil, domain.ErrAssetNotFound)
	assets.On("GetLoan", mock.Anything, hubID).Return(loan, nil)

	var savedRecord *domain.ServicerRecord
	records.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.ServicerRecord")).Run(func(args mock.Arguments) {
		savedRecord = args.Get(1).(*domain.ServicerRecord)
	}).Return(nil)
	var savedLoan *domain.Loan
	assets.On("UpsertLoan", mock.Anything, mock.AnythingOfType("*domain.Loan")).Run(func(args mock.Arguments) {
		savedLoan = args.Get(1).(*domain.Loan)
	}).Return(nil)

	rows := [][]string{
		{"Loan Number", "As Of Date", "UPB", "Next Due Date", "Loan Status"},
		{"1000001", "2024-03-31", "$88,500.00", "2023-10-01", "FC"},
		{"9999999", "2024-03-31", "$50,000.00", "", "PERF"},
	}

	result, err := svc.ImportFeed(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Upserted)
	assert.Equal(t, 1, result.Unmatched)

	require.NotNil(t, savedRecord)
	assert.Equal(t, "88500", savedRecord.UPB.String())
	assert.Equal(t, "FC", savedRecord.StatusCode)
	assert.Equal(t, 2024, savedRecord.AsOfDate.Year())

	// The live loan mirrors the snapshot.
	require.NotNil(t, savedLoan)
	assert.Equal(t, "88500", savedLoan.CurrentBalance.String())
	require.NotNil(t, savedLoan.NextDueDate)
	assert.Equal(t, time.October, savedLoan.NextDueDate.Month())
}

func TestServicingService_ImportFeed_LoanRefreshIsBestEffort(t *testing.T) {
	records := new(testutil.MockServicerRecordRepo)
	assets := new(testutil.MockAssetRepo)
	svc := NewServicingService(records, assets)

	hubID := uuid.New()
	assets.On("GetHubByLoanNumber", mock.Anything, "1000001").Return(&domain.AssetIdHub{ID: hubID}, nil)
	assets.On("GetLoan", mock.Anything, hubID).Return(nil, domain.ErrLoanNotFound)
	records.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.ServicerRecord")).Return(nil)

	rows := [][]string{
		{"Loan Number", "As Of Date", "UPB"},
		{"1000001", "2024-03-31", "88500"},
	}

	result, err := svc.ImportFeed(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Upserted)
	assets.AssertNotCalled(t, "UpsertLoan", mock.Anything, mock.Anything)
}

func TestServicingService_History_DefaultsToNow(t *testing.T) {
	records := new(testutil.MockServicerRecordRepo)
	assets := new(testutil.MockAssetRepo)
	svc := NewServicingService(records, assets)

	hubID := uuid.New()
	from := time.Now().AddDate(-1, 0, 0)
	assets.On("GetHub", mock.Anything, hubID).Return(&domain.AssetIdHub{ID: hubID}, nil)
	records.On("ListByHub", mock.Anything, hubID, from, mock.MatchedBy(func(to time.Time) bool {
		return !to.IsZero()
	})).Return([]*domain.ServicerRecord{}, nil)

	_, err := svc.History(context.Background(), hubID, from, time.Time{})
	assert.NoError(t, err)
	records.AssertExpectations(t)
}
