package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"asset-management-service/internal/core/domain"
	"asset-management-service/internal/testutil"
)

func TestExtractionService_Run_NoExtractorConfigured(t *testing.T) {
	svc := NewExtractionService(new(testutil.MockExtractionJobRepo), new(testutil.MockAssetRepo), nil)

	_, err := svc.Run(context.Background(), uuid.New(), "note.pdf", "some text")
	assert.ErrorIs(t, err, domain.ErrExtractorNotAvailable)
}

func TestExtractionService_Run_EmptyDocument(t *testing.T) {
	svc := NewExtractionService(new(testutil.MockExtractionJobRepo), new(testutil.MockAssetRepo), new(testutil.MockDocumentExtractor))

	_, err := svc.Run(context.Background(), uuid.New(), "note.pdf", "")
	assert.ErrorIs(t, err, domain.ErrEmptyDocument)
}

func TestExtractionService_Run_CoercesFields(t *testing.T) {
	jobs := new(testutil.MockExtractionJobRepo)
	assets := new(testutil.MockAssetRepo)
	extractor := new(testutil.MockDocumentExtractor)
	svc := NewExtractionService(jobs, assets, extractor)

	hubID := uuid.New()
	assets.On("GetHub", mock.Anything, hubID).Return(&domain.AssetIdHub{ID: hubID}, nil)
	jobs.On("Create", mock.Anything, mock.AnythingOfType("*domain.ExtractionJob")).Return(nil)
	jobs.On("Update", mock.Anything, mock.AnythingOfType("*domain.ExtractionJob")).Return(nil)
	extractor.On("ExtractLoanFields", mock.Anything, "promissory note text").Return(&domain.ExtractedLoanFields{
		BorrowerName:    "Jane Borrower",
		LoanNumber:      "1000001",
		CurrentBalance:  "$123,456.78",
		InterestRate:    "7.5%",
		OriginationDate: "3/15/2019",
		MaturityDate:    "not stated",
	}, nil)

	job, err := svc.Run(context.Background(), hubID, "note.pdf", "promissory note text")
	require.NoError(t, err)
	assert.Equal(t, domain.ExtractionStatusComplete, job.Status)
	assert.Equal(t, "Jane Borrower", job.Fields["borrower_name"])
	assert.Equal(t, "123456.78", job.Fields["current_balance"])
	assert.Equal(t, "0.075", job.Fields["interest_rate"])
	assert.Equal(t, "2019-03-15", job.Fields["origination_date"])
	// Unparseable dates are dropped, not stored dirty.
	assert.NotContains(t, job.Fields, "maturity_date")
}

func TestExtractionService_Run_ExtractorFailureLandsOnJob(t *testing.T) {
	jobs := new(testutil.MockExtractionJobRepo)
	assets := new(testutil.MockAssetRepo)
	extractor := new(testutil.MockDocumentExtractor)
	svc := NewExtractionService(jobs, assets, extractor)

	hubID := uuid.New()
	assets.On("GetHub", mock.Anything, hubID).Return(&domain.AssetIdHub{ID: hubID}, nil)
	jobs.On("Create", mock.Anything, mock.AnythingOfType("*domain.ExtractionJob")).Return(nil)
	jobs.On("Update", mock.Anything, mock.AnythingOfType("*domain.ExtractionJob")).Return(nil)
	extractor.On("ExtractLoanFields", mock.Anything, "garbled scan").Return(nil, errors.New("model refused"))

	job, err := svc.Run(context.Background(), hubID, "scan.pdf", "garbled scan")
	require.NoError(t, err)
	assert.Equal(t, domain.ExtractionStatusFailed, job.Status)
	assert.Equal(t, "model refused", job.Error)
}
