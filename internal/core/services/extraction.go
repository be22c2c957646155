package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
	"asset-management-service/internal/etl"
)

// ExtractionService runs the AI document-extraction pipeline: send document
// text to the extractor, coerce the raw strings through the ETL layer, store
// the job. The extractor is optional; without one the service refuses with
// ErrExtractorNotAvailable.
type ExtractionService struct {
	jobs      ports.ExtractionJobRepository
	assets    ports.AssetRepository
	extractor ports.DocumentExtractor
}

func NewExtractionService(jobs ports.ExtractionJobRepository, assets ports.AssetRepository, extractor ports.DocumentExtractor) *ExtractionService {
	return &ExtractionService{jobs: jobs, assets: assets, extractor: extractor}
}

func (s *ExtractionService) Get(ctx context.Context, id uuid.UUID) (*domain.ExtractionJob, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *ExtractionService) ListByHub(ctx context.Context, hubID uuid.UUID) ([]*domain.ExtractionJob, error) {
	if _, err := s.assets.GetHub(ctx, hubID); err != nil {
		return nil, err
	}
	return s.jobs.ListByHub(ctx, hubID)
}

// Run extracts loan fields from a document synchronously. Extraction failures
// land on the job row as FAILED; they are not API errors.
func (s *ExtractionService) Run(ctx context.Context, hubID uuid.UUID, documentName, documentText string) (*domain.ExtractionJob, error) {
	if s.extractor == nil {
		return nil, domain.ErrExtractorNotAvailable
	}
	if documentText == "" {
		return nil, domain.ErrEmptyDocument
	}
	if _, err := s.assets.GetHub(ctx, hubID); err != nil {
		return nil, err
	}

	now := time.Now()
	job := &domain.ExtractionJob{
		ID:           uuid.New(),
		CreatedAt:    now,
		UpdatedAt:    now,
		AssetHubID:   hubID,
		DocumentName: documentName,
		Status:       domain.ExtractionStatusPending,
		Fields:       map[string]string{},
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	fields, err := s.extractor.ExtractLoanFields(ctx, documentText)
	if err != nil {
		log.WithError(err).WithField("job_id", job.ID).Error("extraction failed")
		job.Status = domain.ExtractionStatusFailed
		job.Error = err.Error()
		job.UpdatedAt = time.Now()
		if uerr := s.jobs.Update(ctx, job); uerr != nil {
			return nil, uerr
		}
		return job, nil
	}

	job.Fields = coerceExtracted(fields)
	job.Status = domain.ExtractionStatusComplete
	job.UpdatedAt = time.Now()
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// coerceExtracted normalizes the model's raw strings with the same coercion
// rules the tape importer uses. Unparseable values are dropped rather than
// stored dirty.
func coerceExtracted(fields *domain.ExtractedLoanFields) map[string]string {
	out := map[string]string{}

	put := func(key, value string) {
		if v := etl.CoerceString(value); v != "" {
			out[key] = v
		}
	}
	putDecimal := func(key, value string) {
		if d := etl.CoerceDecimal(value); d != nil {
			out[key] = d.String()
		}
	}
	putPercent := func(key, value string) {
		if d := etl.CoercePercent(value); d != nil {
			out[key] = d.String()
		}
	}
	putDate := func(key, value string) {
		if t := etl.CoerceDate(value); t != nil {
			out[key] = t.Format("2006-01-02")
		}
	}

	put("borrower_name", fields.BorrowerName)
	put("loan_number", fields.LoanNumber)
	putDecimal("original_balance", fields.OriginalBalance)
	putDecimal("current_balance", fields.CurrentBalance)
	putPercent("interest_rate", fields.InterestRate)
	putDate("origination_date", fields.OriginationDate)
	putDate("maturity_date", fields.MaturityDate)
	put("property_street", fields.PropertyStreet)
	put("property_city", fields.PropertyCity)
	put("property_state", fields.PropertyState)
	put("property_zip", fields.PropertyZip)

	return out
}
