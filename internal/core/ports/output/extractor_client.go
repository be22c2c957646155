package ports

import (
	"context"

	"asset-management-service/internal/core/domain"
)

// DocumentExtractor is the outbound port for the LLM document-extraction
// pipeline.
type DocumentExtractor interface {
	ExtractLoanFields(ctx context.Context, documentText string) (*domain.ExtractedLoanFields, error)
}
