package domain

import (
	"time"

	"github.com/google/uuid"
)

type ExtractionStatus string

const (
	ExtractionStatusPending  ExtractionStatus = "PENDING"
	ExtractionStatusComplete ExtractionStatus = "COMPLETE"
	ExtractionStatusFailed   ExtractionStatus = "FAILED"
)

// ExtractionJob tracks one AI document-extraction run against a hub's document.
// Fields holds the coerced key/value output; a failed run keeps the error text
// and never blocks the API.
type ExtractionJob struct {
	ID           uuid.UUID         `json:"id"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	AssetHubID   uuid.UUID         `json:"asset_hub_id"`
	DocumentName string            `json:"document_name"`
	Status       ExtractionStatus  `json:"status"`
	Fields       map[string]string `json:"fields"`
	Error        string            `json:"error,omitempty"`
}

// ExtractedLoanFields is the structured payload the extractor is asked to
// produce from a loan document. All values are raw strings; the ETL coercion
// layer normalizes them before storage.
type ExtractedLoanFields struct {
	BorrowerName    string `json:"borrower_name"`
	LoanNumber      string `json:"loan_number"`
	OriginalBalance string `json:"original_balance"`
	CurrentBalance  string `json:"current_balance"`
	InterestRate    string `json:"interest_rate"`
	OriginationDate string `json:"origination_date"`
	MaturityDate    string `json:"maturity_date"`
	PropertyStreet  string `json:"property_street"`
	PropertyCity    string `json:"property_city"`
	PropertyState   string `json:"property_state"`
	PropertyZip     string `json:"property_zip"`
}
