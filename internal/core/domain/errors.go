package domain

import "errors"

// ============================================================================
// Trade / Asset Errors
// ============================================================================

var (
	ErrTradeNotFound      = errors.New("trade not found")
	ErrTradeNameConflict  = errors.New("trade with this name already exists")
	ErrInvalidTradeName   = errors.New("trade name is required")
	ErrTradeHasAssets     = errors.New("cannot delete trade: assets are still attached")
	ErrInvalidTradeStatus = errors.New("invalid trade status")
)

var (
	ErrAssetNotFound      = errors.New("asset not found")
	ErrLoanNotFound       = errors.New("loan not found")
	ErrPropertyNotFound   = errors.New("property not found")
	ErrAssetAlreadyExists = errors.New("asset with this servicer loan number already exists in the trade")
	ErrInvalidLoanNumber  = errors.New("servicer loan number is required")
	ErrInvalidState       = errors.New("state must be a two-letter code")
)

// ============================================================================
// Valuation / Assumption Errors
// ============================================================================

var (
	ErrValuationNotFound  = errors.New("valuation not found")
	ErrNoValuation        = errors.New("no valuation on file for asset")
	ErrInvalidValueSource = errors.New("invalid valuation source")
)

var (
	ErrStateAssumptionNotFound  = errors.New("state assumption set not found")
	ErrGlobalAssumptionNotFound = errors.New("global assumption set not found")
	ErrOverrideNotFound         = errors.New("asset assumption override not found")
)

// ============================================================================
// Outcome Errors
// ============================================================================

var (
	ErrOutcomeNotFound      = errors.New("outcome not found")
	ErrInvalidOutcomeType   = errors.New("invalid outcome type")
	ErrOutcomeNotModeled    = errors.New("outcome has not been modeled yet")
	ErrOutcomeAlreadyActive = errors.New("outcome is already active for this asset")
)

// ============================================================================
// Servicing / ETL Errors
// ============================================================================

var (
	ErrServicerRecordNotFound = errors.New("servicer record not found")
	ErrMissingKeyColumn       = errors.New("row is missing a required key column")
)

// ============================================================================
// Task / Calendar / CRM Errors
// ============================================================================

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidTaskType  = errors.New("invalid task type")
	ErrEventNotFound    = errors.New("calendar event not found")
	ErrInvalidEventTime = errors.New("event end must not precede start")
	ErrContactNotFound  = errors.New("contact not found")
	ErrInvalidContact   = errors.New("contact name is required")
)

// ============================================================================
// Integration Errors
// ============================================================================

var (
	ErrExtractionJobNotFound = errors.New("extraction job not found")
	ErrExtractorNotAvailable = errors.New("document extractor is not configured")
	ErrGraphNotAvailable     = errors.New("sharepoint integration is not configured")
	ErrEmptyDocument         = errors.New("document text is required")
)
