package testutil

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
)

// MockTradeRepo is a mock of TradeRepository.
type MockTradeRepo struct {
	mock.Mock
}

func (m *MockTradeRepo) Create(ctx context.Context, trade *domain.Trade) error {
	args := m.Called(ctx, trade)
	return args.Error(0)
}

func (m *MockTradeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trade, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeRepo) GetByName(ctx context.Context, name string) (*domain.Trade, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeRepo) Update(ctx context.Context, trade *domain.Trade) error {
	args := m.Called(ctx, trade)
	return args.Error(0)
}

func (m *MockTradeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTradeRepo) List(ctx context.Context, filter ports.TradeListFilter) ([]*domain.Trade, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Trade), args.Int(1), args.Error(2)
}

func (m *MockTradeRepo) CountAssets(ctx context.Context, tradeID uuid.UUID) (int, error) {
	args := m.Called(ctx, tradeID)
	return args.Int(0), args.Error(1)
}

// MockAssetRepo is a mock of AssetRepository.
type MockAssetRepo struct {
	mock.Mock
}

func (m *MockAssetRepo) CreateHub(ctx context.Context, hub *domain.AssetIdHub) error {
	args := m.Called(ctx, hub)
	return args.Error(0)
}

func (m *MockAssetRepo) GetHub(ctx context.Context, id uuid.UUID) (*domain.AssetIdHub, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetIdHub), args.Error(1)
}

func (m *MockAssetRepo) GetHubByLoanNumber(ctx context.Context, servicerLoanNumber string) (*domain.AssetIdHub, error) {
	args := m.Called(ctx, servicerLoanNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetIdHub), args.Error(1)
}

func (m *MockAssetRepo) UpdateHub(ctx context.Context, hub *domain.AssetIdHub) error {
	args := m.Called(ctx, hub)
	return args.Error(0)
}

func (m *MockAssetRepo) List(ctx context.Context, filter ports.AssetListFilter) ([]*domain.AssetIdHub, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.AssetIdHub), args.Int(1), args.Error(2)
}

func (m *MockAssetRepo) UpsertLoan(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockAssetRepo) GetLoan(ctx context.Context, hubID uuid.UUID) (*domain.Loan, error) {
	args := m.Called(ctx, hubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockAssetRepo) UpsertProperty(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockAssetRepo) GetProperty(ctx context.Context, hubID uuid.UUID) (*domain.Property, error) {
	args := m.Called(ctx, hubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

// MockValuationRepo is a mock of ValuationRepository.
type MockValuationRepo struct {
	mock.Mock
}

func (m *MockValuationRepo) Create(ctx context.Context, valuation *domain.Valuation) error {
	args := m.Called(ctx, valuation)
	return args.Error(0)
}

func (m *MockValuationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Valuation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Valuation), args.Error(1)
}

func (m *MockValuationRepo) ListByHub(ctx context.Context, hubID uuid.UUID) ([]*domain.Valuation, error) {
	args := m.Called(ctx, hubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Valuation), args.Error(1)
}

func (m *MockValuationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAssumptionRepo is a mock of AssumptionRepository.
type MockAssumptionRepo struct {
	mock.Mock
}

func (m *MockAssumptionRepo) GetState(ctx context.Context, state string) (*domain.StateAssumption, error) {
	args := m.Called(ctx, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StateAssumption), args.Error(1)
}

func (m *MockAssumptionRepo) UpsertState(ctx context.Context, assumption *domain.StateAssumption) error {
	args := m.Called(ctx, assumption)
	return args.Error(0)
}

func (m *MockAssumptionRepo) ListStates(ctx context.Context) ([]*domain.StateAssumption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StateAssumption), args.Error(1)
}

func (m *MockAssumptionRepo) GetGlobal(ctx context.Context) (*domain.GlobalAssumption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GlobalAssumption), args.Error(1)
}

func (m *MockAssumptionRepo) UpsertGlobal(ctx context.Context, assumption *domain.GlobalAssumption) error {
	args := m.Called(ctx, assumption)
	return args.Error(0)
}

func (m *MockAssumptionRepo) GetOverride(ctx context.Context, hubID uuid.UUID) (*domain.AssetAssumptionOverride, error) {
	args := m.Called(ctx, hubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetAssumptionOverride), args.Error(1)
}

func (m *MockAssumptionRepo) UpsertOverride(ctx context.Context, override *domain.AssetAssumptionOverride) error {
	args := m.Called(ctx, override)
	return args.Error(0)
}

func (m *MockAssumptionRepo) DeleteOverride(ctx context.Context, hubID uuid.UUID) error {
	args := m.Called(ctx, hubID)
	return args.Error(0)
}

// MockOutcomeRepo is a mock of OutcomeRepository.
type MockOutcomeRepo struct {
	mock.Mock
}

func (m *MockOutcomeRepo) Upsert(ctx context.Context, outcome *domain.Outcome) error {
	args := m.Called(ctx, outcome)
	return args.Error(0)
}

func (m *MockOutcomeRepo) GetByHubAndType(ctx context.Context, hubID uuid.UUID, outcomeType domain.OutcomeType) (*domain.Outcome, error) {
	args := m.Called(ctx, hubID, outcomeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Outcome), args.Error(1)
}

func (m *MockOutcomeRepo) ListByHub(ctx context.Context, hubID uuid.UUID) ([]*domain.Outcome, error) {
	args := m.Called(ctx, hubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Outcome), args.Error(1)
}

func (m *MockOutcomeRepo) SetActive(ctx context.Context, hubID uuid.UUID, outcomeType domain.OutcomeType) error {
	args := m.Called(ctx, hubID, outcomeType)
	return args.Error(0)
}

func (m *MockOutcomeRepo) ClearActive(ctx context.Context, hubID uuid.UUID) error {
	args := m.Called(ctx, hubID)
	return args.Error(0)
}

// MockTaskRepo is a mock of TaskRepository.
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepo) Update(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepo) List(ctx context.Context, filter ports.TaskListFilter) ([]*domain.Task, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Task), args.Int(1), args.Error(2)
}

// MockServicerRecordRepo is a mock of ServicerRecordRepository.
type MockServicerRecordRepo struct {
	mock.Mock
}

func (m *MockServicerRecordRepo) Upsert(ctx context.Context, record *domain.ServicerRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockServicerRecordRepo) GetLatest(ctx context.Context, hubID uuid.UUID) (*domain.ServicerRecord, error) {
	args := m.Called(ctx, hubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServicerRecord), args.Error(1)
}

func (m *MockServicerRecordRepo) ListByHub(ctx context.Context, hubID uuid.UUID, from, to time.Time) ([]*domain.ServicerRecord, error) {
	args := m.Called(ctx, hubID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ServicerRecord), args.Error(1)
}

// MockExtractionJobRepo is a mock of ExtractionJobRepository.
type MockExtractionJobRepo struct {
	mock.Mock
}

func (m *MockExtractionJobRepo) Create(ctx context.Context, job *domain.ExtractionJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockExtractionJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExtractionJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionJob), args.Error(1)
}

func (m *MockExtractionJobRepo) Update(ctx context.Context, job *domain.ExtractionJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockExtractionJobRepo) ListByHub(ctx context.Context, hubID uuid.UUID) ([]*domain.ExtractionJob, error) {
	args := m.Called(ctx, hubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ExtractionJob), args.Error(1)
}

// MockCalendarEventRepo is a mock of CalendarEventRepository.
type MockCalendarEventRepo struct {
	mock.Mock
}

func (m *MockCalendarEventRepo) Create(ctx context.Context, event *domain.CalendarEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockCalendarEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CalendarEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CalendarEvent), args.Error(1)
}

func (m *MockCalendarEventRepo) Update(ctx context.Context, event *domain.CalendarEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockCalendarEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCalendarEventRepo) List(ctx context.Context, filter ports.EventListFilter) ([]*domain.CalendarEvent, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CalendarEvent), args.Error(1)
}

// MockContactRepo is a mock of ContactRepository.
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepo) Update(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactRepo) List(ctx context.Context, filter ports.ContactListFilter) ([]*domain.Contact, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Contact), args.Int(1), args.Error(2)
}

// MockGraphClient is a mock of GraphClient.
type MockGraphClient struct {
	mock.Mock
}

func (m *MockGraphClient) EnsureFolder(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

// MockDocumentExtractor is a mock of DocumentExtractor.
type MockDocumentExtractor struct {
	mock.Mock
}

func (m *MockDocumentExtractor) ExtractLoanFields(ctx context.Context, documentText string) (*domain.ExtractedLoanFields, error) {
	args := m.Called(ctx, documentText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractedLoanFields), args.Error(1)
}
