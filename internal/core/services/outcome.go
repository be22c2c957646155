package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
)

// OutcomeService models disposition paths for an asset: cash flows, the
// liquidation-fee waterfall, NPV at the global discount rate and annualized
// IRR within configured bounds.
type OutcomeService struct {
	outcomes    ports.OutcomeRepository
	assets      ports.AssetRepository
	valuations  ports.ValuationRepository
	assumptions *AssumptionService
	irrFloor    float64
	irrCap      float64
}

func NewOutcomeService(outcomes ports.OutcomeRepository, assets ports.AssetRepository, valuations ports.ValuationRepository, assumptions *AssumptionService, irrFloor, irrCap float64) *OutcomeService {
	return &OutcomeService{
		outcomes:    outcomes,
		assets:      assets,
		valuations:  valuations,
		assumptions: assumptions,
		irrFloor:    irrFloor,
		irrCap:      irrCap,
	}
}

func (s *OutcomeService) Get(ctx context.Context, hubID uuid.UUID, outcomeType string) (*domain.Outcome, error) {
	if err := domain.ValidateOutcomeType(outcomeType); err != nil {
		return nil, err
	}
	return s.outcomes.GetByHubAndType(ctx, hubID, domain.OutcomeType(outcomeType))
}

func (s *OutcomeService) ListByHub(ctx context.Context, hubID uuid.UUID) ([]*domain.Outcome, error) {
	if _, err := s.assets.GetHub(ctx, hubID); err != nil {
		return nil, err
	}
	return s.outcomes.ListByHub(ctx, hubID)
}

// Model recomputes one outcome from the asset's current loan, resolved
// valuation and resolved assumptions, and persists it.
func (s *OutcomeService) Model(ctx context.Context, hubID uuid.UUID, outcomeType string) (*domain.Outcome, error) {
	if err := domain.ValidateOutcomeType(outcomeType); err != nil {
		return nil, err
	}
	ot := domain.OutcomeType(outcomeType)

	hub, err := s.assets.GetHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	loan, err := s.assets.GetLoan(ctx, hubID)
	if err != nil {
		return nil, err
	}
	hub.Loan = loan
	if property, err := s.assets.GetProperty(ctx, hubID); err == nil {
		hub.Property = property
	}

	valuations, err := s.valuations.ListByHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	valuation, err := domain.ResolveValuation(valuations)
	if err != nil {
		return nil, err
	}

	ra, err := s.assumptions.Resolve(ctx, hub)
	if err != nil {
		return nil, err
	}

	outcome := s.compute(hub, loan, valuation, ra, ot)

	existing, err := s.outcomes.GetByHubAndType(ctx, hubID, ot)
	switch {
	case err == nil:
		outcome.ID = existing.ID
		outcome.CreatedAt = existing.CreatedAt
		outcome.Active = existing.Active
	case err == domain.ErrOutcomeNotFound:
		outcome.ID = uuid.New()
		outcome.CreatedAt = time.Now()
	default:
		return nil, err
	}

	if err := s.outcomes.Upsert(ctx, outcome); err != nil {
		return nil, err
	}
	return s.outcomes.GetByHubAndType(ctx, hubID, ot)
}

// ModelAll recomputes every outcome type for a hub. Assets without a
// valuation on file come back empty rather than failing.
func (s *OutcomeService) ModelAll(ctx context.Context, hubID uuid.UUID) ([]*domain.Outcome, error) {
	modeled := make([]*domain.Outcome, 0, len(domain.OutcomeTypes))
	for _, ot := range domain.OutcomeTypes {
		outcome, err := s.Model(ctx, hubID, string(ot))
		if err == domain.ErrNoValuation {
			return modeled, nil
		}
		if err != nil {
			return nil, err
		}
		modeled = append(modeled, outcome)
	}
	return modeled, nil
}

// Summary compares all modeled outcomes and recommends the highest net PV.
func (s *OutcomeService) Summary(ctx context.Context, hubID uuid.UUID) (*domain.OutcomeSummary, error) {
	if _, err := s.assets.GetHub(ctx, hubID); err != nil {
		return nil, err
	}
	outcomes, err := s.outcomes.ListByHub(ctx, hubID)
	if err != nil {
		return nil, err
	}

	summary := &domain.OutcomeSummary{AssetHubID: hubID, Outcomes: outcomes}
	var best *domain.Outcome
	for _, o := range outcomes {
		if o.Status != domain.OutcomeStatusModeled && o.Status != domain.OutcomeStatusComplete {
			continue
		}
		if best == nil || o.NetPV.GreaterThan(best.NetPV) {
			best = o
		}
	}
	if best != nil {
		t := best.Type
		summary.Recommended = &t
	}
	return summary, nil
}

// Activate marks one outcome as the path being worked, deactivating the rest.
func (s *OutcomeService) Activate(ctx context.Context, hubID uuid.UUID, outcomeType string) (*domain.Outcome, error) {
	if err := domain.ValidateOutcomeType(outcomeType); err != nil {
		return nil, err
	}
	ot := domain.OutcomeType(outcomeType)

	outcome, err := s.outcomes.GetByHubAndType(ctx, hubID, ot)
	if err != nil {
		return nil, err
	}
	if outcome.Status == domain.OutcomeStatusDraft {
		return nil, domain.ErrOutcomeNotModeled
	}
	if outcome.Active {
		return nil, domain.ErrOutcomeAlreadyActive
	}

	if err := s.outcomes.SetActive(ctx, hubID, ot); err != nil {
		return nil, err
	}
	return s.outcomes.GetByHubAndType(ctx, hubID, ot)
}

// ============================================================================
// Modeling
// ============================================================================

func (s *OutcomeService) compute(hub *domain.AssetIdHub, loan *domain.Loan, valuation *domain.Valuation, ra *domain.ResolvedAssumptions, ot domain.OutcomeType) *domain.Outcome {
	asis := valuation.AsIsValue
	arv := asis
	if valuation.ARVValue != nil && !valuation.ARVValue.IsZero() {
		arv = *valuation.ARVValue
	}
	payoff := loan.TotalPayoff()

	now := time.Now()
	outcome := &domain.Outcome{
		AssetHubID: hub.ID,
		Type:       ot,
		Status:     domain.OutcomeStatusModeled,
		UpdatedAt:  now,
		ModeledAt:  &now,
	}

	saleFees := []domain.FeeLine{
		{Name: "broker", Flat: ra.BrokerFeeFlat, Pct: ra.BrokerFeePct},
		{Name: "closing", Flat: ra.ClosingCostFlat, Pct: ra.ClosingCostPct},
		{Name: "other", Flat: ra.OtherCostFlat, Pct: ra.OtherCostPct},
	}
	// Dispositions without a listing skip the broker line.
	noBrokerFees := saleFees[1:]

	switch ot {
	case domain.OutcomeFC:
		// Third-party sale at the courthouse: recovery capped by total debt.
		outcome.DurationMonths = ra.FCTimelineMonths
		outcome.GrossProceeds = minDecimal(asis, payoff)
		outcome.LegalCost = ra.FCLegalCost
		outcome.LiquidationFee = domain.LiquidationFees(outcome.GrossProceeds, noBrokerFees)

	case domain.OutcomeREO:
		// Foreclose, rehab, list. Full ARV but the longest timeline.
		outcome.DurationMonths = ra.FCTimelineMonths + ra.REOMarketingMonths
		outcome.GrossProceeds = arv
		outcome.LegalCost = ra.FCLegalCost
		outcome.RehabCost = ra.RehabCost
		outcome.LiquidationFee = domain.LiquidationFees(outcome.GrossProceeds, saleFees)

	case domain.OutcomeShortSale:
		outcome.DurationMonths = maxInt(ra.REOMarketingMonths, 1)
		outcome.GrossProceeds = asis.Mul(ra.ShortSalePct)
		outcome.IncentiveCost = ra.BorrowerIncentive
		outcome.LiquidationFee = domain.LiquidationFees(outcome.GrossProceeds, saleFees)

	case domain.OutcomeDIL:
		// Borrower hands back the deed; skip legal, pay the incentive, sell as-is.
		outcome.DurationMonths = maxInt(ra.REOMarketingMonths, 1)
		outcome.GrossProceeds = asis
		outcome.IncentiveCost = ra.DILIncentive
		outcome.LiquidationFee = domain.LiquidationFees(outcome.GrossProceeds, saleFees)

	case domain.OutcomeModification:
		return s.computeModification(hub, loan, ra, outcome)

	case domain.OutcomeNoteSale:
		outcome.DurationMonths = 1
		outcome.GrossProceeds = payoff.Mul(ra.NoteSalePricePct)
		outcome.LiquidationFee = domain.LiquidationFees(outcome.GrossProceeds, noBrokerFees)
	}

	carryMonthly := s.monthlyCarry(asis, ra)
	outcome.CarryCost = carryMonthly.Mul(decimal.NewFromInt(int64(outcome.DurationMonths)))

	outcome.NetProceeds = outcome.GrossProceeds.
		Sub(outcome.LegalCost).
		Sub(outcome.RehabCost).
		Sub(outcome.IncentiveCost).
		Sub(outcome.CarryCost).
		Sub(outcome.LiquidationFee)

	s.finalize(outcome, loan, carryMonthly, ra)
	return outcome
}

// computeModification models a re-performing note: modified payments over the
// term, then a note-sale exit at a multiple of UPB.
func (s *OutcomeService) computeModification(hub *domain.AssetIdHub, loan *domain.Loan, ra *domain.ResolvedAssumptions, outcome *domain.Outcome) *domain.Outcome {
	term := maxInt(ra.ModTermMonths, 1)
	outcome.DurationMonths = term

	payment := loan.MonthlyPayment
	exit := loan.CurrentBalance.Mul(ra.ModNoteSaleMult).Mul(ra.NoteSalePricePct)
	payments := payment.Mul(decimal.NewFromInt(int64(term)))

	outcome.GrossProceeds = payments.Add(exit)
	outcome.LiquidationFee = domain.LiquidationFees(exit, []domain.FeeLine{
		{Name: "closing", Flat: ra.ClosingCostFlat, Pct: ra.ClosingCostPct},
		{Name: "other", Flat: ra.OtherCostFlat, Pct: ra.OtherCostPct},
	})

	// Performing borrower pays taxes and insurance; the fund carries only the
	// servicing strip.
	carryMonthly := ra.ServicingFeeMonthly
	outcome.CarryCost = carryMonthly.Mul(decimal.NewFromInt(int64(term)))

	outcome.NetProceeds = outcome.GrossProceeds.
		Sub(outcome.CarryCost).
		Sub(outcome.LiquidationFee)

	// Monthly inflows instead of a single terminal flow.
	basis := loan.PurchaseBasis
	gross := make([]decimal.Decimal, term+1)
	net := make([]decimal.Decimal, term+1)
	gross[0] = basis.Neg()
	net[0] = basis.Neg()
	for t := 1; t <= term; t++ {
		gross[t] = payment
		net[t] = payment.Sub(carryMonthly)
	}
	gross[term] = gross[term].Add(exit)
	net[term] = net[term].Add(exit).Sub(outcome.LiquidationFee)

	outcome.NetPV = npv(net, ra.DiscountRateAnnual)
	outcome.GrossIRR = annualizedIRR(gross, s.irrFloor, s.irrCap)
	outcome.NetIRR = annualizedIRR(net, s.irrFloor, s.irrCap)
	return outcome
}

// finalize builds the monthly flow vectors and fills PV and IRR. Carry in the
// flows must total outcome.CarryCost: a zero-month path still gets one grid
// slot for the terminal flow but carries nothing.
func (s *OutcomeService) finalize(outcome *domain.Outcome, loan *domain.Loan, carryMonthly decimal.Decimal, ra *domain.ResolvedAssumptions) {
	months := maxInt(outcome.DurationMonths, 1)
	basis := loan.PurchaseBasis

	terminalCarry := carryMonthly
	if outcome.DurationMonths == 0 {
		terminalCarry = decimal.Zero
	}

	gross := make([]decimal.Decimal, months+1)
	net := make([]decimal.Decimal, months+1)
	gross[0] = basis.Neg()
	net[0] = basis.Neg()
	for t := 1; t < months; t++ {
		net[t] = carryMonthly.Neg()
	}
	gross[months] = outcome.GrossProceeds
	net[months] = outcome.GrossProceeds.
		Sub(outcome.LegalCost).
		Sub(outcome.RehabCost).
		Sub(outcome.IncentiveCost).
		Sub(outcome.LiquidationFee).
		Sub(terminalCarry)

	outcome.NetPV = npv(net, ra.DiscountRateAnnual)
	outcome.GrossIRR = annualizedIRR(gross, s.irrFloor, s.irrCap)
	outcome.NetIRR = annualizedIRR(net, s.irrFloor, s.irrCap)
}

func (s *OutcomeService) monthlyCarry(value decimal.Decimal, ra *domain.ResolvedAssumptions) decimal.Decimal {
	annualPct := ra.PropertyTaxPct.Add(ra.InsurancePct)
	return value.Mul(annualPct).Div(decimal.NewFromInt(12)).Add(ra.ServicingFeeMonthly).Round(2)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
