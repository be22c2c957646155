package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
)

// assetSubfolders is the folder tree provisioned under every asset.
var assetSubfolders = []string{
	"Collateral",
	"Servicing",
	"Title",
	"Valuations",
	"Legal",
}

// ProvisionResult reports a SharePoint provisioning run for one trade.
type ProvisionResult struct {
	TradeID  uuid.UUID `json:"trade_id"`
	Created  int       `json:"created"`
	Existing int       `json:"existing"`
	Failed   int       `json:"failed"`
	Errors   []string  `json:"errors,omitempty"`
}

// SharePointService provisions the document folder tree for a trade's assets
// through the Graph client. Config-gated: without a client every call returns
// ErrGraphNotAvailable.
type SharePointService struct {
	trades ports.TradeRepository
	assets ports.AssetRepository
	graph  ports.GraphClient
}

func NewSharePointService(trades ports.TradeRepository, assets ports.AssetRepository, graph ports.GraphClient) *SharePointService {
	return &SharePointService{trades: trades, assets: assets, graph: graph}
}

// ProvisionTrade ensures /Trades/<trade>/<loan-number>/<subfolder> exists for
// every asset in the trade. Idempotent; failures on one asset never abort the
// run.
func (s *SharePointService) ProvisionTrade(ctx context.Context, tradeID uuid.UUID) (*ProvisionResult, error) {
	if s.graph == nil {
		return nil, domain.ErrGraphNotAvailable
	}

	trade, err := s.trades.GetByID(ctx, tradeID)
	if err != nil {
		return nil, err
	}

	result := &ProvisionResult{TradeID: tradeID}
	tradeRoot := fmt.Sprintf("Trades/%s", sanitizeFolderName(trade.Name))
	if err := s.ensure(ctx, tradeRoot, result); err != nil {
		return nil, err
	}

	offset := 0
	for {
		hubs, total, err := s.assets.List(ctx, ports.AssetListFilter{TradeID: tradeID, Limit: 200, Offset: offset})
		if err != nil {
			return nil, err
		}
		for _, hub := range hubs {
			s.provisionAsset(ctx, tradeRoot, hub, result)
		}
		offset += len(hubs)
		if offset >= total || len(hubs) == 0 {
			break
		}
	}

	return result, nil
}

func (s *SharePointService) provisionAsset(ctx context.Context, tradeRoot string, hub *domain.AssetIdHub, result *ProvisionResult) {
	assetRoot := fmt.Sprintf("%s/%s", tradeRoot, sanitizeFolderName(hub.ServicerLoanNumber))
	paths := []string{assetRoot}
	for _, sub := range assetSubfolders {
		paths = append(paths, fmt.Sprintf("%s/%s", assetRoot, sub))
	}

	for _, path := range paths {
		if err := s.ensure(ctx, path, result); err != nil {
			log.WithError(err).WithField("path", path).Warn("folder provisioning failed")
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", path, err))
			return
		}
	}
}

func (s *SharePointService) ensure(ctx context.Context, path string, result *ProvisionResult) error {
	created, err := s.graph.EnsureFolder(ctx, path)
	if err != nil {
		return err
	}
	if created {
		result.Created++
	} else {
		result.Existing++
	}
	return nil
}

// sanitizeFolderName strips the characters SharePoint rejects in item names.
func sanitizeFolderName(name string) string {
	cleaned := strings.NewReplacer(
		"\"", "", "*", "", ":", "", "<", "", ">", "",
		"?", "", "/", "-", "\\", "-", "|", "", "#", "", "%", "",
	).Replace(strings.TrimSpace(name))
	cleaned = strings.Trim(cleaned, ". ")
	if cleaned == "" {
		return "unnamed"
	}
	return cleaned
}
