package handlers

import (
	"net/http"
	"strconv"

	"asset-management-service/internal/adapters/primary/http/dto"
	ports "asset-management-service/internal/core/ports/output"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListTrades(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.TradeListFilter{
		Status: c.Query("status"),
		Seller: c.Query("seller"),
		Search: c.Query("search"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  limit,
		Offset: offset,
	}

	trades, total, err := h.tradeSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list trades failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListTradesResponse{
		Items:      trades,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(trades),
	})
}

func (h *Handler) GetTrade(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trade id"})
		return
	}

	trade, err := h.tradeSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, trade)
}

func (h *Handler) CreateTrade(c *gin.Context) {
	var req dto.CreateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trade, err := h.tradeSvc.Create(
		c.Request.Context(),
		req.Name, req.Seller, req.Status,
		req.BidDate, req.SettlementDate,
		req.PurchasePrice, req.TotalUPB,
	)
	if err != nil {
		log.WithError(err).Error("create trade failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, trade)
}

func (h *Handler) UpdateTrade(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trade id"})
		return
	}

	var req dto.UpdateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Seller != nil {
		updates["seller"] = *req.Seller
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.BidDate != nil {
		updates["bid_date"] = req.BidDate
	}
	if req.SettlementDate != nil {
		updates["settlement_date"] = req.SettlementDate
	}
	if req.PurchasePrice != nil {
		updates["purchase_price"] = *req.PurchasePrice
	}
	if req.TotalUPB != nil {
		updates["total_upb"] = *req.TotalUPB
	}

	trade, err := h.tradeSvc.Update(c.Request.Context(), id, updates)
	if err != nil {
		log.WithError(err).Error("update trade failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, trade)
}

func (h *Handler) DeleteTrade(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trade id"})
		return
	}

	if err := h.tradeSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete trade failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ProvisionTrade builds the SharePoint folder tree for every asset on the trade.
func (h *Handler) ProvisionTrade(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trade id"})
		return
	}

	result, err := h.sharepointSvc.ProvisionTrade(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("provision trade failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
