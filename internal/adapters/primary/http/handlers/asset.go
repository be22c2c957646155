package handlers

import (
	"net/http"
	"strconv"

	"asset-management-service/internal/adapters/primary/http/dto"
	ports "asset-management-service/internal/core/ports/output"
	"asset-management-service/internal/etl"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListAssets(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.AssetListFilter{
		Status: c.Query("status"),
		State:  c.Query("state"),
		Search: c.Query("search"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  limit,
		Offset: offset,
	}
	if tradeID := c.Query("trade_id"); tradeID != "" {
		id, err := uuid.Parse(tradeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trade_id"})
			return
		}
		filter.TradeID = id
	}

	hubs, total, err := h.assetSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list assets failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListAssetsResponse{
		Items:      hubs,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(hubs),
	})
}

// ListTradeAssets lists the hubs attached to one trade.
func (h *Handler) ListTradeAssets(c *gin.Context) {
	tradeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trade id"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	hubs, total, err := h.assetSvc.List(c.Request.Context(), ports.AssetListFilter{
		TradeID: tradeID,
		Status:  c.Query("status"),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		log.WithError(err).Error("list trade assets failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListAssetsResponse{
		Items:      hubs,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(hubs),
	})
}

func (h *Handler) GetAsset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return
	}

	hub, err := h.assetSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, hub)
}

func (h *Handler) UpdateAsset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return
	}

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hub, err := h.assetSvc.UpdateHub(c.Request.Context(), id, req.Status)
	if err != nil {
		log.WithError(err).Error("update asset failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, hub)
}

func (h *Handler) UpdateLoan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return
	}

	var req dto.LoanPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loan, err := h.assetSvc.UpdateLoan(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		log.WithError(err).Error("update loan failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, loan)
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return
	}

	var req dto.PropertyPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.assetSvc.UpdateProperty(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		log.WithError(err).Error("update property failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// ImportTape ingests an uploaded seller tape (CSV or Excel) under the trade.
func (h *Handler) ImportTape(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trade id"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	rows, err := etl.ReadRows(file, header.Filename)
	if err != nil {
		log.WithError(err).WithField("filename", header.Filename).Error("read tape upload failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.assetSvc.ImportTape(c.Request.Context(), id, rows)
	if err != nil {
		log.WithError(err).Error("import tape failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
