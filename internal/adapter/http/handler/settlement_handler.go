package handler

import (
	"pos-settlement/internal/adapter/http/dto"
	"pos-settlement/internal/core/calculator"
	"pos-settlement/internal/core/domain"
	"pos-settlement/internal/core/ports"
	"pos-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// SettlementHandler serves the stateless calculator endpoints and the
// dashboard stats.
type SettlementHandler struct {
	settlementSvc ports.SettlementService
	reportingSvc  ports.ReportingService
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlementSvc ports.SettlementService, reportingSvc ports.ReportingService) *SettlementHandler {
	return &SettlementHandler{settlementSvc: settlementSvc, reportingSvc: reportingSvc}
}

// Evaluate handles POST /api/v1/settlements/evaluate.
func (h *SettlementHandler) Evaluate(c *gin.Context) {
	var req dto.EvaluateRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.settlementSvc.Evaluate(c.Request.Context(), domain.SettlementRequest{
		Due:      req.Due,
		Tendered: dto.Rows(req.Tendered),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toEvaluationResponse(*res))
}

// Split handles POST /api/v1/settlements/split.
func (h *SettlementHandler) Split(c *gin.Context) {
	var req dto.SplitRequest
	if !bindJSON(c, &req) {
		return
	}

	shares, err := h.settlementSvc.ProposeSplit(c.Request.Context(), req.Due, req.PartyCount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SplitResponse{
		Shares:   shares,
		Tendered: calculator.TenderedFromShares(shares),
	})
}

// GetStats handles GET /api/v1/settlements/stats.
func (h *SettlementHandler) GetStats(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", "all")
	stats, err := h.reportingSvc.GetStats(c.Request.Context(), session.StoreID(), period)
	if err != nil {
		response.Error(c, err)
		return
	}

	byMethod := make(map[string]domain.Money, len(stats.ByMethod))
	for m, total := range stats.ByMethod {
		byMethod[string(m)] = total
	}

	response.OK(c, dto.StatsResponse{
		Period:        period,
		Confirmed:     stats.Confirmed,
		TotalDue:      stats.TotalDue,
		TotalTendered: stats.TotalTendered,
		TotalChange:   stats.TotalChange,
		ByMethod:      byMethod,
	})
}
