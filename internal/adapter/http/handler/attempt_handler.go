package handler

import (
	"pos-settlement/internal/adapter/http/dto"
	"pos-settlement/internal/adapter/http/middleware"
	"pos-settlement/internal/core/domain"
	"pos-settlement/internal/core/ports"
	"pos-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// AttemptHandler handles settlement attempt endpoints.
type AttemptHandler struct {
	settlementSvc ports.SettlementService
}

// NewAttemptHandler creates a new AttemptHandler.
func NewAttemptHandler(settlementSvc ports.SettlementService) *AttemptHandler {
	return &AttemptHandler{settlementSvc: settlementSvc}
}

// Open handles POST /api/v1/attempts.
func (h *AttemptHandler) Open(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req dto.OpenAttemptRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	view, err := h.settlementSvc.OpenAttempt(c.Request.Context(), session, ports.OpenAttemptRequest{
		Kind:       domain.AttemptKind(req.Kind),
		TargetID:   req.TargetID,
		CustomerID: req.CustomerID,
		Items:      req.Items,
		Due:        req.Due,
		Tendered:   dto.Rows(req.Tendered),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAttemptID, view.Attempt.ID)
	response.Created(c, toAttemptResponse(view))
}

// Get handles GET /api/v1/attempts/:id.
func (h *AttemptHandler) Get(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := attemptParam(c)
	if !ok {
		return
	}

	view, err := h.settlementSvc.GetAttempt(c.Request.Context(), session, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toAttemptResponse(view))
}

// UpdateTendered handles PUT /api/v1/attempts/:id/tendered.
func (h *AttemptHandler) UpdateTendered(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := attemptParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTenderedRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.settlementSvc.UpdateTendered(c.Request.Context(), session, id, dto.Rows(req.Tendered))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toAttemptResponse(view))
}

// Split handles POST /api/v1/attempts/:id/split.
func (h *AttemptHandler) Split(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := attemptParam(c)
	if !ok {
		return
	}

	var req dto.SplitAttemptRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.settlementSvc.SplitAttempt(c.Request.Context(), session, id, req.PartyCount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toAttemptResponse(view))
}

// Confirm handles POST /api/v1/attempts/:id/confirm.
func (h *AttemptHandler) Confirm(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := attemptParam(c)
	if !ok {
		return
	}

	view, err := h.settlementSvc.Confirm(c.Request.Context(), session, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toAttemptResponse(view))
}

// Abandon handles DELETE /api/v1/attempts/:id.
func (h *AttemptHandler) Abandon(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := attemptParam(c)
	if !ok {
		return
	}

	view, err := h.settlementSvc.Abandon(c.Request.Context(), session, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toAttemptResponse(view))
}
