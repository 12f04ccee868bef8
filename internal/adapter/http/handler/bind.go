package handler

import (
	"errors"
	"net/http"
	"time"

	"pos-settlement/internal/adapter/http/dto"
	"pos-settlement/internal/adapter/http/middleware"
	"pos-settlement/internal/core/domain"
	"pos-settlement/internal/core/ports"
	"pos-settlement/pkg/apperror"
	"pos-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindJSON binds and validates the request body, writing the error response
// itself. It reports whether the handler may continue.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		response.Error(c, apperror.ErrPayloadTooLarge())
	case errors.Is(err, domain.ErrInvalidArgument):
		response.Error(c, apperror.ErrInvalidArgument(err.Error()))
	default:
		if fields := dto.FieldErrors(err); fields != nil {
			response.Error(c, apperror.Validation("request validation failed").WithFields(fields))
			break
		}
		response.Error(c, apperror.Validation(err.Error()))
	}
	return false
}

// requireSession returns the request's session or answers 401.
func requireSession(c *gin.Context) (ports.Session, bool) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, apperror.ErrMissingToken())
		return nil, false
	}
	return session, true
}

// attemptParam parses the :id route parameter.
func attemptParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidArgument("invalid attempt id"))
		return uuid.Nil, false
	}
	c.Set(middleware.CtxAttemptID, id)
	return id, true
}

func toEvaluationResponse(res domain.SettlementResult) dto.EvaluationResponse {
	return dto.EvaluationResponse{
		Due:           res.Due,
		TotalTendered: res.TotalTendered,
		Remaining:     res.Remaining,
		Change:        res.Change,
		Status:        string(res.Status),
		CanConfirm:    res.Status.IsConfirmable(),
	}
}

// toAttemptResponse converts an attempt view to DTO.
func toAttemptResponse(view *ports.AttemptView) dto.AttemptResponse {
	a := view.Attempt
	resp := dto.AttemptResponse{
		ID:         a.ID.String(),
		Kind:       string(a.Kind),
		TargetID:   a.TargetID,
		CustomerID: a.CustomerID,
		State:      string(a.State),
		Due:        a.Due,
		Tendered:   a.Tendered,
		LastError:  a.LastError,
		Version:    a.Version,
		Evaluation: toEvaluationResponse(view.Evaluation),
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.Format(time.RFC3339),
	}
	if resp.Tendered == nil {
		resp.Tendered = []domain.TenderedPayment{}
	}
	if conf := view.Confirmation; conf != nil {
		resp.Confirmation = &dto.ConfirmationResponse{
			SaleReference: conf.SaleReference,
			Due:           conf.Due,
			TotalTendered: conf.TotalTendered,
			Change:        conf.Change,
			Payments:      conf.Payments,
			ConfirmedAt:   conf.ConfirmedAt.Format(time.RFC3339),
		}
	}
	return resp
}
