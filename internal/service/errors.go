package service

import (
	"errors"

	"pos-settlement/internal/core/domain"
	"pos-settlement/pkg/apperror"
)

// toAppError translates domain sentinels into client-facing errors.
func toAppError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return apperror.ErrInvalidArgument(err.Error())
	case errors.Is(err, domain.ErrInsufficientPayment):
		return apperror.ErrInsufficientPayment(err.Error())
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return apperror.ErrSubmissionInFlight()
	case errors.Is(err, domain.ErrAttemptBusy):
		return apperror.ErrAttemptBusy()
	case errors.Is(err, domain.ErrAttemptClosed):
		return apperror.ErrAttemptClosed()
	case errors.Is(err, domain.ErrAttemptNotFound):
		return apperror.ErrNotFound("Settlement attempt")
	case errors.Is(err, domain.ErrVersionConflict):
		return apperror.ErrVersionConflict()
	case errors.Is(err, domain.ErrSessionExpired):
		return apperror.ErrInvalidToken()
	case errors.Is(err, domain.ErrSubmissionFailed):
		return apperror.ErrSubmissionFailed(err.Error(), err)
	default:
		return apperror.InternalError(err)
	}
}
