package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pos-settlement/internal/core/calculator"
	"pos-settlement/internal/core/domain"
	"pos-settlement/internal/core/ports"
	"pos-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// guardSlack keeps the in-flight slot past the sales timeout so the
	// final state write happens while the slot is still held.
	guardSlack = 10 * time.Second

	// settleRetries bounds compare-and-swap retries of the final state write.
	settleRetries = 3
)

// SettlementOptions tunes attempt lifetimes and the sales call.
type SettlementOptions struct {
	AttemptTTL      time.Duration
	ConfirmationTTL time.Duration
	SubmitTimeout   time.Duration
	MaxParties      int
}

// SettlementDeps groups the collaborators of the settlement service.
type SettlementDeps struct {
	Attempts      ports.AttemptStore
	Guard         ports.SubmissionGuard
	Gateway       ports.SalesGateway
	Confirmations ports.ConfirmationRepository
	Cache         ports.ConfirmationCache
	Transactor    ports.DBTransactor
	Reporting     ports.ReportingService
	Metrics       ports.SettlementMetrics
}

// SettlementServiceImpl implements ports.SettlementService.
type SettlementServiceImpl struct {
	attempts      ports.AttemptStore
	guard         ports.SubmissionGuard
	gateway       ports.SalesGateway
	confirmations ports.ConfirmationRepository
	cache         ports.ConfirmationCache
	transactor    ports.DBTransactor
	reporting     ports.ReportingService
	metrics       ports.SettlementMetrics
	opts          SettlementOptions
	now           func() time.Time
	log           zerolog.Logger
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(deps SettlementDeps, opts SettlementOptions, log zerolog.Logger) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		attempts:      deps.Attempts,
		guard:         deps.Guard,
		gateway:       deps.Gateway,
		confirmations: deps.Confirmations,
		cache:         deps.Cache,
		transactor:    deps.Transactor,
		reporting:     deps.Reporting,
		metrics:       deps.Metrics,
		opts:          opts,
		now:           func() time.Time { return time.Now().UTC() },
		log:           log,
	}
}

// Evaluate is the stateless keystroke path.
func (s *SettlementServiceImpl) Evaluate(ctx context.Context, req domain.SettlementRequest) (*domain.SettlementResult, error) {
	res, err := calculator.Evaluate(req)
	if err != nil {
		return nil, toAppError(err)
	}
	s.metrics.ObserveEvaluation(res.Status)
	return &res, nil
}

// ProposeSplit divides due evenly between partyCount parties.
func (s *SettlementServiceImpl) ProposeSplit(ctx context.Context, due domain.Money, partyCount int) ([]domain.Money, error) {
	if s.opts.MaxParties > 0 && partyCount > s.opts.MaxParties {
		return nil, apperror.ErrInvalidArgument(fmt.Sprintf("party count must not exceed %d", s.opts.MaxParties))
	}
	shares, err := calculator.ProposeEvenSplit(due, partyCount)
	if err != nil {
		return nil, toAppError(err)
	}
	s.metrics.ObserveSplit(partyCount)
	return shares, nil
}

// OpenAttempt starts a settlement attempt for the session's store.
func (s *SettlementServiceImpl) OpenAttempt(ctx context.Context, session ports.Session, req ports.OpenAttemptRequest) (*ports.AttemptView, error) {
	if !req.Kind.IsValid() {
		return nil, apperror.ErrInvalidArgument(fmt.Sprintf("unknown attempt kind %q", req.Kind))
	}
	if req.Kind == domain.AttemptKindOrder && req.TargetID == "" {
		return nil, apperror.ErrInvalidArgument("order attempts need a target id")
	}
	settlement, err := domain.NewSettlementRequest(req.Due, req.Tendered)
	if err != nil {
		return nil, toAppError(err)
	}
	if _, err := calculator.Evaluate(settlement); err != nil {
		return nil, toAppError(err)
	}

	now := s.now()
	attempt := &domain.Attempt{
		ID:         uuid.New(),
		StoreID:    session.StoreID(),
		CashierID:  session.UserID(),
		Kind:       req.Kind,
		TargetID:   req.TargetID,
		CustomerID: req.CustomerID,
		Items:      req.Items,
		Due:        settlement.Due,
		Tendered:   settlement.Tendered,
		State:      domain.AttemptStateEditing,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if attempt.Tendered == nil {
		attempt.Tendered = []domain.TenderedPayment{}
	}

	if err := s.attempts.Create(ctx, attempt, s.opts.AttemptTTL); err != nil {
		return nil, apperror.ErrCacheError(fmt.Errorf("create attempt: %w", err))
	}

	s.log.Info().Str("attempt_id", attempt.ID.String()).Str("store_id", attempt.StoreID).
		Str("kind", string(attempt.Kind)).Str("due", attempt.Due.String()).Msg("settlement attempt opened")

	return s.view(attempt, nil)
}

// GetAttempt returns an attempt with its live evaluation.
func (s *SettlementServiceImpl) GetAttempt(ctx context.Context, session ports.Session, id uuid.UUID) (*ports.AttemptView, error) {
	attempt, err := s.load(ctx, session, id)
	if err != nil {
		return nil, err
	}
	var conf *domain.Confirmation
	if attempt.State == domain.AttemptStateConfirmed {
		if conf, err = s.confirmationOf(ctx, attempt); err != nil {
			return nil, err
		}
	}
	return s.view(attempt, conf)
}

// UpdateTendered replaces the tendered rows of an editable attempt.
func (s *SettlementServiceImpl) UpdateTendered(ctx context.Context, session ports.Session, id uuid.UUID, rows []domain.TenderedPayment) (*ports.AttemptView, error) {
	return s.edit(ctx, session, id, func(attempt *domain.Attempt) ([]domain.TenderedPayment, error) {
		if rows == nil {
			rows = []domain.TenderedPayment{}
		}
		return rows, nil
	})
}

// SplitAttempt replaces the tendered rows with an even split of the due amount.
func (s *SettlementServiceImpl) SplitAttempt(ctx context.Context, session ports.Session, id uuid.UUID, partyCount int) (*ports.AttemptView, error) {
	return s.edit(ctx, session, id, func(attempt *domain.Attempt) ([]domain.TenderedPayment, error) {
		shares, err := s.ProposeSplit(ctx, attempt.Due, partyCount)
		if err != nil {
			return nil, err
		}
		return calculator.TenderedFromShares(shares), nil
	})
}

func (s *SettlementServiceImpl) edit(
	ctx context.Context,
	session ports.Session,
	id uuid.UUID,
	rowsFor func(*domain.Attempt) ([]domain.TenderedPayment, error),
) (*ports.AttemptView, error) {
	attempt, err := s.load(ctx, session, id)
	if err != nil {
		return nil, err
	}
	if err := attempt.CanEdit(); err != nil {
		return nil, toAppError(err)
	}

	rows, err := rowsFor(attempt)
	if err != nil {
		return nil, err
	}
	settlement, err := domain.NewSettlementRequest(attempt.Due, rows)
	if err != nil {
		return nil, toAppError(err)
	}
	res, err := calculator.Evaluate(settlement)
	if err != nil {
		return nil, toAppError(err)
	}

	if err := attempt.ReplaceTendered(rows, s.now()); err != nil {
		return nil, toAppError(err)
	}
	if err := s.save(ctx, attempt); err != nil {
		return nil, err
	}
	s.metrics.ObserveEvaluation(res.Status)
	return &ports.AttemptView{Attempt: attempt, Evaluation: res}, nil
}

// Abandon closes an attempt. A submission still in flight keeps running but
// its result is discarded.
func (s *SettlementServiceImpl) Abandon(ctx context.Context, session ports.Session, id uuid.UUID) (*ports.AttemptView, error) {
	attempt, err := s.load(ctx, session, id)
	if err != nil {
		return nil, err
	}
	if attempt.State == domain.AttemptStateAbandoned {
		return s.view(attempt, nil)
	}
	if err := attempt.Abandon(s.now()); err != nil {
		return nil, toAppError(err)
	}
	if err := s.save(ctx, attempt); err != nil {
		return nil, err
	}
	s.log.Info().Str("attempt_id", id.String()).Msg("settlement attempt abandoned")
	return s.view(attempt, nil)
}

// Confirm re-checks the settlement, claims the attempt's submission slot and
// submits it to the sales API. Confirming a confirmed attempt returns the
// stored confirmation without calling the sales API again. An attempt left
// in CONFIRMING by an interrupted confirm is resubmitted under the same
// idempotency key once its slot is free.
func (s *SettlementServiceImpl) Confirm(ctx context.Context, session ports.Session, id uuid.UUID) (*ports.AttemptView, error) {
	start := time.Now()

	attempt, err := s.load(ctx, session, id)
	if err != nil {
		return nil, err
	}
	if view, done, err := s.decided(ctx, attempt, start); done {
		return view, err
	}
	// A CONFIRMING attempt goes on to the guard: only the slot tells a live
	// submission apart from one whose owner is gone.
	if attempt.State != domain.AttemptStateConfirming {
		if _, err := calculator.EvaluateForConfirm(attempt.Request()); err != nil {
			s.metrics.ObserveConfirmation(ports.OutcomeRejected, time.Since(start))
			return nil, toAppError(err)
		}
	}

	token, acquired, err := s.guard.Acquire(ctx, id, s.opts.SubmitTimeout+guardSlack)
	if err != nil {
		return nil, apperror.ErrCacheError(fmt.Errorf("acquire submission slot: %w", err))
	}
	if !acquired {
		s.metrics.ObserveConfirmation(ports.OutcomeInFlight, time.Since(start))
		return nil, apperror.ErrSubmissionInFlight()
	}

	// From here on the outcome must be recorded even if the client goes away.
	bg := context.WithoutCancel(ctx)
	defer func() {
		if err := s.guard.Release(bg, id, token); err != nil {
			s.log.Warn().Err(err).Str("attempt_id", id.String()).Msg("failed to release submission slot")
		}
	}()

	// Re-read under the slot: the previous holder may have settled the
	// attempt between the first read and its release.
	attempt, err = s.load(bg, session, id)
	if err != nil {
		return nil, err
	}
	if view, done, err := s.decided(bg, attempt, start); done {
		return view, err
	}

	res, err := calculator.EvaluateForConfirm(attempt.Request())
	if err != nil {
		s.metrics.ObserveConfirmation(ports.OutcomeRejected, time.Since(start))
		return nil, toAppError(err)
	}

	if attempt.State == domain.AttemptStateConfirming {
		s.log.Warn().Str("attempt_id", id.String()).Msg("resubmitting settlement attempt left in CONFIRMING")
	} else {
		if err := attempt.BeginConfirm(s.now()); err != nil {
			return nil, toAppError(err)
		}
		if err := s.save(bg, attempt); err != nil {
			return nil, err
		}
	}

	submitCtx, cancel := context.WithTimeout(bg, s.opts.SubmitTimeout)
	receipt, subErr := s.gateway.Submit(submitCtx, session, ports.SalesSubmission{
		IdempotencyKey: id.String(),
		Kind:           attempt.Kind,
		TargetID:       attempt.TargetID,
		CustomerID:     attempt.CustomerID,
		Items:          attempt.Items,
		Payments:       domain.PositiveRows(attempt.Tendered),
	})
	cancel()

	return s.settle(bg, id, res, receipt, subErr, start)
}

// decided answers a confirm on an attempt whose outcome is already settled:
// CONFIRMED replays the stored confirmation, ABANDONED is closed.
func (s *SettlementServiceImpl) decided(ctx context.Context, attempt *domain.Attempt, start time.Time) (*ports.AttemptView, bool, error) {
	switch attempt.State {
	case domain.AttemptStateConfirmed:
		conf, err := s.confirmationOf(ctx, attempt)
		if err != nil {
			return nil, true, err
		}
		s.metrics.ObserveConfirmation(ports.OutcomeReplayed, time.Since(start))
		view, err := s.view(attempt, conf)
		return view, true, err
	case domain.AttemptStateAbandoned:
		return nil, true, apperror.ErrAttemptClosed()
	}
	return nil, false, nil
}

// settle records the outcome of a submission on the attempt unless it was
// abandoned in the meantime.
func (s *SettlementServiceImpl) settle(
	ctx context.Context,
	id uuid.UUID,
	res domain.SettlementResult,
	receipt *ports.SalesReceipt,
	subErr error,
	start time.Time,
) (*ports.AttemptView, error) {
	var attempt *domain.Attempt
	for try := 0; ; try++ {
		current, err := s.attempts.Get(ctx, id)
		if err != nil && !errors.Is(err, domain.ErrAttemptNotFound) {
			return nil, apperror.ErrCacheError(fmt.Errorf("reload attempt: %w", err))
		}
		if current == nil || current.State == domain.AttemptStateAbandoned {
			s.metrics.ObserveConfirmation(ports.OutcomeDiscarded, time.Since(start))
			event := s.log.Warn().Str("attempt_id", id.String()).Err(subErr)
			if receipt != nil {
				event = event.Str("sale_reference", receipt.Reference)
			}
			event.Msg("settlement attempt closed during submission, result discarded")
			return nil, apperror.ErrAttemptClosed()
		}

		now := s.now()
		if subErr != nil {
			current.MarkFailed(failureMessage(subErr), now)
		} else {
			current.MarkConfirmed(receipt.Reference, now)
		}

		err = s.attempts.Save(ctx, current, s.opts.AttemptTTL)
		if err == nil {
			attempt = current
			break
		}
		if !errors.Is(err, domain.ErrVersionConflict) || try+1 >= settleRetries {
			return nil, apperror.ErrCacheError(fmt.Errorf("record submission outcome: %w", err))
		}
	}

	if subErr != nil {
		s.metrics.ObserveConfirmation(ports.OutcomeFailed, time.Since(start))
		s.log.Warn().Err(subErr).Str("attempt_id", id.String()).Msg("settlement submission failed")
		return nil, toAppError(subErr)
	}

	conf := &domain.Confirmation{
		AttemptID:     attempt.ID,
		StoreID:       attempt.StoreID,
		CashierID:     attempt.CashierID,
		Kind:          attempt.Kind,
		TargetID:      attempt.TargetID,
		CustomerID:    attempt.CustomerID,
		SaleReference: attempt.SaleReference,
		Due:           res.Due,
		TotalTendered: res.TotalTendered,
		Change:        res.Change,
		Payments:      domain.PositiveRows(attempt.Tendered),
		ConfirmedAt:   *attempt.ConfirmedAt,
	}
	s.record(ctx, conf)
	s.reporting.Invalidate(ctx, attempt.StoreID)

	s.metrics.ObserveConfirmation(ports.OutcomeConfirmed, time.Since(start))
	s.log.Info().Str("attempt_id", id.String()).Str("sale_reference", conf.SaleReference).
		Str("total", conf.TotalTendered.String()).Str("change", conf.Change.String()).Msg("settlement confirmed")

	return &ports.AttemptView{Attempt: attempt, Evaluation: res, Confirmation: conf}, nil
}

// record writes the confirmation log and its cache copy. The sale already
// exists upstream, so failures here are logged and do not fail the confirm.
func (s *SettlementServiceImpl) record(ctx context.Context, conf *domain.Confirmation) {
	if err := s.persist(ctx, conf); err != nil {
		s.log.Error().Err(err).Str("attempt_id", conf.AttemptID.String()).Msg("failed to persist confirmation")
	}
	if err := s.cache.Set(ctx, conf, s.opts.ConfirmationTTL); err != nil {
		s.log.Warn().Err(err).Str("attempt_id", conf.AttemptID.String()).Msg("failed to cache confirmation")
	}
}

func (s *SettlementServiceImpl) persist(ctx context.Context, conf *domain.Confirmation) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.confirmations.Create(ctx, dbTx, conf); err != nil {
		return err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// load fetches an attempt of the session's store. Attempts that expired
// after being confirmed are rebuilt from the confirmation log.
func (s *SettlementServiceImpl) load(ctx context.Context, session ports.Session, id uuid.UUID) (*domain.Attempt, error) {
	attempt, err := s.attempts.Get(ctx, id)
	switch {
	case errors.Is(err, domain.ErrAttemptNotFound):
		conf, err := s.findConfirmation(ctx, id)
		if err != nil {
			return nil, err
		}
		if conf == nil {
			return nil, apperror.ErrNotFound("Settlement attempt")
		}
		attempt = attemptFromConfirmation(conf)
	case err != nil:
		return nil, apperror.ErrCacheError(fmt.Errorf("load attempt: %w", err))
	}

	if attempt.StoreID != session.StoreID() {
		return nil, apperror.ErrNotFound("Settlement attempt")
	}
	return attempt, nil
}

// findConfirmation checks the Redis fast path, then the confirmation log.
func (s *SettlementServiceImpl) findConfirmation(ctx context.Context, id uuid.UUID) (*domain.Confirmation, error) {
	conf, err := s.cache.Get(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Str("attempt_id", id.String()).Msg("confirmation cache read failed, falling through to DB")
	}
	if conf != nil {
		return conf, nil
	}

	conf, err = s.confirmations.GetByAttemptID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("confirmation lookup: %w", err))
	}
	return conf, nil
}

// confirmationOf returns the stored confirmation of a confirmed attempt,
// rebuilding it from the attempt when neither layer has it.
func (s *SettlementServiceImpl) confirmationOf(ctx context.Context, attempt *domain.Attempt) (*domain.Confirmation, error) {
	conf, err := s.findConfirmation(ctx, attempt.ID)
	if err != nil || conf != nil {
		return conf, err
	}

	res, err := calculator.Evaluate(attempt.Request())
	if err != nil {
		return nil, toAppError(err)
	}
	conf = &domain.Confirmation{
		AttemptID:     attempt.ID,
		StoreID:       attempt.StoreID,
		CashierID:     attempt.CashierID,
		Kind:          attempt.Kind,
		TargetID:      attempt.TargetID,
		CustomerID:    attempt.CustomerID,
		SaleReference: attempt.SaleReference,
		Due:           res.Due,
		TotalTendered: res.TotalTendered,
		Change:        res.Change,
		Payments:      domain.PositiveRows(attempt.Tendered),
	}
	if attempt.ConfirmedAt != nil {
		conf.ConfirmedAt = *attempt.ConfirmedAt
	}
	return conf, nil
}

func (s *SettlementServiceImpl) save(ctx context.Context, attempt *domain.Attempt) error {
	err := s.attempts.Save(ctx, attempt, s.opts.AttemptTTL)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrVersionConflict), errors.Is(err, domain.ErrAttemptNotFound):
		return toAppError(err)
	default:
		return apperror.ErrCacheError(fmt.Errorf("save attempt: %w", err))
	}
}

func (s *SettlementServiceImpl) view(attempt *domain.Attempt, conf *domain.Confirmation) (*ports.AttemptView, error) {
	res, err := calculator.Evaluate(attempt.Request())
	if err != nil {
		return nil, toAppError(err)
	}
	return &ports.AttemptView{Attempt: attempt, Evaluation: res, Confirmation: conf}, nil
}

func attemptFromConfirmation(conf *domain.Confirmation) *domain.Attempt {
	confirmedAt := conf.ConfirmedAt
	return &domain.Attempt{
		ID:            conf.AttemptID,
		StoreID:       conf.StoreID,
		CashierID:     conf.CashierID,
		Kind:          conf.Kind,
		TargetID:      conf.TargetID,
		CustomerID:    conf.CustomerID,
		Due:           conf.Due,
		Tendered:      conf.Payments,
		State:         domain.AttemptStateConfirmed,
		SaleReference: conf.SaleReference,
		CreatedAt:     conf.ConfirmedAt,
		UpdatedAt:     conf.ConfirmedAt,
		ConfirmedAt:   &confirmedAt,
	}
}

func failureMessage(err error) string {
	if errors.Is(err, domain.ErrSessionExpired) {
		return "session expired, sign in again and retry"
	}
	return err.Error()
}
