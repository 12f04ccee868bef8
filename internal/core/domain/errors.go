package domain

import "errors"

// Sentinel errors of the settlement core. Services translate them into
// apperror codes at the boundary.
var (
	// ErrInvalidArgument marks a malformed request: negative due, bad party
	// count, unparseable or out-of-range amount, unknown payment method.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientPayment is returned by the confirmation gate when the
	// tendered total is below the amount due.
	ErrInsufficientPayment = errors.New("tendered amount is below amount due")

	// ErrSubmissionInFlight is returned when a confirm is attempted while a
	// previous submission of the same attempt has not resolved.
	ErrSubmissionInFlight = errors.New("settlement submission already in flight")

	// ErrAttemptBusy is returned when tendered rows are edited while the
	// attempt is being confirmed.
	ErrAttemptBusy = errors.New("settlement attempt is being confirmed")

	// ErrAttemptClosed is returned for any change to a confirmed or abandoned attempt.
	ErrAttemptClosed = errors.New("settlement attempt is closed")

	// ErrAttemptNotFound is returned when an attempt is unknown or has expired.
	ErrAttemptNotFound = errors.New("settlement attempt not found")

	// ErrSubmissionFailed is returned when the sales API rejected or could not
	// be reached for a submission. The attempt stays editable.
	ErrSubmissionFailed = errors.New("sales submission failed")

	// ErrSessionExpired is returned when the sales API rejects the session token.
	ErrSessionExpired = errors.New("session is no longer valid")

	// ErrVersionConflict is returned by attempt stores when a write is based
	// on a stale version.
	ErrVersionConflict = errors.New("settlement attempt was modified concurrently")
)
