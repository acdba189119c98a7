package account

import "errors"

// Domain errors. Balance-rule failures (ErrInsufficientFunds,
// ErrWithdrawalNotAllowed) are shown to the user and the session goes on;
// record failures (ErrMalformedRecord, ErrInvalidAccountType) abort the
// load or create that raised them.
var (
	// ErrInsufficientFunds means a withdrawal exceeds the available
	// funds, credit limit included.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWithdrawalNotAllowed is returned by every withdrawal from a
	// loan account.
	ErrWithdrawalNotAllowed = errors.New("withdrawal not allowed for loan accounts")

	// ErrInvalidAccountType means an unrecognized variant selector or
	// record type tag.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrMalformedRecord means a record file block could not be parsed.
	ErrMalformedRecord = errors.New("malformed account record")

	// ErrAccountNotFound is a normal lookup miss, not an exceptional
	// condition. Callers check before acting.
	ErrAccountNotFound = errors.New("account not found")

	// ErrBadAmount means a non-positive deposit or withdrawal amount.
	ErrBadAmount = errors.New("amount must be positive")
)
