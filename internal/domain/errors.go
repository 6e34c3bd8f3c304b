package domain

import "errors"

// Each message is stable: clients match on it to tell "pay again later" from
// "already done" from "not allowed".
var (
	ErrNotFound               = errors.New("not found")
	ErrWrongStatus            = errors.New("invalid status transition")
	ErrAlreadyExists          = errors.New("interest already exists")
	ErrAlreadyQuoted          = errors.New("quote already submitted")
	ErrAlreadyPaid            = errors.New("access fee already paid")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrQuoteLimitReached      = errors.New("quote limit reached")
	ErrJobNotActive           = errors.New("job is not active")
	ErrJobExpired             = errors.New("job has expired")
	ErrNotAuthorized          = errors.New("not authorized")
	ErrCategoryMismatch       = errors.New("provider category does not match job")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
)

var (
	// ErrTransient marks a storage failure that left no effect behind, so the
	// whole command may be replayed.
	ErrTransient = errors.New("transient storage error")
	// ErrCommitUnknown marks a commit whose outcome could not be observed.
	// It must go to manual reconciliation and is never retried.
	ErrCommitUnknown = errors.New("commit outcome unknown")
)

// Kind returns the taxonomy name of err, or "internal" for anything outside it.
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "internal"
}

var kinds = []struct {
	err  error
	name string
}{
	{ErrNotFound, "not_found"},
	{ErrWrongStatus, "wrong_status"},
	{ErrAlreadyExists, "already_exists"},
	{ErrAlreadyQuoted, "already_quoted"},
	{ErrAlreadyPaid, "already_paid"},
	{ErrInsufficientFunds, "insufficient_funds"},
	{ErrQuoteLimitReached, "quote_limit_reached"},
	{ErrJobNotActive, "job_not_active"},
	{ErrJobExpired, "job_expired"},
	{ErrNotAuthorized, "not_authorized"},
	{ErrCategoryMismatch, "category_mismatch"},
	{ErrInvalidAmount, "invalid_amount"},
	{ErrInvalidTransactionType, "invalid_transaction_type"},
	{ErrTransient, "transient"},
	{ErrCommitUnknown, "commit_unknown"},
}
