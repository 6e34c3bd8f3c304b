package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionFunding        TransactionType = "FUNDING"
	TransactionAccessFeeDebit TransactionType = "ACCESS_FEE_DEBIT"
	TransactionReferralCredit TransactionType = "REFERRAL_CREDIT"
	TransactionWithdrawal     TransactionType = "WITHDRAWAL"
)

type TransactionStatus string

const (
	TransactionPending  TransactionStatus = "PENDING"
	TransactionApproved TransactionStatus = "APPROVED"
	TransactionRejected TransactionStatus = "REJECTED"
)

type InterestStatus string

const (
	InterestPending       InterestStatus = "PENDING"
	InterestContactShared InterestStatus = "CONTACT_SHARED"
	InterestPaidAccess    InterestStatus = "PAID_ACCESS"
	InterestWithdrawn     InterestStatus = "WITHDRAWN"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s InterestStatus) IsTerminal() bool {
	return s == InterestPaidAccess || s == InterestWithdrawn
}

type QuoteStatus string

const (
	QuotePending  QuoteStatus = "PENDING"
	QuoteAccepted QuoteStatus = "ACCEPTED"
	QuoteRejected QuoteStatus = "REJECTED"
)

type JobStatus string

const (
	JobOpen       JobStatus = "OPEN"
	JobInProgress JobStatus = "IN_PROGRESS"
	JobClosed     JobStatus = "CLOSED"
)

type Wallet struct {
	ID           uuid.UUID `db:"id"`
	AccountID    uuid.UUID `db:"account_id"`
	BalanceCoins int64     `db:"balance_coins"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type Transaction struct {
	ID             uuid.UUID         `db:"id"`
	WalletID       uuid.UUID         `db:"wallet_id"`
	AccountID      uuid.UUID         `db:"account_id"`
	Type           TransactionType   `db:"type"`
	AmountCoins    int64             `db:"amount_coins"`
	Status         TransactionStatus `db:"status"`
	Reference      string            `db:"reference"`
	IdempotencyKey string            `db:"idempotency_key"`
	CreatedAt      time.Time         `db:"created_at"`
	DecidedAt      *time.Time        `db:"decided_at"`
}

// DebitRequest describes a balance decrease. Reference ties the debit to the
// entity it pays for (an interest id for access fees).
type DebitRequest struct {
	AccountID      uuid.UUID
	Amount         int64
	Type           TransactionType
	Reference      string
	IdempotencyKey string
}

type Interest struct {
	ID              uuid.UUID      `db:"id"`
	JobID           uuid.UUID      `db:"job_id"`
	ProviderID      uuid.UUID      `db:"provider_id"`
	Status          InterestStatus `db:"status"`
	CreatedAt       time.Time      `db:"created_at"`
	ContactSharedAt *time.Time     `db:"contact_shared_at"`
	PaymentMadeAt   *time.Time     `db:"payment_made_at"`
	PaymentTxID     *uuid.UUID     `db:"payment_tx_id"`
	WithdrawnAt     *time.Time     `db:"withdrawn_at"`
}

// IsPaid is the only check for "fee already charged".
func (i *Interest) IsPaid() bool {
	return i.PaymentMadeAt != nil
}

type Quote struct {
	ID         uuid.UUID   `db:"id"`
	JobID      uuid.UUID   `db:"job_id"`
	ProviderID uuid.UUID   `db:"provider_id"`
	Price      int64       `db:"price"`
	Status     QuoteStatus `db:"status"`
	CreatedAt  time.Time   `db:"created_at"`
	DecidedAt  *time.Time  `db:"decided_at"`
}

// Job is owned by the listings module; this service reads it and moves its
// status forward.
type Job struct {
	ID             uuid.UUID `db:"id"`
	PosterID       uuid.UUID `db:"poster_id"`
	Category       string    `db:"category"`
	Status         JobStatus `db:"status"`
	AccessFeeCoins int64     `db:"access_fee_coins"`
	ExpiresAt      time.Time `db:"expires_at"`
}

// AcceptsEngagement returns ErrJobNotActive or ErrJobExpired when new
// interests and quotes must be refused.
func (j *Job) AcceptsEngagement(now time.Time) error {
	if j.Status != JobOpen {
		return ErrJobNotActive
	}
	if !j.ExpiresAt.IsZero() && !now.Before(j.ExpiresAt) {
		return ErrJobExpired
	}
	return nil
}

type User struct {
	ID         uuid.UUID `json:"id"`
	Categories []string  `json:"categories"`
}

func (u *User) HasCategory(category string) bool {
	return slices.Contains(u.Categories, category)
}
