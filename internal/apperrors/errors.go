package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrInvestorNotFound indicates that an investor with the given ID does not exist.
	ErrInvestorNotFound = errors.New("investor not found")

	// ErrEntryNotFound indicates that a waiting-period entry with the given ID does not exist.
	ErrEntryNotFound = errors.New("waiting period entry not found")

	// ErrReturnNotFound indicates that a monthly return with the given ID does not exist.
	ErrReturnNotFound = errors.New("monthly return not found")

	// ErrAccountNotFound indicates that a trading account with the given ID does not exist.
	ErrAccountNotFound = errors.New("trading account not found")

	// ErrPnLEntryNotFound indicates that a daily P&L entry with the given ID does not exist.
	ErrPnLEntryNotFound = errors.New("daily P&L entry not found")

	// ErrExpenseNotFound indicates that an expense with the given ID does not exist.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrAgreementNotFound indicates that an agreement record does not exist.
	ErrAgreementNotFound = errors.New("agreement not found")
)

// Validation errors represent caller-supplied input that violates a
// precondition. They are rejected before any write reaches the database.
var (
	// ErrAmountNotPositive indicates that an amount field must be greater than zero.
	ErrAmountNotPositive = errors.New("amount must be positive")

	// ErrAmountExceedsRemaining indicates that a capital return would exceed
	// the investor's remaining capital at creation time.
	ErrAmountExceedsRemaining = errors.New("amount exceeds remaining capital")

	// ErrInvalidStatus indicates a status value outside the allowed set.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidMonth indicates a month not in YYYY-MM format.
	ErrInvalidMonth = errors.New("invalid month format")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")
)

// Conflict errors represent uniqueness or referential constraint violations
// at the storage layer. They are surfaced to the caller, never retried.
var (
	// ErrDuplicateMonth indicates that a monthly return already exists for
	// the investor and month combination.
	ErrDuplicateMonth = errors.New("monthly return already exists for this month")

	// ErrDuplicateAgreementVersion indicates that an agreement with the same
	// version already exists for the investor.
	ErrDuplicateAgreementVersion = errors.New("agreement version already exists for this investor")
)

// Upstream fetch errors represent reads that failed entirely. They must
// propagate as distinct failures and never be coerced to empty results,
// since a zero would silently understate capital figures.
var (
	ErrFailedToRetrieveInvestors      = errors.New("failed to retrieve investors")
	ErrFailedToRetrieveInvestments    = errors.New("failed to retrieve investments")
	ErrFailedToRetrieveWaitingEntries = errors.New("failed to retrieve waiting period entries")
	ErrFailedToRetrieveReturns        = errors.New("failed to retrieve monthly returns")
	ErrFailedToRetrieveAccounts       = errors.New("failed to retrieve trading accounts")
	ErrFailedToRetrievePnL            = errors.New("failed to retrieve daily P&L")
)
