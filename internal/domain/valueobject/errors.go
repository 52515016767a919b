package valueobject

import "errors"

// ---------------------------------------------------------------------------
// Domain errors
// ---------------------------------------------------------------------------

// ErrorKind is a stable, machine-checkable classification of a domain error.
// Kinds represent invalid input or state, never transient failure; callers
// must not retry them.
type ErrorKind string

const (
	KindInstallmentCountInvalid ErrorKind = "INSTALLMENT_COUNT_INVALID"
	KindInterestRateOutOfRange  ErrorKind = "INTEREST_RATE_OUT_OF_RANGE"
	KindCustomerNotFound        ErrorKind = "CUSTOMER_NOT_FOUND"
	KindCreditLimitExceeded     ErrorKind = "CREDIT_LIMIT_EXCEEDED"
	KindLoanNotFound            ErrorKind = "LOAN_NOT_FOUND"
	KindInvalidPaymentAmount    ErrorKind = "INVALID_PAYMENT_AMOUNT"

	// KindLedgerInconsistent reports a credit release that would drive a
	// customer's used credit below zero. It signals corrupted ledger state,
	// not caller error.
	KindLedgerInconsistent ErrorKind = "LEDGER_INCONSISTENT"
)

// DomainError pairs an ErrorKind with a human-readable message.
type DomainError struct {
	kind    ErrorKind
	message string
}

// NewDomainError creates a DomainError with the given kind and message.
func NewDomainError(kind ErrorKind, message string) *DomainError {
	return &DomainError{kind: kind, message: message}
}

// Error implements the error interface.
func (e *DomainError) Error() string { return e.message }

// Kind returns the stable error kind.
func (e *DomainError) Kind() ErrorKind { return e.kind }

// KindOf extracts the ErrorKind from an error chain. The second return value
// is false when the chain carries no DomainError.
func KindOf(err error) (ErrorKind, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.kind, true
	}
	return "", false
}
