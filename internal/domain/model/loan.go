package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/workbank/loan-service/internal/domain/event"
	"github.com/workbank/loan-service/internal/domain/valueobject"
)

// Allowed loan terms and interest rate bounds. Flat add-on interest only:
// the total repayable is fixed at origination and never recomputed.
var (
	allowedInstallmentCounts = map[int]struct{}{6: {}, 9: {}, 12: {}, 24: {}}

	minInterestRate = decimal.NewFromFloat(0.1)
	maxInterestRate = decimal.NewFromFloat(0.5)

	one = decimal.NewFromInt(1)
)

// ValidateInstallmentCount checks the requested term against the allowed set.
func ValidateInstallmentCount(n int) error {
	if _, ok := allowedInstallmentCounts[n]; !ok {
		return valueobject.NewDomainError(
			valueobject.KindInstallmentCountInvalid,
			"number of installments must be one of 6, 9, 12, 24",
		)
	}
	return nil
}

// ValidateInterestRate checks the rate against the inclusive [0.1, 0.5] range.
func ValidateInterestRate(rate decimal.Decimal) error {
	if rate.LessThan(minInterestRate) || rate.GreaterThan(maxInterestRate) {
		return valueobject.NewDomainError(
			valueobject.KindInterestRateOutOfRange,
			"interest rate must be between 0.1 and 0.5",
		)
	}
	return nil
}

// TotalRepayable computes principal x (1 + rate). The total carries full
// precision; rounding happens per installment in the schedule generator.
func TotalRepayable(principal, rate decimal.Decimal) decimal.Decimal {
	return principal.Mul(one.Add(rate))
}

// ---------------------------------------------------------------------------
// Loan aggregate root
// ---------------------------------------------------------------------------

// Loan is an immutable aggregate. Mutations return a new copy. loanAmount is
// the total repayable (principal plus flat interest), fixed at origination.
type Loan struct {
	id                   string
	customerID           string
	loanAmount           decimal.Decimal
	numberOfInstallments int
	createDate           time.Time
	paid                 bool
	version              int
	createdAt            time.Time
	updatedAt            time.Time
	domainEvents         []event.DomainEvent
}

// NewLoan originates a loan and records the LoanCreated event. firstDueDate
// is the anchor date of the installment schedule.
func NewLoan(customerID string, loanAmount decimal.Decimal, numberOfInstallments int, firstDueDate time.Time, now time.Time) Loan {
	id := uuid.New().String()

	loan := Loan{
		id:                   id,
		customerID:           customerID,
		loanAmount:           loanAmount,
		numberOfInstallments: numberOfInstallments,
		createDate:           now,
		paid:                 false,
		version:              1,
		createdAt:            now,
		updatedAt:            now,
	}

	loan.domainEvents = append(loan.domainEvents, event.NewLoanCreated(
		id, customerID, loanAmount, numberOfInstallments, firstDueDate,
	))

	return loan
}

// ReconstructLoan rebuilds a Loan aggregate from persistence.
func ReconstructLoan(
	id, customerID string,
	loanAmount decimal.Decimal,
	numberOfInstallments int,
	createDate time.Time,
	paid bool,
	version int,
	createdAt, updatedAt time.Time,
) Loan {
	return Loan{
		id:                   id,
		customerID:           customerID,
		loanAmount:           loanAmount,
		numberOfInstallments: numberOfInstallments,
		createDate:           createDate,
		paid:                 paid,
		version:              version,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// ApplyPaymentResult records the outcome of a payment allocation: the paid
// flag is set from the post-allocation installment reload, and the
// PaymentApplied (and, on payoff, LoanPaidOff) events are collected.
func (l Loan) ApplyPaymentResult(installmentsPaid int, totalPaid decimal.Decimal, allPaid bool, now time.Time) Loan {
	next := l
	next.paid = allPaid
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewPaymentApplied(
		l.id, l.customerID, installmentsPaid, totalPaid, allPaid,
	))

	if allPaid && !l.paid {
		next.domainEvents = append(next.domainEvents, event.NewLoanPaidOff(l.id, l.customerID))
	}

	return next
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Loan) ID() string                        { return l.id }
func (l Loan) CustomerID() string                { return l.customerID }
func (l Loan) LoanAmount() decimal.Decimal       { return l.loanAmount }
func (l Loan) NumberOfInstallments() int         { return l.numberOfInstallments }
func (l Loan) CreateDate() time.Time             { return l.createDate }
func (l Loan) Paid() bool                        { return l.paid }
func (l Loan) Version() int                      { return l.version }
func (l Loan) CreatedAt() time.Time              { return l.createdAt }
func (l Loan) UpdatedAt() time.Time              { return l.updatedAt }
func (l Loan) DomainEvents() []event.DomainEvent { return l.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (l Loan) ClearEvents() Loan {
	next := l
	next.domainEvents = nil
	return next
}

func copyEvents(events []event.DomainEvent) []event.DomainEvent {
	if events == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(events))
	copy(out, events)
	return out
}
