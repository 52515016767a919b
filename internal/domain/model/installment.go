package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// dailyAdjustmentRate is the fraction of an installment's base amount applied
// per day of distance from the due date: a discount when paid early, a
// penalty when paid late.
var dailyAdjustmentRate = decimal.NewFromFloat(0.001)

// eligibilityWindowMonths bounds early settlement: an installment becomes
// payable once its due date is no more than this many months in the future.
const eligibilityWindowMonths = 3

// ---------------------------------------------------------------------------
// Installment entity
// ---------------------------------------------------------------------------

// Installment is one obligation in a loan's repayment schedule. The count of
// installments is fixed at loan creation; each installment is mutated exactly
// once, when payment is applied — paid flag, paid amount, and payment date
// transition together.
type Installment struct {
	id          string
	loanID      string
	amount      decimal.Decimal
	paidAmount  decimal.Decimal
	dueDate     time.Time
	paymentDate *time.Time
	paid        bool
}

// NewInstallment creates an unpaid installment.
func NewInstallment(loanID string, amount decimal.Decimal, dueDate time.Time) Installment {
	return Installment{
		id:         uuid.New().String(),
		loanID:     loanID,
		amount:     amount,
		paidAmount: decimal.Zero,
		dueDate:    dueDate,
		paid:       false,
	}
}

// ReconstructInstallment rebuilds an Installment from persistence.
func ReconstructInstallment(
	id, loanID string,
	amount, paidAmount decimal.Decimal,
	dueDate time.Time,
	paymentDate *time.Time,
	paid bool,
) Installment {
	return Installment{
		id:          id,
		loanID:      loanID,
		amount:      amount,
		paidAmount:  paidAmount,
		dueDate:     dueDate,
		paymentDate: paymentDate,
		paid:        paid,
	}
}

// EligibleOn reports whether the installment may be settled on the given
// date: its due date must be no more than three months in the future.
func (i Installment) EligibleOn(today time.Time) bool {
	return !i.dueDate.After(plusMonths(today, eligibilityWindowMonths))
}

// plusMonths adds calendar months to a date, clamping the day of month to the
// target month's length: November 30 plus three months is February 28, not
// March 2. time.AddDate would normalize the overflow into the next month and
// widen the eligibility window at month ends.
func plusMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// AdjustedAmount returns the amount actually owed when paying on the given
// date: the base amount less 0.1% per day before the due date, or plus 0.1%
// per day after it, rounded half-up to 2 decimals and floored at zero.
func (i Installment) AdjustedAmount(today time.Time) decimal.Decimal {
	days := daysBetween(today, i.dueDate)

	adjusted := i.amount
	switch {
	case days > 0:
		discount := i.amount.Mul(dailyAdjustmentRate).Mul(decimal.NewFromInt(days))
		adjusted = i.amount.Sub(discount)
	case days < 0:
		penalty := i.amount.Mul(dailyAdjustmentRate).Mul(decimal.NewFromInt(-days))
		adjusted = i.amount.Add(penalty)
	}

	adjusted = adjusted.Round(2)
	if adjusted.IsNegative() {
		return decimal.Zero
	}
	return adjusted
}

// MarkPaid settles the installment for the given adjusted amount on the
// given date. Paid flag, paid amount, and payment date transition together.
func (i Installment) MarkPaid(adjusted decimal.Decimal, today time.Time) (Installment, error) {
	if i.paid {
		return i, errors.New("installment already paid")
	}

	next := i
	next.paid = true
	next.paidAmount = adjusted
	paymentDate := today
	next.paymentDate = &paymentDate
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (i Installment) ID() string                  { return i.id }
func (i Installment) LoanID() string              { return i.loanID }
func (i Installment) Amount() decimal.Decimal     { return i.amount }
func (i Installment) PaidAmount() decimal.Decimal { return i.paidAmount }
func (i Installment) DueDate() time.Time          { return i.dueDate }
func (i Installment) Paid() bool                  { return i.paid }

// PaymentDate returns the settlement date, or nil while unpaid.
func (i Installment) PaymentDate() *time.Time {
	if i.paymentDate == nil {
		return nil
	}
	d := *i.paymentDate
	return &d
}

// daysBetween returns the signed number of whole calendar days from one date
// to another, ignoring the time of day.
func daysBetween(from, to time.Time) int64 {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int64(t.Sub(f).Hours() / 24)
}
