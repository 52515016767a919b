package event

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanCreated is raised when a loan is originated and its installment
// schedule generated.
type LoanCreated struct {
	BaseEvent
	CustomerID           string          `json:"customer_id"`
	LoanAmount           decimal.Decimal `json:"loan_amount"`
	NumberOfInstallments int             `json:"number_of_installments"`
	FirstDueDate         time.Time       `json:"first_due_date"`
}

// NewLoanCreated builds the origination event.
func NewLoanCreated(loanID, customerID string, loanAmount decimal.Decimal, installments int, firstDue time.Time) LoanCreated {
	return LoanCreated{
		BaseEvent:            NewBaseEvent("loan.created", loanID, "Loan"),
		CustomerID:           customerID,
		LoanAmount:           loanAmount,
		NumberOfInstallments: installments,
		FirstDueDate:         firstDue,
	}
}

// PaymentApplied is raised after a payment has been allocated across
// installments. TotalPaid is the cash actually collected after the
// early-payment discount or late penalty, which is also the amount released
// from the customer's used credit.
type PaymentApplied struct {
	BaseEvent
	CustomerID       string          `json:"customer_id"`
	InstallmentsPaid int             `json:"installments_paid"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	LoanFullyPaid    bool            `json:"loan_fully_paid"`
}

// NewPaymentApplied builds the payment allocation event.
func NewPaymentApplied(loanID, customerID string, installmentsPaid int, totalPaid decimal.Decimal, fullyPaid bool) PaymentApplied {
	return PaymentApplied{
		BaseEvent:        NewBaseEvent("loan.payment_applied", loanID, "Loan"),
		CustomerID:       customerID,
		InstallmentsPaid: installmentsPaid,
		TotalPaid:        totalPaid,
		LoanFullyPaid:    fullyPaid,
	}
}

// LoanPaidOff is raised when the last installment of a loan is settled.
type LoanPaidOff struct {
	BaseEvent
	CustomerID string `json:"customer_id"`
}

// NewLoanPaidOff builds the payoff event.
func NewLoanPaidOff(loanID, customerID string) LoanPaidOff {
	return LoanPaidOff{
		BaseEvent:  NewBaseEvent("loan.paid_off", loanID, "Loan"),
		CustomerID: customerID,
	}
}
