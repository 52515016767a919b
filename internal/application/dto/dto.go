package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreateLoanRequest carries the data needed to originate a loan.
type CreateLoanRequest struct {
	CustomerID           string          `json:"customer_id"`
	Principal            decimal.Decimal `json:"principal"`
	InterestRate         decimal.Decimal `json:"interest_rate"`
	NumberOfInstallments int             `json:"number_of_installments"`
}

// PayInstallmentsRequest carries the data for a loan payment.
type PayInstallmentsRequest struct {
	LoanID string          `json:"loan_id"`
	Amount decimal.Decimal `json:"amount"`
}

// GetLoanRequest identifies a loan to retrieve.
type GetLoanRequest struct {
	LoanID string `json:"loan_id"`
}

// ListLoansRequest identifies a customer's loans, optionally filtered by the
// paid flag.
type ListLoansRequest struct {
	CustomerID string `json:"customer_id"`
	Paid       *bool  `json:"paid,omitempty"`
}

// ListInstallmentsRequest identifies a loan's installments, optionally
// filtered by the paid flag.
type ListInstallmentsRequest struct {
	LoanID string `json:"loan_id"`
	Paid   *bool  `json:"paid,omitempty"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// LoanResponse is the external representation of a loan.
type LoanResponse struct {
	ID                   string          `json:"id"`
	CustomerID           string          `json:"customer_id"`
	LoanAmount           decimal.Decimal `json:"loan_amount"`
	NumberOfInstallments int             `json:"number_of_installments"`
	CreateDate           time.Time       `json:"create_date"`
	Paid                 bool            `json:"paid"`
}

// InstallmentResponse is the external representation of an installment.
type InstallmentResponse struct {
	ID          string          `json:"id"`
	LoanID      string          `json:"loan_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	DueDate     time.Time       `json:"due_date"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
	Paid        bool            `json:"paid"`
}

// PaymentResult reports the outcome of a payment allocation.
type PaymentResult struct {
	LoanID           string          `json:"loan_id"`
	InstallmentsPaid int             `json:"installments_paid"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	LoanFullyPaid    bool            `json:"loan_fully_paid"`
}
