package port

import (
	"context"
	"time"

	"github.com/workbank/loan-service/internal/domain/event"
	"github.com/workbank/loan-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// CustomerRepository persists and retrieves customers.
type CustomerRepository interface {
	FindByID(ctx context.Context, id string) (model.Customer, error)
	// FindByIDForUpdate retrieves the customer and holds an exclusive row
	// lock until the surrounding transaction ends, serializing concurrent
	// credit reservations and releases for the same customer.
	FindByIDForUpdate(ctx context.Context, id string) (model.Customer, error)
	Save(ctx context.Context, customer model.Customer) error
}

// LoanRepository persists and retrieves loans.
type LoanRepository interface {
	FindByID(ctx context.Context, id string) (model.Loan, error)
	// FindByIDForUpdate retrieves the loan under an exclusive row lock,
	// serializing concurrent payments against the same loan.
	FindByIDForUpdate(ctx context.Context, id string) (model.Loan, error)
	// FindByCustomerID lists a customer's loans, optionally filtered by the
	// paid flag; nil means no filter.
	FindByCustomerID(ctx context.Context, customerID string, paid *bool) ([]model.Loan, error)
	Save(ctx context.Context, loan model.Loan) error
}

// InstallmentRepository persists and retrieves installments.
type InstallmentRepository interface {
	SaveAll(ctx context.Context, installments []model.Installment) error
	Save(ctx context.Context, installment model.Installment) error
	// FindByLoanID lists a loan's installments ordered by due date
	// ascending, optionally filtered by the paid flag; nil means no filter.
	FindByLoanID(ctx context.Context, loanID string, paid *bool) ([]model.Installment, error)
}

// ---------------------------------------------------------------------------
// Unit of work
// ---------------------------------------------------------------------------

// TxRepositories bundles the repositories bound to one open transaction.
type TxRepositories struct {
	Customers    CustomerRepository
	Loans        LoanRepository
	Installments InstallmentRepository
}

// UnitOfWork runs a function against transaction-bound repositories. All
// writes inside fn commit atomically; any error rolls every one of them back.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(repos TxRepositories) error) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// Clock port
// ---------------------------------------------------------------------------

// Clock supplies the current calendar date. The discount, penalty, and
// eligibility rules are day-sensitive, so the wall clock is injected rather
// than read inline.
type Clock interface {
	Today() time.Time
}
