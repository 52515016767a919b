package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/workbank/loan-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Customer aggregate root
// ---------------------------------------------------------------------------

// Customer is an immutable aggregate. Mutations return a new copy.
//
// usedCredit is the sum of outstanding repayable obligations across all of
// the customer's unpaid loans. The invariant 0 <= usedCredit <= creditLimit
// holds after every committed operation; ReserveCredit and ReleaseCredit are
// the only mutation paths.
type Customer struct {
	id          string
	name        string
	username    string
	role        valueobject.Role
	creditLimit decimal.Decimal
	usedCredit  decimal.Decimal
	createdAt   time.Time
	updatedAt   time.Time
}

// NewCustomer creates a customer with zero used credit.
func NewCustomer(name, username string, role valueobject.Role, creditLimit decimal.Decimal, now time.Time) (Customer, error) {
	if name == "" {
		return Customer{}, errors.New("name is required")
	}
	if username == "" {
		return Customer{}, errors.New("username is required")
	}
	if role.IsZero() {
		return Customer{}, errors.New("role is required")
	}
	if creditLimit.IsNegative() {
		return Customer{}, errors.New("credit limit must not be negative")
	}

	return Customer{
		id:          uuid.New().String(),
		name:        name,
		username:    username,
		role:        role,
		creditLimit: creditLimit,
		usedCredit:  decimal.Zero,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructCustomer rebuilds a Customer aggregate from persistence.
func ReconstructCustomer(
	id, name, username string,
	role valueobject.Role,
	creditLimit, usedCredit decimal.Decimal,
	createdAt, updatedAt time.Time,
) Customer {
	return Customer{
		id:          id,
		name:        name,
		username:    username,
		role:        role,
		creditLimit: creditLimit,
		usedCredit:  usedCredit,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ReserveCredit reserves the full repayable total of a new loan against the
// customer's limit. It fails with CREDIT_LIMIT_EXCEEDED when the reservation
// would push used credit above the limit; the boundary case of landing
// exactly on the limit is accepted.
func (c Customer) ReserveCredit(total decimal.Decimal, now time.Time) (Customer, error) {
	if c.usedCredit.Add(total).GreaterThan(c.creditLimit) {
		return c, valueobject.NewDomainError(
			valueobject.KindCreditLimitExceeded,
			"customer credit limit exceeded",
		)
	}

	next := c
	next.usedCredit = c.usedCredit.Add(total)
	next.updatedAt = now
	return next, nil
}

// ReleaseCredit releases collected cash back to the customer's available
// credit. Releasing more than is currently reserved indicates a corrupted
// ledger and fails with LEDGER_INCONSISTENT rather than clamping to zero.
func (c Customer) ReleaseCredit(amount decimal.Decimal, now time.Time) (Customer, error) {
	if amount.GreaterThan(c.usedCredit) {
		return c, valueobject.NewDomainError(
			valueobject.KindLedgerInconsistent,
			"credit release exceeds used credit",
		)
	}

	next := c
	next.usedCredit = c.usedCredit.Sub(amount)
	next.updatedAt = now
	return next, nil
}

// AvailableCredit returns the credit still open for new loans.
func (c Customer) AvailableCredit() decimal.Decimal {
	return c.creditLimit.Sub(c.usedCredit)
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (c Customer) ID() string                    { return c.id }
func (c Customer) Name() string                  { return c.name }
func (c Customer) Username() string              { return c.username }
func (c Customer) Role() valueobject.Role        { return c.role }
func (c Customer) CreditLimit() decimal.Decimal  { return c.creditLimit }
func (c Customer) UsedCredit() decimal.Decimal   { return c.usedCredit }
func (c Customer) CreatedAt() time.Time          { return c.createdAt }
func (c Customer) UpdatedAt() time.Time          { return c.updatedAt }
