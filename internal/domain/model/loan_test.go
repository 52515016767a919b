package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workbank/loan-service/internal/domain/event"
	"github.com/workbank/loan-service/internal/domain/model"
)

func TestNewLoan(t *testing.T) {
	today := date(2026, time.August, 15)
	firstDue := model.FirstDueDate(today)

	loan := model.NewLoan("cust-001", decimal.RequireFromString("2400"), 6, firstDue, today)

	assert.NotEmpty(t, loan.ID())
	assert.Equal(t, "cust-001", loan.CustomerID())
	assert.Equal(t, 6, loan.NumberOfInstallments())
	assert.Equal(t, today, loan.CreateDate())
	assert.False(t, loan.Paid())

	require.Len(t, loan.DomainEvents(), 1)
	created, ok := loan.DomainEvents()[0].(event.LoanCreated)
	require.True(t, ok)
	assert.Equal(t, "loan.created", created.EventType())
	assert.Equal(t, loan.ID(), created.AggregateID())
	assert.Equal(t, firstDue, created.FirstDueDate)
}

func TestLoan_ApplyPaymentResult(t *testing.T) {
	today := date(2026, time.August, 15)

	reconstruct := func(paid bool) model.Loan {
		return model.ReconstructLoan(
			"loan-001", "cust-001",
			decimal.RequireFromString("2400"), 6,
			date(2026, time.July, 1), paid, 1,
			today, today,
		)
	}

	t.Run("partial payment keeps the loan open", func(t *testing.T) {
		loan := reconstruct(false)

		next := loan.ApplyPaymentResult(2, decimal.RequireFromString("800.00"), false, today)

		assert.False(t, next.Paid())
		require.Len(t, next.DomainEvents(), 1)
		applied, ok := next.DomainEvents()[0].(event.PaymentApplied)
		require.True(t, ok)
		assert.Equal(t, 2, applied.InstallmentsPaid)
		assert.False(t, applied.LoanFullyPaid)
	})

	t.Run("payoff emits LoanPaidOff", func(t *testing.T) {
		loan := reconstruct(false)

		next := loan.ApplyPaymentResult(6, decimal.RequireFromString("2400.00"), true, today)

		assert.True(t, next.Paid())
		require.Len(t, next.DomainEvents(), 2)
		_, ok := next.DomainEvents()[1].(event.LoanPaidOff)
		assert.True(t, ok)
	})

	t.Run("already-paid loan does not emit LoanPaidOff again", func(t *testing.T) {
		loan := reconstruct(true)

		next := loan.ApplyPaymentResult(0, decimal.Zero, true, today)

		require.Len(t, next.DomainEvents(), 1)
		_, ok := next.DomainEvents()[0].(event.PaymentApplied)
		assert.True(t, ok)
	})

	t.Run("ClearEvents drops collected events", func(t *testing.T) {
		loan := reconstruct(false).ApplyPaymentResult(1, decimal.RequireFromString("400.00"), false, today)
		require.NotEmpty(t, loan.DomainEvents())
		assert.Empty(t, loan.ClearEvents().DomainEvents())
	})
}
