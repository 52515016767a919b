package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workbank/loan-service/internal/application/dto"
	"github.com/workbank/loan-service/internal/application/usecase"
	"github.com/workbank/loan-service/internal/domain/event"
	"github.com/workbank/loan-service/internal/domain/model"
	"github.com/workbank/loan-service/internal/domain/valueobject"
)

// openLoan is a 2400 total over 6 monthly installments of 400, due from
// September 2026. The owning customer has the full total reserved.
func openLoan() (model.Loan, model.Customer, []model.Installment) {
	now := time.Now().UTC()
	loan := model.ReconstructLoan(
		"loan-001", "cust-001",
		decimal.RequireFromString("2400"), 6,
		day(2026, time.July, 15), false, 1,
		now, now,
	)
	customer := model.ReconstructCustomer(
		"cust-001", "Ahmet", "ahmet", valueobject.RoleCustomer,
		decimal.RequireFromString("10000"), decimal.RequireFromString("2400"),
		now, now,
	)
	installments := model.GenerateSchedule(loan.ID(), loan.LoanAmount(), 6, day(2026, time.September, 1))
	return loan, customer, installments
}

func TestPayInstallments_Execute(t *testing.T) {
	// On 2026-08-15 the September, October, and November installments fall
	// inside the three month window. Their early-payment discounts bring the
	// 400.00 base down to 393.20, 381.20, and 368.80.
	today := day(2026, time.August, 15)

	pay := func(amount string) dto.PayInstallmentsRequest {
		return dto.PayInstallmentsRequest{
			LoanID: "loan-001",
			Amount: decimal.RequireFromString(amount),
		}
	}

	t.Run("allocates to the earliest installments first", func(t *testing.T) {
		loan, customer, installments := openLoan()
		customerRepo := newMockCustomerRepo(customer)
		loanRepo := newMockLoanRepo(loan)
		installmentRepo := newMockInstallmentRepo(installments...)
		uow := newMockUnitOfWork(customerRepo, loanRepo, installmentRepo)
		publisher := &mockEventPublisher{}

		uc := usecase.NewPayInstallmentsUseCase(uow, publisher, fixedClock{today})

		// 800 covers 393.20 + 381.20; the 25.60 remainder cannot cover the
		// November installment and is discarded.
		result, err := uc.Execute(context.Background(), pay("800"))
		require.NoError(t, err)

		assert.Equal(t, 2, result.InstallmentsPaid)
		assert.True(t, decimal.RequireFromString("774.40").Equal(result.TotalPaid), "got %s", result.TotalPaid)
		assert.False(t, result.LoanFullyPaid)

		assert.True(t, installmentRepo.items[0].Paid())
		assert.True(t, installmentRepo.items[1].Paid())
		assert.False(t, installmentRepo.items[2].Paid())

		// Exactly the collected cash is released from used credit.
		require.Len(t, customerRepo.saved, 1)
		assert.True(t, decimal.RequireFromString("1625.60").Equal(customerRepo.saved[0].UsedCredit()),
			"got %s", customerRepo.saved[0].UsedCredit())

		require.Len(t, publisher.publishedEvents, 1)
		applied, ok := publisher.publishedEvents[0].(event.PaymentApplied)
		require.True(t, ok)
		assert.Equal(t, 2, applied.InstallmentsPaid)
	})

	t.Run("skips installments due beyond three months", func(t *testing.T) {
		loan, customer, installments := openLoan()
		installmentRepo := newMockInstallmentRepo(installments...)
		uow := newMockUnitOfWork(newMockCustomerRepo(customer), newMockLoanRepo(loan), installmentRepo)

		uc := usecase.NewPayInstallmentsUseCase(uow, &mockEventPublisher{}, fixedClock{today})

		// Enough cash for all six, but only three are eligible.
		result, err := uc.Execute(context.Background(), pay("5000"))
		require.NoError(t, err)

		assert.Equal(t, 3, result.InstallmentsPaid)
		assert.True(t, decimal.RequireFromString("1143.20").Equal(result.TotalPaid), "got %s", result.TotalPaid)
		assert.False(t, result.LoanFullyPaid)
		assert.False(t, installmentRepo.items[3].Paid())
	})

	t.Run("remainder below the next adjusted amount pays nothing further", func(t *testing.T) {
		loan, customer, installments := openLoan()
		uow := newMockUnitOfWork(newMockCustomerRepo(customer), newMockLoanRepo(loan), newMockInstallmentRepo(installments...))

		uc := usecase.NewPayInstallmentsUseCase(uow, &mockEventPublisher{}, fixedClock{today})

		// 400 covers the discounted 393.20 once; the 6.80 left is discarded.
		result, err := uc.Execute(context.Background(), pay("400"))
		require.NoError(t, err)

		assert.Equal(t, 1, result.InstallmentsPaid)
		assert.True(t, decimal.RequireFromString("393.20").Equal(result.TotalPaid), "got %s", result.TotalPaid)
	})

	t.Run("an amount below the first adjusted installment pays nothing", func(t *testing.T) {
		loan, customer, installments := openLoan()
		customerRepo := newMockCustomerRepo(customer)
		uow := newMockUnitOfWork(customerRepo, newMockLoanRepo(loan), newMockInstallmentRepo(installments...))

		uc := usecase.NewPayInstallmentsUseCase(uow, &mockEventPublisher{}, fixedClock{today})

		result, err := uc.Execute(context.Background(), pay("100"))
		require.NoError(t, err)

		assert.Equal(t, 0, result.InstallmentsPaid)
		assert.True(t, result.TotalPaid.IsZero())
		assert.False(t, result.LoanFullyPaid)

		// No cash collected, so used credit is unchanged.
		require.Len(t, customerRepo.saved, 1)
		assert.True(t, decimal.RequireFromString("2400").Equal(customerRepo.saved[0].UsedCredit()))
	})

	t.Run("settling the last installment pays off the loan", func(t *testing.T) {
		// January 2027: only the final February installment is open.
		payoffDay := day(2027, time.January, 20)

		loan, customer, installments := openLoan()
		for i, ins := range installments[:5] {
			paid, err := ins.MarkPaid(ins.Amount(), ins.DueDate())
			require.NoError(t, err)
			installments[i] = paid
		}
		customer = model.ReconstructCustomer(
			customer.ID(), customer.Name(), customer.Username(), customer.Role(),
			customer.CreditLimit(), decimal.RequireFromString("400"),
			customer.CreatedAt(), customer.UpdatedAt(),
		)

		customerRepo := newMockCustomerRepo(customer)
		loanRepo := newMockLoanRepo(loan)
		uow := newMockUnitOfWork(customerRepo, loanRepo, newMockInstallmentRepo(installments...))
		publisher := &mockEventPublisher{}

		uc := usecase.NewPayInstallmentsUseCase(uow, publisher, fixedClock{payoffDay})

		// 12 days early: 400 - 400*0.001*12 = 395.20.
		result, err := uc.Execute(context.Background(), pay("400"))
		require.NoError(t, err)

		assert.Equal(t, 1, result.InstallmentsPaid)
		assert.True(t, decimal.RequireFromString("395.20").Equal(result.TotalPaid), "got %s", result.TotalPaid)
		assert.True(t, result.LoanFullyPaid)

		require.Len(t, loanRepo.saved, 1)
		assert.True(t, loanRepo.saved[0].Paid())

		require.Len(t, customerRepo.saved, 1)
		assert.True(t, decimal.RequireFromString("4.80").Equal(customerRepo.saved[0].UsedCredit()),
			"got %s", customerRepo.saved[0].UsedCredit())

		require.Len(t, publisher.publishedEvents, 2)
		_, ok := publisher.publishedEvents[1].(event.LoanPaidOff)
		assert.True(t, ok)
	})

	t.Run("fails when the loan does not exist", func(t *testing.T) {
		_, customer, _ := openLoan()
		uow := newMockUnitOfWork(newMockCustomerRepo(customer), newMockLoanRepo(), newMockInstallmentRepo())

		uc := usecase.NewPayInstallmentsUseCase(uow, &mockEventPublisher{}, fixedClock{today})

		_, err := uc.Execute(context.Background(), pay("100"))

		require.Error(t, err)
		kind, ok := valueobject.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, valueobject.KindLoanNotFound, kind)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		loan, customer, installments := openLoan()
		uow := newMockUnitOfWork(newMockCustomerRepo(customer), newMockLoanRepo(loan), newMockInstallmentRepo(installments...))

		uc := usecase.NewPayInstallmentsUseCase(uow, &mockEventPublisher{}, fixedClock{today})

		for _, amount := range []string{"0", "-5"} {
			_, err := uc.Execute(context.Background(), pay(amount))
			require.Error(t, err, "amount %s", amount)

			kind, ok := valueobject.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, valueobject.KindInvalidPaymentAmount, kind)
		}
	})

	t.Run("fails when event publishing fails", func(t *testing.T) {
		loan, customer, installments := openLoan()
		uow := newMockUnitOfWork(newMockCustomerRepo(customer), newMockLoanRepo(loan), newMockInstallmentRepo(installments...))
		publisher := &mockEventPublisher{
			publishFunc: func(context.Context, ...event.DomainEvent) error {
				return fmt.Errorf("kafka unavailable")
			},
		}

		uc := usecase.NewPayInstallmentsUseCase(uow, publisher, fixedClock{today})

		_, err := uc.Execute(context.Background(), pay("800"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "publish events")
	})
}
