package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/workbank/loan-service/internal/application/dto"
	"github.com/workbank/loan-service/internal/domain/model"
	"github.com/workbank/loan-service/internal/domain/port"
	"github.com/workbank/loan-service/internal/domain/valueobject"
)

// PayInstallmentsUseCase allocates a payment across a loan's unpaid
// installments in due-date order, applying the early-payment discount or
// late penalty per installment. No installment is ever partially paid; any
// remainder that cannot fully cover the next eligible installment is
// discarded.
type PayInstallmentsUseCase struct {
	uow       port.UnitOfWork
	publisher port.EventPublisher
	clock     port.Clock
}

// NewPayInstallmentsUseCase wires dependencies.
func NewPayInstallmentsUseCase(
	uow port.UnitOfWork,
	publisher port.EventPublisher,
	clock port.Clock,
) *PayInstallmentsUseCase {
	return &PayInstallmentsUseCase{
		uow:       uow,
		publisher: publisher,
		clock:     clock,
	}
}

// Execute applies a payment against a loan.
func (uc *PayInstallmentsUseCase) Execute(
	ctx context.Context,
	req dto.PayInstallmentsRequest,
) (dto.PaymentResult, error) {
	today := uc.clock.Today()

	var result dto.PaymentResult
	err := uc.uow.WithinTx(ctx, func(repos port.TxRepositories) error {
		// 1. Lock the loan row; two concurrent payments against the same
		//    loan serialize here.
		loan, err := repos.Loans.FindByIDForUpdate(ctx, req.LoanID)
		if err != nil {
			return fmt.Errorf("find loan: %w", err)
		}

		if !req.Amount.IsPositive() {
			return valueobject.NewDomainError(
				valueobject.KindInvalidPaymentAmount,
				"payment amount must be positive",
			)
		}

		// 2. Lock the owning customer row for the ledger update.
		customer, err := repos.Customers.FindByIDForUpdate(ctx, loan.CustomerID())
		if err != nil {
			return fmt.Errorf("find customer: %w", err)
		}

		installments, err := repos.Installments.FindByLoanID(ctx, loan.ID(), nil)
		if err != nil {
			return fmt.Errorf("load installments: %w", err)
		}

		// 3. Greedy allocation in due-date order.
		remaining := req.Amount
		totalPaid := decimal.Zero
		paidCount := 0

		for _, ins := range installments {
			if ins.Paid() {
				continue
			}
			if !ins.EligibleOn(today) {
				continue
			}

			adjusted := ins.AdjustedAmount(today)
			if remaining.LessThan(adjusted) {
				break
			}

			paid, err := ins.MarkPaid(adjusted, today)
			if err != nil {
				return fmt.Errorf("mark installment paid: %w", err)
			}
			if err := repos.Installments.Save(ctx, paid); err != nil {
				return fmt.Errorf("save installment: %w", err)
			}

			remaining = remaining.Sub(adjusted)
			totalPaid = totalPaid.Add(adjusted)
			paidCount++
		}

		// 4. Recompute the loan's paid flag from a reload.
		reloaded, err := repos.Installments.FindByLoanID(ctx, loan.ID(), nil)
		if err != nil {
			return fmt.Errorf("reload installments: %w", err)
		}
		allPaid := allInstallmentsPaid(reloaded)

		loan = loan.ApplyPaymentResult(paidCount, totalPaid, allPaid, today)
		if err := repos.Loans.Save(ctx, loan); err != nil {
			return fmt.Errorf("save loan: %w", err)
		}

		// 5. Release exactly the cash collected back to the credit ledger.
		customer, err = customer.ReleaseCredit(totalPaid, today)
		if err != nil {
			return fmt.Errorf("release credit: %w", err)
		}
		if err := repos.Customers.Save(ctx, customer); err != nil {
			return fmt.Errorf("save customer: %w", err)
		}

		// 6. Publish domain events; a publish failure rolls everything back.
		if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
			return fmt.Errorf("publish events: %w", err)
		}

		result = dto.PaymentResult{
			LoanID:           loan.ID(),
			InstallmentsPaid: paidCount,
			TotalPaid:        totalPaid,
			LoanFullyPaid:    allPaid,
		}
		return nil
	})
	if err != nil {
		return dto.PaymentResult{}, err
	}

	return result, nil
}

func allInstallmentsPaid(installments []model.Installment) bool {
	if len(installments) == 0 {
		return false
	}
	for _, ins := range installments {
		if !ins.Paid() {
			return false
		}
	}
	return true
}
