package usecase

import (
	"context"
	"fmt"

	"github.com/workbank/loan-service/internal/application/dto"
	"github.com/workbank/loan-service/internal/domain/model"
	"github.com/workbank/loan-service/internal/domain/port"
)

// CreateLoanUseCase originates a loan: it validates the request, reserves
// credit, generates the installment schedule, and persists loan,
// installments, and customer as one atomic unit.
type CreateLoanUseCase struct {
	uow       port.UnitOfWork
	publisher port.EventPublisher
	clock     port.Clock
}

// NewCreateLoanUseCase wires dependencies.
func NewCreateLoanUseCase(
	uow port.UnitOfWork,
	publisher port.EventPublisher,
	clock port.Clock,
) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		uow:       uow,
		publisher: publisher,
		clock:     clock,
	}
}

// Execute validates and originates a loan. Validation runs in order —
// installment count, interest rate, customer existence, credit capacity —
// and the first failing rule wins with no mutation.
func (uc *CreateLoanUseCase) Execute(
	ctx context.Context,
	req dto.CreateLoanRequest,
) (dto.LoanResponse, error) {
	// 1. Validate the requested term and rate before touching storage.
	if err := model.ValidateInstallmentCount(req.NumberOfInstallments); err != nil {
		return dto.LoanResponse{}, err
	}
	if err := model.ValidateInterestRate(req.InterestRate); err != nil {
		return dto.LoanResponse{}, err
	}

	total := model.TotalRepayable(req.Principal, req.InterestRate)
	today := uc.clock.Today()

	var loan model.Loan
	err := uc.uow.WithinTx(ctx, func(repos port.TxRepositories) error {
		// 2. Lock the customer row for the duration of the transaction.
		customer, err := repos.Customers.FindByIDForUpdate(ctx, req.CustomerID)
		if err != nil {
			return fmt.Errorf("find customer: %w", err)
		}

		// 3. Reserve the full repayable total against the credit limit.
		customer, err = customer.ReserveCredit(total, today)
		if err != nil {
			return fmt.Errorf("reserve credit: %w", err)
		}

		// 4. Create the loan and its schedule.
		firstDue := model.FirstDueDate(today)
		loan = model.NewLoan(req.CustomerID, total, req.NumberOfInstallments, firstDue, today)
		installments := model.GenerateSchedule(loan.ID(), total, req.NumberOfInstallments, firstDue)

		// 5. Persist loan, installments, and customer in this transaction.
		if err := repos.Loans.Save(ctx, loan); err != nil {
			return fmt.Errorf("save loan: %w", err)
		}
		if err := repos.Installments.SaveAll(ctx, installments); err != nil {
			return fmt.Errorf("save installments: %w", err)
		}
		if err := repos.Customers.Save(ctx, customer); err != nil {
			return fmt.Errorf("save customer: %w", err)
		}

		// 6. Publish domain events; a publish failure rolls everything back.
		if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
			return fmt.Errorf("publish events: %w", err)
		}

		return nil
	})
	if err != nil {
		return dto.LoanResponse{}, err
	}

	return toLoanResponse(loan), nil
}

func toLoanResponse(loan model.Loan) dto.LoanResponse {
	return dto.LoanResponse{
		ID:                   loan.ID(),
		CustomerID:           loan.CustomerID(),
		LoanAmount:           loan.LoanAmount(),
		NumberOfInstallments: loan.NumberOfInstallments(),
		CreateDate:           loan.CreateDate(),
		Paid:                 loan.Paid(),
	}
}
