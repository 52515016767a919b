package usecase

import (
	"context"
	"fmt"

	"github.com/workbank/loan-service/internal/application/dto"
	"github.com/workbank/loan-service/internal/domain/model"
	"github.com/workbank/loan-service/internal/domain/port"
)

// ListInstallmentsUseCase lists a loan's installments in due-date order with
// an optional paid filter.
type ListInstallmentsUseCase struct {
	loanRepo        port.LoanRepository
	installmentRepo port.InstallmentRepository
}

// NewListInstallmentsUseCase wires dependencies.
func NewListInstallmentsUseCase(
	loanRepo port.LoanRepository,
	installmentRepo port.InstallmentRepository,
) *ListInstallmentsUseCase {
	return &ListInstallmentsUseCase{
		loanRepo:        loanRepo,
		installmentRepo: installmentRepo,
	}
}

// Execute fetches the loan's installments. The loan lookup runs first so a
// missing loan reports LOAN_NOT_FOUND instead of an empty list.
func (uc *ListInstallmentsUseCase) Execute(ctx context.Context, req dto.ListInstallmentsRequest) ([]dto.InstallmentResponse, error) {
	if _, err := uc.loanRepo.FindByID(ctx, req.LoanID); err != nil {
		return nil, fmt.Errorf("find loan: %w", err)
	}

	installments, err := uc.installmentRepo.FindByLoanID(ctx, req.LoanID, req.Paid)
	if err != nil {
		return nil, fmt.Errorf("list installments: %w", err)
	}

	out := make([]dto.InstallmentResponse, len(installments))
	for i, ins := range installments {
		out[i] = toInstallmentResponse(ins)
	}
	return out, nil
}

func toInstallmentResponse(ins model.Installment) dto.InstallmentResponse {
	return dto.InstallmentResponse{
		ID:          ins.ID(),
		LoanID:      ins.LoanID(),
		Amount:      ins.Amount(),
		PaidAmount:  ins.PaidAmount(),
		DueDate:     ins.DueDate(),
		PaymentDate: ins.PaymentDate(),
		Paid:        ins.Paid(),
	}
}
