package usecase

import (
	"context"
	"fmt"

	"github.com/workbank/loan-service/internal/application/dto"
	"github.com/workbank/loan-service/internal/domain/port"
)

// GetLoanUseCase retrieves a single loan.
type GetLoanUseCase struct {
	loanRepo port.LoanRepository
}

// NewGetLoanUseCase wires dependencies.
func NewGetLoanUseCase(loanRepo port.LoanRepository) *GetLoanUseCase {
	return &GetLoanUseCase{loanRepo: loanRepo}
}

// Execute fetches a loan by ID.
func (uc *GetLoanUseCase) Execute(ctx context.Context, req dto.GetLoanRequest) (dto.LoanResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}
	return toLoanResponse(loan), nil
}
