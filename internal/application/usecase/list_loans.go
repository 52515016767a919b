package usecase

import (
	"context"
	"fmt"

	"github.com/workbank/loan-service/internal/application/dto"
	"github.com/workbank/loan-service/internal/domain/port"
)

// ListLoansUseCase lists a customer's loans with an optional paid filter.
type ListLoansUseCase struct {
	loanRepo port.LoanRepository
}

// NewListLoansUseCase wires dependencies.
func NewListLoansUseCase(loanRepo port.LoanRepository) *ListLoansUseCase {
	return &ListLoansUseCase{loanRepo: loanRepo}
}

// Execute fetches the customer's loans.
func (uc *ListLoansUseCase) Execute(ctx context.Context, req dto.ListLoansRequest) ([]dto.LoanResponse, error) {
	loans, err := uc.loanRepo.FindByCustomerID(ctx, req.CustomerID, req.Paid)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}

	out := make([]dto.LoanResponse, len(loans))
	for i, loan := range loans {
		out[i] = toLoanResponse(loan)
	}
	return out, nil
}
