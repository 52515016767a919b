package grpc

import (
	"context"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/workbank/loan-service/internal/application/dto"
	"github.com/workbank/loan-service/internal/application/usecase"
	"github.com/workbank/loan-service/internal/domain/valueobject"
	"github.com/workbank/loan-service/pkg/auth"
)

const dateLayout = "2006-01-02"

// LoanHandler implements LoanServiceServer over the application use cases.
// Authorization is enforced here: admins may act on any customer, customers
// only on their own loans. The use cases themselves carry no identity checks.
type LoanHandler struct {
	UnimplementedLoanServiceServer

	createLoan       *usecase.CreateLoanUseCase
	payInstallments  *usecase.PayInstallmentsUseCase
	getLoan          *usecase.GetLoanUseCase
	listLoans        *usecase.ListLoansUseCase
	listInstallments *usecase.ListInstallmentsUseCase
}

// NewLoanHandler creates a handler with all use-case dependencies.
func NewLoanHandler(
	createLoan *usecase.CreateLoanUseCase,
	payInstallments *usecase.PayInstallmentsUseCase,
	getLoan *usecase.GetLoanUseCase,
	listLoans *usecase.ListLoansUseCase,
	listInstallments *usecase.ListInstallmentsUseCase,
) *LoanHandler {
	return &LoanHandler{
		createLoan:       createLoan,
		payInstallments:  payInstallments,
		getLoan:          getLoan,
		listLoans:        listLoans,
		listInstallments: listInstallments,
	}
}

// CreateLoan originates a loan for a customer.
func (h *LoanHandler) CreateLoan(ctx context.Context, req *CreateLoanRequest) (*CreateLoanResponse, error) {
	if err := authorizeFor(ctx, req.CustomerId); err != nil {
		return nil, err
	}

	amount, err := parsePositiveDecimal(req.Amount, "amount")
	if err != nil {
		return nil, err
	}
	rate, err := parseDecimal(req.InterestRate, "interest_rate")
	if err != nil {
		return nil, err
	}

	loan, err := h.createLoan.Execute(ctx, dto.CreateLoanRequest{
		CustomerID:           req.CustomerId,
		Principal:            amount,
		InterestRate:         rate,
		NumberOfInstallments: int(req.NumberOfInstallments),
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &CreateLoanResponse{Loan: toWireLoan(loan)}, nil
}

// PayInstallments applies a payment against a loan.
func (h *LoanHandler) PayInstallments(ctx context.Context, req *PayInstallmentsRequest) (*PayInstallmentsResponse, error) {
	if err := h.authorizeForLoan(ctx, req.LoanId); err != nil {
		return nil, err
	}

	amount, err := parsePositiveDecimal(req.Amount, "amount")
	if err != nil {
		return nil, err
	}

	result, err := h.payInstallments.Execute(ctx, dto.PayInstallmentsRequest{
		LoanID: req.LoanId,
		Amount: amount,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &PayInstallmentsResponse{
		LoanId:           result.LoanID,
		InstallmentsPaid: int32(result.InstallmentsPaid),
		TotalPaid:        result.TotalPaid.StringFixed(2),
		LoanFullyPaid:    result.LoanFullyPaid,
	}, nil
}

// GetLoan retrieves a loan by ID.
func (h *LoanHandler) GetLoan(ctx context.Context, req *GetLoanRequest) (*GetLoanResponse, error) {
	loan, err := h.getLoan.Execute(ctx, dto.GetLoanRequest{LoanID: req.LoanId})
	if err != nil {
		return nil, statusFromError(err)
	}
	if err := authorizeFor(ctx, loan.CustomerID); err != nil {
		return nil, err
	}

	return &GetLoanResponse{Loan: toWireLoan(loan)}, nil
}

// ListLoans lists a customer's loans, optionally filtered by the paid flag.
func (h *LoanHandler) ListLoans(ctx context.Context, req *ListLoansRequest) (*ListLoansResponse, error) {
	if err := authorizeFor(ctx, req.CustomerId); err != nil {
		return nil, err
	}

	loans, err := h.listLoans.Execute(ctx, dto.ListLoansRequest{
		CustomerID: req.CustomerId,
		Paid:       req.Paid,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	out := make([]*Loan, len(loans))
	for i, loan := range loans {
		out[i] = toWireLoan(loan)
	}
	return &ListLoansResponse{Loans: out}, nil
}

// ListInstallments lists a loan's installments in due-date order.
func (h *LoanHandler) ListInstallments(ctx context.Context, req *ListInstallmentsRequest) (*ListInstallmentsResponse, error) {
	if err := h.authorizeForLoan(ctx, req.LoanId); err != nil {
		return nil, err
	}

	installments, err := h.listInstallments.Execute(ctx, dto.ListInstallmentsRequest{
		LoanID: req.LoanId,
		Paid:   req.Paid,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	out := make([]*Installment, len(installments))
	for i, ins := range installments {
		out[i] = toWireInstallment(ins)
	}
	return &ListInstallmentsResponse{Installments: out}, nil
}

// ---------------------------------------------------------------------------
// Authorization
// ---------------------------------------------------------------------------

// authorizeFor checks that the authenticated caller may act on the given
// customer's data.
func authorizeFor(ctx context.Context, customerID string) error {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "missing credentials")
	}
	if !claims.CanActFor(customerID) {
		return status.Error(codes.PermissionDenied, "not authorized for this customer")
	}
	return nil
}

// authorizeForLoan resolves the loan's owner before checking access, so a
// customer cannot pay or inspect another customer's loan.
func (h *LoanHandler) authorizeForLoan(ctx context.Context, loanID string) error {
	loan, err := h.getLoan.Execute(ctx, dto.GetLoanRequest{LoanID: loanID})
	if err != nil {
		return statusFromError(err)
	}
	return authorizeFor(ctx, loan.CustomerID)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func parseDecimal(raw, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return d, nil
}

func parsePositiveDecimal(raw, field string) (decimal.Decimal, error) {
	d, err := parseDecimal(raw, field)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "%s must be positive", field)
	}
	return d, nil
}

// statusFromError maps domain error kinds onto gRPC status codes. Anything
// without a kind is an infrastructure failure and surfaces as Internal.
func statusFromError(err error) error {
	kind, ok := valueobject.KindOf(err)
	if !ok {
		return status.Error(codes.Internal, "internal error")
	}

	var code codes.Code
	switch kind {
	case valueobject.KindCustomerNotFound, valueobject.KindLoanNotFound:
		code = codes.NotFound
	case valueobject.KindInstallmentCountInvalid,
		valueobject.KindInterestRateOutOfRange,
		valueobject.KindInvalidPaymentAmount:
		code = codes.InvalidArgument
	case valueobject.KindCreditLimitExceeded:
		code = codes.FailedPrecondition
	default:
		code = codes.Internal
	}

	return status.Errorf(code, "%s: %v", kind, err)
}

func toWireLoan(loan dto.LoanResponse) *Loan {
	return &Loan{
		Id:                   loan.ID,
		CustomerId:           loan.CustomerID,
		LoanAmount:           loan.LoanAmount.StringFixed(2),
		NumberOfInstallments: int32(loan.NumberOfInstallments),
		CreateDate:           loan.CreateDate.Format(dateLayout),
		IsPaid:               loan.Paid,
	}
}

func toWireInstallment(ins dto.InstallmentResponse) *Installment {
	out := &Installment{
		Id:         ins.ID,
		LoanId:     ins.LoanID,
		Amount:     ins.Amount.StringFixed(2),
		PaidAmount: ins.PaidAmount.StringFixed(2),
		DueDate:    ins.DueDate.Format(dateLayout),
		IsPaid:     ins.Paid,
	}
	if ins.PaymentDate != nil {
		out.PaymentDate = ins.PaymentDate.Format(dateLayout)
	}
	return out
}
