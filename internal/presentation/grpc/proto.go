package grpc

// proto.go defines the gRPC server interface derived from work/loan/v1/loan.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is run,
// replace this file with the import from github.com/workbank/loan-service/api/gen/go/work/loan/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---------------------------------------------------------------------------
// Wire messages. Monetary fields travel as decimal strings, dates as
// YYYY-MM-DD strings.
// ---------------------------------------------------------------------------

// Loan is the wire representation of a loan.
type Loan struct {
	Id                   string `json:"id"`
	CustomerId           string `json:"customer_id"`
	LoanAmount           string `json:"loan_amount"`
	NumberOfInstallments int32  `json:"number_of_installments"`
	CreateDate           string `json:"create_date"`
	IsPaid               bool   `json:"is_paid"`
}

// Installment is the wire representation of an installment.
type Installment struct {
	Id          string `json:"id"`
	LoanId      string `json:"loan_id"`
	Amount      string `json:"amount"`
	PaidAmount  string `json:"paid_amount"`
	DueDate     string `json:"due_date"`
	PaymentDate string `json:"payment_date,omitempty"`
	IsPaid      bool   `json:"is_paid"`
}

// CreateLoanRequest originates a loan for a customer.
type CreateLoanRequest struct {
	CustomerId           string `json:"customer_id"`
	Amount               string `json:"amount"`
	InterestRate         string `json:"interest_rate"`
	NumberOfInstallments int32  `json:"number_of_installments"`
}

// CreateLoanResponse returns the originated loan.
type CreateLoanResponse struct {
	Loan *Loan `json:"loan"`
}

// PayInstallmentsRequest applies a payment against a loan.
type PayInstallmentsRequest struct {
	LoanId string `json:"loan_id"`
	Amount string `json:"amount"`
}

// PayInstallmentsResponse reports the allocation outcome.
type PayInstallmentsResponse struct {
	LoanId           string `json:"loan_id"`
	InstallmentsPaid int32  `json:"installments_paid"`
	TotalPaid        string `json:"total_paid"`
	LoanFullyPaid    bool   `json:"loan_fully_paid"`
}

// GetLoanRequest retrieves a single loan.
type GetLoanRequest struct {
	LoanId string `json:"loan_id"`
}

// GetLoanResponse returns the loan.
type GetLoanResponse struct {
	Loan *Loan `json:"loan"`
}

// ListLoansRequest lists a customer's loans. Paid is an optional filter.
type ListLoansRequest struct {
	CustomerId string `json:"customer_id"`
	Paid       *bool  `json:"paid,omitempty"`
}

// ListLoansResponse returns the customer's loans.
type ListLoansResponse struct {
	Loans []*Loan `json:"loans"`
}

// ListInstallmentsRequest lists a loan's installments. Paid is an optional filter.
type ListInstallmentsRequest struct {
	LoanId string `json:"loan_id"`
	Paid   *bool  `json:"paid,omitempty"`
}

// ListInstallmentsResponse returns the loan's installments in due-date order.
type ListInstallmentsResponse struct {
	Installments []*Installment `json:"installments"`
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// LoanServiceServer is the server API for LoanService.
// It mirrors the proto-generated interface from work.loan.v1.LoanService.
type LoanServiceServer interface {
	CreateLoan(context.Context, *CreateLoanRequest) (*CreateLoanResponse, error)
	PayInstallments(context.Context, *PayInstallmentsRequest) (*PayInstallmentsResponse, error)
	GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error)
	ListLoans(context.Context, *ListLoansRequest) (*ListLoansResponse, error)
	ListInstallments(context.Context, *ListInstallmentsRequest) (*ListInstallmentsResponse, error)
	mustEmbedUnimplementedLoanServiceServer()
}

// UnimplementedLoanServiceServer provides forward-compatible default implementations.
type UnimplementedLoanServiceServer struct{}

func (UnimplementedLoanServiceServer) CreateLoan(context.Context, *CreateLoanRequest) (*CreateLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateLoan not implemented")
}
func (UnimplementedLoanServiceServer) PayInstallments(context.Context, *PayInstallmentsRequest) (*PayInstallmentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PayInstallments not implemented")
}
func (UnimplementedLoanServiceServer) GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoan not implemented")
}
func (UnimplementedLoanServiceServer) ListLoans(context.Context, *ListLoansRequest) (*ListLoansResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLoans not implemented")
}
func (UnimplementedLoanServiceServer) ListInstallments(context.Context, *ListInstallmentsRequest) (*ListInstallmentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListInstallments not implemented")
}
func (UnimplementedLoanServiceServer) mustEmbedUnimplementedLoanServiceServer() {}

// RegisterLoanServiceServer registers the LoanServiceServer with the gRPC server.
func RegisterLoanServiceServer(s *grpclib.Server, srv LoanServiceServer) {
	s.RegisterService(&_LoanService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _LoanService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "work.loan.v1.LoanService",
	HandlerType: (*LoanServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CreateLoan", Handler: _LoanService_CreateLoan_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "PayInstallments", Handler: _LoanService_PayInstallments_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "GetLoan", Handler: _LoanService_GetLoan_Handler},                   //nolint:revive // gRPC handler registration
		{MethodName: "ListLoans", Handler: _LoanService_ListLoans_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "ListInstallments", Handler: _LoanService_ListInstallments_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_CreateLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).CreateLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/work.loan.v1.LoanService/CreateLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).CreateLoan(ctx, req.(*CreateLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_PayInstallments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(PayInstallmentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).PayInstallments(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/work.loan.v1.LoanService/PayInstallments",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).PayInstallments(ctx, req.(*PayInstallmentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_GetLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).GetLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/work.loan.v1.LoanService/GetLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).GetLoan(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_ListLoans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLoansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).ListLoans(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/work.loan.v1.LoanService/ListLoans",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).ListLoans(ctx, req.(*ListLoansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_ListInstallments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListInstallmentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).ListInstallments(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/work.loan.v1.LoanService/ListInstallments",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).ListInstallments(ctx, req.(*ListInstallmentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}
