package grpc

// proto.go defines the gRPC server interface derived from finance/loan/v1/loan.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is run,
// replace this file with the import from github.com/futureinfotechservice/finance/api/gen/go/finance/loan/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/futureinfotechservice/finance/internal/application/dto"
)

// ---------------------------------------------------------------------------
// Messages. They mirror the proto message shapes; the wire format is the
// registered JSON codec until generated code replaces this file.
// ---------------------------------------------------------------------------

type IssueLoanRequest struct {
	dto.IssueLoanRequest
}

type IssueLoanResponse struct {
	Loan dto.LoanResponse `json:"loan"`
}

type RecordCollectionRequest struct {
	dto.RecordCollectionRequest
}

type RecordCollectionResponse struct {
	Collection dto.CollectionResponse `json:"collection"`
}

type CloseLoanRequest struct {
	dto.CloseLoanRequest
}

type CloseLoanResponse struct {
	Closing dto.ClosingResponse `json:"closing"`
}

type GetLoanRequest struct {
	dto.GetLoanRequest
}

type GetLoanResponse struct {
	Loan dto.LoanResponse `json:"loan"`
}

type GetLoanBalanceRequest struct {
	dto.GetLoanRequest
}

type GetLoanBalanceResponse struct {
	Balance dto.BalanceResponse `json:"balance"`
}

type ListCollectionsRequest struct {
	dto.ListCollectionsRequest
}

type ListCollectionsResponse struct {
	Collections []dto.CollectionResponse `json:"collections"`
}

type ListCustomerLoansRequest struct {
	dto.ListCustomerLoansRequest
}

type ListCustomerLoansResponse struct {
	Loans []dto.LoanResponse `json:"loans"`
}

// LoanServiceServer is the server API for LoanService.
// It mirrors the proto-generated interface from finance.loan.v1.LoanService.
type LoanServiceServer interface {
	IssueLoan(context.Context, *IssueLoanRequest) (*IssueLoanResponse, error)
	RecordCollection(context.Context, *RecordCollectionRequest) (*RecordCollectionResponse, error)
	CloseLoan(context.Context, *CloseLoanRequest) (*CloseLoanResponse, error)
	GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error)
	GetLoanBalance(context.Context, *GetLoanBalanceRequest) (*GetLoanBalanceResponse, error)
	ListCollections(context.Context, *ListCollectionsRequest) (*ListCollectionsResponse, error)
	ListCustomerLoans(context.Context, *ListCustomerLoansRequest) (*ListCustomerLoansResponse, error)
	mustEmbedUnimplementedLoanServiceServer()
}

// UnimplementedLoanServiceServer provides forward-compatible default implementations.
type UnimplementedLoanServiceServer struct{}

func (UnimplementedLoanServiceServer) IssueLoan(context.Context, *IssueLoanRequest) (*IssueLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IssueLoan not implemented")
}
func (UnimplementedLoanServiceServer) RecordCollection(context.Context, *RecordCollectionRequest) (*RecordCollectionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordCollection not implemented")
}
func (UnimplementedLoanServiceServer) CloseLoan(context.Context, *CloseLoanRequest) (*CloseLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CloseLoan not implemented")
}
func (UnimplementedLoanServiceServer) GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoan not implemented")
}
func (UnimplementedLoanServiceServer) GetLoanBalance(context.Context, *GetLoanBalanceRequest) (*GetLoanBalanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoanBalance not implemented")
}
func (UnimplementedLoanServiceServer) ListCollections(context.Context, *ListCollectionsRequest) (*ListCollectionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCollections not implemented")
}
func (UnimplementedLoanServiceServer) ListCustomerLoans(context.Context, *ListCustomerLoansRequest) (*ListCustomerLoansResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCustomerLoans not implemented")
}
func (UnimplementedLoanServiceServer) mustEmbedUnimplementedLoanServiceServer() {}

// RegisterLoanServiceServer registers the LoanServiceServer with the gRPC server.
func RegisterLoanServiceServer(s *grpclib.Server, srv LoanServiceServer) {
	s.RegisterService(&_LoanService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _LoanService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "finance.loan.v1.LoanService",
	HandlerType: (*LoanServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "IssueLoan", Handler: _LoanService_IssueLoan_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "RecordCollection", Handler: _LoanService_RecordCollection_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "CloseLoan", Handler: _LoanService_CloseLoan_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "GetLoan", Handler: _LoanService_GetLoan_Handler},                     //nolint:revive // gRPC handler registration
		{MethodName: "GetLoanBalance", Handler: _LoanService_GetLoanBalance_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "ListCollections", Handler: _LoanService_ListCollections_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "ListCustomerLoans", Handler: _LoanService_ListCustomerLoans_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_IssueLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(IssueLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).IssueLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finance.loan.v1.LoanService/IssueLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).IssueLoan(ctx, req.(*IssueLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_RecordCollection_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordCollectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).RecordCollection(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finance.loan.v1.LoanService/RecordCollection",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).RecordCollection(ctx, req.(*RecordCollectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_CloseLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CloseLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).CloseLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finance.loan.v1.LoanService/CloseLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).CloseLoan(ctx, req.(*CloseLoanRequest))
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
		FullMethod: "/finance.loan.v1.LoanService/GetLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).GetLoan(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_GetLoanBalance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).GetLoanBalance(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finance.loan.v1.LoanService/GetLoanBalance",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).GetLoanBalance(ctx, req.(*GetLoanBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_ListCollections_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCollectionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).ListCollections(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finance.loan.v1.LoanService/ListCollections",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).ListCollections(ctx, req.(*ListCollectionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_ListCustomerLoans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCustomerLoansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).ListCustomerLoans(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finance.loan.v1.LoanService/ListCustomerLoans",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).ListCustomerLoans(ctx, req.(*ListCustomerLoansRequest))
	}
	return interceptor(ctx, in, info, handler)
}
