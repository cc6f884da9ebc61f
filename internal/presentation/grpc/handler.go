package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/futureinfotechservice/finance/internal/application/usecase"
	"github.com/futureinfotechservice/finance/internal/domain/port"
	"github.com/futureinfotechservice/finance/internal/domain/valueobject"
)

// LoanHandler exposes loan servicing operations over gRPC.
type LoanHandler struct {
	UnimplementedLoanServiceServer

	issueLoan         *usecase.IssueLoanUseCase
	recordCollection  *usecase.RecordCollectionUseCase
	closeLoan         *usecase.CloseLoanUseCase
	getLoan           *usecase.GetLoanUseCase
	getBalance        *usecase.GetLoanBalanceUseCase
	listCollections   *usecase.ListCollectionsUseCase
	listCustomerLoans *usecase.ListCustomerLoansUseCase
}

// NewLoanHandler creates a new handler with all use-case dependencies.
func NewLoanHandler(
	issueLoan *usecase.IssueLoanUseCase,
	recordCollection *usecase.RecordCollectionUseCase,
	closeLoan *usecase.CloseLoanUseCase,
	getLoan *usecase.GetLoanUseCase,
	getBalance *usecase.GetLoanBalanceUseCase,
	listCollections *usecase.ListCollectionsUseCase,
	listCustomerLoans *usecase.ListCustomerLoansUseCase,
) *LoanHandler {
	return &LoanHandler{
		issueLoan:         issueLoan,
		recordCollection:  recordCollection,
		closeLoan:         closeLoan,
		getLoan:           getLoan,
		getBalance:        getBalance,
		listCollections:   listCollections,
		listCustomerLoans: listCustomerLoans,
	}
}

// IssueLoan creates a loan with its weekly repayment schedule.
func (h *LoanHandler) IssueLoan(ctx context.Context, req *IssueLoanRequest) (*IssueLoanResponse, error) {
	resp, err := h.issueLoan.Execute(ctx, req.IssueLoanRequest)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &IssueLoanResponse{Loan: resp}, nil
}

// RecordCollection applies one collection batch to a loan.
func (h *LoanHandler) RecordCollection(ctx context.Context, req *RecordCollectionRequest) (*RecordCollectionResponse, error) {
	resp, err := h.recordCollection.Execute(ctx, req.RecordCollectionRequest)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &RecordCollectionResponse{Collection: resp}, nil
}

// CloseLoan settles a loan early.
func (h *LoanHandler) CloseLoan(ctx context.Context, req *CloseLoanRequest) (*CloseLoanResponse, error) {
	resp, err := h.closeLoan.Execute(ctx, req.CloseLoanRequest)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &CloseLoanResponse{Closing: resp}, nil
}

// GetLoan retrieves a loan with its schedule.
func (h *LoanHandler) GetLoan(ctx context.Context, req *GetLoanRequest) (*GetLoanResponse, error) {
	resp, err := h.getLoan.Execute(ctx, req.GetLoanRequest)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &GetLoanResponse{Loan: resp}, nil
}

// GetLoanBalance computes the derived balance snapshot for a loan.
func (h *LoanHandler) GetLoanBalance(ctx context.Context, req *GetLoanBalanceRequest) (*GetLoanBalanceResponse, error) {
	resp, err := h.getBalance.Execute(ctx, req.GetLoanRequest)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &GetLoanBalanceResponse{Balance: resp}, nil
}

// ListCollections retrieves the collection history of a loan.
func (h *LoanHandler) ListCollections(ctx context.Context, req *ListCollectionsRequest) (*ListCollectionsResponse, error) {
	resp, err := h.listCollections.Execute(ctx, req.ListCollectionsRequest)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ListCollectionsResponse{Collections: resp}, nil
}

// ListCustomerLoans retrieves every loan held by a customer.
func (h *LoanHandler) ListCustomerLoans(ctx context.Context, req *ListCustomerLoansRequest) (*ListCustomerLoansResponse, error) {
	resp, err := h.listCustomerLoans.Execute(ctx, req.ListCustomerLoansRequest)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ListCustomerLoansResponse{Loans: resp}, nil
}

// toStatusError maps domain errors onto gRPC status codes.
func toStatusError(err error) error {
	var rule *valueobject.RuleViolation
	switch {
	case errors.Is(err, port.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, port.ErrVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, valueobject.ErrLoanNotActive),
		errors.Is(err, valueobject.ErrAlreadyClosed):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.As(err, &rule):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
