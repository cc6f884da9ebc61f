package usecase

import (
	"context"
	"fmt"

	"github.com/futureinfotechservice/finance/internal/application/dto"
	"github.com/futureinfotechservice/finance/internal/domain/port"
)

// ListCustomerLoansUseCase retrieves every loan of a customer, schedule
// included, for the servicing and closing screens.
type ListCustomerLoansUseCase struct {
	loanRepo port.LoanRepository
}

// NewListCustomerLoansUseCase wires dependencies.
func NewListCustomerLoansUseCase(loanRepo port.LoanRepository) *ListCustomerLoansUseCase {
	return &ListCustomerLoansUseCase{loanRepo: loanRepo}
}

// Execute lists the loans held by a customer.
func (uc *ListCustomerLoansUseCase) Execute(
	ctx context.Context,
	req dto.ListCustomerLoansRequest,
) ([]dto.LoanResponse, error) {
	loans, err := uc.loanRepo.FindByCustomerID(ctx, req.CompanyID, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("find customer loans: %w", err)
	}

	out := make([]dto.LoanResponse, len(loans))
	for i, loan := range loans {
		out[i] = toLoanResponse(loan)
	}
	return out, nil
}
