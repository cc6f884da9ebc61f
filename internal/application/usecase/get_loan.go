package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/futureinfotechservice/finance/internal/application/dto"
	"github.com/futureinfotechservice/finance/internal/domain/port"
	"github.com/futureinfotechservice/finance/internal/domain/service"
)

// GetLoanUseCase retrieves a loan with its full schedule entry set.
type GetLoanUseCase struct {
	loanRepo port.LoanRepository
}

// NewGetLoanUseCase wires dependencies.
func NewGetLoanUseCase(loanRepo port.LoanRepository) *GetLoanUseCase {
	return &GetLoanUseCase{loanRepo: loanRepo}
}

// Execute retrieves a loan by ID.
func (uc *GetLoanUseCase) Execute(
	ctx context.Context,
	req dto.GetLoanRequest,
) (dto.LoanResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.CompanyID, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}
	return toLoanResponse(loan), nil
}

// GetLoanBalanceUseCase computes the derived balance snapshot for a loan.
type GetLoanBalanceUseCase struct {
	loanRepo port.LoanRepository
	reader   *service.BalanceReader
}

// NewGetLoanBalanceUseCase wires dependencies.
func NewGetLoanBalanceUseCase(loanRepo port.LoanRepository, reader *service.BalanceReader) *GetLoanBalanceUseCase {
	return &GetLoanBalanceUseCase{loanRepo: loanRepo, reader: reader}
}

// Execute computes the balances for a loan.
func (uc *GetLoanBalanceUseCase) Execute(
	ctx context.Context,
	req dto.GetLoanRequest,
) (dto.BalanceResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.CompanyID, req.LoanID)
	if err != nil {
		return dto.BalanceResponse{}, fmt.Errorf("find loan: %w", err)
	}

	snap := uc.reader.Snapshot(loan, time.Now().UTC())
	return dto.BalanceResponse{
		LoanID:           loan.ID(),
		LoanNo:           loan.LoanNo(),
		Status:           loan.Status().String(),
		LoanAmount:       snap.LoanAmount,
		LoanPaid:         snap.LoanPaid,
		BalanceAmount:    snap.BalanceAmount,
		PenaltyCharged:   snap.PenaltyCharged,
		PenaltyCollected: snap.PenaltyCollected,
		PenaltyBalance:   snap.PenaltyBalance,
	}, nil
}
