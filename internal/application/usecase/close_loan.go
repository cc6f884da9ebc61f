package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/futureinfotechservice/finance/internal/application/dto"
	"github.com/futureinfotechservice/finance/internal/domain/event"
	"github.com/futureinfotechservice/finance/internal/domain/model"
	"github.com/futureinfotechservice/finance/internal/domain/port"
)

// CloseLoanUseCase settles a loan early: it crystallizes the remaining
// balances, applies discounts, force-closes open schedule entries and
// writes the one-and-only closing record.
type CloseLoanUseCase struct {
	loanRepo    port.LoanRepository
	closingRepo port.ClosingRepository
	publisher   port.EventPublisher
	logger      *slog.Logger
}

// NewCloseLoanUseCase wires dependencies.
func NewCloseLoanUseCase(
	loanRepo port.LoanRepository,
	closingRepo port.ClosingRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *CloseLoanUseCase {
	return &CloseLoanUseCase{
		loanRepo:    loanRepo,
		closingRepo: closingRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute closes a loan.
func (uc *CloseLoanUseCase) Execute(
	ctx context.Context,
	req dto.CloseLoanRequest,
) (dto.ClosingResponse, error) {
	now := time.Now().UTC()

	loan, err := uc.loanRepo.FindByID(ctx, req.CompanyID, req.LoanID)
	if err != nil {
		return dto.ClosingResponse{}, fmt.Errorf("find loan: %w", err)
	}

	loan, closing, err := loan.Close(req.DiscountPrincipal, req.DiscountPenalty, req.ClosedBy, now)
	if err != nil {
		return dto.ClosingResponse{}, fmt.Errorf("close loan: %w", err)
	}

	// The store assigns the AC serial inside the settlement tx and rejects
	// a second closing for the same loan.
	closing, err = uc.closingRepo.SaveClosing(ctx, loan, closing)
	if err != nil {
		return dto.ClosingResponse{}, fmt.Errorf("save closing: %w", err)
	}

	closed := event.NewLoanClosed(loan.ID(), loan.CompanyID(), closing.SerialNo, closing.FinalSettlement)
	if err := uc.publisher.Publish(ctx, closed); err != nil {
		uc.logger.Warn("publish loan.closed failed",
			"loan_id", loan.ID(), "error", err)
	}

	return toClosingResponse(closing), nil
}

func toClosingResponse(c model.AccountClosing) dto.ClosingResponse {
	return dto.ClosingResponse{
		ID:                c.ID,
		SerialNo:          c.SerialNo,
		LoanID:            c.LoanID,
		LoanNo:            c.LoanNo,
		CustomerID:        c.CustomerID,
		Date:              c.Date,
		LoanAmount:        c.LoanAmount,
		LoanPaid:          c.LoanPaid,
		BalanceAmount:     c.BalanceAmount,
		PenaltyCharged:    c.PenaltyCharged,
		PenaltyCollected:  c.PenaltyCollected,
		PenaltyBalance:    c.PenaltyBalance,
		DiscountPrincipal: c.DiscountPrincipal,
		DiscountPenalty:   c.DiscountPenalty,
		FinalSettlement:   c.FinalSettlement,
		ClosedBy:          c.ClosedBy,
	}
}
