package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/futureinfotechservice/finance/internal/application/dto"
	"github.com/futureinfotechservice/finance/internal/domain/event"
	"github.com/futureinfotechservice/finance/internal/domain/model"
	"github.com/futureinfotechservice/finance/internal/domain/port"
	"github.com/futureinfotechservice/finance/internal/domain/service"
)

// IssueLoanUseCase creates a loan from its loan type configuration,
// generates the weekly repayment schedule, and announces the issuance.
type IssueLoanUseCase struct {
	loanTypeRepo  port.LoanTypeRepository
	loanRepo      port.LoanRepository
	penaltyPolicy *service.PenaltyPolicy
	publisher     port.EventPublisher
	logger        *slog.Logger
}

// NewIssueLoanUseCase wires dependencies.
func NewIssueLoanUseCase(
	loanTypeRepo port.LoanTypeRepository,
	loanRepo port.LoanRepository,
	penaltyPolicy *service.PenaltyPolicy,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *IssueLoanUseCase {
	return &IssueLoanUseCase{
		loanTypeRepo:  loanTypeRepo,
		loanRepo:      loanRepo,
		penaltyPolicy: penaltyPolicy,
		publisher:     publisher,
		logger:        logger,
	}
}

// Execute issues a loan.
func (uc *IssueLoanUseCase) Execute(
	ctx context.Context,
	req dto.IssueLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	// 1. Resolve the loan type; the fixed penalty and installment count
	// are denormalized onto the loan at issuance.
	loanType, err := uc.loanTypeRepo.FindByID(ctx, req.CompanyID, req.LoanTypeID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan type: %w", err)
	}

	anchorDay, err := parseAnchorDay(req.AnchorDay, req.StartDate)
	if err != nil {
		return dto.LoanResponse{}, err
	}

	// 2. Create the loan aggregate (generates the schedule internally).
	loan, err := model.NewLoan(
		req.CompanyID, req.CustomerID, loanType.ID,
		req.LoanAmount, req.GivenAmount, uc.penaltyPolicy.FixedPenalty(loanType),
		loanType.Weeks, anchorDay, req.StartDate,
		req.PaymentMode, req.AddedBy, now,
	)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("create loan: %w", err)
	}

	// 3. Persist; the store assigns the LON serial inside the insert tx.
	loan, err = uc.loanRepo.Create(ctx, loan)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	// 4. Announce. Publishing happens after commit and never unwinds it.
	entries := loan.Entries()
	issued := event.NewLoanIssued(
		loan.ID(), loan.CompanyID(), loan.LoanNo(), loan.CustomerID(),
		loan.LoanAmount(), loan.GivenAmount(), loan.FixedPenalty(),
		loan.Installments(), entries[0].DueDate,
	)
	if err := uc.publisher.Publish(ctx, issued); err != nil {
		uc.logger.Warn("publish loan.issued failed",
			"loan_id", loan.ID(), "error", err)
	}

	return toLoanResponse(loan), nil
}

// parseAnchorDay maps the request's weekday name onto time.Weekday,
// defaulting to the start date's own weekday when unset.
func parseAnchorDay(s string, startDate time.Time) (time.Weekday, error) {
	if s == "" {
		return startDate.Weekday(), nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid anchor day: %q", s)
}

func toLoanResponse(loan model.Loan) dto.LoanResponse {
	entries := loan.Entries()
	schedule := make([]dto.ScheduleEntryResponse, len(entries))
	for i, e := range entries {
		schedule[i] = dto.ScheduleEntryResponse{
			DueNo:           e.DueNo,
			DueDate:         e.DueDate,
			DueAmount:       e.DueAmount,
			DueReceived:     e.DueReceived,
			PenaltyCharged:  e.PenaltyCharged,
			PenaltyReceived: e.PenaltyReceived,
			Status:          e.Status.String(),
			DeferredFrom:    e.DeferredFrom,
			PaymentMode:     e.PaymentMode,
			CollectedBy:     e.CollectedBy,
			CollectedAt:     e.CollectedAt,
		}
	}

	return dto.LoanResponse{
		ID:           loan.ID(),
		CompanyID:    loan.CompanyID(),
		LoanNo:       loan.LoanNo(),
		CustomerID:   loan.CustomerID(),
		LoanTypeID:   loan.LoanTypeID(),
		LoanAmount:   loan.LoanAmount(),
		GivenAmount:  loan.GivenAmount(),
		FixedPenalty: loan.FixedPenalty(),
		Installments: loan.Installments(),
		StartDate:    loan.StartDate(),
		PaymentMode:  loan.PaymentMode(),
		AddedBy:      loan.AddedBy(),
		Status:       loan.Status().String(),
		Schedule:     schedule,
		CreatedAt:    loan.CreatedAt(),
		UpdatedAt:    loan.UpdatedAt(),
	}
}
