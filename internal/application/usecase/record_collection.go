package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/futureinfotechservice/finance/internal/application/dto"
	"github.com/futureinfotechservice/finance/internal/domain/event"
	"github.com/futureinfotechservice/finance/internal/domain/model"
	"github.com/futureinfotechservice/finance/internal/domain/port"
	"github.com/futureinfotechservice/finance/internal/domain/valueobject"
	"github.com/futureinfotechservice/finance/pkg/events"
)

// maxAllocationRetries bounds reload-and-reapply attempts when a
// concurrent collection bumps the loan version first.
const maxAllocationRetries = 3

// RecordCollectionUseCase applies one collection batch to a loan: it runs
// the allocation state machine, persists the updated schedule and the
// append-only collection record in one transaction, and announces the
// outcome.
type RecordCollectionUseCase struct {
	loanRepo       port.LoanRepository
	collectionRepo port.CollectionRepository
	publisher      port.EventPublisher
	logger         *slog.Logger
}

// NewRecordCollectionUseCase wires dependencies.
func NewRecordCollectionUseCase(
	loanRepo port.LoanRepository,
	collectionRepo port.CollectionRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *RecordCollectionUseCase {
	return &RecordCollectionUseCase{
		loanRepo:       loanRepo,
		collectionRepo: collectionRepo,
		publisher:      publisher,
		logger:         logger,
	}
}

// Execute records a collection batch against a loan.
func (uc *RecordCollectionUseCase) Execute(
	ctx context.Context,
	req dto.RecordCollectionRequest,
) (dto.CollectionResponse, error) {
	instructions, err := toInstructions(req.Items)
	if err != nil {
		return dto.CollectionResponse{}, err
	}

	collectionDate := req.CollectionDate
	if collectionDate.IsZero() {
		collectionDate = time.Now().UTC()
	}

	var (
		loan   model.Loan
		result model.AllocationResult
		col    model.Collection
	)

	// Concurrent batches against the same loan serialize on the version
	// check; a losing writer reloads and re-runs the state machine so the
	// rules re-evaluate against the committed entry set.
	for attempt := 0; ; attempt++ {
		now := time.Now().UTC()

		loan, err = uc.loanRepo.FindByID(ctx, req.CompanyID, req.LoanID)
		if err != nil {
			return dto.CollectionResponse{}, fmt.Errorf("find loan: %w", err)
		}

		loan, result, err = loan.ApplyCollection(
			collectionDate, req.PaymentMode, req.CollectedBy, instructions, now)
		if err != nil {
			return dto.CollectionResponse{}, fmt.Errorf("apply collection: %w", err)
		}

		col = model.NewCollection(
			loan.ID(), loan.CompanyID(), collectionDate,
			req.PaymentMode, req.CollectedBy, result, now)

		col, err = uc.collectionRepo.SaveAllocation(ctx, loan, col)
		if err == nil {
			break
		}
		if errors.Is(err, port.ErrVersionConflict) && attempt < maxAllocationRetries {
			continue
		}
		return dto.CollectionResponse{}, fmt.Errorf("save collection: %w", err)
	}

	uc.publish(ctx, loan, col, result)

	return toCollectionResponse(col, result, loan.Status().String()), nil
}

// publish announces the committed batch. Publishing happens after commit
// and never unwinds it.
func (uc *RecordCollectionUseCase) publish(
	ctx context.Context,
	loan model.Loan,
	col model.Collection,
	result model.AllocationResult,
) {
	evts := []events.DomainEvent{
		event.NewCollectionRecorded(
			loan.ID(), loan.CompanyID(), col.CollectionNo, col.Date,
			result.DueReceivedTotal, result.PenaltyReceivedTotal,
			len(result.Outcomes),
		),
	}
	for _, o := range result.Outcomes {
		if !o.Deferred {
			continue
		}
		deferred, ok := loan.Entry(o.DeferredDueNo)
		if !ok {
			continue
		}
		evts = append(evts, event.NewInstallmentDeferred(
			loan.ID(), loan.CompanyID(),
			o.DueNo, o.DeferredDueNo, o.DeferredDueDate, deferred.DueAmount,
		))
	}
	if result.Completed {
		evts = append(evts, event.NewLoanCompleted(loan.ID(), loan.CompanyID(), loan.LoanNo()))
	}

	if err := uc.publisher.Publish(ctx, evts...); err != nil {
		uc.logger.Warn("publish collection events failed",
			"loan_id", loan.ID(), "collection_no", col.CollectionNo, "error", err)
	}
}

func toInstructions(items []dto.CollectionItemRequest) ([]model.AllocationInstruction, error) {
	instructions := make([]model.AllocationInstruction, 0, len(items))
	for _, item := range items {
		intent, err := valueobject.NewPaymentIntent(item.Intent)
		if err != nil {
			return nil, fmt.Errorf("item due %d: %w", item.DueNo, err)
		}
		instructions = append(instructions, model.AllocationInstruction{
			DueNo:  item.DueNo,
			Intent: intent,
			Amount: item.Amount,
		})
	}
	return instructions, nil
}

func toCollectionResponse(col model.Collection, result model.AllocationResult, loanStatus string) dto.CollectionResponse {
	entries := make([]dto.AllocationEntryResponse, len(result.Outcomes))
	for i, o := range result.Outcomes {
		entry := dto.AllocationEntryResponse{
			DueNo:          o.DueNo,
			Intent:         o.Intent.String(),
			Status:         o.Status.String(),
			DueApplied:     o.DueApplied,
			PenaltyApplied: o.PenaltyApplied,
			Deferred:       o.Deferred,
		}
		if o.Deferred {
			entry.DeferredDueNo = o.DeferredDueNo
			d := o.DeferredDueDate
			entry.DeferredDueDate = &d
		}
		entries[i] = entry
	}

	return dto.CollectionResponse{
		ID:                   col.ID,
		CollectionNo:         col.CollectionNo,
		LoanID:               col.LoanID,
		Date:                 col.Date,
		PaymentMode:          col.PaymentMode,
		CollectedBy:          col.CollectedBy,
		TotalAmount:          col.TotalAmount,
		DueReceivedTotal:     col.DueReceivedTotal,
		PenaltyReceivedTotal: col.PenaltyReceivedTotal,
		Entries:              entries,
		LoanStatus:           loanStatus,
		Completed:            result.Completed,
		CreatedAt:            col.CreatedAt,
	}
}
