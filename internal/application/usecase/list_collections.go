package usecase

import (
	"context"
	"fmt"

	"github.com/futureinfotechservice/finance/internal/application/dto"
	"github.com/futureinfotechservice/finance/internal/domain/port"
)

// ListCollectionsUseCase retrieves the collection history of a loan,
// newest first.
type ListCollectionsUseCase struct {
	collectionRepo port.CollectionRepository
}

// NewListCollectionsUseCase wires dependencies.
func NewListCollectionsUseCase(collectionRepo port.CollectionRepository) *ListCollectionsUseCase {
	return &ListCollectionsUseCase{collectionRepo: collectionRepo}
}

// Execute lists the collections recorded against a loan.
func (uc *ListCollectionsUseCase) Execute(
	ctx context.Context,
	req dto.ListCollectionsRequest,
) ([]dto.CollectionResponse, error) {
	cols, err := uc.collectionRepo.FindByLoanID(ctx, req.CompanyID, req.LoanID)
	if err != nil {
		return nil, fmt.Errorf("find collections: %w", err)
	}

	out := make([]dto.CollectionResponse, len(cols))
	for i, col := range cols {
		entries := make([]dto.AllocationEntryResponse, len(col.Details))
		for j, d := range col.Details {
			entries[j] = dto.AllocationEntryResponse{
				DueNo:          d.DueNo,
				Intent:         d.Intent.String(),
				DueApplied:     d.DueReceived,
				PenaltyApplied: d.PenaltyReceived,
			}
		}
		out[i] = dto.CollectionResponse{
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
			CreatedAt:            col.CreatedAt,
		}
	}
	return out, nil
}
