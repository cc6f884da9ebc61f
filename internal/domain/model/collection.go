package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/futureinfotechservice/finance/internal/domain/valueobject"
)

// CollectionDetail is one line item of a collection event: the incremental
// amounts applied to a single schedule entry. Amounts here are per-event,
// never cumulative.
type CollectionDetail struct {
	DueNo           int
	Intent          valueobject.PaymentIntent
	DueReceived     decimal.Decimal
	PenaltyReceived decimal.Decimal
}

// Collection is the append-only record of one collection event against a
// loan. It is never mutated or deleted once written.
type Collection struct {
	ID                   string
	CollectionNo         string
	LoanID               string
	CompanyID            string
	Date                 time.Time
	PaymentMode          string
	CollectedBy          string
	TotalAmount          decimal.Decimal
	DueReceivedTotal     decimal.Decimal
	PenaltyReceivedTotal decimal.Decimal
	Details              []CollectionDetail
	CreatedAt            time.Time
}

// NewCollection builds the collection record for an allocation result.
// The human-readable serial (COL#####) is assigned by the store inside the
// same transaction that persists the record.
func NewCollection(
	loanID, companyID string,
	date time.Time,
	paymentMode, collectedBy string,
	result AllocationResult,
	now time.Time,
) Collection {
	details := make([]CollectionDetail, 0, len(result.Outcomes))
	for _, o := range result.Outcomes {
		details = append(details, CollectionDetail{
			DueNo:           o.DueNo,
			Intent:          o.Intent,
			DueReceived:     o.DueApplied,
			PenaltyReceived: o.PenaltyApplied,
		})
	}

	return Collection{
		ID:                   uuid.New().String(),
		LoanID:               loanID,
		CompanyID:            companyID,
		Date:                 date,
		PaymentMode:          paymentMode,
		CollectedBy:          collectedBy,
		TotalAmount:          result.TotalAmount(),
		DueReceivedTotal:     result.DueReceivedTotal,
		PenaltyReceivedTotal: result.PenaltyReceivedTotal,
		Details:              details,
		CreatedAt:            now,
	}
}

// WithCollectionNo returns a copy carrying the serial assigned at insert time.
func (c Collection) WithCollectionNo(no string) Collection {
	c.CollectionNo = no
	return c
}
