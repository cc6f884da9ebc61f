package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/futureinfotechservice/finance/internal/domain/valueobject"
)

// AccountClosing is the terminal accounting snapshot written once when a
// loan is settled early. At most one exists per loan.
type AccountClosing struct {
	ID                string
	SerialNo          string
	CompanyID         string
	CustomerID        string
	LoanID            string
	LoanNo            string
	Date              time.Time
	LoanAmount        decimal.Decimal
	LoanPaid          decimal.Decimal
	BalanceAmount     decimal.Decimal
	PenaltyCharged    decimal.Decimal
	PenaltyCollected  decimal.Decimal
	PenaltyBalance    decimal.Decimal
	DiscountPrincipal decimal.Decimal
	DiscountPenalty   decimal.Decimal
	FinalSettlement   decimal.Decimal
	ClosedBy          string
	CreatedAt         time.Time
}

// WithSerialNo returns a copy carrying the serial (AC-####) assigned at
// insert time.
func (a AccountClosing) WithSerialNo(no string) AccountClosing {
	a.SerialNo = no
	return a
}

// Close settles the loan early: it crystallizes the remaining principal
// and penalty balances, applies the supplied discounts, force-closes every
// non-terminal schedule entry and transitions the loan to CLOSED.
//
//	finalSettlement = (loanAmount - loanPaid - discountPrincipal)
//	                + (penaltyCharged - penaltyCollected - discountPenalty)
//
// Closing an already-closed loan is rejected; the store additionally
// guards the closing record with a uniqueness constraint on the loan.
func (l Loan) Close(
	discountPrincipal, discountPenalty decimal.Decimal,
	closedBy string,
	now time.Time,
) (Loan, AccountClosing, error) {
	if l.status.Equal(valueobject.LoanStatusClosed) {
		return l, AccountClosing{}, valueobject.ErrAlreadyClosed
	}
	if discountPrincipal.IsNegative() || discountPenalty.IsNegative() {
		return l, AccountClosing{}, errors.New("discount amounts cannot be negative")
	}

	loanPaid := l.TotalDueReceived()
	penaltyCharged := l.TotalPenaltyCharged()
	penaltyCollected := l.TotalPenaltyReceived()

	balance := l.loanAmount.Sub(loanPaid)
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	penaltyBalance := penaltyCharged.Sub(penaltyCollected)
	if penaltyBalance.IsNegative() {
		penaltyBalance = decimal.Zero
	}

	finalSettlement := l.loanAmount.Sub(loanPaid).Sub(discountPrincipal).
		Add(penaltyCharged.Sub(penaltyCollected).Sub(discountPenalty))

	next := l
	next.entries = l.Entries()
	for i, e := range next.entries {
		if !e.Status.Terminal() {
			next.entries[i].Status = valueobject.EntryStatusClosed
		}
	}
	next.status = valueobject.LoanStatusClosed
	next.updatedAt = now

	closing := AccountClosing{
		ID:                uuid.New().String(),
		CompanyID:         l.companyID,
		CustomerID:        l.customerID,
		LoanID:            l.id,
		LoanNo:            l.loanNo,
		Date:              now,
		LoanAmount:        l.loanAmount,
		LoanPaid:          loanPaid,
		BalanceAmount:     balance,
		PenaltyCharged:    penaltyCharged,
		PenaltyCollected:  penaltyCollected,
		PenaltyBalance:    penaltyBalance,
		DiscountPrincipal: discountPrincipal,
		DiscountPenalty:   discountPenalty,
		FinalSettlement:   finalSettlement,
		ClosedBy:          closedBy,
		CreatedAt:         now,
	}

	return next, closing, nil
}
