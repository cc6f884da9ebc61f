package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/futureinfotechservice/finance/internal/domain/model"
)

// PenaltyPolicy resolves the flat overdue charge for a loan and decides
// when an entry is overdue. The charge is fixed per loan type and frozen
// onto the loan at issuance; it is applied at most once per entry, when
// the entry's penalty cycle starts, and only on the penalty ("unpaid")
// allocation path. A late installment settled in full through the
// principal path accrues no penalty.
type PenaltyPolicy struct{}

// NewPenaltyPolicy creates the policy.
func NewPenaltyPolicy() *PenaltyPolicy {
	return &PenaltyPolicy{}
}

// FixedPenalty resolves the flat penalty for a loan type at issuance time.
func (p *PenaltyPolicy) FixedPenalty(lt model.LoanType) decimal.Decimal {
	if lt.PenaltyAmount.IsNegative() {
		return decimal.Zero
	}
	return lt.PenaltyAmount
}

// IsOverdue reports whether the entry is overdue relative to asOf.
func (p *PenaltyPolicy) IsOverdue(e model.ScheduleEntry, asOf time.Time) bool {
	return e.OverdueAsOf(asOf)
}
