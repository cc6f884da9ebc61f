package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/futureinfotechservice/finance/internal/domain/model"
)

// BalanceSnapshot carries the derived balances of a loan at a point in
// time. All figures are aggregates over schedule history; the snapshot is
// never the system of record.
type BalanceSnapshot struct {
	LoanAmount       decimal.Decimal
	LoanPaid         decimal.Decimal
	BalanceAmount    decimal.Decimal
	PenaltyCharged   decimal.Decimal
	PenaltyCollected decimal.Decimal
	PenaltyBalance   decimal.Decimal
}

// BalanceReader computes loan and penalty balances as derived aggregates
// over the schedule entry set. Read-only: it feeds completion detection,
// closure settlement and reporting, and performs no mutation.
type BalanceReader struct{}

// NewBalanceReader creates the reader.
func NewBalanceReader() *BalanceReader {
	return &BalanceReader{}
}

// Snapshot computes the balances for a loan as of the given date.
func (r *BalanceReader) Snapshot(loan model.Loan, asOf time.Time) BalanceSnapshot {
	loanPaid := loan.TotalDueReceived()
	penaltyCharged := loan.TotalPenaltyCharged()
	penaltyCollected := loan.TotalPenaltyReceived()

	balance := loan.LoanAmount().Sub(loanPaid)
	if balance.IsNegative() {
		balance = decimal.Zero
	}

	// Penalty is outstanding only on entries that are overdue and still
	// open. Settled penalty cycles and future installments owe nothing.
	penaltyBalance := decimal.Zero
	for _, e := range loan.Entries() {
		if e.Status.Terminal() || !e.OverdueAsOf(asOf) {
			continue
		}
		penaltyBalance = penaltyBalance.Add(e.PenaltyCharged.Sub(e.PenaltyReceived))
	}
	if penaltyBalance.IsNegative() {
		penaltyBalance = decimal.Zero
	}

	return BalanceSnapshot{
		LoanAmount:       loan.LoanAmount(),
		LoanPaid:         loanPaid,
		BalanceAmount:    balance,
		PenaltyCharged:   penaltyCharged,
		PenaltyCollected: penaltyCollected,
		PenaltyBalance:   penaltyBalance,
	}
}
