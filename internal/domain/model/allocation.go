package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/futureinfotechservice/finance/internal/domain/valueobject"
)

// AllocationInstruction targets one schedule entry within a collection
// batch. Intent "paid" carries a principal amount; intent "unpaid" carries
// a penalty amount, which may be zero.
type AllocationInstruction struct {
	DueNo  int
	Intent valueobject.PaymentIntent
	Amount decimal.Decimal
}

// AllocationOutcome reports what a single instruction did to its entry.
type AllocationOutcome struct {
	DueNo           int
	Intent          valueobject.PaymentIntent
	Status          valueobject.EntryStatus
	DueApplied      decimal.Decimal
	PenaltyApplied  decimal.Decimal
	Deferred        bool
	DeferredDueNo   int
	DeferredDueDate time.Time
}

// AllocationResult is the aggregate outcome of one collection batch.
type AllocationResult struct {
	Outcomes             []AllocationOutcome
	DueReceivedTotal     decimal.Decimal
	PenaltyReceivedTotal decimal.Decimal
	Completed            bool
}

// TotalAmount is the grand total collected in the batch.
func (r AllocationResult) TotalAmount() decimal.Decimal {
	return r.DueReceivedTotal.Add(r.PenaltyReceivedTotal)
}

// ApplyCollection runs the repayment allocation state machine over the
// instruction batch, in submitted order, and returns the updated loan.
//
// Rules, applied per entry:
//
//   - Principal ("paid") and penalty ("unpaid") collection are mutually
//     exclusive for an entry's entire lifetime. The first violating
//     instruction fails the whole batch.
//   - A paid instruction never charges penalty, regardless of how late
//     the installment is settled.
//   - An unpaid instruction on a not-yet-overdue entry may not carry a
//     positive penalty amount.
//   - The first penalty event on an entry defers the entry's principal to
//     a new entry appended at the end of the schedule. Later penalty
//     events on the same entry never defer again. The loan's fixed
//     penalty is charged the first time a penalty event finds the entry
//     overdue.
//   - Cumulative receipts never exceed the due amount or the fixed
//     penalty; an instruction that would overshoot fails the batch.
//
// When every entry ends terminal the loan transitions to COMPLETED.
func (l Loan) ApplyCollection(
	collectionDate time.Time,
	paymentMode, collectedBy string,
	instructions []AllocationInstruction,
	now time.Time,
) (Loan, AllocationResult, error) {
	if !l.status.Equal(valueobject.LoanStatusActive) {
		return l, AllocationResult{}, valueobject.ErrLoanNotActive
	}
	if len(instructions) == 0 {
		return l, AllocationResult{}, errors.New("collection batch is empty")
	}

	next := l
	next.entries = l.Entries()

	byDueNo := make(map[int]int, len(next.entries))
	for i, e := range next.entries {
		byDueNo[e.DueNo] = i
	}

	result := AllocationResult{
		DueReceivedTotal:     decimal.Zero,
		PenaltyReceivedTotal: decimal.Zero,
	}

	for _, inst := range instructions {
		pos, ok := byDueNo[inst.DueNo]
		if !ok {
			return l, AllocationResult{}, valueobject.NewRuleViolation(inst.DueNo, "no such schedule entry")
		}
		entry := next.entries[pos]

		if entry.Status.Equal(valueobject.EntryStatusClosed) {
			return l, AllocationResult{}, valueobject.NewRuleViolation(inst.DueNo, "entry is closed")
		}

		outcome := AllocationOutcome{
			DueNo:          inst.DueNo,
			Intent:         inst.Intent,
			DueApplied:     decimal.Zero,
			PenaltyApplied: decimal.Zero,
		}

		switch {
		case inst.Intent.Equal(valueobject.IntentPaid):
			updated, err := applyPrincipal(entry, inst.Amount)
			if err != nil {
				return l, AllocationResult{}, err
			}
			entry = updated
			outcome.DueApplied = inst.Amount
			result.DueReceivedTotal = result.DueReceivedTotal.Add(inst.Amount)

		case inst.Intent.Equal(valueobject.IntentUnpaid):
			updated, startsCycle, err := applyPenalty(entry, inst.Amount, l.fixedPenalty, collectionDate)
			if err != nil {
				return l, AllocationResult{}, err
			}
			entry = updated
			outcome.PenaltyApplied = inst.Amount
			result.PenaltyReceivedTotal = result.PenaltyReceivedTotal.Add(inst.Amount)

			if startsCycle {
				deferred := newDeferredEntry(next.entries, entry)
				next.entries = append(next.entries, deferred)
				byDueNo[deferred.DueNo] = len(next.entries) - 1

				outcome.Deferred = true
				outcome.DeferredDueNo = deferred.DueNo
				outcome.DeferredDueDate = deferred.DueDate
			}

		default:
			return l, AllocationResult{}, valueobject.NewRuleViolation(inst.DueNo, "instruction has no payment intent")
		}

		entry.PaymentMode = paymentMode
		entry.CollectedBy = collectedBy
		collected := collectionDate
		entry.CollectedAt = &collected

		next.entries[pos] = entry
		outcome.Status = entry.Status
		result.Outcomes = append(result.Outcomes, outcome)
	}

	if next.allEntriesTerminal() {
		next.status = valueobject.LoanStatusCompleted
		result.Completed = true
	}

	next.updatedAt = now
	return next, result, nil
}

// applyPrincipal handles the "paid" intent for one entry.
func applyPrincipal(e ScheduleEntry, amount decimal.Decimal) (ScheduleEntry, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return e, valueobject.NewRuleViolation(e.DueNo, "principal amount must be positive")
	}
	if e.PenaltyReceived.GreaterThan(decimal.Zero) || e.Status.InPenaltyCycle() {
		return e, valueobject.NewRuleViolation(e.DueNo,
			"cannot collect due amount: penalty collection has already started (status %s, penalty received %s)",
			e.Status, e.PenaltyReceived)
	}

	newReceived := e.DueReceived.Add(amount)
	if newReceived.GreaterThan(e.DueAmount) {
		return e, valueobject.NewRuleViolation(e.DueNo,
			"due received %s would exceed due amount %s", newReceived, e.DueAmount)
	}

	e.DueReceived = newReceived
	if newReceived.GreaterThanOrEqual(e.DueAmount) {
		e.Status = valueobject.EntryStatusPaid
	} else {
		e.Status = valueobject.EntryStatusPartiallyPaid
	}
	return e, nil
}

// applyPenalty handles the "unpaid" intent for one entry. The boolean
// reports whether this event starts the entry's penalty cycle, which is
// the one and only trigger for deferring its principal.
func applyPenalty(
	e ScheduleEntry,
	amount, fixedPenalty decimal.Decimal,
	collectionDate time.Time,
) (ScheduleEntry, bool, error) {
	if amount.IsNegative() {
		return e, false, valueobject.NewRuleViolation(e.DueNo, "penalty amount cannot be negative")
	}
	if e.DueReceived.GreaterThan(decimal.Zero) || e.Status.InPrincipalCycle() {
		return e, false, valueobject.NewRuleViolation(e.DueNo,
			"cannot collect penalty: due amount collection has already started (status %s, due received %s)",
			e.Status, e.DueReceived)
	}
	if !e.OverdueAsOf(collectionDate) && amount.GreaterThan(decimal.Zero) {
		return e, false, valueobject.NewRuleViolation(e.DueNo, "entry is not overdue")
	}

	newReceived := e.PenaltyReceived.Add(amount)
	if newReceived.GreaterThan(fixedPenalty) {
		return e, false, valueobject.NewRuleViolation(e.DueNo,
			"penalty received %s would exceed fixed penalty %s", newReceived, fixedPenalty)
	}

	// First penalty event ever on this entry: defer the principal. A
	// zero-amount event still starts the cycle, so a later payment cannot
	// defer a second time.
	firstPenaltyEvent := e.PenaltyReceived.IsZero() &&
		!e.Status.Equal(valueobject.EntryStatusPartiallyPaidPenalty)

	// The flat penalty is owed only by overdue entries. A cycle started
	// early by a zero-amount event carries no charge yet; the charge lands
	// with the first penalty event once the entry is overdue.
	if e.PenaltyCharged.IsZero() && e.OverdueAsOf(collectionDate) {
		e.PenaltyCharged = fixedPenalty
	}

	e.PenaltyReceived = newReceived
	if newReceived.GreaterThanOrEqual(fixedPenalty) {
		e.Status = valueobject.EntryStatusPenaltyPaid
	} else {
		e.Status = valueobject.EntryStatusPartiallyPaidPenalty
	}

	return e, firstPenaltyEvent, nil
}
