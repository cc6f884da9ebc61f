package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/futureinfotechservice/finance/internal/domain/valueobject"
)

// ScheduleEntry is one installment obligation within a loan's repayment
// plan. Received amounts are cumulative; PenaltyCharged is the flat penalty
// charged when the entry enters its penalty cycle, distinct from the
// penalty actually collected.
type ScheduleEntry struct {
	DueNo           int
	DueDate         time.Time
	DueAmount       decimal.Decimal
	DueReceived     decimal.Decimal
	PenaltyCharged  decimal.Decimal
	PenaltyReceived decimal.Decimal
	Status          valueobject.EntryStatus
	DeferredFrom    *int // dueNo of the entry this one was deferred from
	PaymentMode     string
	CollectedBy     string
	CollectedAt     *time.Time
}

// OverdueAsOf reports whether the entry is overdue at the given date: the
// due date has passed and the due amount is not fully received. An entry
// paid in full, even late, is never overdue.
func (e ScheduleEntry) OverdueAsOf(asOf time.Time) bool {
	return e.DueDate.Before(asOf) && e.DueReceived.LessThan(e.DueAmount)
}

// DueOutstanding returns the principal still owed on the entry.
func (e ScheduleEntry) DueOutstanding() decimal.Decimal {
	return e.DueAmount.Sub(e.DueReceived)
}

// GenerateWeeklySchedule produces the installment plan for a loan: one
// entry per week, the first falling on the next occurrence of anchorDay
// strictly after startDate, each subsequent entry seven days later.
//
// The per-installment amount is loanAmount/installments truncated to two
// decimal places; the final installment absorbs the rounding remainder so
// that the schedule total equals loanAmount exactly.
func GenerateWeeklySchedule(
	loanAmount decimal.Decimal,
	installments int,
	anchorDay time.Weekday,
	startDate time.Time,
) []ScheduleEntry {
	if installments <= 0 || loanAmount.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	weekly := loanAmount.Div(decimal.NewFromInt(int64(installments))).RoundDown(2)
	last := loanAmount.Sub(weekly.Mul(decimal.NewFromInt(int64(installments - 1))))

	dueDate := nextWeekday(startDate, anchorDay)

	schedule := make([]ScheduleEntry, 0, installments)
	for dueNo := 1; dueNo <= installments; dueNo++ {
		amount := weekly
		if dueNo == installments {
			amount = last
		}
		schedule = append(schedule, ScheduleEntry{
			DueNo:           dueNo,
			DueDate:         dueDate,
			DueAmount:       amount,
			DueReceived:     decimal.Zero,
			PenaltyCharged:  decimal.Zero,
			PenaltyReceived: decimal.Zero,
			Status:          valueobject.EntryStatusPending,
		})
		dueDate = dueDate.AddDate(0, 0, 7)
	}

	return schedule
}

// newDeferredEntry builds the schedule entry appended when an installment's
// principal is pushed to the end of the plan. The dueNo and dueDate are
// derived from the loan's current maxima at append time so that repeated
// deferrals chain correctly.
func newDeferredEntry(entries []ScheduleEntry, source ScheduleEntry) ScheduleEntry {
	maxDueNo := 0
	var maxDueDate time.Time
	for _, e := range entries {
		if e.DueNo > maxDueNo {
			maxDueNo = e.DueNo
		}
		if e.DueDate.After(maxDueDate) {
			maxDueDate = e.DueDate
		}
	}

	from := source.DueNo
	return ScheduleEntry{
		DueNo:           maxDueNo + 1,
		DueDate:         maxDueDate.AddDate(0, 0, 7),
		DueAmount:       source.DueAmount,
		DueReceived:     decimal.Zero,
		PenaltyCharged:  decimal.Zero,
		PenaltyReceived: decimal.Zero,
		Status:          valueobject.EntryStatusPending,
		DeferredFrom:    &from,
	}
}

// nextWeekday returns the first occurrence of day strictly after t.
func nextWeekday(t time.Time, day time.Weekday) time.Time {
	next := t.AddDate(0, 0, 1)
	for next.Weekday() != day {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
