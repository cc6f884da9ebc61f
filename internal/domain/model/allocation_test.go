package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futureinfotechservice/finance/internal/domain/model"
	"github.com/futureinfotechservice/finance/internal/domain/valueobject"
)

// Every entry of newTestLoan falls due in January 2026; collecting in
// March makes them all overdue.
var lateDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func paid(dueNo int, amount int64) model.AllocationInstruction {
	return model.AllocationInstruction{
		DueNo: dueNo, Intent: valueobject.IntentPaid, Amount: decimal.NewFromInt(amount),
	}
}

func unpaid(dueNo int, amount int64) model.AllocationInstruction {
	return model.AllocationInstruction{
		DueNo: dueNo, Intent: valueobject.IntentUnpaid, Amount: decimal.NewFromInt(amount),
	}
}

func TestApplyCollection_FullPrincipalPayment(t *testing.T) {
	loan := newTestLoan(t)

	loan, result, err := loan.ApplyCollection(lateDate, "CASH", "agent-007",
		[]model.AllocationInstruction{paid(1, 250)}, lateDate)
	require.NoError(t, err)

	entry, ok := loan.Entry(1)
	require.True(t, ok)
	assert.Equal(t, valueobject.EntryStatusPaid, entry.Status)
	assert.True(t, decimal.NewFromInt(250).Equal(entry.DueReceived))
	assert.True(t, entry.PenaltyCharged.IsZero(), "late full payment never attracts penalty")

	assert.Equal(t, "CASH", entry.PaymentMode)
	assert.Equal(t, "agent-007", entry.CollectedBy)
	require.NotNil(t, entry.CollectedAt)
	assert.Equal(t, lateDate, *entry.CollectedAt)

	assert.True(t, decimal.NewFromInt(250).Equal(result.DueReceivedTotal))
	assert.False(t, result.Completed)
}

func TestApplyCollection_PartialThenFull(t *testing.T) {
	loan := newTestLoan(t)

	loan, _, err := loan.ApplyCollection(lateDate, "CASH", "a",
		[]model.AllocationInstruction{paid(1, 100)}, lateDate)
	require.NoError(t, err)

	entry, _ := loan.Entry(1)
	assert.Equal(t, valueobject.EntryStatusPartiallyPaid, entry.Status)

	loan, _, err = loan.ApplyCollection(lateDate, "CASH", "a",
		[]model.AllocationInstruction{paid(1, 150)}, lateDate)
	require.NoError(t, err)

	entry, _ = loan.Entry(1)
	assert.Equal(t, valueobject.EntryStatusPaid, entry.Status)
	assert.True(t, decimal.NewFromInt(250).Equal(entry.DueReceived))
}

func TestApplyCollection_PrincipalOvershootRejected(t *testing.T) {
	loan := newTestLoan(t)

	_, _, err := loan.ApplyCollection(lateDate, "CASH", "a",
		[]model.AllocationInstruction{paid(1, 300)}, lateDate)

	var rule *valueobject.RuleViolation
	require.ErrorAs(t, err, &rule)
	assert.Equal(t, 1, rule.DueNo)
	assert.Contains(t, rule.Reason, "exceed due amount")
}

func TestApplyCollection_NonPositivePrincipalRejected(t *testing.T) {
	loan := newTestLoan(t)

	_, _, err := loan.ApplyCollection(lateDate, "CASH", "a",
		[]model.AllocationInstruction{paid(1, 0)}, lateDate)

	var rule *valueobject.RuleViolation
	require.ErrorAs(t, err, &rule)
	assert.Contains(t, rule.Reason, "must be positive")
}

func TestApplyCollection_PenaltyChargesAndDefers(t *testing.T) {
	loan := newTestLoan(t)

	loan, result, err := loan.ApplyCollection(lateDate, "CASH", "agent-007",
		[]model.AllocationInstruction{unpaid(1, 50)}, lateDate)
	require.NoError(t, err)

	entry, _ := loan.Entry(1)
	assert.Equal(t, valueobject.EntryStatusPenaltyPaid, entry.Status)
	assert.True(t, decimal.NewFromInt(50).Equal(entry.PenaltyCharged))
	assert.True(t, decimal.NewFromInt(50).Equal(entry.PenaltyReceived))
	assert.True(t, entry.DueReceived.IsZero(), "penalty never reduces principal")

	// The principal moved to a new entry appended at the end.
	entries := loan.Entries()
	require.Len(t, entries, 5)
	deferred := entries[4]
	assert.Equal(t, 5, deferred.DueNo)
	assert.True(t, decimal.NewFromInt(250).Equal(deferred.DueAmount))
	assert.Equal(t, valueobject.EntryStatusPending, deferred.Status)
	require.NotNil(t, deferred.DeferredFrom)
	assert.Equal(t, 1, *deferred.DeferredFrom)
	// One week past the previous schedule end.
	assert.Equal(t, entries[3].DueDate.AddDate(0, 0, 7), deferred.DueDate)

	require.Len(t, result.Outcomes, 1)
	assert.True(t, result.Outcomes[0].Deferred)
	assert.Equal(t, 5, result.Outcomes[0].DeferredDueNo)
}

func TestApplyCollection_PartialPenaltyDefersOnlyOnce(t *testing.T) {
	loan := newTestLoan(t)

	loan, _, err := loan.ApplyCollection(lateDate, "CASH", "a",
		[]model.AllocationInstruction{unpaid(1, 20)}, lateDate)
	require.NoError(t, err)

	entry, _ := loan.Entry(1)
	assert.Equal(t, valueobject.EntryStatusPartiallyPaidPenalty, entry.Status)
	assert.True(t, decimal.NewFromInt(50).Equal(entry.PenaltyCharged))
	assert.Len(t, loan.Entries(), 5)

	// Settling the rest of the penalty must not defer again.
	loan, result, err := loan.ApplyCollection(lateDate, "CASH", "a",
		[]model.AllocationInstruction{unpaid(1, 30)}, lateDate)
	require.NoError(t, err)

	entry, _ = loan.Entry(1)
	assert.Equal(t, valueobject.EntryStatusPenaltyPaid, entry.Status)
	assert.Len(t, loan.Entries(), 5)
	assert.False(t, result.Outcomes[0].Deferred)
}

func TestApplyCollection_ZeroPenaltyStartsCycle(t *testing.T) {
	loan := newTestLoan(t)

	// Marking an overdue entry unpaid with nothing collected still charges
	// the penalty and defers the principal.
	loan, result, err := loan.ApplyCollection(lateDate, "CASH", "a",
		[]model.AllocationInstruction{unpaid(1, 0)}, lateDate)
	require.NoError(t, err)

	entry, _ := loan.Entry(1)
	assert.Equal(t, valueobject.EntryStatusPartiallyPaidPenalty, entry.Status)
	assert.True(t, decimal.NewFromInt(50).Equal(entry.PenaltyCharged))
	assert.True(t, entry.PenaltyReceived.IsZero())
	assert.True(t, result.Outcomes[0].Deferred)
	assert.Len(t, loan.Entries(), 5)
}

func TestApplyCollection_EarlyUnpaidDefersWithoutCharge(t *testing.T) {
	loan := newTestLoan(t)
	beforeDue := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)

	// Marking an entry unpaid before its due date starts the penalty cycle
	// and defers the principal, but the flat penalty is not owed yet.
	loan, result, err := loan.ApplyCollection(beforeDue, "CASH", "a",
		[]model.AllocationInstruction{unpaid(1, 0)}, beforeDue)
	require.NoError(t, err)

	entry, _ := loan.Entry(1)
	assert.Equal(t, valueobject.EntryStatusPartiallyPaidPenalty, entry.Status)
	assert.True(t, entry.PenaltyCharged.IsZero(), "penalty is charged only once overdue")
	assert.True(t, result.Outcomes[0].Deferred)
	assert.Len(t, loan.Entries(), 5)

	// The charge lands with the first penalty event after the due date
	// passes, and the principal is not deferred a second time.
	loan, result, err = loan.ApplyCollection(lateDate, "CASH", "a",
		[]model.AllocationInstruction{unpaid(1, 20)}, lateDate)
	require.NoError(t, err)

	entry, _ = loan.Entry(1)
	assert.True(t, decimal.NewFromInt(50).Equal(entry.PenaltyCharged))
	assert.True(t, decimal.NewFromInt(20).Equal(entry.PenaltyReceived))
	assert.False(t, result.Outcomes[0].Deferred)
	assert.Len(t, loan.Entries(), 5)
}

func TestApplyCollection_PenaltyOnNotOverdueRejected(t *testing.T) {
	loan := newTestLoan(t)
	beforeDue := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	_, _, err := loan.ApplyCollection(beforeDue, "CASH", "a",
		[]model.AllocationInstruction{unpaid(1, 50)}, beforeDue)

	var rule *valueobject.RuleViolation
	require.ErrorAs(t, err, &rule)
	assert.Contains(t, rule.Reason, "not overdue")
}

func TestApplyCollection_PenaltyOvershootRejected(t *testing.T) {
	loan := newTestLoan(t)

	_, _, err := loan.ApplyCollection(lateDate, "CASH", "a",
		[]model.AllocationInstruction{unpaid(1, 60)}, lateDate)

	var rule *valueobject.RuleViolation
	require.ErrorAs(t, err, &rule)
	assert.Contains(t, rule.Reason, "exceed fixed penalty")
}

func TestApplyCollection_IntentsMutuallyExclusive(t *testing.T) {
	loan := newTestLoan(t)

	// Principal started: penalty is locked out for the entry's lifetime.
	withPrincipal, _, err := loan.ApplyCollection(lateDate, "CASH", "a",
		[]model.AllocationInstruction{paid(1, 100)}, lateDate)
	require.NoError(t, err)

	_, _, err = withPrincipal.ApplyCollection(lateDate, "CASH", "a",
		[]model.AllocationInstruction{unpaid(1, 10)}, lateDate)
	var rule *valueobject.RuleViolation
	require.ErrorAs(t, err, &rule)
	assert.Contains(t, rule.Reason, "due amount collection has already started")

	// Penalty started: principal is locked out, even after the penalty is
	// fully settled.
	withPenalty, _, err := loan.ApplyCollection(lateDate, "CASH", "a",
		[]model.AllocationInstruction{unpaid(1, 50)}, lateDate)
	require.NoError(t, err)

	_, _, err = withPenalty.ApplyCollection(lateDate, "CASH", "a",
		[]model.AllocationInstruction{paid(1, 100)}, lateDate)
	require.ErrorAs(t, err, &rule)
	assert.Contains(t, rule.Reason, "penalty collection has already started")
}

func TestApplyCollection_ViolationFailsWholeBatch(t *testing.T) {
	loan := newTestLoan(t)

	_, _, err := loan.ApplyCollection(lateDate, "CASH", "a",
		[]model.AllocationInstruction{
			paid(1, 250),
			paid(9, 250), // no such entry
		}, lateDate)

	var rule *valueobject.RuleViolation
	require.ErrorAs(t, err, &rule)
	assert.Equal(t, 9, rule.DueNo)

	// Nothing from the batch stuck.
	entry, _ := loan.Entry(1)
	assert.True(t, entry.DueReceived.IsZero())
	assert.Equal(t, valueobject.EntryStatusPending, entry.Status)
}

func TestApplyCollection_CompletionWithoutPenalties(t *testing.T) {
	loan := newTestLoan(t)

	loan, result, err := loan.ApplyCollection(lateDate, "CASH", "a",
		[]model.AllocationInstruction{
			paid(1, 250), paid(2, 250), paid(3, 250), paid(4, 250),
		}, lateDate)
	require.NoError(t, err)

	assert.True(t, result.Completed)
	assert.Equal(t, valueobject.LoanStatusCompleted, loan.Status())
	assert.True(t, decimal.NewFromInt(1000).Equal(loan.TotalDueReceived()))
}

// The full lifecycle of a 1000/4x250 loan where the first installment
// goes unpaid: penalty settles the original entry, its principal moves to
// entry 5, and the loan completes only once entry 5 is also paid.
func TestApplyCollection_DeferralLifecycle(t *testing.T) {
	loan := newTestLoan(t)

	loan, result, err := loan.ApplyCollection(lateDate, "CASH", "a",
		[]model.AllocationInstruction{
			unpaid(1, 50),
			paid(2, 250), paid(3, 250), paid(4, 250),
		}, lateDate)
	require.NoError(t, err)
	assert.False(t, result.Completed, "deferred principal still outstanding")
	assert.Equal(t, valueobject.LoanStatusActive, loan.Status())

	later := lateDate.AddDate(0, 0, 7)
	loan, result, err = loan.ApplyCollection(later, "CASH", "a",
		[]model.AllocationInstruction{paid(5, 250)}, later)
	require.NoError(t, err)

	assert.True(t, result.Completed)
	assert.Equal(t, valueobject.LoanStatusCompleted, loan.Status())
	assert.True(t, decimal.NewFromInt(1000).Equal(loan.TotalDueReceived()))
	assert.True(t, decimal.NewFromInt(50).Equal(loan.TotalPenaltyReceived()))
}

func TestApplyCollection_ChainedDeferrals(t *testing.T) {
	loan := newTestLoan(t)

	loan, _, err := loan.ApplyCollection(lateDate, "CASH", "a",
		[]model.AllocationInstruction{unpaid(1, 50)}, lateDate)
	require.NoError(t, err)

	// The deferred entry itself goes unpaid once overdue.
	farLater := lateDate.AddDate(0, 2, 0)
	loan, _, err = loan.ApplyCollection(farLater, "CASH", "a",
		[]model.AllocationInstruction{unpaid(5, 50)}, farLater)
	require.NoError(t, err)

	entries := loan.Entries()
	require.Len(t, entries, 6)
	assert.Equal(t, 6, entries[5].DueNo)
	require.NotNil(t, entries[5].DeferredFrom)
	assert.Equal(t, 5, *entries[5].DeferredFrom)
	assert.True(t, decimal.NewFromInt(100).Equal(loan.TotalPenaltyCharged()))
}

func TestApplyCollection_InactiveLoanRejected(t *testing.T) {
	loan := newTestLoan(t)
	closed, _, err := loan.Close(decimal.Zero, decimal.Zero, "mgr", lateDate)
	require.NoError(t, err)

	_, _, err = closed.ApplyCollection(lateDate, "CASH", "a",
		[]model.AllocationInstruction{paid(1, 100)}, lateDate)
	assert.ErrorIs(t, err, valueobject.ErrLoanNotActive)
}

func TestApplyCollection_EmptyBatchRejected(t *testing.T) {
	loan := newTestLoan(t)
	_, _, err := loan.ApplyCollection(lateDate, "CASH", "a", nil, lateDate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestApplyCollection_ClosedEntryRejected(t *testing.T) {
	loan := newTestLoan(t)

	// Complete the loan, then rebuild it ACTIVE with one CLOSED entry to
	// exercise the per-entry guard directly.
	entries := loan.Entries()
	entries[0].Status = valueobject.EntryStatusClosed
	reopened := model.ReconstructLoan(
		loan.ID(), loan.CompanyID(), loan.LoanNo(), loan.CustomerID(), loan.LoanTypeID(),
		loan.LoanAmount(), loan.GivenAmount(), loan.FixedPenalty(),
		loan.Installments(), loan.AnchorDay(), loan.StartDate(),
		loan.PaymentMode(), loan.AddedBy(),
		valueobject.LoanStatusActive, entries,
		loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
	)

	_, _, err := reopened.ApplyCollection(lateDate, "CASH", "a",
		[]model.AllocationInstruction{paid(1, 100)}, lateDate)

	var rule *valueobject.RuleViolation
	require.ErrorAs(t, err, &rule)
	assert.Contains(t, rule.Reason, "closed")
}
