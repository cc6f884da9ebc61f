package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// LoanStatus – immutable value object
// ---------------------------------------------------------------------------

// LoanStatus represents the lifecycle stage of a loan.
type LoanStatus struct {
	value string
}

const (
	loanStatusActive    = "ACTIVE"
	loanStatusCompleted = "COMPLETED"
	loanStatusClosed    = "CLOSED"
)

var (
	LoanStatusActive    = LoanStatus{value: loanStatusActive}
	LoanStatusCompleted = LoanStatus{value: loanStatusCompleted}
	LoanStatusClosed    = LoanStatus{value: loanStatusClosed}
)

var validLoanStatuses = map[string]LoanStatus{
	loanStatusActive:    LoanStatusActive,
	loanStatusCompleted: LoanStatusCompleted,
	loanStatusClosed:    LoanStatusClosed,
}

// NewLoanStatus creates a LoanStatus from a raw string.
func NewLoanStatus(s string) (LoanStatus, error) {
	v, ok := validLoanStatuses[s]
	if !ok {
		return LoanStatus{}, fmt.Errorf("invalid loan status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s LoanStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s LoanStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s LoanStatus) Equal(other LoanStatus) bool { return s.value == other.value }

// Terminal reports whether the loan admits no further collections.
func (s LoanStatus) Terminal() bool {
	return s.value == loanStatusCompleted || s.value == loanStatusClosed
}

// ---------------------------------------------------------------------------
// EntryStatus – immutable value object
// ---------------------------------------------------------------------------

// EntryStatus represents the reconciliation state of one schedule entry.
//
// Transitions:
//
//	PENDING -> PARTIALLY_PAID | PAID | UNPAID | PARTIALLY_PAID_PENALTY
//	PARTIALLY_PAID -> PAID
//	UNPAID -> PARTIALLY_PAID_PENALTY -> PENALTY_PAID
//	any non-terminal -> CLOSED (closure settlement only)
//
// PAID, PENALTY_PAID and CLOSED are terminal.
type EntryStatus struct {
	value string
}

const (
	entryStatusPending              = "PENDING"
	entryStatusPartiallyPaid        = "PARTIALLY_PAID"
	entryStatusPaid                 = "PAID"
	entryStatusUnpaid               = "UNPAID"
	entryStatusPartiallyPaidPenalty = "PARTIALLY_PAID_PENALTY"
	entryStatusPenaltyPaid          = "PENALTY_PAID"
	entryStatusClosed               = "CLOSED"
)

var (
	EntryStatusPending              = EntryStatus{value: entryStatusPending}
	EntryStatusPartiallyPaid        = EntryStatus{value: entryStatusPartiallyPaid}
	EntryStatusPaid                 = EntryStatus{value: entryStatusPaid}
	EntryStatusUnpaid               = EntryStatus{value: entryStatusUnpaid}
	EntryStatusPartiallyPaidPenalty = EntryStatus{value: entryStatusPartiallyPaidPenalty}
	EntryStatusPenaltyPaid          = EntryStatus{value: entryStatusPenaltyPaid}
	EntryStatusClosed               = EntryStatus{value: entryStatusClosed}
)

var validEntryStatuses = map[string]EntryStatus{
	entryStatusPending:              EntryStatusPending,
	entryStatusPartiallyPaid:        EntryStatusPartiallyPaid,
	entryStatusPaid:                 EntryStatusPaid,
	entryStatusUnpaid:               EntryStatusUnpaid,
	entryStatusPartiallyPaidPenalty: EntryStatusPartiallyPaidPenalty,
	entryStatusPenaltyPaid:          EntryStatusPenaltyPaid,
	entryStatusClosed:               EntryStatusClosed,
}

// NewEntryStatus creates an EntryStatus from a raw string.
func NewEntryStatus(s string) (EntryStatus, error) {
	v, ok := validEntryStatuses[s]
	if !ok {
		return EntryStatus{}, fmt.Errorf("invalid schedule entry status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s EntryStatus) String() string { return s.value }

// IsZero returns true when not initialised.
func (s EntryStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses match.
func (s EntryStatus) Equal(other EntryStatus) bool { return s.value == other.value }

// Terminal reports whether the entry admits no further allocations.
func (s EntryStatus) Terminal() bool {
	return s.value == entryStatusPaid || s.value == entryStatusPenaltyPaid || s.value == entryStatusClosed
}

// InPenaltyCycle reports whether penalty collection has started on the entry.
func (s EntryStatus) InPenaltyCycle() bool {
	return s.value == entryStatusUnpaid ||
		s.value == entryStatusPartiallyPaidPenalty ||
		s.value == entryStatusPenaltyPaid
}

// InPrincipalCycle reports whether principal collection has started on the entry.
func (s EntryStatus) InPrincipalCycle() bool {
	return s.value == entryStatusPartiallyPaid || s.value == entryStatusPaid
}

// ---------------------------------------------------------------------------
// PaymentIntent – how a collection instruction is applied to an entry
// ---------------------------------------------------------------------------

// PaymentIntent tags each collection instruction as principal ("paid") or
// penalty ("unpaid"). The two are mutually exclusive per entry for its
// entire lifetime.
type PaymentIntent struct {
	value string
}

const (
	intentPaid   = "paid"
	intentUnpaid = "unpaid"
)

var (
	IntentPaid   = PaymentIntent{value: intentPaid}
	IntentUnpaid = PaymentIntent{value: intentUnpaid}
)

// NewPaymentIntent creates a PaymentIntent from a raw string.
func NewPaymentIntent(s string) (PaymentIntent, error) {
	switch s {
	case intentPaid:
		return IntentPaid, nil
	case intentUnpaid:
		return IntentUnpaid, nil
	default:
		return PaymentIntent{}, fmt.Errorf("invalid payment intent: %q", s)
	}
}

// String returns the string representation of the intent.
func (i PaymentIntent) String() string { return i.value }

// IsZero returns true when not initialised.
func (i PaymentIntent) IsZero() bool { return i.value == "" }

// Equal returns true when both intents match.
func (i PaymentIntent) Equal(other PaymentIntent) bool { return i.value == other.value }

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrLoanNotActive           = errors.New("loan is not active")
	ErrAlreadyClosed           = errors.New("loan already closed")
)

// RuleViolation is a business-rule breach attributable to one schedule
// entry. The whole collection batch fails when any instruction violates a
// rule; nothing is committed.
type RuleViolation struct {
	DueNo  int
	Reason string
}

func (e *RuleViolation) Error() string {
	return fmt.Sprintf("due %d: %s", e.DueNo, e.Reason)
}

// NewRuleViolation creates a RuleViolation for the given entry.
func NewRuleViolation(dueNo int, format string, args ...any) *RuleViolation {
	return &RuleViolation{DueNo: dueNo, Reason: fmt.Sprintf(format, args...)}
}
