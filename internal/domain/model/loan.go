package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/futureinfotechservice/finance/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Loan aggregate root
// ---------------------------------------------------------------------------

// Loan is an immutable aggregate owning its schedule entry set. Mutations
// return a new copy. The entry set is the unit of transactional
// consistency: every allocation and the closure settlement read and write
// it under one version check.
type Loan struct {
	id           string
	companyID    string
	loanNo       string
	customerID   string
	loanTypeID   string
	loanAmount   decimal.Decimal
	givenAmount  decimal.Decimal
	fixedPenalty decimal.Decimal
	installments int
	anchorDay    time.Weekday
	startDate    time.Time
	paymentMode  string
	addedBy      string
	status       valueobject.LoanStatus
	entries      []ScheduleEntry
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewLoan creates a loan and generates its weekly repayment schedule. The
// fixed penalty is denormalized from the loan type at issuance so later
// loan-type changes never alter an issued loan. The loan starts ACTIVE.
func NewLoan(
	companyID, customerID, loanTypeID string,
	loanAmount, givenAmount, fixedPenalty decimal.Decimal,
	installments int,
	anchorDay time.Weekday,
	startDate time.Time,
	paymentMode, addedBy string,
	now time.Time,
) (Loan, error) {
	if companyID == "" {
		return Loan{}, errors.New("company ID is required")
	}
	if customerID == "" {
		return Loan{}, errors.New("customer ID is required")
	}
	if loanAmount.LessThanOrEqual(decimal.Zero) {
		return Loan{}, errors.New("loan amount must be positive")
	}
	if givenAmount.LessThanOrEqual(decimal.Zero) {
		return Loan{}, errors.New("given amount must be positive")
	}
	if givenAmount.GreaterThan(loanAmount) {
		return Loan{}, errors.New("given amount cannot exceed loan amount")
	}
	if fixedPenalty.IsNegative() {
		return Loan{}, errors.New("fixed penalty cannot be negative")
	}
	if installments <= 0 {
		return Loan{}, errors.New("installment count must be positive")
	}

	sched := GenerateWeeklySchedule(loanAmount, installments, anchorDay, startDate)

	return Loan{
		id:           uuid.New().String(),
		companyID:    companyID,
		customerID:   customerID,
		loanTypeID:   loanTypeID,
		loanAmount:   loanAmount,
		givenAmount:  givenAmount,
		fixedPenalty: fixedPenalty,
		installments: installments,
		anchorDay:    anchorDay,
		startDate:    startDate,
		paymentMode:  paymentMode,
		addedBy:      addedBy,
		status:       valueobject.LoanStatusActive,
		entries:      sched,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructLoan rebuilds a Loan aggregate from persistence.
func ReconstructLoan(
	id, companyID, loanNo, customerID, loanTypeID string,
	loanAmount, givenAmount, fixedPenalty decimal.Decimal,
	installments int,
	anchorDay time.Weekday,
	startDate time.Time,
	paymentMode, addedBy string,
	status valueobject.LoanStatus,
	entries []ScheduleEntry,
	version int,
	createdAt, updatedAt time.Time,
) Loan {
	return Loan{
		id:           id,
		companyID:    companyID,
		loanNo:       loanNo,
		customerID:   customerID,
		loanTypeID:   loanTypeID,
		loanAmount:   loanAmount,
		givenAmount:  givenAmount,
		fixedPenalty: fixedPenalty,
		installments: installments,
		anchorDay:    anchorDay,
		startDate:    startDate,
		paymentMode:  paymentMode,
		addedBy:      addedBy,
		status:       status,
		entries:      entries,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// WithLoanNo returns a copy carrying the human-readable serial assigned by
// the store at insert time.
func (l Loan) WithLoanNo(loanNo string) Loan {
	next := l
	next.loanNo = loanNo
	return next
}

// ---------------------------------------------------------------------------
// Derived figures
// ---------------------------------------------------------------------------

// TotalDueReceived sums the principal collected across all entries.
func (l Loan) TotalDueReceived() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		total = total.Add(e.DueReceived)
	}
	return total
}

// TotalPenaltyCharged sums the flat penalties charged across all entries.
func (l Loan) TotalPenaltyCharged() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		total = total.Add(e.PenaltyCharged)
	}
	return total
}

// TotalPenaltyReceived sums the penalties collected across all entries.
func (l Loan) TotalPenaltyReceived() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		total = total.Add(e.PenaltyReceived)
	}
	return total
}

// allEntriesTerminal reports whether no entry remains open for collection.
func (l Loan) allEntriesTerminal() bool {
	for _, e := range l.entries {
		if !e.Status.Terminal() {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Loan) ID() string                        { return l.id }
func (l Loan) CompanyID() string                 { return l.companyID }
func (l Loan) LoanNo() string                    { return l.loanNo }
func (l Loan) CustomerID() string                { return l.customerID }
func (l Loan) LoanTypeID() string                { return l.loanTypeID }
func (l Loan) LoanAmount() decimal.Decimal       { return l.loanAmount }
func (l Loan) GivenAmount() decimal.Decimal      { return l.givenAmount }
func (l Loan) FixedPenalty() decimal.Decimal     { return l.fixedPenalty }
func (l Loan) Installments() int                 { return l.installments }
func (l Loan) AnchorDay() time.Weekday           { return l.anchorDay }
func (l Loan) StartDate() time.Time              { return l.startDate }
func (l Loan) PaymentMode() string               { return l.paymentMode }
func (l Loan) AddedBy() string                   { return l.addedBy }
func (l Loan) Status() valueobject.LoanStatus    { return l.status }
func (l Loan) Version() int                      { return l.version }
func (l Loan) CreatedAt() time.Time              { return l.createdAt }
func (l Loan) UpdatedAt() time.Time              { return l.updatedAt }

// Entries returns a defensive copy of the schedule entry set, ordered by dueNo.
func (l Loan) Entries() []ScheduleEntry {
	if l.entries == nil {
		return nil
	}
	out := make([]ScheduleEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Entry looks up a schedule entry by dueNo.
func (l Loan) Entry(dueNo int) (ScheduleEntry, bool) {
	for _, e := range l.entries {
		if e.DueNo == dueNo {
			return e, true
		}
	}
	return ScheduleEntry{}, false
}
