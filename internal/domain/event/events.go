package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/futureinfotechservice/finance/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Loan lifecycle events
// ---------------------------------------------------------------------------

// LoanIssued is raised when a loan is created with its repayment schedule.
type LoanIssued struct {
	events.BaseEvent
	LoanNo       string          `json:"loan_no"`
	CustomerID   string          `json:"customer_id"`
	LoanAmount   decimal.Decimal `json:"loan_amount"`
	GivenAmount  decimal.Decimal `json:"given_amount"`
	FixedPenalty decimal.Decimal `json:"fixed_penalty"`
	Installments int             `json:"installments"`
	FirstDueDate time.Time       `json:"first_due_date"`
}

func NewLoanIssued(
	loanID, companyID, loanNo, customerID string,
	loanAmount, givenAmount, fixedPenalty decimal.Decimal,
	installments int, firstDueDate time.Time,
) LoanIssued {
	return LoanIssued{
		BaseEvent:    events.NewBaseEvent("loan.issued", loanID, "Loan", companyID),
		LoanNo:       loanNo,
		CustomerID:   customerID,
		LoanAmount:   loanAmount,
		GivenAmount:  givenAmount,
		FixedPenalty: fixedPenalty,
		Installments: installments,
		FirstDueDate: firstDueDate,
	}
}

// CollectionRecorded is raised when a collection batch commits.
type CollectionRecorded struct {
	events.BaseEvent
	CollectionNo    string          `json:"collection_no"`
	CollectionDate  time.Time       `json:"collection_date"`
	DueReceived     decimal.Decimal `json:"due_received_total"`
	PenaltyReceived decimal.Decimal `json:"penalty_received_total"`
	Entries         int             `json:"entries"`
}

func NewCollectionRecorded(
	loanID, companyID, collectionNo string,
	collectionDate time.Time,
	dueReceived, penaltyReceived decimal.Decimal,
	entries int,
) CollectionRecorded {
	return CollectionRecorded{
		BaseEvent:       events.NewBaseEvent("loan.collection.recorded", loanID, "Loan", companyID),
		CollectionNo:    collectionNo,
		CollectionDate:  collectionDate,
		DueReceived:     dueReceived,
		PenaltyReceived: penaltyReceived,
		Entries:         entries,
	}
}

// InstallmentDeferred is raised when an unpaid installment's principal is
// pushed to a new entry at the end of the schedule.
type InstallmentDeferred struct {
	events.BaseEvent
	FromDueNo  int             `json:"from_due_no"`
	NewDueNo   int             `json:"new_due_no"`
	NewDueDate time.Time       `json:"new_due_date"`
	DueAmount  decimal.Decimal `json:"due_amount"`
}

func NewInstallmentDeferred(
	loanID, companyID string,
	fromDueNo, newDueNo int,
	newDueDate time.Time,
	dueAmount decimal.Decimal,
) InstallmentDeferred {
	return InstallmentDeferred{
		BaseEvent:  events.NewBaseEvent("loan.installment.deferred", loanID, "Loan", companyID),
		FromDueNo:  fromDueNo,
		NewDueNo:   newDueNo,
		NewDueDate: newDueDate,
		DueAmount:  dueAmount,
	}
}

// LoanCompleted is raised when every schedule entry reaches a terminal state.
type LoanCompleted struct {
	events.BaseEvent
	LoanNo string `json:"loan_no"`
}

func NewLoanCompleted(loanID, companyID, loanNo string) LoanCompleted {
	return LoanCompleted{
		BaseEvent: events.NewBaseEvent("loan.completed", loanID, "Loan", companyID),
		LoanNo:    loanNo,
	}
}

// LoanClosed is raised when a loan is settled early through account closing.
type LoanClosed struct {
	events.BaseEvent
	SerialNo        string          `json:"serial_no"`
	FinalSettlement decimal.Decimal `json:"final_settlement"`
}

func NewLoanClosed(loanID, companyID, serialNo string, finalSettlement decimal.Decimal) LoanClosed {
	return LoanClosed{
		BaseEvent:       events.NewBaseEvent("loan.closed", loanID, "Loan", companyID),
		SerialNo:        serialNo,
		FinalSettlement: finalSettlement,
	}
}
