package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// IssueLoanRequest carries the data needed to issue a new loan.
type IssueLoanRequest struct {
	CompanyID   string          `json:"company_id"`
	CustomerID  string          `json:"customer_id"`
	LoanTypeID  string          `json:"loan_type_id"`
	LoanAmount  decimal.Decimal `json:"loan_amount"`
	GivenAmount decimal.Decimal `json:"given_amount"`
	AnchorDay   string          `json:"anchor_day"`
	StartDate   time.Time       `json:"start_date"`
	PaymentMode string          `json:"payment_mode"`
	AddedBy     string          `json:"added_by"`
}

// CollectionItemRequest targets one schedule entry within a collection batch.
type CollectionItemRequest struct {
	DueNo  int             `json:"due_no"`
	Intent string          `json:"intent"`
	Amount decimal.Decimal `json:"amount"`
}

// RecordCollectionRequest carries one collection batch against a loan.
type RecordCollectionRequest struct {
	CompanyID      string                  `json:"company_id"`
	LoanID         string                  `json:"loan_id"`
	CollectionDate time.Time               `json:"collection_date"`
	PaymentMode    string                  `json:"payment_mode"`
	CollectedBy    string                  `json:"collected_by"`
	Items          []CollectionItemRequest `json:"items"`
}

// CloseLoanRequest carries the data for an early closure settlement.
type CloseLoanRequest struct {
	CompanyID         string          `json:"company_id"`
	LoanID            string          `json:"loan_id"`
	DiscountPrincipal decimal.Decimal `json:"discount_principal"`
	DiscountPenalty   decimal.Decimal `json:"discount_penalty"`
	ClosedBy          string          `json:"closed_by"`
}

// GetLoanRequest identifies a loan to retrieve.
type GetLoanRequest struct {
	CompanyID string `json:"company_id"`
	LoanID    string `json:"loan_id"`
}

// ListCollectionsRequest identifies a loan whose collection history to list.
type ListCollectionsRequest struct {
	CompanyID string `json:"company_id"`
	LoanID    string `json:"loan_id"`
}

// ListCustomerLoansRequest identifies a customer whose loans to list.
type ListCustomerLoansRequest struct {
	CompanyID  string `json:"company_id"`
	CustomerID string `json:"customer_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ScheduleEntryResponse represents one installment of a loan's schedule.
type ScheduleEntryResponse struct {
	DueNo           int             `json:"due_no"`
	DueDate         time.Time       `json:"due_date"`
	DueAmount       decimal.Decimal `json:"due_amount"`
	DueReceived     decimal.Decimal `json:"due_received"`
	PenaltyCharged  decimal.Decimal `json:"penalty_charged"`
	PenaltyReceived decimal.Decimal `json:"penalty_received"`
	Status          string          `json:"status"`
	DeferredFrom    *int            `json:"deferred_from,omitempty"`
	PaymentMode     string          `json:"payment_mode,omitempty"`
	CollectedBy     string          `json:"collected_by,omitempty"`
	CollectedAt     *time.Time      `json:"collected_at,omitempty"`
}

// LoanResponse is the external representation of a loan.
type LoanResponse struct {
	ID           string                  `json:"id"`
	CompanyID    string                  `json:"company_id"`
	LoanNo       string                  `json:"loan_no"`
	CustomerID   string                  `json:"customer_id"`
	LoanTypeID   string                  `json:"loan_type_id"`
	LoanAmount   decimal.Decimal         `json:"loan_amount"`
	GivenAmount  decimal.Decimal         `json:"given_amount"`
	FixedPenalty decimal.Decimal         `json:"fixed_penalty"`
	Installments int                     `json:"installments"`
	StartDate    time.Time               `json:"start_date"`
	PaymentMode  string                  `json:"payment_mode"`
	AddedBy      string                  `json:"added_by"`
	Status       string                  `json:"status"`
	Schedule     []ScheduleEntryResponse `json:"schedule,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// AllocationEntryResponse reports what one instruction did to its entry.
type AllocationEntryResponse struct {
	DueNo           int             `json:"due_no"`
	Intent          string          `json:"intent"`
	Status          string          `json:"status"`
	DueApplied      decimal.Decimal `json:"due_applied"`
	PenaltyApplied  decimal.Decimal `json:"penalty_applied"`
	Deferred        bool            `json:"deferred"`
	DeferredDueNo   int             `json:"deferred_due_no,omitempty"`
	DeferredDueDate *time.Time      `json:"deferred_due_date,omitempty"`
}

// CollectionResponse is the external representation of a collection event.
type CollectionResponse struct {
	ID                   string                    `json:"id"`
	CollectionNo         string                    `json:"collection_no"`
	LoanID               string                    `json:"loan_id"`
	Date                 time.Time                 `json:"date"`
	PaymentMode          string                    `json:"payment_mode"`
	CollectedBy          string                    `json:"collected_by"`
	TotalAmount          decimal.Decimal           `json:"total_amount"`
	DueReceivedTotal     decimal.Decimal           `json:"due_received_total"`
	PenaltyReceivedTotal decimal.Decimal           `json:"penalty_received_total"`
	Entries              []AllocationEntryResponse `json:"entries,omitempty"`
	LoanStatus           string                    `json:"loan_status,omitempty"`
	Completed            bool                      `json:"completed,omitempty"`
	CreatedAt            time.Time                 `json:"created_at"`
}

// BalanceResponse is the derived balance snapshot for a loan.
type BalanceResponse struct {
	LoanID           string          `json:"loan_id"`
	LoanNo           string          `json:"loan_no"`
	Status           string          `json:"status"`
	LoanAmount       decimal.Decimal `json:"loan_amount"`
	LoanPaid         decimal.Decimal `json:"loan_paid"`
	BalanceAmount    decimal.Decimal `json:"balance_amount"`
	PenaltyCharged   decimal.Decimal `json:"penalty_charged"`
	PenaltyCollected decimal.Decimal `json:"penalty_collected"`
	PenaltyBalance   decimal.Decimal `json:"penalty_balance"`
}

// ClosingResponse is the external representation of a closure settlement.
type ClosingResponse struct {
	ID                string          `json:"id"`
	SerialNo          string          `json:"serial_no"`
	LoanID            string          `json:"loan_id"`
	LoanNo            string          `json:"loan_no"`
	CustomerID        string          `json:"customer_id"`
	Date              time.Time       `json:"date"`
	LoanAmount        decimal.Decimal `json:"loan_amount"`
	LoanPaid          decimal.Decimal `json:"loan_paid"`
	BalanceAmount     decimal.Decimal `json:"balance_amount"`
	PenaltyCharged    decimal.Decimal `json:"penalty_charged"`
	PenaltyCollected  decimal.Decimal `json:"penalty_collected"`
	PenaltyBalance    decimal.Decimal `json:"penalty_balance"`
	DiscountPrincipal decimal.Decimal `json:"discount_principal"`
	DiscountPenalty   decimal.Decimal `json:"discount_penalty"`
	FinalSettlement   decimal.Decimal `json:"final_settlement"`
	ClosedBy          string          `json:"closed_by"`
}
