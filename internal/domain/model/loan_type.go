package model

import "github.com/shopspring/decimal"

// LoanType is the issuance-time configuration for a class of loans. Only
// consulted when a loan is created; the resolved penalty is denormalized
// onto the Loan so later edits never affect issued loans.
type LoanType struct {
	ID            string
	CompanyID     string
	Name          string
	PenaltyAmount decimal.Decimal
	Weeks         int
}
