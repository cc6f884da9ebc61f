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

var testStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) // Thursday

func newTestLoan(t *testing.T) model.Loan {
	t.Helper()
	loan, err := model.NewLoan(
		"company-001", "customer-001", "lt-001",
		decimal.NewFromInt(1000), decimal.NewFromInt(950), decimal.NewFromInt(50),
		4, time.Monday, testStart, "CASH", "agent-007", testStart,
	)
	require.NoError(t, err)
	return loan
}

func TestNewLoan_Valid(t *testing.T) {
	loan := newTestLoan(t)

	assert.NotEmpty(t, loan.ID())
	assert.Equal(t, "company-001", loan.CompanyID())
	assert.Empty(t, loan.LoanNo(), "serial is assigned by the store")
	assert.Equal(t, "customer-001", loan.CustomerID())
	assert.True(t, decimal.NewFromInt(1000).Equal(loan.LoanAmount()))
	assert.True(t, decimal.NewFromInt(950).Equal(loan.GivenAmount()))
	assert.True(t, decimal.NewFromInt(50).Equal(loan.FixedPenalty()))
	assert.Equal(t, valueobject.LoanStatusActive, loan.Status())
	assert.Equal(t, 1, loan.Version())

	entries := loan.Entries()
	require.Len(t, entries, 4)
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.DueAmount)
	}
	assert.True(t, loan.LoanAmount().Equal(total))
}

func TestNewLoan_Validation(t *testing.T) {
	cases := []struct {
		name        string
		companyID   string
		customerID  string
		loanAmount  decimal.Decimal
		givenAmount decimal.Decimal
		penalty     decimal.Decimal
		weeks       int
		wantErr     string
	}{
		{"missing company", "", "c", decimal.NewFromInt(100), decimal.NewFromInt(100), decimal.Zero, 4, "company ID is required"},
		{"missing customer", "co", "", decimal.NewFromInt(100), decimal.NewFromInt(100), decimal.Zero, 4, "customer ID is required"},
		{"zero loan amount", "co", "c", decimal.Zero, decimal.NewFromInt(100), decimal.Zero, 4, "loan amount must be positive"},
		{"zero given amount", "co", "c", decimal.NewFromInt(100), decimal.Zero, decimal.Zero, 4, "given amount must be positive"},
		{"given exceeds loan", "co", "c", decimal.NewFromInt(100), decimal.NewFromInt(200), decimal.Zero, 4, "given amount cannot exceed loan amount"},
		{"negative penalty", "co", "c", decimal.NewFromInt(100), decimal.NewFromInt(100), decimal.NewFromInt(-1), 4, "fixed penalty cannot be negative"},
		{"zero installments", "co", "c", decimal.NewFromInt(100), decimal.NewFromInt(100), decimal.Zero, 0, "installment count must be positive"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := model.NewLoan(
				tc.companyID, tc.customerID, "lt-001",
				tc.loanAmount, tc.givenAmount, tc.penalty,
				tc.weeks, time.Monday, testStart, "CASH", "agent", testStart,
			)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoan_WithLoanNo(t *testing.T) {
	loan := newTestLoan(t)
	withNo := loan.WithLoanNo("LON00042")

	assert.Equal(t, "LON00042", withNo.LoanNo())
	assert.Empty(t, loan.LoanNo(), "original is unchanged")
}

func TestLoan_EntriesDefensiveCopy(t *testing.T) {
	loan := newTestLoan(t)
	entries := loan.Entries()
	entries[0].DueReceived = decimal.NewFromInt(999)

	fresh, ok := loan.Entry(1)
	require.True(t, ok)
	assert.True(t, fresh.DueReceived.IsZero())
}

func TestLoan_Totals(t *testing.T) {
	loan := newTestLoan(t)
	collectionDate := testStart.AddDate(0, 2, 0)

	loan, _, err := loan.ApplyCollection(collectionDate, "CASH", "agent-007",
		[]model.AllocationInstruction{
			{DueNo: 1, Intent: valueobject.IntentPaid, Amount: decimal.NewFromInt(250)},
			{DueNo: 2, Intent: valueobject.IntentUnpaid, Amount: decimal.NewFromInt(30)},
		}, collectionDate)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(250).Equal(loan.TotalDueReceived()))
	assert.True(t, decimal.NewFromInt(50).Equal(loan.TotalPenaltyCharged()))
	assert.True(t, decimal.NewFromInt(30).Equal(loan.TotalPenaltyReceived()))
}
