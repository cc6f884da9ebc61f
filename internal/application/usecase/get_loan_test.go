package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futureinfotechservice/finance/internal/application/dto"
	"github.com/futureinfotechservice/finance/internal/application/usecase"
	"github.com/futureinfotechservice/finance/internal/domain/model"
	"github.com/futureinfotechservice/finance/internal/domain/service"
	"github.com/futureinfotechservice/finance/internal/domain/valueobject"
)

func TestGetLoan_Execute(t *testing.T) {
	t.Run("returns the loan with its schedule", func(t *testing.T) {
		loan := activeLoan()
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, companyID, id string) (model.Loan, error) {
				assert.Equal(t, "company-001", companyID)
				assert.Equal(t, "loan-001", id)
				return loan, nil
			},
		}
		uc := usecase.NewGetLoanUseCase(loanRepo)

		resp, err := uc.Execute(context.Background(), dto.GetLoanRequest{
			CompanyID: "company-001",
			LoanID:    "loan-001",
		})

		require.NoError(t, err)
		assert.Equal(t, "LON00001", resp.LoanNo)
		assert.Len(t, resp.Schedule, 4)
	})

	t.Run("fails when loan not found", func(t *testing.T) {
		uc := usecase.NewGetLoanUseCase(&mockLoanRepository{})

		_, err := uc.Execute(context.Background(), dto.GetLoanRequest{
			CompanyID: "company-001",
			LoanID:    "loan-404",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "find loan")
	})
}

func TestGetLoanBalance_Execute(t *testing.T) {
	t.Run("computes derived balances", func(t *testing.T) {
		loan := activeLoan()
		entries := loan.Entries()
		entries[0].DueReceived = decimal.NewFromInt(250)
		entries[0].Status = valueobject.EntryStatusPaid
		entries[1].PenaltyCharged = decimal.NewFromInt(50)
		entries[1].PenaltyReceived = decimal.NewFromInt(30)
		entries[1].Status = valueobject.EntryStatusPartiallyPaidPenalty
		now := time.Now().UTC()
		loan = model.ReconstructLoan(
			loan.ID(), loan.CompanyID(), loan.LoanNo(), loan.CustomerID(), loan.LoanTypeID(),
			loan.LoanAmount(), loan.GivenAmount(), loan.FixedPenalty(),
			loan.Installments(), loan.AnchorDay(), loan.StartDate(),
			loan.PaymentMode(), loan.AddedBy(),
			valueobject.LoanStatusActive, entries,
			2, now, now,
		)

		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, companyID, id string) (model.Loan, error) {
				return loan, nil
			},
		}
		uc := usecase.NewGetLoanBalanceUseCase(loanRepo, service.NewBalanceReader())

		resp, err := uc.Execute(context.Background(), dto.GetLoanRequest{
			CompanyID: "company-001",
			LoanID:    "loan-001",
		})

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(250).Equal(resp.LoanPaid))
		assert.True(t, decimal.NewFromInt(750).Equal(resp.BalanceAmount))
		assert.True(t, decimal.NewFromInt(50).Equal(resp.PenaltyCharged))
		assert.True(t, decimal.NewFromInt(30).Equal(resp.PenaltyCollected))
		assert.True(t, decimal.NewFromInt(20).Equal(resp.PenaltyBalance))
	})
}

func TestListCustomerLoans_Execute(t *testing.T) {
	t.Run("lists every loan of a customer", func(t *testing.T) {
		loan := activeLoan()
		loanRepo := &mockLoanRepository{
			findByCustomerIDFunc: func(ctx context.Context, companyID, customerID string) ([]model.Loan, error) {
				assert.Equal(t, "company-001", companyID)
				assert.Equal(t, "customer-001", customerID)
				return []model.Loan{loan}, nil
			},
		}
		uc := usecase.NewListCustomerLoansUseCase(loanRepo)

		resp, err := uc.Execute(context.Background(), dto.ListCustomerLoansRequest{
			CompanyID:  "company-001",
			CustomerID: "customer-001",
		})

		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "LON00001", resp[0].LoanNo)
		assert.Len(t, resp[0].Schedule, 4)
	})

	t.Run("propagates store failure", func(t *testing.T) {
		loanRepo := &mockLoanRepository{
			findByCustomerIDFunc: func(ctx context.Context, companyID, customerID string) ([]model.Loan, error) {
				return nil, errors.New("connection reset")
			},
		}
		uc := usecase.NewListCustomerLoansUseCase(loanRepo)

		_, err := uc.Execute(context.Background(), dto.ListCustomerLoansRequest{
			CompanyID:  "company-001",
			CustomerID: "customer-001",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "find customer loans")
	})
}

func TestListCollections_Execute(t *testing.T) {
	t.Run("lists collection history", func(t *testing.T) {
		now := time.Now().UTC()
		colRepo := &mockCollectionRepository{
			findByLoanIDFunc: func(ctx context.Context, companyID, loanID string) ([]model.Collection, error) {
				return []model.Collection{
					{
						ID:                   "col-002",
						CollectionNo:         "COL00002",
						LoanID:               loanID,
						CompanyID:            companyID,
						Date:                 now,
						PaymentMode:          "CASH",
						CollectedBy:          "agent-007",
						TotalAmount:          decimal.NewFromInt(300),
						DueReceivedTotal:     decimal.NewFromInt(250),
						PenaltyReceivedTotal: decimal.NewFromInt(50),
						Details: []model.CollectionDetail{
							{DueNo: 2, Intent: valueobject.IntentPaid, DueReceived: decimal.NewFromInt(250)},
							{DueNo: 1, Intent: valueobject.IntentUnpaid, PenaltyReceived: decimal.NewFromInt(50)},
						},
						CreatedAt: now,
					},
					{
						ID:           "col-001",
						CollectionNo: "COL00001",
						LoanID:       loanID,
						CompanyID:    companyID,
						Date:         now.AddDate(0, 0, -7),
						TotalAmount:  decimal.NewFromInt(250),
						CreatedAt:    now.AddDate(0, 0, -7),
					},
				}, nil
			},
		}
		uc := usecase.NewListCollectionsUseCase(colRepo)

		resp, err := uc.Execute(context.Background(), dto.ListCollectionsRequest{
			CompanyID: "company-001",
			LoanID:    "loan-001",
		})

		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "COL00002", resp[0].CollectionNo)
		require.Len(t, resp[0].Entries, 2)
		assert.Equal(t, "paid", resp[0].Entries[0].Intent)
		assert.True(t, decimal.NewFromInt(50).Equal(resp[0].Entries[1].PenaltyApplied))
	})
}
