package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/futureinfotechservice/finance/internal/domain/model"
	"github.com/futureinfotechservice/finance/internal/domain/port"
	"github.com/futureinfotechservice/finance/internal/domain/valueobject"
	pg "github.com/futureinfotechservice/finance/pkg/postgres"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// ClosingRepo implements port.ClosingRepository.
type ClosingRepo struct {
	pool *pgxpool.Pool
}

// NewClosingRepo creates a new PostgreSQL-backed closing repository.
func NewClosingRepo(pool *pgxpool.Pool) *ClosingRepo {
	return &ClosingRepo{pool: pool}
}

// SaveClosing commits the closure settlement: the version-checked loan
// update, the AC serial, and the closing record, all in one transaction.
// The unique index on loan_id makes a second closing fail.
func (r *ClosingRepo) SaveClosing(ctx context.Context, loan model.Loan, closing model.AccountClosing) (model.AccountClosing, error) {
	err := pg.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := updateLoanTx(ctx, tx, loan); err != nil {
			return err
		}

		serialNo, err := nextSerial(ctx, tx, closing.CompanyID, serialKindClosing, "AC-%04d")
		if err != nil {
			return err
		}
		closing = closing.WithSerialNo(serialNo)

		query := `
			INSERT INTO account_closings (
				id, serial_no, company_id, customer_id, loan_id, loan_no,
				closing_date, loan_amount, loan_paid, balance_amount,
				penalty_charged, penalty_collected, penalty_balance,
				discount_principal, discount_penalty, final_settlement,
				closed_by, created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		`
		_, err = tx.Exec(ctx, query,
			closing.ID, closing.SerialNo, closing.CompanyID, closing.CustomerID,
			closing.LoanID, closing.LoanNo, closing.Date,
			closing.LoanAmount, closing.LoanPaid, closing.BalanceAmount,
			closing.PenaltyCharged, closing.PenaltyCollected, closing.PenaltyBalance,
			closing.DiscountPrincipal, closing.DiscountPenalty, closing.FinalSettlement,
			closing.ClosedBy, closing.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return valueobject.ErrAlreadyClosed
			}
			return fmt.Errorf("insert closing: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.AccountClosing{}, err
	}
	return closing, nil
}

// FindByLoanID retrieves the closing record of a loan.
func (r *ClosingRepo) FindByLoanID(ctx context.Context, companyID, loanID string) (model.AccountClosing, error) {
	query := `
		SELECT id, serial_no, company_id, customer_id, loan_id, loan_no,
		       closing_date, loan_amount, loan_paid, balance_amount,
		       penalty_charged, penalty_collected, penalty_balance,
		       discount_principal, discount_penalty, final_settlement,
		       closed_by, created_at
		FROM account_closings
		WHERE company_id = $1 AND loan_id = $2
	`
	var c model.AccountClosing
	err := r.pool.QueryRow(ctx, query, companyID, loanID).Scan(
		&c.ID, &c.SerialNo, &c.CompanyID, &c.CustomerID, &c.LoanID, &c.LoanNo,
		&c.Date, &c.LoanAmount, &c.LoanPaid, &c.BalanceAmount,
		&c.PenaltyCharged, &c.PenaltyCollected, &c.PenaltyBalance,
		&c.DiscountPrincipal, &c.DiscountPenalty, &c.FinalSettlement,
		&c.ClosedBy, &c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.AccountClosing{}, port.ErrNotFound
	}
	if err != nil {
		return model.AccountClosing{}, fmt.Errorf("scan closing: %w", err)
	}
	return c, nil
}
