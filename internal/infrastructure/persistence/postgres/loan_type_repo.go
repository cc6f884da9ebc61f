package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/futureinfotechservice/finance/internal/domain/model"
	"github.com/futureinfotechservice/finance/internal/domain/port"
)

// LoanTypeRepo implements port.LoanTypeRepository.
type LoanTypeRepo struct {
	pool *pgxpool.Pool
}

// NewLoanTypeRepo creates a new PostgreSQL-backed loan type repository.
func NewLoanTypeRepo(pool *pgxpool.Pool) *LoanTypeRepo {
	return &LoanTypeRepo{pool: pool}
}

// FindByID retrieves a loan type scoped to its company.
func (r *LoanTypeRepo) FindByID(ctx context.Context, companyID, id string) (model.LoanType, error) {
	query := `
		SELECT id, company_id, name, penalty_amount, weeks
		FROM loan_types
		WHERE company_id = $1 AND id = $2
	`
	var lt model.LoanType
	err := r.pool.QueryRow(ctx, query, companyID, id).Scan(
		&lt.ID, &lt.CompanyID, &lt.Name, &lt.PenaltyAmount, &lt.Weeks,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.LoanType{}, port.ErrNotFound
	}
	if err != nil {
		return model.LoanType{}, fmt.Errorf("scan loan type: %w", err)
	}
	return lt, nil
}
