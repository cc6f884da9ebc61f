package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/futureinfotechservice/finance/internal/domain/model"
	"github.com/futureinfotechservice/finance/internal/domain/port"
	"github.com/futureinfotechservice/finance/internal/domain/valueobject"
	pg "github.com/futureinfotechservice/finance/pkg/postgres"
)

// LoanRepo implements port.LoanRepository.
type LoanRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRepo creates a new PostgreSQL-backed loan repository.
func NewLoanRepo(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{pool: pool}
}

// Create inserts a loan and its schedule, allocating the LON serial in
// the same transaction.
func (r *LoanRepo) Create(ctx context.Context, loan model.Loan) (model.Loan, error) {
	err := pg.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		loanNo, err := nextSerial(ctx, tx, loan.CompanyID(), serialKindLoan, "LON%05d")
		if err != nil {
			return err
		}
		loan = loan.WithLoanNo(loanNo)

		query := `
			INSERT INTO loans (
				id, company_id, loan_no, customer_id, loan_type_id,
				loan_amount, given_amount, fixed_penalty, installments,
				anchor_day, start_date, payment_mode, added_by,
				status, version, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		`
		_, err = tx.Exec(ctx, query,
			loan.ID(), loan.CompanyID(), loan.LoanNo(), loan.CustomerID(), loan.LoanTypeID(),
			loan.LoanAmount(), loan.GivenAmount(), loan.FixedPenalty(), loan.Installments(),
			int(loan.AnchorDay()), loan.StartDate(), loan.PaymentMode(), loan.AddedBy(),
			loan.Status().String(), loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("insert loan: %w", err)
		}

		return saveEntriesTx(ctx, tx, loan)
	})
	if err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

// FindByID retrieves a loan and its schedule entry set.
func (r *LoanRepo) FindByID(ctx context.Context, companyID, id string) (model.Loan, error) {
	query := loanSelect + ` WHERE company_id = $1 AND id = $2`
	loan, err := scanLoanRow(r.pool.QueryRow(ctx, query, companyID, id))
	if err != nil {
		return model.Loan{}, err
	}
	return r.withEntries(ctx, loan)
}

// FindByCustomerID retrieves all loans of a customer, newest first.
func (r *LoanRepo) FindByCustomerID(ctx context.Context, companyID, customerID string) ([]model.Loan, error) {
	query := loanSelect + ` WHERE company_id = $1 AND customer_id = $2 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, companyID, customerID)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var loans []model.Loan
	for rows.Next() {
		loan, err := scanLoanRow(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, loan := range loans {
		withEntries, err := r.withEntries(ctx, loan)
		if err != nil {
			return nil, err
		}
		loans[i] = withEntries
	}
	return loans, nil
}

func (r *LoanRepo) withEntries(ctx context.Context, loan model.Loan) (model.Loan, error) {
	entries, err := loadEntries(ctx, r.pool, loan.ID())
	if err != nil {
		return model.Loan{}, err
	}
	return model.ReconstructLoan(
		loan.ID(), loan.CompanyID(), loan.LoanNo(), loan.CustomerID(), loan.LoanTypeID(),
		loan.LoanAmount(), loan.GivenAmount(), loan.FixedPenalty(), loan.Installments(),
		loan.AnchorDay(), loan.StartDate(), loan.PaymentMode(), loan.AddedBy(),
		loan.Status(), entries, loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
	), nil
}

// ---------------------------------------------------------------------------
// shared row helpers, also used by the collection and closing repos
// ---------------------------------------------------------------------------

const loanSelect = `
	SELECT id, company_id, loan_no, customer_id, loan_type_id,
	       loan_amount, given_amount, fixed_penalty, installments,
	       anchor_day, start_date, payment_mode, added_by,
	       status, version, created_at, updated_at
	FROM loans
`

func scanLoanRow(s scannable) (model.Loan, error) {
	var (
		id, companyID, loanNo, customerID, loanTypeID string
		loanAmount, givenAmount, fixedPenalty         decimal.Decimal
		installments, anchorDay                       int
		startDate                                     time.Time
		paymentMode, addedBy, statusStr               string
		version                                       int
		createdAt, updatedAt                          time.Time
	)

	err := s.Scan(
		&id, &companyID, &loanNo, &customerID, &loanTypeID,
		&loanAmount, &givenAmount, &fixedPenalty, &installments,
		&anchorDay, &startDate, &paymentMode, &addedBy,
		&statusStr, &version, &createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Loan{}, port.ErrNotFound
	}
	if err != nil {
		return model.Loan{}, fmt.Errorf("scan loan: %w", err)
	}

	status, err := valueobject.NewLoanStatus(statusStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse loan status: %w", err)
	}

	return model.ReconstructLoan(
		id, companyID, loanNo, customerID, loanTypeID,
		loanAmount, givenAmount, fixedPenalty, installments,
		time.Weekday(anchorDay), startDate, paymentMode, addedBy,
		status, nil, version, createdAt, updatedAt,
	), nil
}

func loadEntries(ctx context.Context, q pg.Querier, loanID string) ([]model.ScheduleEntry, error) {
	query := `
		SELECT due_no, due_date, due_amount, due_received,
		       penalty_charged, penalty_received, status,
		       deferred_from, payment_mode, collected_by, collected_at
		FROM schedule_entries
		WHERE loan_id = $1
		ORDER BY due_no
	`
	rows, err := q.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("query schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []model.ScheduleEntry
	for rows.Next() {
		var (
			e         model.ScheduleEntry
			statusStr string
		)
		err := rows.Scan(
			&e.DueNo, &e.DueDate, &e.DueAmount, &e.DueReceived,
			&e.PenaltyCharged, &e.PenaltyReceived, &statusStr,
			&e.DeferredFrom, &e.PaymentMode, &e.CollectedBy, &e.CollectedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan schedule entry: %w", err)
		}
		if e.Status, err = valueobject.NewEntryStatus(statusStr); err != nil {
			return nil, fmt.Errorf("parse entry status: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// updateLoanTx applies a version-checked update of the loan header and
// upserts its entry set, including entries appended by a deferral. A zero
// row count means a concurrent writer committed first.
func updateLoanTx(ctx context.Context, tx pgx.Tx, loan model.Loan) error {
	query := `
		UPDATE loans
		SET status = $1, version = version + 1, updated_at = $2
		WHERE company_id = $3 AND id = $4 AND version = $5
	`
	tag, err := tx.Exec(ctx, query,
		loan.Status().String(), loan.UpdatedAt(),
		loan.CompanyID(), loan.ID(), loan.Version(),
	)
	if err != nil {
		return fmt.Errorf("update loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrVersionConflict
	}

	return saveEntriesTx(ctx, tx, loan)
}

func saveEntriesTx(ctx context.Context, tx pgx.Tx, loan model.Loan) error {
	query := `
		INSERT INTO schedule_entries (
			loan_id, due_no, due_date, due_amount, due_received,
			penalty_charged, penalty_received, status,
			deferred_from, payment_mode, collected_by, collected_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (loan_id, due_no) DO UPDATE SET
			due_received     = EXCLUDED.due_received,
			penalty_charged  = EXCLUDED.penalty_charged,
			penalty_received = EXCLUDED.penalty_received,
			status           = EXCLUDED.status,
			payment_mode     = EXCLUDED.payment_mode,
			collected_by     = EXCLUDED.collected_by,
			collected_at     = EXCLUDED.collected_at
	`
	for _, e := range loan.Entries() {
		_, err := tx.Exec(ctx, query,
			loan.ID(), e.DueNo, e.DueDate, e.DueAmount, e.DueReceived,
			e.PenaltyCharged, e.PenaltyReceived, e.Status.String(),
			e.DeferredFrom, e.PaymentMode, e.CollectedBy, e.CollectedAt,
		)
		if err != nil {
			return fmt.Errorf("save schedule entry %d: %w", e.DueNo, err)
		}
	}
	return nil
}
