package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/futureinfotechservice/finance/internal/domain/model"
	"github.com/futureinfotechservice/finance/internal/domain/valueobject"
	pg "github.com/futureinfotechservice/finance/pkg/postgres"
)

// CollectionRepo implements port.CollectionRepository.
type CollectionRepo struct {
	pool *pgxpool.Pool
}

// NewCollectionRepo creates a new PostgreSQL-backed collection repository.
func NewCollectionRepo(pool *pgxpool.Pool) *CollectionRepo {
	return &CollectionRepo{pool: pool}
}

// SaveAllocation commits one collection batch: the version-checked loan
// and entry update, the COL serial, and the append-only record with its
// line items, all in one transaction.
func (r *CollectionRepo) SaveAllocation(ctx context.Context, loan model.Loan, col model.Collection) (model.Collection, error) {
	err := pg.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := updateLoanTx(ctx, tx, loan); err != nil {
			return err
		}

		collectionNo, err := nextSerial(ctx, tx, col.CompanyID, serialKindCollection, "COL%05d")
		if err != nil {
			return err
		}
		col = col.WithCollectionNo(collectionNo)

		headerQuery := `
			INSERT INTO collections (
				id, collection_no, company_id, loan_id, collection_date,
				payment_mode, collected_by, total_amount,
				due_received_total, penalty_received_total, created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		`
		_, err = tx.Exec(ctx, headerQuery,
			col.ID, col.CollectionNo, col.CompanyID, col.LoanID, col.Date,
			col.PaymentMode, col.CollectedBy, col.TotalAmount,
			col.DueReceivedTotal, col.PenaltyReceivedTotal, col.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert collection: %w", err)
		}

		detailQuery := `
			INSERT INTO collection_details (
				collection_id, line_no, due_no, intent, due_received, penalty_received
			) VALUES ($1,$2,$3,$4,$5,$6)
		`
		for i, d := range col.Details {
			_, err := tx.Exec(ctx, detailQuery,
				col.ID, i+1, d.DueNo, d.Intent.String(), d.DueReceived, d.PenaltyReceived,
			)
			if err != nil {
				return fmt.Errorf("insert collection detail %d: %w", d.DueNo, err)
			}
		}
		return nil
	})
	if err != nil {
		return model.Collection{}, err
	}
	return col, nil
}

// FindByLoanID retrieves the collection history of a loan, newest first.
func (r *CollectionRepo) FindByLoanID(ctx context.Context, companyID, loanID string) ([]model.Collection, error) {
	query := `
		SELECT id, collection_no, company_id, loan_id, collection_date,
		       payment_mode, collected_by, total_amount,
		       due_received_total, penalty_received_total, created_at
		FROM collections
		WHERE company_id = $1 AND loan_id = $2
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, companyID, loanID)
	if err != nil {
		return nil, fmt.Errorf("query collections: %w", err)
	}
	defer rows.Close()

	var cols []model.Collection
	for rows.Next() {
		var c model.Collection
		err := rows.Scan(
			&c.ID, &c.CollectionNo, &c.CompanyID, &c.LoanID, &c.Date,
			&c.PaymentMode, &c.CollectedBy, &c.TotalAmount,
			&c.DueReceivedTotal, &c.PenaltyReceivedTotal, &c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range cols {
		details, err := r.loadDetails(ctx, cols[i].ID)
		if err != nil {
			return nil, err
		}
		cols[i].Details = details
	}
	return cols, nil
}

func (r *CollectionRepo) loadDetails(ctx context.Context, collectionID string) ([]model.CollectionDetail, error) {
	query := `
		SELECT due_no, intent, due_received, penalty_received
		FROM collection_details
		WHERE collection_id = $1
		ORDER BY line_no
	`
	rows, err := r.pool.Query(ctx, query, collectionID)
	if err != nil {
		return nil, fmt.Errorf("query collection details: %w", err)
	}
	defer rows.Close()

	var details []model.CollectionDetail
	for rows.Next() {
		var (
			d         model.CollectionDetail
			intentStr string
		)
		if err := rows.Scan(&d.DueNo, &intentStr, &d.DueReceived, &d.PenaltyReceived); err != nil {
			return nil, fmt.Errorf("scan collection detail: %w", err)
		}
		if d.Intent, err = valueobject.NewPaymentIntent(intentStr); err != nil {
			return nil, fmt.Errorf("parse payment intent: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}
