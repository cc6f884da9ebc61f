package postgres

import (
	"context"
	"fmt"

	pg "github.com/futureinfotechservice/finance/pkg/postgres"
)

// scannable abstracts pgx.Row and pgx.Rows for shared scan helpers.
type scannable interface {
	Scan(dest ...any) error
}

// Serial kinds tracked per company in serial_counters.
const (
	serialKindLoan       = "loan"
	serialKindCollection = "collection"
	serialKindClosing    = "closing"
)

// nextSerial allocates the next value of a company-scoped counter inside
// the caller's transaction and renders it with the given format. The
// upsert-returning keeps allocation atomic: two concurrent transactions
// can never observe the same value.
func nextSerial(ctx context.Context, q pg.Querier, companyID, kind, format string) (string, error) {
	query := `
		INSERT INTO serial_counters (company_id, kind, value)
		VALUES ($1, $2, 1)
		ON CONFLICT (company_id, kind)
		DO UPDATE SET value = serial_counters.value + 1
		RETURNING value
	`
	var value int64
	if err := q.QueryRow(ctx, query, companyID, kind).Scan(&value); err != nil {
		return "", fmt.Errorf("allocate %s serial: %w", kind, err)
	}
	return fmt.Sprintf(format, value), nil
}
