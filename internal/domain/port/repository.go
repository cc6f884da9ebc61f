package port

import (
	"context"
	"errors"

	"github.com/futureinfotechservice/finance/internal/domain/model"
	"github.com/futureinfotechservice/finance/pkg/events"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")

	// ErrVersionConflict is returned when a version-checked write touched
	// zero rows because a concurrent writer got there first. Callers may
	// reload and retry.
	ErrVersionConflict = errors.New("version conflict")
)

// LoanRepository persists and retrieves loan aggregates together with
// their schedule entry sets.
type LoanRepository interface {
	// Create inserts a new loan and its schedule, assigning the LON serial
	// inside the same transaction. The returned loan carries the serial.
	Create(ctx context.Context, loan model.Loan) (model.Loan, error)

	FindByID(ctx context.Context, companyID, id string) (model.Loan, error)
	FindByCustomerID(ctx context.Context, companyID, customerID string) ([]model.Loan, error)
}

// CollectionRepository atomically persists the outcome of a collection
// batch: the updated loan and entries (version-checked) plus the
// append-only collection record, COL serial assigned inside the same
// transaction.
type CollectionRepository interface {
	SaveAllocation(ctx context.Context, loan model.Loan, col model.Collection) (model.Collection, error)

	FindByLoanID(ctx context.Context, companyID, loanID string) ([]model.Collection, error)
}

// ClosingRepository atomically persists a closure settlement: the closed
// loan and force-closed entries (version-checked) plus the closing record,
// AC serial assigned inside the same transaction. A uniqueness constraint
// on the loan guarantees at most one closing per loan.
type ClosingRepository interface {
	SaveClosing(ctx context.Context, loan model.Loan, closing model.AccountClosing) (model.AccountClosing, error)

	FindByLoanID(ctx context.Context, companyID, loanID string) (model.AccountClosing, error)
}

// LoanTypeRepository reads issuance-time loan configuration.
type LoanTypeRepository interface {
	FindByID(ctx context.Context, companyID, id string) (model.LoanType, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}
