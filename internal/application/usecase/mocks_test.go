package usecase_test

import (
	"context"
	"fmt"

	"github.com/futureinfotechservice/finance/internal/domain/model"
	"github.com/futureinfotechservice/finance/internal/domain/port"
	"github.com/futureinfotechservice/finance/pkg/events"
)

type mockLoanRepository struct {
	createFunc           func(ctx context.Context, loan model.Loan) (model.Loan, error)
	findByIDFunc         func(ctx context.Context, companyID, id string) (model.Loan, error)
	findByCustomerIDFunc func(ctx context.Context, companyID, customerID string) ([]model.Loan, error)
	createdLoans         []model.Loan
}

func (m *mockLoanRepository) Create(ctx context.Context, loan model.Loan) (model.Loan, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, loan)
	}
	loan = loan.WithLoanNo(fmt.Sprintf("LON%05d", len(m.createdLoans)+1))
	m.createdLoans = append(m.createdLoans, loan)
	return loan, nil
}

func (m *mockLoanRepository) FindByID(ctx context.Context, companyID, id string) (model.Loan, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, companyID, id)
	}
	return model.Loan{}, port.ErrNotFound
}

func (m *mockLoanRepository) FindByCustomerID(ctx context.Context, companyID, customerID string) ([]model.Loan, error) {
	if m.findByCustomerIDFunc != nil {
		return m.findByCustomerIDFunc(ctx, companyID, customerID)
	}
	return nil, nil
}

type mockCollectionRepository struct {
	saveAllocationFunc func(ctx context.Context, loan model.Loan, col model.Collection) (model.Collection, error)
	findByLoanIDFunc   func(ctx context.Context, companyID, loanID string) ([]model.Collection, error)
	savedLoans         []model.Loan
	savedCollections   []model.Collection
}

func (m *mockCollectionRepository) SaveAllocation(ctx context.Context, loan model.Loan, col model.Collection) (model.Collection, error) {
	if m.saveAllocationFunc != nil {
		return m.saveAllocationFunc(ctx, loan, col)
	}
	col = col.WithCollectionNo(fmt.Sprintf("COL%05d", len(m.savedCollections)+1))
	m.savedLoans = append(m.savedLoans, loan)
	m.savedCollections = append(m.savedCollections, col)
	return col, nil
}

func (m *mockCollectionRepository) FindByLoanID(ctx context.Context, companyID, loanID string) ([]model.Collection, error) {
	if m.findByLoanIDFunc != nil {
		return m.findByLoanIDFunc(ctx, companyID, loanID)
	}
	return nil, nil
}

type mockClosingRepository struct {
	saveClosingFunc func(ctx context.Context, loan model.Loan, closing model.AccountClosing) (model.AccountClosing, error)
	savedLoans      []model.Loan
	savedClosings   []model.AccountClosing
}

func (m *mockClosingRepository) SaveClosing(ctx context.Context, loan model.Loan, closing model.AccountClosing) (model.AccountClosing, error) {
	if m.saveClosingFunc != nil {
		return m.saveClosingFunc(ctx, loan, closing)
	}
	closing = closing.WithSerialNo(fmt.Sprintf("AC-%04d", len(m.savedClosings)+1))
	m.savedLoans = append(m.savedLoans, loan)
	m.savedClosings = append(m.savedClosings, closing)
	return closing, nil
}

func (m *mockClosingRepository) FindByLoanID(_ context.Context, _, _ string) (model.AccountClosing, error) {
	return model.AccountClosing{}, port.ErrNotFound
}

type mockLoanTypeRepository struct {
	findByIDFunc func(ctx context.Context, companyID, id string) (model.LoanType, error)
}

func (m *mockLoanTypeRepository) FindByID(ctx context.Context, companyID, id string) (model.LoanType, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, companyID, id)
	}
	return model.LoanType{}, port.ErrNotFound
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, evts ...events.DomainEvent) error
	publishedEvents []events.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}
