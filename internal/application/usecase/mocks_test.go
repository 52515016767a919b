package usecase_test

import (
	"context"
	"time"

	"github.com/workbank/loan-service/internal/domain/event"
	"github.com/workbank/loan-service/internal/domain/model"
	"github.com/workbank/loan-service/internal/domain/port"
	"github.com/workbank/loan-service/internal/domain/valueobject"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ---------------------------------------------------------------------------
// Repository mocks. They are stateful: Save mutates the backing store so the
// reload-after-allocation step in the payment flow sees its own writes, the
// way a transaction-bound repository would.
// ---------------------------------------------------------------------------

type mockCustomerRepo struct {
	customers map[string]model.Customer
	saved     []model.Customer
	saveFunc  func(ctx context.Context, customer model.Customer) error
}

func newMockCustomerRepo(customers ...model.Customer) *mockCustomerRepo {
	m := &mockCustomerRepo{customers: make(map[string]model.Customer)}
	for _, c := range customers {
		m.customers[c.ID()] = c
	}
	return m
}

func (m *mockCustomerRepo) FindByID(_ context.Context, id string) (model.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return model.Customer{}, valueobject.NewDomainError(valueobject.KindCustomerNotFound, "customer not found")
	}
	return c, nil
}

func (m *mockCustomerRepo) FindByIDForUpdate(ctx context.Context, id string) (model.Customer, error) {
	return m.FindByID(ctx, id)
}

func (m *mockCustomerRepo) Save(ctx context.Context, customer model.Customer) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, customer)
	}
	m.customers[customer.ID()] = customer
	m.saved = append(m.saved, customer)
	return nil
}

type mockLoanRepo struct {
	loans    map[string]model.Loan
	saved    []model.Loan
	saveFunc func(ctx context.Context, loan model.Loan) error
}

func newMockLoanRepo(loans ...model.Loan) *mockLoanRepo {
	m := &mockLoanRepo{loans: make(map[string]model.Loan)}
	for _, l := range loans {
		m.loans[l.ID()] = l
	}
	return m
}

func (m *mockLoanRepo) FindByID(_ context.Context, id string) (model.Loan, error) {
	l, ok := m.loans[id]
	if !ok {
		return model.Loan{}, valueobject.NewDomainError(valueobject.KindLoanNotFound, "loan not found")
	}
	return l, nil
}

func (m *mockLoanRepo) FindByIDForUpdate(ctx context.Context, id string) (model.Loan, error) {
	return m.FindByID(ctx, id)
}

func (m *mockLoanRepo) FindByCustomerID(_ context.Context, customerID string, paid *bool) ([]model.Loan, error) {
	var out []model.Loan
	for _, l := range m.loans {
		if l.CustomerID() != customerID {
			continue
		}
		if paid != nil && l.Paid() != *paid {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (m *mockLoanRepo) Save(ctx context.Context, loan model.Loan) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, loan)
	}
	m.loans[loan.ID()] = loan
	m.saved = append(m.saved, loan)
	return nil
}

type mockInstallmentRepo struct {
	items []model.Installment
	saved []model.Installment
}

func newMockInstallmentRepo(items ...model.Installment) *mockInstallmentRepo {
	return &mockInstallmentRepo{items: items}
}

func (m *mockInstallmentRepo) SaveAll(ctx context.Context, installments []model.Installment) error {
	for _, ins := range installments {
		if err := m.Save(ctx, ins); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockInstallmentRepo) Save(_ context.Context, installment model.Installment) error {
	m.saved = append(m.saved, installment)
	for i, existing := range m.items {
		if existing.ID() == installment.ID() {
			m.items[i] = installment
			return nil
		}
	}
	m.items = append(m.items, installment)
	return nil
}

func (m *mockInstallmentRepo) FindByLoanID(_ context.Context, loanID string, paid *bool) ([]model.Installment, error) {
	var out []model.Installment
	for _, ins := range m.items {
		if ins.LoanID() != loanID {
			continue
		}
		if paid != nil && ins.Paid() != *paid {
			continue
		}
		out = append(out, ins)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Unit of work and publisher mocks
// ---------------------------------------------------------------------------

type mockUnitOfWork struct {
	repos port.TxRepositories
	calls int
}

func newMockUnitOfWork(customers *mockCustomerRepo, loans *mockLoanRepo, installments *mockInstallmentRepo) *mockUnitOfWork {
	return &mockUnitOfWork{
		repos: port.TxRepositories{
			Customers:    customers,
			Loans:        loans,
			Installments: installments,
		},
	}
}

func (m *mockUnitOfWork) WithinTx(_ context.Context, fn func(repos port.TxRepositories) error) error {
	m.calls++
	return fn(m.repos)
}

type mockEventPublisher struct {
	publishedEvents []event.DomainEvent
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
}

func (m *mockEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, events...)
	}
	m.publishedEvents = append(m.publishedEvents, events...)
	return nil
}

type fixedClock struct {
	today time.Time
}

func (c fixedClock) Today() time.Time { return c.today }
