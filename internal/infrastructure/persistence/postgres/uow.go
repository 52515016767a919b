package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workbank/loan-service/internal/domain/port"
	pgdb "github.com/workbank/loan-service/pkg/postgres"
)

// UnitOfWork implements port.UnitOfWork over a pgx connection pool. Each
// WithinTx call opens one transaction and hands the caller repositories bound
// to it, so row locks taken by FindByIDForUpdate hold until commit.
type UnitOfWork struct {
	pool *pgxpool.Pool
}

// NewUnitOfWork creates a unit of work over the pool.
func NewUnitOfWork(pool *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{pool: pool}
}

// WithinTx runs fn against transaction-bound repositories. Any error from fn
// rolls the transaction back; otherwise it commits.
func (u *UnitOfWork) WithinTx(ctx context.Context, fn func(repos port.TxRepositories) error) error {
	return pgdb.WithTransaction(ctx, u.pool, func(tx pgx.Tx) error {
		return fn(port.TxRepositories{
			Customers:    NewCustomerRepository(tx),
			Loans:        NewLoanRepository(tx),
			Installments: NewInstallmentRepository(tx),
		})
	})
}
