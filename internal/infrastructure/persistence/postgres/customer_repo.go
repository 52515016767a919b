package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/workbank/loan-service/internal/domain/model"
	"github.com/workbank/loan-service/internal/domain/valueobject"
	pgdb "github.com/workbank/loan-service/pkg/postgres"
)

// CustomerRepository is the PostgreSQL implementation of
// port.CustomerRepository. It runs against a Querier, so the same
// implementation serves both pool-backed reads and transaction-bound writes.
type CustomerRepository struct {
	db pgdb.Querier
}

// NewCustomerRepository creates a repository bound to the given querier.
func NewCustomerRepository(db pgdb.Querier) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerColumns = `id, name, username, role, credit_limit, used_credit, created_at, updated_at`

// FindByID retrieves a customer by ID.
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return r.queryOne(ctx, query, id)
}

// FindByIDForUpdate retrieves a customer under an exclusive row lock. Must be
// called inside a transaction; the lock is held until commit or rollback.
func (r *CustomerRepository) FindByIDForUpdate(ctx context.Context, id string) (model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 FOR UPDATE`
	return r.queryOne(ctx, query, id)
}

// Save upserts the customer.
func (r *CustomerRepository) Save(ctx context.Context, customer model.Customer) error {
	query := `
		INSERT INTO customers (id, name, username, role, credit_limit, used_credit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			role = EXCLUDED.role,
			credit_limit = EXCLUDED.credit_limit,
			used_credit = EXCLUDED.used_credit,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query,
		customer.ID(),
		customer.Name(),
		customer.Username(),
		customer.Role().String(),
		customer.CreditLimit(),
		customer.UsedCredit(),
		customer.CreatedAt(),
		customer.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) queryOne(ctx context.Context, query string, args ...any) (model.Customer, error) {
	row := r.db.QueryRow(ctx, query, args...)

	var (
		id, name, username, roleStr string
		creditLimit, usedCredit     decimal.Decimal
		createdAt, updatedAt        time.Time
	)
	err := row.Scan(&id, &name, &username, &roleStr, &creditLimit, &usedCredit, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Customer{}, valueobject.NewDomainError(
			valueobject.KindCustomerNotFound,
			"customer not found",
		)
	}
	if err != nil {
		return model.Customer{}, fmt.Errorf("scan customer: %w", err)
	}

	role, err := valueobject.NewRole(roleStr)
	if err != nil {
		return model.Customer{}, fmt.Errorf("scan customer: %w", err)
	}

	return model.ReconstructCustomer(
		id, name, username, role, creditLimit, usedCredit, createdAt, updatedAt,
	), nil
}
