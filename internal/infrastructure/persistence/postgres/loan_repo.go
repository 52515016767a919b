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

// LoanRepository is the PostgreSQL implementation of port.LoanRepository.
type LoanRepository struct {
	db pgdb.Querier
}

// NewLoanRepository creates a repository bound to the given querier.
func NewLoanRepository(db pgdb.Querier) *LoanRepository {
	return &LoanRepository{db: db}
}

const loanColumns = `id, customer_id, loan_amount, number_of_installments, create_date, is_paid, version, created_at, updated_at`

// FindByID retrieves a loan by ID.
func (r *LoanRepository) FindByID(ctx context.Context, id string) (model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`
	return r.queryOne(ctx, query, id)
}

// FindByIDForUpdate retrieves a loan under an exclusive row lock. Must be
// called inside a transaction.
func (r *LoanRepository) FindByIDForUpdate(ctx context.Context, id string) (model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1 FOR UPDATE`
	return r.queryOne(ctx, query, id)
}

// FindByCustomerID lists a customer's loans, newest first. A non-nil paid
// filter restricts the result to paid or unpaid loans.
func (r *LoanRepository) FindByCustomerID(ctx context.Context, customerID string, paid *bool) ([]model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE customer_id = $1`
	args := []any{customerID}
	if paid != nil {
		query += ` AND is_paid = $2`
		args = append(args, *paid)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
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
		return nil, fmt.Errorf("iterate loans: %w", err)
	}
	return loans, nil
}

// Save upserts the loan with optimistic concurrency: an update only applies
// when the stored version matches the aggregate's, and bumps it by one. A
// writer holding a stale aggregate gets a version conflict instead of
// silently overwriting.
func (r *LoanRepository) Save(ctx context.Context, loan model.Loan) error {
	query := `
		INSERT INTO loans (id, customer_id, loan_amount, number_of_installments, create_date, is_paid, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			is_paid = EXCLUDED.is_paid,
			version = loans.version + 1,
			updated_at = EXCLUDED.updated_at
		WHERE loans.version = EXCLUDED.version`

	tag, err := r.db.Exec(ctx, query,
		loan.ID(),
		loan.CustomerID(),
		loan.LoanAmount(),
		loan.NumberOfInstallments(),
		loan.CreateDate(),
		loan.Paid(),
		loan.Version(),
		loan.CreatedAt(),
		loan.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("save loan %s: version conflict at version %d", loan.ID(), loan.Version())
	}
	return nil
}

func (r *LoanRepository) queryOne(ctx context.Context, query string, args ...any) (model.Loan, error) {
	loan, err := scanLoanRow(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Loan{}, valueobject.NewDomainError(
			valueobject.KindLoanNotFound,
			"loan not found",
		)
	}
	return loan, err
}

func scanLoanRow(row pgx.Row) (model.Loan, error) {
	var (
		id, customerID       string
		loanAmount           decimal.Decimal
		numberOfInstallments int
		createDate           time.Time
		isPaid               bool
		version              int
		createdAt, updatedAt time.Time
	)
	err := row.Scan(
		&id, &customerID, &loanAmount, &numberOfInstallments,
		&createDate, &isPaid, &version, &createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Loan{}, err
	}
	if err != nil {
		return model.Loan{}, fmt.Errorf("scan loan: %w", err)
	}

	return model.ReconstructLoan(
		id, customerID, loanAmount, numberOfInstallments,
		createDate, isPaid, version, createdAt, updatedAt,
	), nil
}
