package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/workbank/loan-service/internal/domain/model"
	pgdb "github.com/workbank/loan-service/pkg/postgres"
)

// InstallmentRepository is the PostgreSQL implementation of
// port.InstallmentRepository.
type InstallmentRepository struct {
	db pgdb.Querier
}

// NewInstallmentRepository creates a repository bound to the given querier.
func NewInstallmentRepository(db pgdb.Querier) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

// SaveAll inserts the full schedule of a freshly originated loan.
func (r *InstallmentRepository) SaveAll(ctx context.Context, installments []model.Installment) error {
	for _, ins := range installments {
		if err := r.Save(ctx, ins); err != nil {
			return err
		}
	}
	return nil
}

// Save upserts a single installment.
func (r *InstallmentRepository) Save(ctx context.Context, installment model.Installment) error {
	query := `
		INSERT INTO installments (id, loan_id, amount, paid_amount, due_date, payment_date, is_paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			paid_amount = EXCLUDED.paid_amount,
			payment_date = EXCLUDED.payment_date,
			is_paid = EXCLUDED.is_paid`

	_, err := r.db.Exec(ctx, query,
		installment.ID(),
		installment.LoanID(),
		installment.Amount(),
		installment.PaidAmount(),
		installment.DueDate(),
		installment.PaymentDate(),
		installment.Paid(),
	)
	if err != nil {
		return fmt.Errorf("save installment: %w", err)
	}
	return nil
}

// FindByLoanID lists a loan's installments ordered by due date ascending. A
// non-nil paid filter restricts the result to paid or unpaid installments.
func (r *InstallmentRepository) FindByLoanID(ctx context.Context, loanID string, paid *bool) ([]model.Installment, error) {
	query := `SELECT id, loan_id, amount, paid_amount, due_date, payment_date, is_paid
		FROM installments WHERE loan_id = $1`
	args := []any{loanID}
	if paid != nil {
		query += ` AND is_paid = $2`
		args = append(args, *paid)
	}
	query += ` ORDER BY due_date ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query installments: %w", err)
	}
	defer rows.Close()

	var installments []model.Installment
	for rows.Next() {
		var (
			id, rowLoanID      string
			amount, paidAmount decimal.Decimal
			dueDate            time.Time
			paymentDate        *time.Time
			isPaid             bool
		)
		if err := rows.Scan(&id, &rowLoanID, &amount, &paidAmount, &dueDate, &paymentDate, &isPaid); err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		installments = append(installments, model.ReconstructInstallment(
			id, rowLoanID, amount, paidAmount, dueDate, paymentDate, isPaid,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate installments: %w", err)
	}
	return installments, nil
}
