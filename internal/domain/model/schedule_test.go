package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workbank/loan-service/internal/domain/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFirstDueDate(t *testing.T) {
	t.Run("first day of next month", func(t *testing.T) {
		assert.Equal(t, date(2026, time.September, 1), model.FirstDueDate(date(2026, time.August, 15)))
		assert.Equal(t, date(2026, time.September, 1), model.FirstDueDate(date(2026, time.August, 1)))
		assert.Equal(t, date(2026, time.September, 1), model.FirstDueDate(date(2026, time.August, 31)))
	})

	t.Run("rolls over the year in December", func(t *testing.T) {
		assert.Equal(t, date(2027, time.January, 1), model.FirstDueDate(date(2026, time.December, 20)))
	})
}

func TestGenerateSchedule(t *testing.T) {
	anchor := date(2026, time.September, 1)

	t.Run("divides evenly", func(t *testing.T) {
		// 2000 principal at 0.2 interest: 2400 total over 6 installments.
		total := decimal.RequireFromString("2400")
		installments := model.GenerateSchedule("loan-001", total, 6, anchor)

		require.Len(t, installments, 6)
		for _, ins := range installments {
			assert.True(t, decimal.RequireFromString("400.00").Equal(ins.Amount()),
				"expected 400.00, got %s", ins.Amount())
			assert.False(t, ins.Paid())
			assert.True(t, ins.PaidAmount().IsZero())
			assert.Nil(t, ins.PaymentDate())
			assert.Equal(t, "loan-001", ins.LoanID())
		}
	})

	t.Run("last installment absorbs the rounding remainder", func(t *testing.T) {
		total := decimal.RequireFromString("1250")
		installments := model.GenerateSchedule("loan-001", total, 9, anchor)

		require.Len(t, installments, 9)
		for _, ins := range installments[:8] {
			assert.True(t, decimal.RequireFromString("138.89").Equal(ins.Amount()),
				"expected 138.89, got %s", ins.Amount())
		}
		assert.True(t, decimal.RequireFromString("138.88").Equal(installments[8].Amount()),
			"expected 138.88, got %s", installments[8].Amount())
	})

	t.Run("schedule sums to the total exactly", func(t *testing.T) {
		for _, count := range []int{6, 9, 12, 24} {
			total := decimal.RequireFromString("3333.33")
			installments := model.GenerateSchedule("loan-001", total, count, anchor)

			sum := decimal.Zero
			for _, ins := range installments {
				sum = sum.Add(ins.Amount())
			}
			assert.True(t, total.Equal(sum), "count %d: sum %s != total %s", count, sum, total)
		}
	})

	t.Run("due dates advance monthly from the anchor", func(t *testing.T) {
		installments := model.GenerateSchedule("loan-001", decimal.RequireFromString("1200"), 6, anchor)

		require.Len(t, installments, 6)
		for i, ins := range installments {
			assert.Equal(t, anchor.AddDate(0, i, 0), ins.DueDate())
		}
	})

	t.Run("returns nil on non-positive input", func(t *testing.T) {
		assert.Nil(t, model.GenerateSchedule("loan-001", decimal.RequireFromString("1200"), 0, anchor))
		assert.Nil(t, model.GenerateSchedule("loan-001", decimal.Zero, 6, anchor))
	})
}

func TestTotalRepayable(t *testing.T) {
	t.Run("applies flat add-on interest", func(t *testing.T) {
		total := model.TotalRepayable(decimal.RequireFromString("2000"), decimal.RequireFromString("0.2"))
		assert.True(t, decimal.RequireFromString("2400").Equal(total), "got %s", total)
	})

	t.Run("keeps full precision for the schedule to round", func(t *testing.T) {
		total := model.TotalRepayable(decimal.RequireFromString("1000.01"), decimal.RequireFromString("0.333"))
		assert.True(t, decimal.RequireFromString("1333.01333").Equal(total), "got %s", total)
	})
}

func TestValidateInstallmentCount(t *testing.T) {
	for _, n := range []int{6, 9, 12, 24} {
		assert.NoError(t, model.ValidateInstallmentCount(n), "count %d", n)
	}
	for _, n := range []int{0, 1, 5, 7, 10, 18, 36, -6} {
		assert.Error(t, model.ValidateInstallmentCount(n), "count %d", n)
	}
}

func TestValidateInterestRate(t *testing.T) {
	t.Run("bounds are inclusive", func(t *testing.T) {
		assert.NoError(t, model.ValidateInterestRate(decimal.RequireFromString("0.1")))
		assert.NoError(t, model.ValidateInterestRate(decimal.RequireFromString("0.5")))
		assert.NoError(t, model.ValidateInterestRate(decimal.RequireFromString("0.25")))
	})

	t.Run("rejects out-of-range rates", func(t *testing.T) {
		assert.Error(t, model.ValidateInterestRate(decimal.RequireFromString("0.0999")))
		assert.Error(t, model.ValidateInterestRate(decimal.RequireFromString("0.5001")))
		assert.Error(t, model.ValidateInterestRate(decimal.Zero))
		assert.Error(t, model.ValidateInterestRate(decimal.RequireFromString("-0.2")))
	})
}
