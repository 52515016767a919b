package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// FirstDueDate returns the anchor date of a new schedule: the first day of
// the month following the given date.
func FirstDueDate(today time.Time) time.Time {
	return time.Date(today.Year(), today.Month()+1, 1, 0, 0, 0, 0, time.UTC)
}

// GenerateSchedule splits a total repayable amount into count installments
// due monthly from the anchor date.
//
// Each of the first count-1 installments carries round2(total/count); the
// last installment carries the remainder, so the schedule sums to the total
// exactly instead of distributing rounding drift. All installments start
// unpaid with a zero paid amount.
func GenerateSchedule(loanID string, total decimal.Decimal, count int, anchor time.Time) []Installment {
	if count <= 0 || !total.IsPositive() {
		return nil
	}

	base := total.DivRound(decimal.NewFromInt(int64(count)), 2)

	installments := make([]Installment, 0, count)
	for i := 0; i < count; i++ {
		amount := base
		if i == count-1 {
			amount = total.Sub(base.Mul(decimal.NewFromInt(int64(count - 1))))
		}
		installments = append(installments, NewInstallment(loanID, amount, anchor.AddDate(0, i, 0)))
	}

	return installments
}
