// Package money memeriksa apakah nilai decimal muat di kolom numeric(p,2).
package money

import "github.com/shopspring/decimal"

const Scale = 2

// Digit bulat maksimum per kolom.
const (
	SalaryIntDigits = 8  // numeric(10,2)
	BudgetIntDigits = 13 // numeric(15,2)
	HoursIntDigits  = 2  // numeric(4,2)
)

// Fits true bila d tidak punya lebih dari 2 digit desimal dan |d| < 10^intDigits.
func Fits(d decimal.Decimal, intDigits int) bool {
	if !d.Equal(d.Truncate(Scale)) {
		return false
	}
	limit := decimal.New(1, int32(intDigits))
	return d.Abs().LessThan(limit)
}
