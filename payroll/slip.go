package payroll

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// SLIP BUILDER
// =============================================================================

// BuildSlips classifies every worker in place and returns one slip per worker,
// in the same order. paymentDate is shared by every slip of a run.
func BuildSlips(workers []Worker, paymentDate string) []PaymentSlip {
	slips := make([]PaymentSlip, 0, len(workers))
	for i := range workers {
		workers[i].Level = Classify(workers[i].Salary, workers[i].Gender)
		slips = append(slips, NewSlip(workers[i], paymentDate))
	}
	return slips
}

// NewSlip projects a classified worker into a slip.
func NewSlip(w Worker, paymentDate string) PaymentSlip {
	return PaymentSlip{
		EmployeeID:  w.ID,
		Name:        w.Name,
		Salary:      RoundSalary(w.Salary),
		Gender:      w.Gender,
		Level:       w.Level,
		PaymentDate: paymentDate,
	}
}

// RoundSalary rounds to two decimal places, half away from zero.
func RoundSalary(salary float64) float64 {
	return decimal.NewFromFloat(salary).Round(2).InexactFloat64()
}

// =============================================================================
// SUMMARY
// =============================================================================

// Summary counts slips per level.
type Summary struct {
	Total   int
	ByLevel map[Level]int
}

func Summarize(slips []PaymentSlip) Summary {
	s := Summary{Total: len(slips), ByLevel: make(map[Level]int)}
	for _, slip := range slips {
		s.ByLevel[slip.Level]++
	}
	return s
}

// Count returns the number of slips with the given level.
func (s Summary) Count(level Level) int { return s.ByLevel[level] }
