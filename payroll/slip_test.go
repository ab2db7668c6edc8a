package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/highridge/payslip/payroll"
)

func TestBuildSlips_OnePerWorker(t *testing.T) {
	// GIVEN: 400 generated workers
	// WHEN: Building slips for one payment date
	// THEN: Each worker gets exactly one slip, in order, with its level set
	workers, err := payroll.NewGenerator(seeded(), payroll.DefaultSalaryRange).Generate(400)
	require.NoError(t, err)

	slips := payroll.BuildSlips(workers, "2026-10-16")
	require.Len(t, slips, len(workers))

	for i, slip := range slips {
		w := workers[i]
		assert.Equal(t, w.ID, slip.EmployeeID)
		assert.Equal(t, w.Name, slip.Name)
		assert.Equal(t, w.Gender, slip.Gender)
		assert.Equal(t, payroll.Classify(w.Salary, w.Gender), w.Level)
		assert.Equal(t, w.Level, slip.Level)
		assert.NotEqual(t, payroll.LevelUnassigned, slip.Level)
		assert.Equal(t, "2026-10-16", slip.PaymentDate)

		assert.InDelta(t, w.Salary, slip.Salary, 0.005)
		assert.GreaterOrEqual(t, decimal.NewFromFloat(slip.Salary).Exponent(), int32(-2),
			"salary %v has more than two decimals", slip.Salary)
		assert.True(t, decimal.NewFromFloat(w.Salary).Round(2).Equal(decimal.NewFromFloat(slip.Salary)))
	}
}

func TestBuildSlips_Empty(t *testing.T) {
	slips := payroll.BuildSlips(nil, "2026-10-16")
	assert.NotNil(t, slips)
	assert.Empty(t, slips)
}

func TestRoundSalary(t *testing.T) {
	assert.Equal(t, 12345.68, payroll.RoundSalary(12345.6789))
	assert.Equal(t, 12345.67, payroll.RoundSalary(12345.6712))
	assert.Equal(t, 5000.0, payroll.RoundSalary(5000))
	assert.Equal(t, 10000.01, payroll.RoundSalary(10000.005))
}

func TestSummarize(t *testing.T) {
	slips := []payroll.PaymentSlip{
		{Level: payroll.LevelA1},
		{Level: payroll.LevelA1},
		{Level: payroll.LevelA5F},
		{Level: payroll.LevelStandard},
	}
	s := payroll.Summarize(slips)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Count(payroll.LevelA1))
	assert.Equal(t, 1, s.Count(payroll.LevelA5F))
	assert.Equal(t, 1, s.Count(payroll.LevelStandard))
	assert.Zero(t, s.Count(payroll.LevelUnassigned))
}
