/*
Package payroll provides the worker and payment slip model for the
payment slip generator.

PURPOSE:
  Generates synthetic workers, classifies each one into a level, and
  projects workers into immutable payment slips ready for serialization.

KEY CONCEPTS IN THIS FILE (types.go):
  - Worker: A generated employee record, mutated once to set its level
  - Gender: Male or Female
  - Level: Classification tag derived from salary and gender
  - PaymentSlip: Read-only projection of a worker plus a payment date

PIPELINE:
  gen := payroll.NewGenerator(rand.New(rand.NewPCG(1, 2)), payroll.DefaultSalaryRange)
  workers, err := gen.Generate(400)
  date := payroll.PaymentDate(payroll.SystemClock{}.Now())
  slips := payroll.BuildSlips(workers, date)

SEE ALSO:
  - classifier.go: Level rule
  - paydate.go: Payment date calculation
  - store.go: SlipStore interface
  - batch/runner.go: Runs the stages in order
*/
package payroll

// =============================================================================
// GENDER
// =============================================================================

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Genders lists the values the generator draws from, in draw order.
var Genders = []Gender{GenderMale, GenderFemale}

// =============================================================================
// LEVEL
// =============================================================================

type Level string

const (
	LevelUnassigned Level = "Unassigned"
	LevelA1         Level = "A1"
	LevelA5F        Level = "A5-F"
	LevelStandard   Level = "Standard"
)

// =============================================================================
// WORKER
// =============================================================================

// Worker is a generated employee. Level starts as LevelUnassigned and is set
// once by BuildSlips.
type Worker struct {
	ID     string
	Name   string
	Salary float64
	Gender Gender
	Level  Level
}

// =============================================================================
// PAYMENT SLIP
// =============================================================================

// PaymentSlip is the serialized output record for one worker.
type PaymentSlip struct {
	EmployeeID  string  `json:"employee_id"`
	Name        string  `json:"name"`
	Salary      float64 `json:"salary"`
	Gender      Gender  `json:"gender"`
	Level       Level   `json:"employee_level"`
	PaymentDate string  `json:"payment_date"`
}
