package payroll

import (
	"fmt"
)

// =============================================================================
// RANDOM SOURCE
// =============================================================================

// RandomSource is the subset of *rand.Rand (math/rand/v2) the generator uses.
// Float64 must return a value in [0, 1); IntN must return a value in [0, n).
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

// =============================================================================
// SALARY RANGE
// =============================================================================

// SalaryRange is the half-open interval [Min, Max) salaries are drawn from.
type SalaryRange struct {
	Min float64
	Max float64
}

var DefaultSalaryRange = SalaryRange{Min: 5000, Max: 35000}

func (r SalaryRange) Validate() error {
	if !(r.Min < r.Max) {
		return fmt.Errorf("%w: [%v, %v)", ErrInvalidSalaryRange, r.Min, r.Max)
	}
	return nil
}

// =============================================================================
// GENERATOR
// =============================================================================

// Generator produces synthetic workers.
type Generator struct {
	Rand   RandomSource
	Salary SalaryRange
}

func NewGenerator(src RandomSource, salary SalaryRange) *Generator {
	return &Generator{Rand: src, Salary: salary}
}

// Generate returns count workers with sequential ids EMP0001, EMP0002, ...
// On any error the returned slice is empty.
func (g *Generator) Generate(count int) ([]Worker, error) {
	if count <= 0 {
		return []Worker{}, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if err := g.Salary.Validate(); err != nil {
		return []Worker{}, err
	}

	workers := make([]Worker, 0, count)
	for i := 1; i <= count; i++ {
		w, err := g.next(i)
		if err != nil {
			return []Worker{}, fmt.Errorf("worker %d: %w", i, err)
		}
		workers = append(workers, w)
	}
	return workers, nil
}

func (g *Generator) next(seq int) (Worker, error) {
	f := g.Rand.Float64()
	if f < 0 || f >= 1 {
		return Worker{}, fmt.Errorf("%w: Float64 returned %v", ErrRandomSource, f)
	}
	idx := g.Rand.IntN(len(Genders))
	if idx < 0 || idx >= len(Genders) {
		return Worker{}, fmt.Errorf("%w: IntN(%d) returned %d", ErrRandomSource, len(Genders), idx)
	}

	return Worker{
		ID:     WorkerID(seq),
		Name:   fmt.Sprintf("Worker_%d", seq),
		Salary: g.Salary.Min + f*(g.Salary.Max-g.Salary.Min),
		Gender: Genders[idx],
		Level:  LevelUnassigned,
	}, nil
}

// WorkerID formats the 1-based sequence number as an employee id.
func WorkerID(seq int) string {
	return fmt.Sprintf("EMP%04d", seq)
}
