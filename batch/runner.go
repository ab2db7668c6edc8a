/*
runner.go - Runs the payment slip pipeline once

PURPOSE:
  Wires the payroll stages together and owns error handling for a run.

STAGES (in order):
  1. prepare  - SlipStore.Prepare (create output directory)
  2. generate - Generator.Generate
  3. slips    - PaymentDate once, then BuildSlips
  4. save     - SlipStore.Save

FAILURE MODEL:
  A failing stage is logged and degrades to an empty result; Run never
  returns an error. If prepare fails nothing is written. If generate fails
  an empty slip list is saved. Failures are collected in Report.Errors as
  *payroll.StageError.

USAGE:
  runner := batch.NewRunner(gen, payroll.SystemClock{}, store, logger)
  report := runner.Run(ctx, 400)
  fmt.Println(report.Summary.Count(payroll.LevelA1))

SEE ALSO:
  - payroll: Stage implementations
  - store/jsonfile: Production SlipStore
*/
package batch

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/highridge/payslip/payroll"
)

// Runner executes one generation run.
type Runner struct {
	Generator *payroll.Generator
	Clock     payroll.Clock
	Store     payroll.SlipStore
	Log       *zap.Logger
}

func NewRunner(gen *payroll.Generator, clock payroll.Clock, store payroll.SlipStore, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{Generator: gen, Clock: clock, Store: store, Log: log}
}

// Report describes the outcome of a run.
type Report struct {
	RunID       string
	Workers     int
	Slips       []payroll.PaymentSlip
	Summary     payroll.Summary
	PaymentDate string
	Location    string
	Saved       bool
	Errors      []error
}

// OK reports whether every stage succeeded.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

func (r *Report) fail(log *zap.Logger, stage string, err error) {
	log.Error("stage failed", zap.String("stage", stage), zap.Error(err))
	r.Errors = append(r.Errors, &payroll.StageError{Stage: stage, Err: err})
}

// Run executes every stage for count workers.
func (rn *Runner) Run(ctx context.Context, count int) *Report {
	report := &Report{RunID: uuid.NewString(), Location: rn.Store.Location()}
	log := rn.Log.With(zap.String("run_id", report.RunID))
	defer func() { report.Summary = payroll.Summarize(report.Slips) }()

	if err := rn.Store.Prepare(ctx); err != nil {
		report.fail(log, "prepare", err)
		return report
	}
	log.Debug("output ready", zap.String("location", report.Location))

	workers, err := rn.Generator.Generate(count)
	if err != nil {
		report.fail(log, "generate", err)
		workers = []payroll.Worker{}
	}
	report.Workers = len(workers)
	log.Info("generated workers", zap.Int("count", report.Workers))

	report.PaymentDate = payroll.PaymentDate(rn.Clock.Now())
	report.Slips = payroll.BuildSlips(workers, report.PaymentDate)
	log.Info("generated payment slips",
		zap.Int("count", len(report.Slips)),
		zap.String("payment_date", report.PaymentDate))

	if err := rn.Store.Save(ctx, report.Slips); err != nil {
		report.fail(log, "save", err)
		return report
	}
	report.Saved = true
	log.Info("payment slips saved", zap.String("location", report.Location))
	return report
}
