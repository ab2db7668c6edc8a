/*
main.go - Payment slip generator entry point

PURPOSE:
  Generates 400 synthetic workers, classifies them, and writes their
  payment slips to output/payment_slips.json.

STARTUP SEQUENCE:
  1. Load payslip.yaml from the working directory (defaults if absent)
  2. Build logger, generator, clock and JSON file store
  3. Run the batch once
  4. Print summary counts

The command takes no arguments and always exits 0 once it has started
running; failed stages are logged and produce empty output instead.

EXAMPLES:
  ./payslip
  cat output/payment_slips.json

SEE ALSO:
  - batch/runner.go: Stage wiring and failure handling
  - config/config.go: Optional settings file
*/
package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/highridge/payslip/batch"
	"github.com/highridge/payslip/config"
	"github.com/highridge/payslip/logging"
	"github.com/highridge/payslip/payroll"
	"github.com/highridge/payslip/store/jsonfile"
)

const banner = "Highridge Construction Company - Payment Slip Generator"

var rootCmd = &cobra.Command{
	Use:          "payslip",
	Short:        "Generate weekly payment slips for synthetic workers",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		run(cmd.Context(), cmd.OutOrStdout())
		return nil
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer) {
	fmt.Fprintln(out, banner)
	fmt.Fprintln(out, strings.Repeat("=", 60))

	cfg, cfgErr := config.Load(config.DefaultFile)

	log, err := logging.New(cfg.LogLevel, out)
	if err != nil {
		fmt.Fprintf(out, "Falling back to info logging: %v\n", err)
		log, _ = logging.New("info", out)
	}
	defer log.Sync()

	if cfgErr != nil {
		log.Warn("using default configuration", zap.Error(cfgErr))
	}

	gen := payroll.NewGenerator(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), cfg.SalaryRange())
	store := jsonfile.New(cfg.OutputDir, cfg.OutputFile)
	report := batch.NewRunner(gen, payroll.SystemClock{}, store, log).Run(ctx, cfg.Workers)

	printSummary(out, report)
}

func printSummary(out io.Writer, r *batch.Report) {
	fmt.Fprintf(out, "Generated %d workers successfully\n", r.Workers)
	fmt.Fprintf(out, "Generated %d payment slips\n", len(r.Slips))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Summary:")
	fmt.Fprintf(out, "A1 Level employees: %d\n", r.Summary.Count(payroll.LevelA1))
	fmt.Fprintf(out, "A5-F Level employees: %d\n", r.Summary.Count(payroll.LevelA5F))
	if r.Saved {
		fmt.Fprintf(out, "Payment slips saved to '%s'\n", r.Location)
	} else {
		fmt.Fprintf(out, "Payment slips were not saved (%d errors)\n", len(r.Errors))
	}
}
