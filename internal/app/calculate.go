package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/agbru/ecccalc/internal/bignum"
	"github.com/agbru/ecccalc/internal/cli"
	"github.com/agbru/ecccalc/internal/config"
	"github.com/agbru/ecccalc/internal/curve"
	apperrors "github.com/agbru/ecccalc/internal/errors"
	"github.com/agbru/ecccalc/internal/format"
	"github.com/agbru/ecccalc/internal/logging"
	"github.com/agbru/ecccalc/internal/metrics"
	"github.com/agbru/ecccalc/internal/orchestration"
	"github.com/agbru/ecccalc/internal/ui"
)

// runCalculate orchestrates the execution of a single command-line operation.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	switch a.Config.Op {
	case config.OpScalarMult:
		return a.runScalarMult(ctx, out)
	case config.OpVerify:
		return a.runVerify(out)
	default:
		return a.runNumeric(out)
	}
}

// fail reports err on out and returns the matching exit code.
func (a *Application) fail(op string, err error, out io.Writer) int {
	a.Logger.Error("operation failed", err, logging.String("op", op))
	return cli.CLIResultPresenter{}.HandleError(err, 0, out)
}

// runNumeric evaluates an integer or modular operation.
func (a *Application) runNumeric(out io.Writer) int {
	op := a.Config.Op
	operands := orchestration.Operands{A: a.Config.A, B: a.Config.B, M: a.Config.M}

	start := time.Now()
	result, err := orchestration.Evaluate(op, operands, a.Cache)
	duration := time.Since(start)
	a.Metrics.ObserveOperation(op, duration, err)
	if err != nil {
		return a.fail(op, err, out)
	}
	a.Logger.Info("operation completed", logging.String("op", op), logging.Duration("duration", duration))

	if a.Config.Quiet {
		fmt.Fprintln(out, result)
	} else {
		display := result
		if !a.Config.Verbose && len(display) > cli.TruncationLimit {
			display = display[:cli.DisplayEdges] + "..." + display[len(display)-cli.DisplayEdges:]
		}
		fmt.Fprintf(out, "\n%s(%s) = %s%s%s\n", op, describeOperands(a.Config), ui.ColorGreen(), display, ui.ColorReset())
		if a.Config.Details {
			fmt.Fprintf(out, "Computed in %s%s%s, %d digits.\n",
				ui.ColorYellow(), cli.CLIResultPresenter{}.FormatDuration(duration), ui.ColorReset(),
				len(strings.TrimPrefix(result, "-")))
		}
	}

	if err := cli.WriteValueToFile(a.Config.OutputFile, result); err != nil {
		return a.fail(op, err, out)
	}
	return apperrors.ExitSuccess
}

// describeOperands lists the operands op reads, for display.
func describeOperands(cfg config.AppConfig) string {
	var parts []string
	for _, name := range []string{"a", "b", "m"} {
		if v := cfg.Operand(name); v != "" {
			if len(v) > 20 {
				v = v[:8] + "..." + v[len(v)-8:]
			}
			parts = append(parts, name+"="+v)
		}
	}
	return strings.Join(parts, ", ")
}

// newCurve builds the configured curve on the application's cache.
func (a *Application) newCurve() (*curve.Curve, error) {
	params, ok := curve.LookupParams(a.Config.Curve)
	if !ok {
		return nil, apperrors.NewConfigError("unknown curve %q", a.Config.Curve)
	}
	return curve.NewCurve(params, a.Cache)
}

// runVerify checks that (a, b) is a point of the configured group.
func (a *Application) runVerify(out io.Writer) int {
	c, err := a.newCurve()
	if err != nil {
		return a.fail(config.OpVerify, err, out)
	}

	start := time.Now()
	_, err = orchestration.VerifyPoint(c, a.Config.A, a.Config.B)
	a.Metrics.ObserveOperation(config.OpVerify, time.Since(start), err)
	if err != nil {
		return a.fail(config.OpVerify, err, out)
	}

	if a.Config.Quiet {
		fmt.Fprintln(out, "valid")
	} else {
		fmt.Fprintf(out, "\n%s✓ (%s, %s) is a point of %s%s\n", ui.ColorGreen(), a.Config.A, a.Config.B, c.Name(), ui.ColorReset())
	}
	return apperrors.ExitSuccess
}

// runScalarMult computes k·G, either for one scalar with every selected
// strategy, or for a comma-separated batch with one strategy.
func (a *Application) runScalarMult(ctx context.Context, out io.Writer) int {
	c, err := a.newCurve()
	if err != nil {
		return a.fail(config.OpScalarMult, err, out)
	}

	rawScalars := a.Config.Scalars()
	if len(rawScalars) == 0 {
		return a.fail(config.OpScalarMult, apperrors.NewConfigError("-k must list at least one scalar"), out)
	}
	scalars := make([]bignum.Nat, len(rawScalars))
	for i, s := range rawScalars {
		if scalars[i], err = bignum.ParseNat(s); err != nil {
			return a.fail(config.OpScalarMult, err, out)
		}
	}

	multipliers := orchestration.SelectMultipliers(a.Config.Algo, a.Registry)
	if len(scalars) > 1 {
		return a.runBatch(ctx, c, multipliers[0], scalars, out)
	}

	k := scalars[0]
	if a.Config.Algo == "all" {
		multipliers = orchestration.FilterApplicable(multipliers, k)
	}
	if len(multipliers) == 0 {
		return a.fail(config.OpScalarMult, firstError(nil), out)
	}
	if !a.Config.Quiet {
		cli.PrintExecutionMode(multipliers, out)
	}

	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		reporter, progressOut = orchestration.NullProgressReporter{}, io.Discard
	}

	mc := metrics.NewMemoryCollector()
	before := mc.Snapshot()
	results := orchestration.ExecuteMultiplications(ctx, multipliers, c.Generator(), k, reporter, progressOut)
	after := mc.Snapshot()

	for _, res := range results {
		a.Metrics.ObserveOperation(config.OpScalarMult, res.Duration, res.Err)
		if res.Err != nil {
			a.Logger.Error("strategy failed", res.Err, logging.String("strategy", res.Name))
		} else {
			a.Logger.Info("strategy completed", logging.String("strategy", res.Name), logging.Duration("duration", res.Duration))
		}
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		Details:    a.Config.Details,
	}
	presOpts := orchestration.PresentationOptions{
		Curve:   c.Name(),
		Scalar:  k.String(),
		Verbose: a.Config.Verbose,
		Details: a.Config.Details,
	}

	code := a.analyzeResultsWithOutput(results, presOpts, outputCfg, out)
	if a.Config.Details && !a.Config.Quiet {
		cli.DisplayMemoryStats(after, after.Since(before), out)
	}
	return code
}

func (a *Application) analyzeResultsWithOutput(results []orchestration.CalculationResult, presOpts orchestration.PresentationOptions, outputCfg cli.OutputConfig, out io.Writer) int {
	presenter := cli.CLIResultPresenter{}

	if outputCfg.Quiet {
		best := findBestResult(results)
		if best == nil {
			return presenter.HandleError(firstError(results), 0, out)
		}
		for _, res := range results {
			if res.Err == nil && !res.Result.Equal(best.Result) {
				fmt.Fprintf(out, "strategies %q and %q disagree\n", best.Name, res.Name)
				return apperrors.ExitErrorMismatch
			}
		}
		if err := cli.DisplayResultWithConfig(out, *best, presOpts, outputCfg); err != nil {
			return a.fail(config.OpScalarMult, err, out)
		}
		return apperrors.ExitSuccess
	}

	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, out)
	if exitCode != apperrors.ExitSuccess || outputCfg.OutputFile == "" {
		return exitCode
	}

	best := findBestResult(results)
	if err := cli.WriteResultToFile(*best, presOpts, outputCfg); err != nil {
		return a.fail(config.OpScalarMult, err, out)
	}
	fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
		ui.ColorGreen(), ui.ColorCyan(), outputCfg.OutputFile, ui.ColorReset())
	return exitCode
}

// runBatch multiplies the generator by every scalar with one strategy,
// spreading the work over EffectiveWorkers goroutines.
func (a *Application) runBatch(ctx context.Context, c *curve.Curve, m orchestration.Multiplier, scalars []bignum.Nat, out io.Writer) int {
	workers := a.Config.EffectiveWorkers()
	if !a.Config.Quiet {
		fmt.Fprintf(out, "Execution mode: batch of %d scalars with the %s%s%s strategy.\n",
			len(scalars), ui.ColorGreen(), m.Name(), ui.ColorReset())
	}

	gc := metrics.NewGCController(a.Config.GCMode, len(scalars), a.Logger)
	gc.Begin()
	start := time.Now()
	results, err := orchestration.ExecuteBatch(ctx, m, c.Generator(), scalars, workers)
	elapsed := time.Since(start)
	gc.End()
	if err != nil {
		a.Metrics.ObserveOperation(config.OpScalarMult, elapsed, err)
		return a.fail(config.OpScalarMult, err, out)
	}

	var lines []string
	for _, res := range results {
		a.Metrics.ObserveOperation(config.OpScalarMult, res.Duration, nil)
		if a.Config.Quiet {
			lines = append(lines, cli.FormatPoint(res.Result))
		} else {
			lines = append(lines, fmt.Sprintf("k = %s: %s", res.Scalar, res.Result))
		}
	}
	a.Logger.Info("batch completed",
		logging.Int("scalars", len(scalars)),
		logging.Int("workers", workers),
		logging.Duration("duration", elapsed))

	if !a.Config.Quiet {
		fmt.Fprintf(out, "\n--- Batch Results (%s) ---\n", cli.CLIResultPresenter{}.FormatDuration(elapsed))
	}
	fmt.Fprintln(out, strings.Join(lines, "\n"))
	if a.Config.Details && !a.Config.Quiet && gc.Active() {
		stats := gc.Stats()
		fmt.Fprintf(out, "\nGC suspended during the batch: %s allocated, %d cycles.\n",
			format.FormatBytes(stats.Bytes), stats.GCs)
	}

	if err := cli.WriteValueToFile(a.Config.OutputFile, strings.Join(lines, "\n")); err != nil {
		return a.fail(config.OpScalarMult, err, out)
	}
	return apperrors.ExitSuccess
}

func findBestResult(results []orchestration.CalculationResult) *orchestration.CalculationResult {
	var bestResult *orchestration.CalculationResult
	for i := range results {
		if results[i].Err == nil {
			if bestResult == nil || results[i].Duration < bestResult.Duration {
				bestResult = &results[i]
			}
		}
	}
	return bestResult
}

func firstError(results []orchestration.CalculationResult) error {
	for _, res := range results {
		if res.Err != nil {
			return res.Err
		}
	}
	return apperrors.ValidationError{Field: "algo", Message: "no strategy selected"}
}
