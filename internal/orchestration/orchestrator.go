package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/ecccalc/internal/bignum"
	"github.com/agbru/ecccalc/internal/curve"
	apperrors "github.com/agbru/ecccalc/internal/errors"
	"github.com/agbru/ecccalc/internal/progress"
)

const tracerName = "github.com/agbru/ecccalc/internal/orchestration"

// ProgressBufferMultiplier sizes the progress channel per strategy so that
// a slow display rarely causes dropped updates.
const ProgressBufferMultiplier = 5

// runSpan starts a span for one strategy run and returns a function that
// closes it with the run's outcome.
func runSpan(ctx context.Context, name string, k bignum.Nat) (context.Context, func(error)) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "scalarmult."+name,
		trace.WithAttributes(
			attribute.String("ecccalc.strategy", name),
			attribute.Int("ecccalc.scalar_bits", int(k.BitLen())),
		))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

// ExecuteMultiplications runs every strategy on k·p concurrently and
// collects one result per strategy, in input order.
//
// A failing strategy does not cancel the others: each error is recorded in
// its own result. Progress updates are forwarded to reporter, which runs in
// its own goroutine until all strategies have finished.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - multipliers: The strategies to execute.
//   - p: The base point.
//   - k: The scalar.
//   - reporter: The progress display (NullProgressReporter for quiet mode).
//   - out: The writer for progress output.
//
// Returns:
//   - []CalculationResult: One result per strategy.
func ExecuteMultiplications(ctx context.Context, multipliers []Multiplier, p curve.Point, k bignum.Nat, reporter ProgressReporter, out io.Writer) []CalculationResult {
	var g errgroup.Group
	results := make([]CalculationResult, len(multipliers))
	progressChan := make(chan progress.ProgressUpdate, len(multipliers)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(multipliers), out)

	for i, m := range multipliers {
		g.Go(func() error {
			spanCtx, end := runSpan(ctx, m.Name(), k)
			start := time.Now()
			res, err := m.Multiply(spanCtx, p, k, progress.ChannelCallback(progressChan, i))
			results[i] = CalculationResult{Name: m.Name(), Result: res, Duration: time.Since(start), Err: err}
			end(err)
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults sorts results (successes first, then by
// duration), checks that every successful strategy produced the same point
// and presents the outcome.
//
// Parameters:
//   - results: The results to analyze; sorted in place.
//   - opts: Presentation options for the final result.
//   - presenter: The result presenter.
//   - errHandler: Maps the first error to an exit code when all runs failed.
//   - out: The writer for the report.
//
// Returns:
//   - int: ExitSuccess, ExitErrorMismatch, or the handler's code.
func AnalyzeComparisonResults(results []CalculationResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *CalculationResult
	var firstError error
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else if firstValid == nil {
			firstValid = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if firstValid == nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No strategy could complete the multiplication.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	for _, res := range results {
		if res.Err == nil && !res.Result.Equal(firstValid.Result) {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! Strategies %q and %q disagree.\n", firstValid.Name, res.Name)
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValid, opts, out)
	return apperrors.ExitSuccess
}
