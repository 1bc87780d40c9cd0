package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/ecccalc/internal/curve"
	"github.com/agbru/ecccalc/internal/progress"
)

// CalculationResult is the outcome of one strategy run. It is shared by the
// orchestration and presentation layers.
type CalculationResult struct {
	// Name is the strategy name (e.g., "ladder").
	Name string
	// Result is k·P. It is the zero Point if an error occurred.
	Result curve.Point
	// Duration is the time taken to complete the multiplication.
	Duration time.Duration
	// Err contains any error that occurred during the multiplication.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Curve   string
	Scalar  string
	Verbose bool
	Details bool
}

// ProgressReporter defines the interface for displaying calculation progress.
// Implementations handle the visual representation (spinners, progress
// bars) while the orchestration layer coordinates the strategies.
type ProgressReporter interface {
	// DisplayProgress consumes updates until progressChan is closed, then
	// calls wg.Done.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from strategies.
	//   - numCalculators: The number of concurrent strategies being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer) {
	f(wg, progressChan, numCalculators, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Used in quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines how comparison tables and final results are shown.
type ResultPresenter interface {
	// PresentComparisonTable displays the per-strategy summary table.
	PresentComparisonTable(results []CalculationResult, out io.Writer)

	// PresentResult displays the agreed-upon result.
	PresentResult(result CalculationResult, opts PresentationOptions, out io.Writer)
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler handles calculation errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
