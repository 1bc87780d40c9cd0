//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/ecccalc/internal/format"
	"github.com/agbru/ecccalc/internal/orchestration"
	"github.com/agbru/ecccalc/internal/progress"
	"github.com/agbru/ecccalc/internal/ui"
)

const (
	// TruncationLimit is the digit threshold from which a coordinate is
	// truncated in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated coordinate.
	DisplayEdges = 25
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// It decouples DisplayProgress from a specific spinner implementation.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress renders a spinner followed by the averaged progress bar of
// all running strategies until progressChan is closed. It calls wg.Done on
// return.
//
// Parameters:
//   - wg: The WaitGroup signalled when the display has stopped.
//   - progressChan: The channel of progress updates.
//   - numCalculators: The number of strategies sending updates.
//   - out: The writer the spinner draws on.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numCalculators)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	label := "Multiplying"
	if agg.IsMultiCalculator() {
		label = fmt.Sprintf("Comparing %d strategies", numCalculators)
	}
	suffix := func(eta time.Duration) string {
		return " " + label + " " + format.FormatProgressBarWithETA(agg.CalculateAverage(), eta, ProgressBarWidth)
	}
	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(suffix(0))
	s.Start()
	defer func() {
		s.Stop()
		fmt.Fprintf(out, "%s: %s\n", label, format.FormatProgressBarWithETA(agg.CalculateAverage(), 0, ProgressBarWidth))
	}()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				return
			}
			agg.Update(update)
		case <-ticker.C:
			s.UpdateSuffix(suffix(agg.GetETA()))
		}
	}
}

// CLIColorProvider feeds the active ui theme to the error handler.
type CLIColorProvider struct{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// truncateDigits shortens a long decimal string to its edges.
func truncateDigits(s string) (string, bool) {
	if len(s) <= TruncationLimit {
		return s, false
	}
	return s[:DisplayEdges] + "..." + s[len(s)-DisplayEdges:], true
}

// DisplayResult prints the outcome of a scalar multiplication.
//
// Parameters:
//   - result: The strategy result holding k·P.
//   - opts: The curve and scalar, plus the verbosity switches.
//   - out: The destination writer.
func DisplayResult(result orchestration.CalculationResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "\n--- Result ---\n")
	fmt.Fprintf(out, "Curve: %s%s%s, strategy: %s%s%s, time: %s%s%s\n",
		ui.ColorCyan(), opts.Curve, ui.ColorReset(),
		ui.ColorBlue(), result.Name, ui.ColorReset(),
		ui.ColorYellow(), format.FormatExecutionDuration(result.Duration), ui.ColorReset())

	scalar := opts.Scalar
	truncatedScalar := false
	if !opts.Verbose {
		scalar, truncatedScalar = truncateDigits(scalar)
	}
	fmt.Fprintf(out, "k = %s%s%s\n", ui.ColorMagenta(), scalar, ui.ColorReset())

	x, y, err := result.Result.Affine()
	if err != nil {
		fmt.Fprintf(out, "k·P = %sinfinity%s (point at infinity)\n", ui.ColorGreen(), ui.ColorReset())
		return
	}

	xs, ys := x.String(), y.String()
	truncated := truncatedScalar
	if !opts.Verbose {
		var tx, ty bool
		xs, tx = truncateDigits(xs)
		ys, ty = truncateDigits(ys)
		truncated = truncated || tx || ty
	}
	fmt.Fprintf(out, "k·P =\n  x = %s%s%s\n  y = %s%s%s\n",
		ui.ColorGreen(), xs, ui.ColorReset(), ui.ColorGreen(), ys, ui.ColorReset())
	if truncated {
		fmt.Fprintf(out, "(truncated) Tip: use %s-v%s to print full values.\n", ui.ColorYellow(), ui.ColorReset())
	}

	if opts.Details {
		fmt.Fprintf(out, "\n--- Detailed result analysis ---\n")
		fmt.Fprintf(out, "Scalar digits:    %s%d%s\n", ui.ColorCyan(), len(opts.Scalar), ui.ColorReset())
		fmt.Fprintf(out, "x bit length:     %s%d%s\n", ui.ColorCyan(), x.BitLen(), ui.ColorReset())
		fmt.Fprintf(out, "y bit length:     %s%d%s\n", ui.ColorCyan(), y.BitLen(), ui.ColorReset())
		fmt.Fprintf(out, "x digits:         %s%d%s\n", ui.ColorCyan(), len(x.String()), ui.ColorReset())
		fmt.Fprintf(out, "On curve:         %s%t%s\n", ui.ColorCyan(), result.Result.IsOnCurve(), ui.ColorReset())
	}
}
