// Package progress carries progress notifications from long-running scalar
// multiplications to whatever displays them.
package progress

// ProgressUpdate is one notification sent by a running strategy.
type ProgressUpdate struct {
	// CalculatorIndex identifies the strategy among those run together.
	CalculatorIndex int
	// Value is the completed fraction, between 0.0 and 1.0.
	Value float64
}

// ProgressCallback receives the completed fraction of a computation.
type ProgressCallback func(progress float64)

// ReportThreshold is the minimum progress delta between two forwarded
// updates. Completion (1.0) is always forwarded.
const ReportThreshold = 0.01

// ChannelCallback returns a callback that forwards updates for the given
// index to ch. Sends never block: when the channel is full the update is
// dropped, since a later one supersedes it.
func ChannelCallback(ch chan<- ProgressUpdate, index int) ProgressCallback {
	if ch == nil {
		return func(float64) {}
	}
	last := -1.0
	return func(p float64) {
		if p < 1.0 && p-last < ReportThreshold {
			return
		}
		last = p
		select {
		case ch <- ProgressUpdate{CalculatorIndex: index, Value: p}:
		default:
		}
	}
}

// StepReporter converts "step i of total" into fractional progress.
// It returns nil when cb is nil so callers can skip the bookkeeping.
func StepReporter(cb ProgressCallback, total uint) func(step uint) {
	if cb == nil || total == 0 {
		return nil
	}
	return func(step uint) {
		cb(float64(step) / float64(total))
	}
}
