// Package orchestration runs scalar multiplication strategies concurrently,
// compares their results and batches independent multiplications. It is
// decoupled from presentation through the ProgressReporter and
// ResultPresenter interfaces.
package orchestration
