// Package cli implements the terminal front end of ecccalc: progress display,
// result presentation, file output, shell completion and the interactive
// calculator.
package cli
