// Package ui holds the terminal color themes and the lipgloss styles used by
// the command line and the interactive calculator.
package ui
