// Package logging provides the logging interface shared by the calculator's
// components. The default backend is zerolog; a standard library adapter
// exists for callers that already hold a *log.Logger.
package logging
