// Package helper provides test doubles shared by the example packages.
//
// LogHandlerSpy is a slog.Handler that records every log record, so tests can assert
// on what a component logged through a *slog.Logger passed as its Logger.
package helper
