// Package logging provides the dependency-free Logger interface shared by all example
// packages together with constructors for the two supported backends:
// log/slog (JSON) and go.uber.org/zap.
//
// Packages that log accept a Logger via a WithLogger option. A nil Logger disables logging.
package logging
