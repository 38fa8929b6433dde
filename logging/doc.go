// Package logging provides the single facade every NUMERICAL_WARNING and
// notable degenerate-output event is reported through. The
// core never calls a global logger and never panics; a *momasolver.Config
// carries a Logger (nil by default, meaning "discard") set via
// WithLogger.
//
// This is backed by the standard library's log/slog rather than a
// third-party structured logging library — see DESIGN.md for why.
package logging
