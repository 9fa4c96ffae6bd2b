// Package logging provides a minimal logging interface and adapters for the
// adventure engine.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the engine and server use for observability. This
// package includes:
//
//   - Logger interface for dependency injection
//   - EngineLogger wrapping Go's structured logging (slog) with contextual
//     helpers (user, invocation) and domain helpers for narrator calls
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// The design intentionally keeps the interface minimal so any structured
// logger can be plugged in where slog is not wanted.
package logging
