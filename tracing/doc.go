// Package tracing wraps OpenTelemetry so that the dispatcher can record one
// span per executed command line without importing the SDK directly.
// Tracing is opt-in; with no provider installed spans are no-ops.
package tracing
