// Package observability groups the observability infrastructure: structured
// logging with slog and OpenTelemetry tracing for HTTP request handling.
//
// Subpackages:
//   - logging: structured logging utilities with context propagation
//   - tracing: OpenTelemetry tracing middleware and the application tracer
package observability
