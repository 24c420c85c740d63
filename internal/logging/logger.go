// Package logging defines the structured logger the store and CLI write to,
// plus its log/slog implementation.
package logging

import "context"

// Logger takes a message and alternating key/value args:
//
//	log.Info(ctx, "account added", "id", id, "type", typ)
//
// Values are never expected to contain secrets; callers log ids and types,
// not passwords.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that adds args to every record.
	With(args ...any) Logger
}
