package contract

import "context"

// Context keys for logging options
type contextKey string

const quietLogsKey contextKey = "quietLogs"

// WithQuietLogs marks the context so warnings are not written.
// MCP mode uses it since the process talks the protocol over stdio.
func WithQuietLogs(ctx context.Context) context.Context {
	return context.WithValue(ctx, quietLogsKey, true)
}

// QuietLogs returns whether warnings are suppressed for the context.
func QuietLogs(ctx context.Context) bool {
	val := ctx.Value(quietLogsKey)
	if val == nil {
		return false // default: log warnings
	}
	quiet, ok := val.(bool)
	return ok && quiet
}

// LogWarnContext logs a warning unless the context asks for quiet logs.
func LogWarnContext(ctx context.Context, msg string, err error) {
	if QuietLogs(ctx) {
		return
	}
	LogWarn(msg, err)
}
