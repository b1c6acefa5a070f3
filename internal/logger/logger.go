package logger

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	userKey    contextKey = "log_user"
	tenantKey  contextKey = "log_tenant"
	requestKey contextKey = "log_request"
)

// Logger wraps a logrus entry so service code can chain fields without importing logrus
type Logger struct {
	*logrus.Entry
}

// Setup configures the standard logrus logger. Unknown levels fall back to info.
func Setup(level string) {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})

	parsed, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// ContextWithUser stores the caller's email and tenant id so later log lines carry them.
func ContextWithUser(ctx context.Context, email, tenantID string) context.Context {
	ctx = context.WithValue(ctx, userKey, email)
	if tenantID != "" {
		ctx = context.WithValue(ctx, tenantKey, tenantID)
	}
	return ctx
}

// ContextWithRequestID tags the context with the HTTP request id
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestKey, requestID)
}

// WithContext returns an entry carrying the user, tenant and request id found in ctx
func WithContext(ctx context.Context) *Logger {
	fields := logrus.Fields{"user": "unknown"}
	if ctx != nil {
		if email, ok := ctx.Value(userKey).(string); ok && email != "" {
			fields["user"] = email
		}
		if tenant, ok := ctx.Value(tenantKey).(string); ok && tenant != "" {
			fields["tenant"] = tenant
		}
		if id, ok := ctx.Value(requestKey).(string); ok && id != "" {
			fields["request_id"] = id
		}
	}
	return &Logger{Entry: logrus.WithFields(fields)}
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithFields(fields)}
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{Entry: l.Entry.WithError(err)}
}
