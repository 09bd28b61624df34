package bootstrap

import (
	"context"
	"sort"
	"time"

	"go-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger menulis audit event lewat zap ke stdout.
type StdoutAuditLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewStdoutAuditLogger(logger ...*zap.Logger) *StdoutAuditLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &StdoutAuditLogger{logger: l, now: time.Now}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("timestamp", l.now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
	}
	fields = append(fields, contextutil.Fields(ctx)...)

	// urutan key meta dibuat stabil
	keys := make([]string, 0, len(entry.Meta))
	for k := range entry.Meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, zap.Any("meta."+k, entry.Meta[k]))
	}

	l.logger.Info("audit event", fields...)
}
