package contextutil

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
	roleKey      contextKey = "role"
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	return stringValue(ctx, requestIDKey)
}

func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userIDKey, uid)
}

func GetUserID(ctx context.Context) string {
	return stringValue(ctx, userIDKey)
}

func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

func GetRole(ctx context.Context) string {
	return stringValue(ctx, roleKey)
}

// Fields mengembalikan metadata request yang terisi sebagai zap field.
func Fields(ctx context.Context) []zap.Field {
	var fields []zap.Field
	if rid := GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	if uid := GetUserID(ctx); uid != "" {
		fields = append(fields, zap.String("user_id", uid))
	}
	if role := GetRole(ctx); role != "" {
		fields = append(fields, zap.String("role", role))
	}
	return fields
}

func stringValue(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(key).(string)
	return v
}
