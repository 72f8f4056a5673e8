package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/gofrs/uuid/v5"
)

type ctxKey int8

const ctxKeyRequestID ctxKey = iota

// Handler decorates every record with the request id carried by the context,
// so all log lines of one API call can be correlated.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		record.Add("request_id", v)
	}

	return h.Handler.Handle(ctx, record)
}

func New(level string) (*slog.Logger, error) {
	var sLevel slog.Level

	err := sLevel.UnmarshalText([]byte(level))
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level: sLevel,
	}

	l := slog.New(&Handler{slog.NewJSONHandler(os.Stdout, opts)})

	slog.SetDefault(l)

	return l, nil
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

func RequestIDFromCtx(ctx context.Context) string {
	requestID, ok := ctx.Value(ctxKeyRequestID).(string)
	if !ok {
		return ""
	}

	return requestID
}

func NewRequestID() string {
	return uuid.Must(uuid.NewV4()).String()
}
