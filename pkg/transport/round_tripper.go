package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mulenpay/mulenpay-go/pkg/logger"
)

// LoggingRoundTripper tags every outgoing API request with an X-Request-Id
// header and logs the request/response pair. The id is taken from the
// context when present, otherwise a fresh one is generated.
type LoggingRoundTripper struct {
	Transport http.RoundTripper
}

func NewLoggingRoundTripper(transport http.RoundTripper) *LoggingRoundTripper {
	return &LoggingRoundTripper{Transport: transport}
}

func (l *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID == "" {
		reqID = logger.NewRequestID()
	}

	r.Header.Set("X-Request-Id", reqID)

	slog.DebugContext(ctx, "outgoing request",
		"request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()), "request_id", reqID)

	resp, err := l.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.DebugContext(ctx, "incoming response",
		"response", fmt.Sprintf("%s %s %s", r.Method, r.URL.Redacted(), resp.Status), "request_id", reqID)

	return resp, nil
}
