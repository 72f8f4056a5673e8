package mulenpay_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	mulenpay "github.com/mulenpay/mulenpay-go"
	"github.com/mulenpay/mulenpay-go/pkg/config"
)

func newTestConfig(baseURL string) config.MulenPay {
	return config.MulenPay{
		BaseURL:          baseURL,
		APIKey:           "test-api-key",
		SecretKey:        "s3cr3t",
		ValidationPolicy: "strict",
	}
}

func TestClient_CreatePayment(t *testing.T) {
	t.Parallel()

	var got mulenpay.CreatePaymentRequest

	router := chi.NewRouter()
	router.Post("/api/v2/payments", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-api-key" {
			t.Error("missing or wrong Authorization header")
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Error("wrong Content-Type header")
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Error("wrong Accept header")
		}

		err := json.NewDecoder(r.Body).Decode(&got)
		if err != nil {
			t.Errorf("decode request body: %s", err)
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"payment":{"id":42}}`))
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	client, err := mulenpay.NewClient(newTestConfig(server.URL))
	require.NoError(t, err)

	resp, err := client.CreatePayment(context.Background(), mulenpay.CreatePaymentRequest{
		Currency:    "rub",
		Amount:      "1000.50",
		UUID:        "11111111-1111-1111-1111-111111111111",
		ShopID:      5,
		Description: "test",
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"success":true,"payment":{"id":42}}`, string(resp))

	// The signature is derived from amount, currency, shopId and the shared
	// secret, never taken from the caller.
	require.Equal(t, "1f71dbc2e0a6ab471bf45b26ee9d2c26098bff1113471dbe8d43e2ba46d20579", got.Sign)
	require.Equal(t, "1000.50", got.Amount)
	require.Equal(t, int64(5), got.ShopID)
}

func TestClient_CreatePayment_InvalidRequestNotSent(t *testing.T) {
	t.Parallel()

	calls := 0

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		calls++
	}))
	t.Cleanup(server.Close)

	client, err := mulenpay.NewClient(newTestConfig(server.URL))
	require.NoError(t, err)

	_, err = client.CreatePayment(context.Background(), mulenpay.CreatePaymentRequest{
		Currency:    "usd",
		Amount:      "1000.50",
		UUID:        "11111111-1111-1111-1111-111111111111",
		ShopID:      5,
		Description: "test",
	})

	require.Error(t, err)
	require.ErrorIs(t, err, mulenpay.ErrInvalidArgument)

	var vErr *mulenpay.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "currency", vErr.Field)

	require.Zero(t, calls, "invalid request must be rejected before any network call")
}

//nolint:funlen // test function with multiple test cases
func TestClient_Routing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		call       func(ctx context.Context, c *mulenpay.Client) (json.RawMessage, error)
		wantMethod string
		wantPath   string
		wantQuery  string
	}{
		{
			name: "list payments",
			call: func(ctx context.Context, c *mulenpay.Client) (json.RawMessage, error) {
				return c.Payments(ctx, 3)
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/v2/payments",
			wantQuery:  "page=3",
		},
		{
			name: "get payment",
			call: func(ctx context.Context, c *mulenpay.Client) (json.RawMessage, error) {
				return c.Payment(ctx, 42)
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/v2/payments/42",
		},
		{
			name: "confirm payment",
			call: func(ctx context.Context, c *mulenpay.Client) (json.RawMessage, error) {
				return c.ConfirmPayment(ctx, 42)
			},
			wantMethod: http.MethodPut,
			wantPath:   "/api/v2/payments/42/hold",
		},
		{
			name: "cancel payment",
			call: func(ctx context.Context, c *mulenpay.Client) (json.RawMessage, error) {
				return c.CancelPayment(ctx, 42)
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/api/v2/payments/42/hold",
		},
		{
			name: "refund payment",
			call: func(ctx context.Context, c *mulenpay.Client) (json.RawMessage, error) {
				return c.RefundPayment(ctx, 42)
			},
			wantMethod: http.MethodPut,
			wantPath:   "/api/v2/payments/42/refund",
		},
		{
			name: "get receipt",
			call: func(ctx context.Context, c *mulenpay.Client) (json.RawMessage, error) {
				return c.Receipt(ctx, 42)
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/v2/payments/42/receipt",
		},
		{
			name: "list subscriptions",
			call: func(ctx context.Context, c *mulenpay.Client) (json.RawMessage, error) {
				return c.Subscriptions(ctx, 2)
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/v2/subscribes",
			wantQuery:  "page=2",
		},
		{
			name: "cancel subscription",
			call: func(ctx context.Context, c *mulenpay.Client) (json.RawMessage, error) {
				return c.CancelSubscription(ctx, 7)
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/api/v2/subscribes/7",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotMethod, gotPath, gotQuery string

			handler := func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotPath = r.URL.Path
				gotQuery = r.URL.RawQuery

				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"success":true}`))
			}

			router := chi.NewRouter()
			router.Get("/api/v2/payments", handler)
			router.Get("/api/v2/payments/{id}", handler)
			router.Put("/api/v2/payments/{id}/hold", handler)
			router.Delete("/api/v2/payments/{id}/hold", handler)
			router.Put("/api/v2/payments/{id}/refund", handler)
			router.Get("/api/v2/payments/{id}/receipt", handler)
			router.Get("/api/v2/subscribes", handler)
			router.Delete("/api/v2/subscribes/{id}", handler)

			server := httptest.NewServer(router)
			t.Cleanup(server.Close)

			client, err := mulenpay.NewClient(newTestConfig(server.URL))
			require.NoError(t, err)

			resp, err := tt.call(context.Background(), client)
			require.NoError(t, err)
			require.JSONEq(t, `{"success":true}`, string(resp))

			require.Equal(t, tt.wantMethod, gotMethod)
			require.Equal(t, tt.wantPath, gotPath)
			require.Equal(t, tt.wantQuery, gotQuery)
		})
	}
}

func TestClient_APIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "decoded remote message",
			status:      http.StatusUnprocessableEntity,
			body:        `{"message":"The given data was invalid."}`,
			wantMessage: "The given data was invalid.",
		},
		{
			name:        "non-JSON error body",
			status:      http.StatusBadGateway,
			body:        "upstream unavailable\n",
			wantMessage: "upstream unavailable",
		},
		{
			name:        "JSON body without message field",
			status:      http.StatusNotFound,
			body:        `{"error":"not found"}`,
			wantMessage: `{"error":"not found"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(server.Close)

			client, err := mulenpay.NewClient(newTestConfig(server.URL))
			require.NoError(t, err)

			_, err = client.Payment(context.Background(), 1)
			require.Error(t, err)

			var apiErr *mulenpay.APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tt.status, apiErr.StatusCode)
			require.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client, err := mulenpay.NewClient(newTestConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Payments(context.Background(), 1)
	require.Error(t, err)

	var apiErr *mulenpay.APIError
	require.False(t, errors.As(err, &apiErr), "a network failure is not an API error")
}

func TestNewClient_UnknownPolicy(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig("https://mulenpay.ru")
	cfg.ValidationPolicy = "whatever"

	_, err := mulenpay.NewClient(cfg)
	require.Error(t, err)
	require.ErrorIs(t, err, mulenpay.ErrInvalidArgument)
}
