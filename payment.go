package mulenpay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

const paymentsPath = "/api/v2/payments"

type SubscribePeriod string

const (
	SubscribeDay   SubscribePeriod = "Day"
	SubscribeWeek  SubscribePeriod = "Week"
	SubscribeMonth SubscribePeriod = "Month"
)

func (s SubscribePeriod) IsValid() bool {
	switch s {
	case SubscribeDay, SubscribeWeek, SubscribeMonth:
		return true
	}

	return false
}

func (s SubscribePeriod) String() string {
	return string(s)
}

const CurrencyRUB = "rub"

type CreatePaymentRequest struct {
	Currency    string           `json:"currency"`
	Amount      string           `json:"amount"` // Money string with up to 2 decimal places, e.g. "1000.50".
	UUID        string           `json:"uuid"`   // Merchant-side invoice identifier.
	ShopID      int64            `json:"shopId"`
	Description string           `json:"description"`
	Subscribe   *SubscribePeriod `json:"subscribe,omitempty"`
	HoldTime    *int64           `json:"holdTime,omitempty"` // Seconds.
	Items       []Item           `json:"items,omitempty"`
	Sign        string           `json:"sign"` // Filled by CreatePayment, never by the caller.
}

// Item is one purchased unit within the fiscal receipt breakdown.
type Item struct {
	Description              string  `json:"description"`
	Quantity                 float64 `json:"quantity"`
	Price                    float64 `json:"price"`
	VATCode                  int     `json:"vat_code"`
	PaymentSubject           int     `json:"payment_subject"`
	PaymentMode              int     `json:"payment_mode"`
	ProductCode              *string `json:"product_code,omitempty"`
	CountryOfOriginCode      *string `json:"country_of_origin_code,omitempty"`
	CustomsDeclarationNumber *string `json:"customs_declaration_number,omitempty"`
	Excise                   *string `json:"excise,omitempty"`
	MeasurementUnit          *int    `json:"measurement_unit,omitempty"`
}

// FormatAmount renders a decimal as the amount string the API expects.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2) //nolint:mnd // kopecks
}

// CreatePayment validates the request, computes its signature and submits it.
// The Sign field of p is overwritten by the computed signature; validation
// always runs before signing, so a rejected request is never sent.
func (c *Client) CreatePayment(ctx context.Context, p CreatePaymentRequest) (json.RawMessage, error) {
	err := c.validator.Validate(p)
	if err != nil {
		return nil, fmt.Errorf("validate payment: %w", err)
	}

	p.Sign = signature(p.Amount, p.Currency, p.ShopID, c.secretKey)

	return c.do(ctx, http.MethodPost, paymentsPath, p)
}

func (c *Client) Payments(ctx context.Context, page int) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("%s?page=%d", paymentsPath, page), nil)
}

func (c *Client) Payment(ctx context.Context, paymentID int64) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", paymentsPath, paymentID), nil)
}

// ConfirmPayment captures a held payment.
func (c *Client) ConfirmPayment(ctx context.Context, paymentID int64) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d/hold", paymentsPath, paymentID), nil)
}

// CancelPayment releases the hold without capturing the funds.
func (c *Client) CancelPayment(ctx context.Context, paymentID int64) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d/hold", paymentsPath, paymentID), nil)
}

func (c *Client) RefundPayment(ctx context.Context, paymentID int64) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d/refund", paymentsPath, paymentID), nil)
}

func (c *Client) Receipt(ctx context.Context, paymentID int64) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d/receipt", paymentsPath, paymentID), nil)
}
