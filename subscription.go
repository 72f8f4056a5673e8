package mulenpay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const subscribesPath = "/api/v2/subscribes"

func (c *Client) Subscriptions(ctx context.Context, page int) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("%s?page=%d", subscribesPath, page), nil)
}

func (c *Client) CancelSubscription(ctx context.Context, subscriptionID int64) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", subscribesPath, subscriptionID), nil)
}
