package mulenpay

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// signature derives the tamper-evident signature for a payment request.
// Only the monetary-critical fields take part: amount, currency and shopId.
// Their values are joined with "|" in ascending key order, the shared secret
// is appended and the whole string is hashed with SHA-256. Sorting the keys
// gives a canonical representation independent of construction order.
func signature(amount, currency string, shopID int64, secret string) string {
	fields := map[string]string{
		"amount":   amount,
		"currency": currency,
		"shopId":   strconv.FormatInt(shopID, 10),
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, fields[k])
	}

	payload := strings.Join(values, "|") + "|" + secret
	sum := sha256.Sum256([]byte(payload))

	return hex.EncodeToString(sum[:])
}
