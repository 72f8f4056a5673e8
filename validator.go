package mulenpay

import (
	"fmt"
	"math"
	"regexp"

	"github.com/shopspring/decimal"
)

// Policy selects how strictly payment requests are validated before
// submission. PolicyLenient accepts any numeric amount and any non-empty
// invoice uuid; PolicyStrict additionally enforces the money format with at
// most 2 decimal places, the canonical dashed uuid form and positivity of
// shopId and holdTime.
type Policy string

const (
	PolicyLenient Policy = "lenient"
	PolicyStrict  Policy = "strict"
)

func (p Policy) IsValid() bool {
	switch p {
	case PolicyLenient, PolicyStrict:
		return true
	}

	return false
}

func (p Policy) String() string {
	return string(p)
}

var (
	amountRegexp = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)
	uuidRegexp   = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

// Validator checks a payment-creation request against the API schema. It is
// pure: a request is either rejected with a *ValidationError naming the
// offending field or passed through untouched. The Sign field is never
// checked, it is system-populated after input validation.
type Validator struct {
	policy Policy
}

func NewValidator(policy Policy) (*Validator, error) {
	if !policy.IsValid() {
		return nil, fmt.Errorf("%w: unknown validation policy %q", ErrInvalidArgument, policy)
	}

	return &Validator{policy: policy}, nil
}

// Validate fails fast: the first violation in schema order wins.
func (v *Validator) Validate(p CreatePaymentRequest) error {
	if p.Currency != CurrencyRUB {
		return newValidationError("currency", fmt.Sprintf("must be %q", CurrencyRUB))
	}

	err := v.validateAmount(p.Amount)
	if err != nil {
		return err
	}

	err = v.validateUUID(p.UUID)
	if err != nil {
		return err
	}

	err = v.validateShopID(p.ShopID)
	if err != nil {
		return err
	}

	if p.Description == "" {
		return newValidationError("description", "is required")
	}

	if p.Subscribe != nil && !p.Subscribe.IsValid() {
		return newValidationError("subscribe", fmt.Sprintf("must be one of: %q, %q, %q",
			SubscribeDay, SubscribeWeek, SubscribeMonth))
	}

	if p.HoldTime != nil && v.policy == PolicyStrict && *p.HoldTime <= 0 {
		return newValidationError("holdTime", "must be a positive integer")
	}

	return v.validateItems(p.Items)
}

func (v *Validator) validateAmount(amount string) error {
	if amount == "" {
		return newValidationError("amount", "is required")
	}

	if v.policy == PolicyStrict {
		if !amountRegexp.MatchString(amount) {
			return newValidationError("amount", "must be a non-negative number with at most 2 decimal places")
		}

		return nil
	}

	_, err := decimal.NewFromString(amount)
	if err != nil {
		return newValidationError("amount", "must be numeric")
	}

	return nil
}

func (v *Validator) validateUUID(id string) error {
	if id == "" {
		return newValidationError("uuid", "is required")
	}

	if v.policy == PolicyStrict && !uuidRegexp.MatchString(id) {
		return newValidationError("uuid", "must be a canonical lowercase uuid")
	}

	return nil
}

func (v *Validator) validateShopID(shopID int64) error {
	if shopID == 0 {
		return newValidationError("shopId", "is required")
	}

	if v.policy == PolicyStrict && shopID < 0 {
		return newValidationError("shopId", "must be a positive integer")
	}

	return nil
}

func (v *Validator) validateItems(items []Item) error {
	for i, item := range items {
		err := v.validateItem(i, item)
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *Validator) validateItem(index int, item Item) error {
	field := func(name string) string {
		return fmt.Sprintf("items[%d].%s", index, name)
	}

	if item.Description == "" {
		return newValidationError(field("description"), "is required")
	}

	if !isFinite(item.Quantity) {
		return newValidationError(field("quantity"), "must be numeric")
	}

	if !isFinite(item.Price) {
		return newValidationError(field("price"), "must be numeric")
	}

	err := validateCode(field("vat_code"), item.VATCode, VATCodes)
	if err != nil {
		return err
	}

	err = validateCode(field("payment_subject"), item.PaymentSubject, PaymentSubjects)
	if err != nil {
		return err
	}

	err = validateCode(field("payment_mode"), item.PaymentMode, PaymentModes)
	if err != nil {
		return err
	}

	if item.MeasurementUnit != nil {
		return validateCode(field("measurement_unit"), *item.MeasurementUnit, MeasurementUnits)
	}

	return nil
}

// validateCode checks table membership; the message lists every valid
// "key: label" pair so the caller can self-correct.
func validateCode(field string, code int, codes map[int]string) error {
	_, ok := codes[code]
	if ok {
		return nil
	}

	return newValidationError(field, fmt.Sprintf("must be one of:\n%s", formatCodes(codes)))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
