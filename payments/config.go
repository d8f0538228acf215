package payments

import (
	"fmt"
	"strings"
)

// Config holds the Stripe checkout configuration. The redirect URLs are fixed
// per deployment, not per request.
type Config struct {
	// SecretKey is the Stripe secret API key (sk_test_xxx or sk_live_xxx).
	SecretKey string

	// Currency is the ISO currency code used for every line item.
	Currency string

	// SuccessURL is where Stripe redirects after a completed checkout.
	SuccessURL string

	// CancelURL is where Stripe redirects after an abandoned checkout.
	CancelURL string
}

func (c Config) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("payments: secret key is required")
	}
	if !strings.HasPrefix(c.SecretKey, "sk_") {
		return fmt.Errorf("payments: secret key must start with sk_")
	}
	if c.Currency == "" {
		return fmt.Errorf("payments: currency is required")
	}
	if c.SuccessURL == "" || c.CancelURL == "" {
		return fmt.Errorf("payments: success and cancel URLs are required")
	}
	return nil
}
