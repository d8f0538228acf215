package payments

import (
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"go.uber.org/zap"
)

// LineItem is one priced cart entry. UnitAmount is in the currency's minor
// unit (cents).
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

// Client creates hosted checkout sessions against the Stripe API.
type Client struct {
	config Config
	logger *zap.Logger
}

func NewClient(config Config, logger *zap.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	stripe.Key = config.SecretKey
	return &Client{config: config, logger: logger}, nil
}

// CreateCheckoutSession builds a card-payment checkout session from the given
// line items and returns the hosted session's id.
func (c *Client) CreateCheckoutSession(items []LineItem) (string, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(c.config.SuccessURL),
		CancelURL:          stripe.String(c.config.CancelURL),
	}
	for _, item := range items {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(c.config.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	sess, err := session.New(params)
	if err != nil {
		c.logger.Error("Failed to create checkout session", zap.Error(err))
		return "", fmt.Errorf("stripe: failed to create checkout session: %w", err)
	}

	c.logger.Info("Created checkout session",
		zap.String("session_id", sess.ID),
		zap.Int("line_items", len(items)))
	return sess.ID, nil
}
