// Package payments creates payment intents with the external payment
// provider (Stripe).
package payments

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "usd"

// Intent is the part of a created payment intent the API returns.
type Intent struct {
	ID           string
	ClientSecret string
}

//go:generate mockgen -source=payments.go -destination=mocks/mocks.go -package=mocks Provider

// Provider creates payment intents for an amount in the smallest currency
// unit (cents).
type Provider interface {
	CreateIntent(ctx context.Context, amountInCents int64) (Intent, error)
}

// ProviderError is a failure reported by the payment provider. Message is
// the provider's own human-readable explanation.
type ProviderError struct {
	Message string
	Err     error
}

func (e *ProviderError) Error() string { return "payment provider: " + e.Message }

func (e *ProviderError) Unwrap() error { return e.Err }

// Stripe is a Provider backed by the Stripe API.
type Stripe struct {
	api      *client.API
	currency string
}

// NewStripe builds a Stripe client for secretKey. An empty currency selects
// DefaultCurrency.
func NewStripe(secretKey, currency string) *Stripe {
	if currency == "" {
		currency = DefaultCurrency
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Stripe{api: api, currency: currency}
}

// CreateIntent creates a card payment intent. Each call carries a fresh
// idempotency key so a transport-level retry inside the Stripe client never
// creates a second intent.
func (s *Stripe) CreateIntent(ctx context.Context, amountInCents int64) (Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountInCents),
		Currency:           stripe.String(s.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return Intent{}, providerError(err)
	}
	return Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func providerError(err error) *ProviderError {
	var se *stripe.Error
	if errors.As(err, &se) && se.Msg != "" {
		return &ProviderError{Message: se.Msg, Err: err}
	}
	return &ProviderError{Message: err.Error(), Err: err}
}
