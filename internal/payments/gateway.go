package payments

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
)

// Status je životni ciklus payment intent-a kod procesora.
// Samo StatusSucceeded autorizuje finalizaciju porudžbine.
type Status string

const (
	StatusSucceeded Status = "succeeded"
)

type Intent struct {
	ID           string
	ClientSecret string
	Status       Status
	Metadata     Metadata
}

var (
	// ErrInvalidAmount — iznos mora biti pozitivan; odbija se pre poziva procesora.
	ErrInvalidAmount = errors.New("iznos plaćanja mora biti pozitivan")
	// ErrInvalidRequest — procesor je odbio zahtev kao neispravan.
	ErrInvalidRequest = errors.New("procesor je odbio zahtev")
	// ErrProcessorUnavailable — procesor nije dostupan ili je vratio neočekivanu grešku.
	ErrProcessorUnavailable = errors.New("procesor plaćanja nije dostupan")
)

// Gateway je minimalni ugovor prema procesoru plaćanja: kreiraj intent,
// pročitaj intent. Bez retry-ja — greške idu pozivaocu.
type Gateway interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string, md Metadata) (*Intent, error)
	RetrieveIntent(ctx context.Context, intentID string) (*Intent, error)
}

// StripeGateway implementira Gateway preko Stripe PaymentIntent API-ja.
// Globalni stripe.Key se postavlja pri startu servera.
type StripeGateway struct{}

func NewStripeGateway() *StripeGateway {
	return &StripeGateway{}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string, md Metadata) (*Intent, error) {
	if amountMinorUnits <= 0 {
		return nil, ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinorUnits),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: md,
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		log.Printf("❌ Stripe greška pri kreiranju intent-a: %v", err)
		return nil, classify(err)
	}

	log.Printf("💳 PaymentIntent kreiran: %s (%d %s)", intent.ID, amountMinorUnits, currency)

	return &Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       Status(intent.Status),
		Metadata:     Metadata(intent.Metadata),
	}, nil
}

func (g *StripeGateway) RetrieveIntent(ctx context.Context, intentID string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := paymentintent.Get(intentID, params)
	if err != nil {
		log.Printf("❌ Stripe greška pri čitanju intent-a %s: %v", intentID, err)
		return nil, classify(err)
	}

	return &Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       Status(intent.Status),
		Metadata:     Metadata(intent.Metadata),
	}, nil
}

// classify prevodi Stripe grešku u taksonomiju gateway-a.
func classify(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeInvalidRequest {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return fmt.Errorf("%w: %v", ErrProcessorUnavailable, err)
}

// MinorUnits konvertuje decimalni iznos u najmanje jedinice valute (cente),
// zaokruženo na pola naviše: amount × 100 pa round-half-up.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
