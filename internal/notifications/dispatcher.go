package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"

	"github.com/shopspring/decimal"
	"github.com/wneessen/go-mail"

	"stracing_back_end/internal/config"
	"stracing_back_end/internal/models"
)

// Order je kontekst za renderovanje mejlova o porudžbini.
type Order struct {
	OrderID     string
	Items       []models.LineItem
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
	Customer    models.CustomerDetails
}

// DeliveryError znači da mejl nije isporučen. Plaćanje se zbog toga ne poništava.
type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("slanje mejla na %s nije uspelo: %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Dispatcher šalje transakcione mejlove preko SMTP-a. Bez retry-ja —
// greška isporuke ide pozivaocu.
type Dispatcher struct {
	cfg   config.SMTPConfig
	admin string
}

func NewDispatcher(cfg config.SMTPConfig, adminEmail string) *Dispatcher {
	return &Dispatcher{cfg: cfg, admin: adminEmail}
}

// NotifyMerchant šalje prodavcu obaveštenje o novoj porudžbini.
func (d *Dispatcher) NotifyMerchant(ctx context.Context, o Order) error {
	return d.send(ctx, d.admin, "Nova Porudžbina - ST Racing Shop", merchantTemplate, o)
}

// NotifyCustomer šalje kupcu potvrdu porudžbine.
func (d *Dispatcher) NotifyCustomer(ctx context.Context, o Order) error {
	subject := fmt.Sprintf("Potvrda porudžbine %s - ST Racing Shop", o.OrderID)
	return d.send(ctx, o.Customer.Email, subject, customerTemplate, o)
}

func (d *Dispatcher) send(ctx context.Context, to, subject string, tmpl *template.Template, o Order) error {
	if d.cfg.Host == "" {
		return &DeliveryError{Recipient: to, Err: fmt.Errorf("SMTP_HOST nije konfigurisan")}
	}
	if to == "" {
		return &DeliveryError{Recipient: to, Err: fmt.Errorf("adresa primaoca je prazna")}
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, o); err != nil {
		return &DeliveryError{Recipient: to, Err: err}
	}

	msg := mail.NewMsg()
	if err := msg.From(d.cfg.From); err != nil {
		return &DeliveryError{Recipient: to, Err: err}
	}
	if err := msg.To(to); err != nil {
		return &DeliveryError{Recipient: to, Err: err}
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body.String())

	client, err := mail.NewClient(d.cfg.Host,
		mail.WithPort(d.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(d.cfg.Username),
		mail.WithPassword(d.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return &DeliveryError{Recipient: to, Err: err}
	}

	log.Println("📤 Šaljem mejl na", to)
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return &DeliveryError{Recipient: to, Err: err}
	}
	return nil
}
