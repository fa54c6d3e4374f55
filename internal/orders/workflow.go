package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"stracing_back_end/internal/delivery"
	"stracing_back_end/internal/models"
	"stracing_back_end/internal/notifications"
	"stracing_back_end/internal/payments"
)

// Jedina podržana valuta prodavnice.
const currency = "eur"

// Notifier je deo dispatcher-a koji workflow koristi.
type Notifier interface {
	NotifyMerchant(ctx context.Context, o notifications.Order) error
	NotifyCustomer(ctx context.Context, o notifications.Order) error
}

type InitiateRequest struct {
	Details  models.OrderDetails
	Customer models.CustomerDetails
}

type InitiateResult struct {
	OrderID      string
	ClientSecret string
}

type ConfirmRequest struct {
	IntentID string
	Details  models.OrderDetails
	Customer models.CustomerDetails
}

type ConfirmResult struct {
	Confirmed       bool
	Status          payments.Status
	OrderID         string
	AlreadyNotified bool
}

// Workflow vodi porudžbinu u dve faze: Initiate pravi payment intent i vraća
// client secret, a pošto kupac potvrdi karticu kod procesora, Confirm proverava
// status intent-a i šalje notifikacije — tačno jednom po intent-u.
type Workflow struct {
	gateway  payments.Gateway
	notifier Notifier
	notified NotifiedStore
}

func NewWorkflow(gateway payments.Gateway, notifier Notifier, notified NotifiedStore) *Workflow {
	return &Workflow{gateway: gateway, notifier: notifier, notified: notified}
}

// Initiate validira podatke, računa ukupan iznos (međuzbir + dostava) i pravi
// payment intent kod procesora. Kupac karticu potvrđuje direktno sa procesorom,
// koristeći vraćeni client secret.
func (w *Workflow) Initiate(ctx context.Context, req InitiateRequest) (*InitiateResult, error) {
	if err := validateCustomer(req.Customer); err != nil {
		return nil, err
	}
	if len(req.Details.Items) == 0 {
		return nil, &ValidationError{Field: "items", Message: "korpa je prazna"}
	}
	for _, item := range req.Details.Items {
		if item.Quantity < 1 {
			return nil, &ValidationError{Field: "items", Message: fmt.Sprintf("neispravna količina za proizvod %d", item.ProductID)}
		}
	}

	// Izračunavanje ukupne cene — međuzbir se preračunava iz stavki, a cena
	// dostave se čita iz tabele, ne iz klijentskog zahteva.
	subtotal := sumItems(req.Details.Items)
	fee := deliveryFee(req.Customer)
	total := subtotal.Add(fee)

	orderID := fmt.Sprintf("order_%d", time.Now().UnixMilli())

	md, err := buildMetadata(orderID, req.Details.Items, req.Customer)
	if err != nil {
		return nil, err
	}

	intent, err := w.gateway.CreateIntent(ctx, payments.MinorUnits(total), currency, md)
	if err != nil {
		return nil, err
	}

	log.Printf("💳 Porudžbina %s: intent %s kreiran (%s € + %s € dostava)", orderID, intent.ID, subtotal.StringFixed(2), fee.StringFixed(2))

	return &InitiateResult{OrderID: orderID, ClientSecret: intent.ClientSecret}, nil
}

// Confirm proverava status intent-a kod procesora. Ako plaćanje još nije
// uspelo, vraća ne-uspešan rezultat bez greške — pozivalac sme da pokuša
// ponovo. Ako je uspelo, šalje notifikacije prodavcu i kupcu, uz dedup po
// intent ID-u da ponovljeni poziv ne duplira mejlove.
func (w *Workflow) Confirm(ctx context.Context, req ConfirmRequest) (*ConfirmResult, error) {
	if strings.TrimSpace(req.IntentID) == "" {
		return nil, &ValidationError{Field: "paymentIntentId", Message: "nedostaje ID plaćanja"}
	}

	intent, err := w.gateway.RetrieveIntent(ctx, req.IntentID)
	if err != nil {
		return nil, err
	}

	orderID := intent.Metadata.Get("orderId")

	if intent.Status != payments.StatusSucceeded {
		log.Printf("ℹ️ Intent %s još nije uspeo (status: %s)", intent.ID, intent.Status)
		return &ConfirmResult{Confirmed: false, Status: intent.Status, OrderID: orderID}, nil
	}

	// Dedup pre slanja: samo prvi Confirm za ovaj intent šalje mejlove.
	first, err := w.notified.MarkNotified(ctx, intent.ID)
	if err != nil {
		return nil, fmt.Errorf("provera duplikata za intent %s nije uspela: %w", intent.ID, err)
	}
	if !first {
		log.Printf("🔁 Notifikacije za intent %s su već poslate, preskačem", intent.ID)
		return &ConfirmResult{Confirmed: true, Status: intent.Status, OrderID: orderID, AlreadyNotified: true}, nil
	}

	subtotal := sumItems(req.Details.Items)
	fee := deliveryFee(req.Customer)
	order := notifications.Order{
		OrderID:     orderID,
		Items:       req.Details.Items,
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal.Add(fee),
		Customer:    req.Customer,
	}

	// Slanje email notifikacija prodavcu i kupcu. Plaćanje je već prošlo —
	// greška isporuke se prijavljuje kao NotificationError, ne poništava ništa.
	var sendErrs []error
	if err := w.notifier.NotifyMerchant(ctx, order); err != nil {
		log.Printf("❌ Mejl prodavcu za %s nije poslat: %v", orderID, err)
		sendErrs = append(sendErrs, err)
	}
	if err := w.notifier.NotifyCustomer(ctx, order); err != nil {
		log.Printf("❌ Mejl kupcu za %s nije poslat: %v", orderID, err)
		sendErrs = append(sendErrs, err)
	}

	result := &ConfirmResult{Confirmed: true, Status: intent.Status, OrderID: orderID}
	if len(sendErrs) > 0 {
		return result, &NotificationError{OrderID: orderID, Err: errors.Join(sendErrs...)}
	}

	log.Printf("📧 Notifikacije za porudžbinu %s poslate (%s)", orderID, req.Customer.Email)
	return result, nil
}

func validateCustomer(c models.CustomerDetails) error {
	switch {
	case !strings.Contains(c.Email, "@"):
		return &ValidationError{Field: "email", Message: "unesite ispravnu email adresu"}
	case len(strings.TrimSpace(c.Name)) < 3:
		return &ValidationError{Field: "name", Message: "unesite ime i prezime"}
	case strings.TrimSpace(c.Address) == "":
		return &ValidationError{Field: "address", Message: "unesite adresu"}
	case strings.TrimSpace(c.City) == "":
		return &ValidationError{Field: "city", Message: "unesite grad"}
	case strings.TrimSpace(c.PostalCode) == "":
		return &ValidationError{Field: "postalCode", Message: "unesite poštanski broj"}
	}
	return nil
}

func sumItems(items []models.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// deliveryFee čita cenu dostave iz tabele. Nepoznata kombinacija
// (država, metod) pada na 0 — ponašanje prodavnice, uz upozorenje u logu.
func deliveryFee(c models.CustomerDetails) decimal.Decimal {
	opt, ok := delivery.Lookup(c.Country, c.DeliveryMethod)
	if !ok {
		log.Printf("⚠️ Nepoznata dostava (%s, %s) — cena dostave je 0", c.Country, c.DeliveryMethod)
		return decimal.Zero
	}
	return opt.Price
}

// buildMetadata pakuje porudžbinu u metadata zapis intent-a. Stavke koje ne
// staju u limit procesora degradiraju u kompaktan rezime umesto da se seku
// usred JSON-a.
func buildMetadata(orderID string, items []models.LineItem, customer models.CustomerDetails) (payments.Metadata, error) {
	md := payments.Metadata{}
	if err := md.Set("orderId", orderID); err != nil {
		return nil, err
	}

	type metaItem struct {
		ID       int             `json:"id"`
		Name     string          `json:"name"`
		Size     string          `json:"size"`
		Quantity int             `json:"quantity"`
		Price    decimal.Decimal `json:"price"`
	}
	metaItems := make([]metaItem, 0, len(items))
	for _, item := range items {
		metaItems = append(metaItems, metaItem{
			ID: item.ProductID, Name: item.Name, Size: item.Size,
			Quantity: item.Quantity, Price: item.Price,
		})
	}

	itemsJSON, err := json.Marshal(metaItems)
	if err != nil {
		return nil, fmt.Errorf("serijalizacija stavki nije uspela: %w", err)
	}
	if err := md.Set("items", string(itemsJSON)); err != nil {
		summary, _ := json.Marshal(map[string]any{
			"count":    len(items),
			"subtotal": sumItems(items),
		})
		log.Printf("⚠️ Stavke porudžbine %s ne staju u metadata, upisujem rezime", orderID)
		if err := md.Set("items", string(summary)); err != nil {
			return nil, err
		}
	}

	shippingJSON, err := json.Marshal(customer)
	if err != nil {
		return nil, fmt.Errorf("serijalizacija podataka kupca nije uspela: %w", err)
	}
	if err := md.Set("shipping", string(shippingJSON)); err != nil {
		return nil, &ValidationError{Field: "customerDetails", Message: "podaci kupca su predugački"}
	}

	return md, nil
}
