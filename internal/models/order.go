package models

import "github.com/shopspring/decimal"

// OrderDetails je sadržaj porudžbine kako ga checkout forma šalje serveru.
// TotalPrice/TotalAmount su klijentski izračunati — workflow ih preračunava iz stavki.
type OrderDetails struct {
	Items         []LineItem      `json:"items" binding:"required"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	DeliveryPrice decimal.Decimal `json:"deliveryPrice"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}
