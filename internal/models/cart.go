package models

import "github.com/shopspring/decimal"

// LineItem je jedna stavka u korpi: proizvod + veličina + količina.
// Stavke sa istim (ProductID, Size) se spajaju sabiranjem količina.
type LineItem struct {
	ProductID int             `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size"`
	Image     string          `json:"image"`
	Color     string          `json:"color"`
}

// Subtotal vraća cenu stavke (jedinična cena × količina).
func (i LineItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
