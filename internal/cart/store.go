package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"stracing_back_end/internal/models"
)

// Totals su izvedene vrednosti korpe — uvek se računaju iz stavki, nikad se ne čuvaju.
type Totals struct {
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Store je korpa jedne sesije. Logički ima jednog vlasnika (jedan tab / jedna
// sesija), ali HTTP server obrađuje zahteve paralelno pa mutex ipak stoji.
type Store struct {
	mu    sync.Mutex
	items []models.LineItem
}

func NewStore() *Store {
	return &Store{}
}

// AddItem dodaje stavku u korpu. Ako stavka sa istim (ProductID, Size) već
// postoji, samo se sabira količina — ne pravi se duplikat.
func (s *Store) AddItem(item models.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID && s.items[i].Size == item.Size {
			s.items[i].Quantity += item.Quantity
			return
		}
	}
	s.items = append(s.items, item)
}

// RemoveItem uklanja sve stavke sa datim ProductID, bez obzira na veličinu.
// Ako proizvod nije u korpi, ne radi ništa.
func (s *Store) RemoveItem(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

// UpdateQuantity postavlja količinu na svim stavkama datog proizvoda.
// Ne ograničava vrednost — pozivalac je dužan da validira quantity ≥ 1.
func (s *Store) UpdateQuantity(productID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
		}
	}
}

// Items vraća kopiju stavki korpe.
func (s *Store) Items() []models.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Clear prazni korpu (posle uspešne porudžbine ili na zahtev).
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Totals računa ukupan broj artikala i ukupnu cenu iz trenutnih stavki.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := Totals{TotalPrice: decimal.Zero}
	for _, item := range s.items {
		t.TotalItems += item.Quantity
		t.TotalPrice = t.TotalPrice.Add(item.Subtotal())
	}
	return t
}
