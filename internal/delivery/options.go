package delivery

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Option je jedan način dostave za konkretnu državu.
type Option struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Time  string          `json:"time"`
}

// Statična tabela dostave: država → dostupne opcije. Učitava se na startu i ne menja se.
var options = map[string][]Option{
	"Hrvatska": {
		{ID: "hp", Name: "Hrvatska Pošta", Price: decimal.NewFromInt(20), Time: "2-3 radna dana"},
		{ID: "tisak", Name: "Tisak Dostava", Price: decimal.NewFromInt(15), Time: "1-2 radna dana"},
	},
	"Slovenija": {
		{ID: "posta", Name: "Pošta Slovenije", Price: decimal.NewFromInt(25), Time: "3-4 radna dana"},
	},
	"Srbija": {
		{ID: "post", Name: "Post Express", Price: decimal.NewFromInt(30), Time: "3-4 radna dana"},
	},
	"Bosna i Hercegovina": {
		{ID: "bh-post", Name: "BH Pošta", Price: decimal.NewFromInt(30), Time: "3-4 radna dana"},
	},
}

// Lookup vraća opciju dostave za (država, metod). Drugi rezultat je false
// kada država nije podržana ili metod ne postoji za tu državu.
func Lookup(country, methodID string) (Option, bool) {
	for _, opt := range options[country] {
		if opt.ID == methodID {
			return opt, true
		}
	}
	return Option{}, false
}

// OptionsFor vraća opcije dostave za državu, u redosledu iz tabele.
func OptionsFor(country string) ([]Option, bool) {
	opts, ok := options[country]
	if !ok {
		return nil, false
	}
	out := make([]Option, len(opts))
	copy(out, opts)
	return out, true
}

// Countries vraća podržane države, sortirane radi stabilnog odgovora API-ja.
func Countries() []string {
	countries := make([]string, 0, len(options))
	for c := range options {
		countries = append(countries, c)
	}
	sort.Strings(countries)
	return countries
}
