package models

// CustomerDetails su podaci kupca uneti pri checkout-u; ne čuvaju se nakon zahteva.
type CustomerDetails struct {
	Email          string `json:"email" binding:"required,email"`
	Name           string `json:"name" binding:"required,min=3"`
	Address        string `json:"address" binding:"required"`
	City           string `json:"city" binding:"required"`
	PostalCode     string `json:"postalCode" binding:"required"`
	Country        string `json:"country" binding:"required"`
	DeliveryMethod string `json:"deliveryMethod"`
}
