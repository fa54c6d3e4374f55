package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stracing_back_end/internal/config"
	"stracing_back_end/internal/delivery"
)

// GetDeliveryOptions vraća opcije dostave. Sa ?country= vraća opcije te
// države, bez parametra celu tabelu za checkout formu.
func GetDeliveryOptions(c *gin.Context) {
	country := c.Query("country")
	if country == "" {
		all := gin.H{}
		for _, name := range delivery.Countries() {
			opts, _ := delivery.OptionsFor(name)
			all[name] = opts
		}
		c.JSON(http.StatusOK, gin.H{"countries": all})
		return
	}

	opts, ok := delivery.OptionsFor(country)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dostava za ovu državu nije podržana"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"country": country, "options": opts})
}

// GetConfig vraća javna podešavanja koja frontend sme da vidi.
func GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"publishableKey": config.StripePublishableKey(),
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
