package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stracing_back_end/internal/cart"
	"stracing_back_end/internal/models"
	"stracing_back_end/internal/session"
)

type CartHandler struct {
	carts *cart.Manager
}

func NewCartHandler(carts *cart.Manager) *CartHandler {
	return &CartHandler{carts: carts}
}

func (h *CartHandler) store(c *gin.Context) *cart.Store {
	return h.carts.Get(session.CartID(c))
}

// GetCart vraća stavke korpe i izvedene totale.
func (h *CartHandler) GetCart(c *gin.Context) {
	store := h.store(c)
	totals := store.Totals()
	c.JSON(http.StatusOK, gin.H{
		"items":      store.Items(),
		"totalItems": totals.TotalItems,
		"totalPrice": totals.TotalPrice,
	})
}

// AddItem dodaje stavku u korpu; ista kombinacija (proizvod, veličina) se spaja.
func (h *CartHandler) AddItem(c *gin.Context) {
	var item models.LineItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravni podaci stavke"})
		return
	}
	// UI dozvoljava količine 1-10; store to ne proverava, pa proveravamo ovde.
	if item.Quantity < 1 || item.Quantity > 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Količina mora biti između 1 i 10"})
		return
	}
	if item.Size == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Veličina je obavezna"})
		return
	}

	store := h.store(c)
	store.AddItem(item)
	totals := store.Totals()

	c.JSON(http.StatusOK, gin.H{
		"message":    "Proizvod je dodat u korpu",
		"items":      store.Items(),
		"totalItems": totals.TotalItems,
		"totalPrice": totals.TotalPrice,
	})
}

// UpdateQuantity postavlja količinu na svim stavkama datog proizvoda.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravan ID proizvoda"})
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Quantity < 1 || input.Quantity > 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Količina mora biti između 1 i 10"})
		return
	}

	store := h.store(c)
	store.UpdateQuantity(productID, input.Quantity)
	totals := store.Totals()

	c.JSON(http.StatusOK, gin.H{
		"items":      store.Items(),
		"totalItems": totals.TotalItems,
		"totalPrice": totals.TotalPrice,
	})
}

// RemoveItem uklanja proizvod iz korpe (sve veličine). No-op ako ga nema.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravan ID proizvoda"})
		return
	}

	store := h.store(c)
	store.RemoveItem(productID)
	totals := store.Totals()

	c.JSON(http.StatusOK, gin.H{
		"message":    "Proizvod je uklonjen iz korpe",
		"items":      store.Items(),
		"totalItems": totals.TotalItems,
		"totalPrice": totals.TotalPrice,
	})
}

// ClearCart prazni korpu sesije.
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.store(c).Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Korpa je ispražnjena"})
}
