package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"stracing_back_end/internal/models"
	"stracing_back_end/internal/orders"
)

// Generička poruka za neočekivane greške — ista koju prodavnica prikazuje kupcu.
const genericOrderError = "Došlo je do greške prilikom procesiranja narudžbe."

// OrderWorkflow je deo orders.Workflow-a koji handler koristi.
type OrderWorkflow interface {
	Initiate(ctx context.Context, req orders.InitiateRequest) (*orders.InitiateResult, error)
	Confirm(ctx context.Context, req orders.ConfirmRequest) (*orders.ConfirmResult, error)
}

type OrderHandler struct {
	workflow OrderWorkflow
}

func NewOrderHandler(workflow OrderWorkflow) *OrderHandler {
	return &OrderHandler{workflow: workflow}
}

type orderRequest struct {
	OrderDetails    models.OrderDetails    `json:"orderDetails" binding:"required"`
	CustomerDetails models.CustomerDetails `json:"customerDetails" binding:"required"`
	ConfirmPayment  bool                   `json:"confirmPayment"`
	PaymentIntentID string                 `json:"paymentIntentId"`
}

// CreateOrder je checkout endpoint u dve faze: bez confirmPayment pravi payment
// intent i vraća client secret; sa confirmPayment + paymentIntentId proverava
// status plaćanja i finalizuje porudžbinu.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Neispravni podaci porudžbine"})
		return
	}

	// Boolean flag bira operaciju samo na ivici — workflow ima dve imenovane operacije.
	if req.ConfirmPayment {
		h.confirm(c, req)
		return
	}
	h.initiate(c, req)
}

func (h *OrderHandler) initiate(c *gin.Context, req orderRequest) {
	result, err := h.workflow.Initiate(c.Request.Context(), orders.InitiateRequest{
		Details:  req.OrderDetails,
		Customer: req.CustomerDetails,
	})
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientSecret": result.ClientSecret,
		"orderId":      result.OrderID,
	})
}

func (h *OrderHandler) confirm(c *gin.Context, req orderRequest) {
	result, err := h.workflow.Confirm(c.Request.Context(), orders.ConfirmRequest{
		IntentID: req.PaymentIntentID,
		Details:  req.OrderDetails,
		Customer: req.CustomerDetails,
	})
	if err != nil {
		respondOrderError(c, err)
		return
	}

	if !result.Confirmed {
		// Legitimno stanje čekanja, ne greška — kupac može da pokuša ponovo.
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"status":  string(result.Status),
			"message": "Plaćanje još nije potvrđeno",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orderId": result.OrderID,
		"message": "Porudžbina je uspešno potvrđena",
	})
}

func respondOrderError(c *gin.Context, err error) {
	var validationErr *orders.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": validationErr.Message})
		return
	}

	var notifyErr *orders.NotificationError
	if errors.As(err, &notifyErr) {
		// Plaćanje je prošlo — klijent mora to da vidi uprkos grešci.
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"paid":    true,
			"orderId": notifyErr.OrderID,
			"error":   "Porudžbina je plaćena, ali slanje potvrde e-poštom nije uspelo",
		})
		return
	}

	log.Printf("❌ Greška pri obradi porudžbine: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": genericOrderError})
}
