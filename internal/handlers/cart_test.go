package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"stracing_back_end/internal/cart"
	"stracing_back_end/internal/session"
)

func cartRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCartHandler(cart.NewManager())

	api := r.Group("/api")
	api.Use(session.Middleware(session.NewStore("test-secret")))
	api.GET("/cart", h.GetCart)
	api.POST("/cart/items", h.AddItem)
	api.PATCH("/cart/items/:productId", h.UpdateQuantity)
	api.DELETE("/cart/items/:productId", h.RemoveItem)
	api.DELETE("/cart", h.ClearCart)
	return r
}

// do šalje zahtev i prenosi kolačiće sesije iz prethodnog odgovora.
func do(r *gin.Engine, method, path string, body []byte, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func addItemBody(id int, qty int, size string) []byte {
	raw, _ := json.Marshal(map[string]any{
		"id": id, "name": "ST Racing Majica", "price": 35, "quantity": qty, "size": size,
	})
	return raw
}

func TestCartAddAndGetWithinSession(t *testing.T) {
	r := cartRouter()

	rec := do(r, http.MethodPost, "/api/cart/items", addItemBody(1, 2, "M"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	rec = do(r, http.MethodGet, "/api/cart", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items      []json.RawMessage `json:"items"`
		TotalItems int               `json:"totalItems"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	require.Equal(t, 2, resp.TotalItems)
}

func TestCartIsScopedPerSession(t *testing.T) {
	r := cartRouter()

	rec := do(r, http.MethodPost, "/api/cart/items", addItemBody(1, 1, "M"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Bez kolačića — druga sesija, prazna korpa.
	rec = do(r, http.MethodGet, "/api/cart", nil, nil)

	var resp struct {
		TotalItems int `json:"totalItems"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Zero(t, resp.TotalItems)
}

func TestCartRejectsOutOfRangeQuantity(t *testing.T) {
	r := cartRouter()

	rec := do(r, http.MethodPost, "/api/cart/items", addItemBody(1, 11, "M"), nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodPost, "/api/cart/items", addItemBody(1, 0, "M"), nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartRemoveMissingProductIsNoop(t *testing.T) {
	r := cartRouter()

	rec := do(r, http.MethodPost, "/api/cart/items", addItemBody(1, 2, "M"), nil)
	cookies := rec.Result().Cookies()

	rec = do(r, http.MethodDelete, "/api/cart/items/99", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		TotalItems int `json:"totalItems"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.TotalItems)
}

func TestCartUpdateQuantityAndClear(t *testing.T) {
	r := cartRouter()

	rec := do(r, http.MethodPost, "/api/cart/items", addItemBody(1, 2, "M"), nil)
	cookies := rec.Result().Cookies()

	rec = do(r, http.MethodPatch, "/api/cart/items/1", []byte(`{"quantity":5}`), cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		TotalItems int `json:"totalItems"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 5, resp.TotalItems)

	rec = do(r, http.MethodDelete, "/api/cart", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(r, http.MethodGet, "/api/cart", nil, cookies)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Zero(t, resp.TotalItems)
}
