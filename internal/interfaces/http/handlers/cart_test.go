package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/interfaces/http/routes"
)

const (
	productA = "product-a"
	productB = "product-b"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.New(
		[]catalog.Product{
			{ID: productA, Name: "Product A", PriceCents: 1000},
			{ID: productB, Name: "Product B", PriceCents: 2500},
		},
		[]catalog.DeliveryOption{
			{ID: "1", DeliveryDays: 7, PriceCents: 0},
			{ID: "2", DeliveryDays: 1, PriceCents: 499},
		},
	)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Pricing.TaxRate = 0.10

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	st := storage.NewMemoryStore()
	carts := cart.NewManager(st, cat.DefaultDeliveryOption().ID, logger)
	finalizer := order.NewFinalizer(st, cat, cfg.Pricing.TaxRate)

	router := gin.New()
	router.Use(middleware.Session())
	routes.SetupRoutes(router.Group("/api/v1"), cat, carts, finalizer, cfg, logger)
	return router
}

// client keeps the session cookie across requests, like a browser.
type client struct {
	router  *gin.Engine
	cookies []*http.Cookie
}

func (c *client) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if len(w.Result().Cookies()) > 0 {
		c.cookies = w.Result().Cookies()
	}
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var response struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Data
}

func TestAddToCartReturnsBreakdown(t *testing.T) {
	c := &client{router: testRouter(t)}

	w := c.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"product-a"}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	items := data["items"].([]any)
	require.Len(t, items, 1)

	breakdown := data["breakdown"].(map[string]any)
	assert.Equal(t, float64(1000), breakdown["item_total_cents"])
	assert.Equal(t, float64(100), breakdown["tax_cents"])
	assert.Equal(t, float64(1100), breakdown["total_cents"])
}

func TestAddUnknownProductIsRejected(t *testing.T) {
	c := &client{router: testRouter(t)}

	w := c.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"nope"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(t, http.MethodGet, "/api/v1/cart", "")
	data := decodeData(t, w)
	assert.Empty(t, data["items"])
}

func TestQuantityValidation(t *testing.T) {
	c := &client{router: testRouter(t)}
	c.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"product-a"}`)

	w := c.do(t, http.MethodPut, "/api/v1/cart/items/product-a/quantity", `{"quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "sentinel quantity is invalid input")

	w = c.do(t, http.MethodPut, "/api/v1/cart/items/product-a/quantity", `{"quantity":3}`)
	require.Equal(t, http.StatusOK, w.Code)

	breakdown := decodeData(t, w)["breakdown"].(map[string]any)
	assert.Equal(t, float64(3), breakdown["total_quantity"])
}

func TestDeliveryOptionChangeUpdatesShipping(t *testing.T) {
	c := &client{router: testRouter(t)}
	c.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"product-a"}`)

	w := c.do(t, http.MethodPut, "/api/v1/cart/items/product-a/delivery-option", `{"delivery_option_id":"2"}`)
	require.Equal(t, http.StatusOK, w.Code)

	breakdown := decodeData(t, w)["breakdown"].(map[string]any)
	assert.Equal(t, float64(499), breakdown["shipping_total_cents"])

	w = c.do(t, http.MethodPut, "/api/v1/cart/items/product-a/delivery-option", `{"delivery_option_id":"nope"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveFromCart(t *testing.T) {
	c := &client{router: testRouter(t)}
	c.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"product-a"}`)
	c.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"product-b"}`)

	w := c.do(t, http.MethodDelete, "/api/v1/cart/items/product-a", "")
	require.Equal(t, http.StatusOK, w.Code)

	items := decodeData(t, w)["items"].([]any)
	require.Len(t, items, 1)
}

func TestCheckoutFlow(t *testing.T) {
	c := &client{router: testRouter(t)}

	// Product A x2 with free shipping, product B x1 express.
	c.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"product-a"}`)
	c.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"product-a"}`)
	c.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"product-b"}`)
	c.do(t, http.MethodPut, "/api/v1/cart/items/product-b/delivery-option", `{"delivery_option_id":"2"}`)

	w := c.do(t, http.MethodPost, "/api/v1/checkout/place-order", "")
	require.Equal(t, http.StatusCreated, w.Code)

	placed := decodeData(t, w)
	assert.Equal(t, float64(5499), placed["total_cents"])

	// The cart is empty after checkout.
	w = c.do(t, http.MethodGet, "/api/v1/cart", "")
	assert.Empty(t, decodeData(t, w)["items"])

	// The order shows up in the session's history.
	w = c.do(t, http.MethodGet, "/api/v1/orders", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listResponse struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResponse))
	require.Len(t, listResponse.Data, 1)
	assert.Equal(t, placed["id"], listResponse.Data[0]["id"])

	// Placing again with an empty cart is rejected.
	w = c.do(t, http.MethodPost, "/api/v1/checkout/place-order", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
