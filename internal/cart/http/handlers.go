package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cartdomain "github.com/sadiko81-hub/wonderdiina-website/internal/cart/domain"
	"github.com/sadiko81-hub/wonderdiina-website/internal/cart/service"
	"github.com/sadiko81-hub/wonderdiina-website/internal/catalog"
	"github.com/sadiko81-hub/wonderdiina-website/internal/checkout"
	"github.com/sadiko81-hub/wonderdiina-website/internal/currency"
	"github.com/sadiko81-hub/wonderdiina-website/internal/pricing"
)

// SessionHeader carries the browser session ID. The service issues a
// fresh ID when a request arrives without one and always echoes the ID
// back, so the storefront can persist it.
const SessionHeader = "X-Session-Id"

// Handler exposes the cart engine over HTTP for the storefront views.
type Handler struct {
	carts          *service.CartService
	catalog        *catalog.Catalog
	pricing        *pricing.Aggregator
	merchantHandle string
}

// New creates a new Handler.
func New(carts *service.CartService, cat *catalog.Catalog, agg *pricing.Aggregator, merchantHandle string) *Handler {
	if merchantHandle == "" {
		merchantHandle = checkout.DefaultMerchantHandle
	}
	return &Handler{
		carts:          carts,
		catalog:        cat,
		pricing:        agg,
		merchantHandle: merchantHandle,
	}
}

// sessionID returns the request's session ID, minting one if absent,
// and echoes it on the response.
func (h *Handler) sessionID(c *gin.Context) string {
	sid := c.GetHeader(SessionHeader)
	if sid == "" {
		sid = uuid.NewString()
	}
	c.Header(SessionHeader, sid)
	return sid
}

// preference loads the session's currency preference. A store failure
// falls back to MAD so listing pages keep rendering.
func (h *Handler) preference(c *gin.Context, sid string) currency.Preference {
	pref, err := h.carts.GetPreference(c.Request.Context(), sid)
	if err != nil {
		return currency.MAD
	}
	return pref
}

// ListProducts returns the catalog with display prices. ?limit=n trims
// the list for the homepage preview grid.
func (h *Handler) ListProducts(c *gin.Context) {
	sid := h.sessionID(c)
	pref := h.preference(c, sid)

	products := h.catalog.List()
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		if limit < len(products) {
			products = products[:limit]
		}
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{
			ID:        p.ID,
			Name:      p.Name,
			Price:     h.pricing.DisplayPrice(p.PriceMAD, pref).StringFixed(2),
			Currency:  string(pref),
			ImagePath: p.ImagePath,
		})
	}

	c.JSON(http.StatusOK, gin.H{"products": views})
}

// GetCart returns the session's cart.
func (h *Handler) GetCart(c *gin.Context) {
	sid := h.sessionID(c)

	cart, err := h.carts.GetCart(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, h.cartView(cart, h.preference(c, sid)))
}

// AddItem adds a product to the cart. Unknown product ids leave the
// cart unchanged; the response is the (possibly unchanged) cart either
// way.
func (h *Handler) AddItem(c *gin.Context) {
	sid := h.sessionID(c)

	var body addItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	cart, err := h.carts.AddLine(c.Request.Context(), sid, body.ProductID, body.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, h.cartView(cart, h.preference(c, sid)))
}

// UpdateItem sets a line's quantity.
func (h *Handler) UpdateItem(c *gin.Context) {
	sid := h.sessionID(c)
	productID := c.Param("product_id")

	var body updateItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cart, err := h.carts.SetQuantity(c.Request.Context(), sid, productID, body.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, h.cartView(cart, h.preference(c, sid)))
}

// RemoveItem removes a line from the cart.
func (h *Handler) RemoveItem(c *gin.Context) {
	sid := h.sessionID(c)

	cart, err := h.carts.RemoveLine(c.Request.Context(), sid, c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, h.cartView(cart, h.preference(c, sid)))
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(c *gin.Context) {
	sid := h.sessionID(c)

	cart, err := h.carts.Clear(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, h.cartView(cart, h.preference(c, sid)))
}

// GetCurrency returns the session's currency preference.
func (h *Handler) GetCurrency(c *gin.Context) {
	sid := h.sessionID(c)
	c.JSON(http.StatusOK, gin.H{"currency": string(h.preference(c, sid))})
}

// SetCurrency persists the session's currency preference. Unsupported
// codes are normalized to MAD.
func (h *Handler) SetCurrency(c *gin.Context) {
	sid := h.sessionID(c)

	var body setCurrencyRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pref, err := h.carts.SetPreference(c.Request.Context(), sid, body.Currency)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save currency"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"currency": string(pref)})
}

// Checkout returns the checkout page payload: per-line totals, the cart
// total, and the prepared payment link.
func (h *Handler) Checkout(c *gin.Context) {
	sid := h.sessionID(c)

	cart, err := h.carts.GetCart(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}

	pref := h.preference(c, sid)
	view := h.cartView(cart, pref)
	total := h.pricing.CartTotal(cart, pref)

	c.JSON(http.StatusOK, CheckoutView{
		CartView:    view,
		PaymentLink: checkout.BuildPaymentLink(total, pref, h.merchantHandle),
	})
}

// DirectBuy returns a payment link for a single unit of a product
// without touching the cart.
func (h *Handler) DirectBuy(c *gin.Context) {
	sid := h.sessionID(c)
	productID := c.Param("product_id")

	product, err := h.catalog.FindByID(productID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	pref := h.preference(c, sid)
	amount := h.pricing.DisplayPrice(product.PriceMAD, pref)

	c.JSON(http.StatusOK, PaymentLinkView{
		Amount:      amount.StringFixed(2),
		Currency:    string(pref),
		PaymentLink: checkout.BuildPaymentLink(amount, pref, h.merchantHandle),
	})
}

func (h *Handler) cartView(cart cartdomain.Cart, pref currency.Preference) CartView {
	lines := make([]CartLineView, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, CartLineView{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: h.pricing.UnitPrice(line, pref).StringFixed(2),
			LineTotal: h.pricing.LineTotal(line, pref).StringFixed(2),
		})
	}

	return CartView{
		Lines:     lines,
		ItemCount: pricing.ItemCount(cart),
		Total:     h.pricing.CartTotal(cart, pref).StringFixed(2),
		Currency:  string(pref),
	}
}
