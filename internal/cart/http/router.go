package http

import "github.com/gin-gonic/gin"

// Register registers the storefront routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/products", h.ListProducts)

	rg.GET("/cart", h.GetCart)
	rg.POST("/cart/items", h.AddItem)
	rg.PUT("/cart/items/:product_id", h.UpdateItem)
	rg.DELETE("/cart/items/:product_id", h.RemoveItem)
	rg.DELETE("/cart", h.ClearCart)

	rg.GET("/currency", h.GetCurrency)
	rg.PUT("/currency", h.SetCurrency)

	rg.GET("/checkout", h.Checkout)
	rg.POST("/checkout/buy/:product_id", h.DirectBuy)
}
