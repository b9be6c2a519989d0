package http

// ProductView is a catalog entry with its display price in the
// session's preferred currency.
type ProductView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Currency  string `json:"currency"`
	ImagePath string `json:"image_path"`
}

// CartLineView is one cart line with derived display amounts.
type CartLineView struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

// CartView is the full cart state a view surface needs to render.
type CartView struct {
	Lines     []CartLineView `json:"lines"`
	ItemCount int            `json:"item_count"`
	Total     string         `json:"total"`
	Currency  string         `json:"currency"`
}

// CheckoutView is the checkout page payload: the cart plus the prepared
// payment redirect link.
type CheckoutView struct {
	CartView
	PaymentLink string `json:"payment_link"`
}

// PaymentLinkView is the direct-buy payload.
type PaymentLinkView struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	PaymentLink string `json:"payment_link"`
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateItemRequest struct {
	Quantity float64 `json:"quantity"`
}

type setCurrencyRequest struct {
	Currency string `json:"currency" binding:"required"`
}
