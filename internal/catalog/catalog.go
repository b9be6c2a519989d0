package catalog

import (
	"fmt"

	"github.com/sadiko81-hub/wonderdiina-website/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

// Catalog is an immutable, ordered product catalog. It is built once at
// startup and never mutated afterwards, so lookups need no locking.
type Catalog struct {
	products []domain.Product
	byID     map[string]domain.Product
}

// New validates the given products and builds a Catalog. IDs must be
// unique and prices non-negative.
func New(products []domain.Product) (*Catalog, error) {
	byID := make(map[string]domain.Product, len(products))
	ordered := make([]domain.Product, 0, len(products))

	for _, p := range products {
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("product %q: %w", p.ID, domain.ErrDuplicateID)
		}
		if p.PriceMAD.IsNegative() {
			return nil, fmt.Errorf("product %q: %w", p.ID, domain.ErrNegativePrice)
		}
		byID[p.ID] = p
		ordered = append(ordered, p)
	}

	return &Catalog{products: ordered, byID: byID}, nil
}

// FindByID returns the product with the given id.
func (c *Catalog) FindByID(id string) (domain.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

// List returns all products in catalog order. The returned slice is a
// copy; callers cannot mutate the catalog through it.
func (c *Catalog) List() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// DefaultSeed returns the built-in Wonderdiina catalog, used when no
// external catalog source is configured.
func DefaultSeed() []domain.Product {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	return []domain.Product{
		{ID: "agenda", Name: "Boho Agenda", PriceMAD: price("150"), ImagePath: "assets/images/agenda.jpg"},
		{ID: "mug", Name: "Cozy Boho Mug", PriceMAD: price("140"), ImagePath: "assets/images/mug.jpg"},
		{ID: "keychain", Name: "Handmade Keychain", PriceMAD: price("60"), ImagePath: "assets/images/keychain.jpg"},
		{ID: "print", Name: "Art Print", PriceMAD: price("200"), ImagePath: "assets/images/print.jpg"},
		{ID: "bookmark", Name: "Handmade Bookmark", PriceMAD: price("40"), ImagePath: "assets/images/bookmark.jpg"},
		{ID: "magnet", Name: "Decor Magnet", PriceMAD: price("35"), ImagePath: "assets/images/magnet.jpg"},
	}
}
