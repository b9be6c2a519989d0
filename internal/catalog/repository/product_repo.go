package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sadiko81-hub/wonderdiina-website/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

// ProductRepository loads the product catalog from Postgres. The catalog
// is read once at startup; the table is externally maintained.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ListAll returns every product in display order.
func (r *ProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id, name, price_mad, image_path
FROM products
ORDER BY position ASC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var price string
		if err := rows.Scan(&p.ID, &p.Name, &price, &p.ImagePath); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p.PriceMAD, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("product %q has malformed price %q: %w", p.ID, price, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	return products, nil
}
