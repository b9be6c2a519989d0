package domain

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateID     = errors.New("duplicate product id in catalog")
	ErrNegativePrice   = errors.New("negative product price")
)
