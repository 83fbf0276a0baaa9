package product

import (
	"context"
	"errors"
)

// ErrProductNotFound is returned when a product record is not found.
var ErrProductNotFound = errors.New("product not found")

// Repository provides operations on the products table.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
