package group

import (
	"context"
	"errors"
)

// ErrGroupNotFound is returned when a group record is not found.
var ErrGroupNotFound = errors.New("group not found")

// Repository provides operations on the groups table.
type Repository interface {
	// ListJoined returns the flat group/product join rows in store order,
	// ready to be folded by Aggregate.
	ListJoined(ctx context.Context) ([]Row, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
