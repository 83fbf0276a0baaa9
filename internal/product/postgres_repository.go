package product

import (
	"context"
	"fmt"

	"github.com/sp1r1tt/dashboard2025/internal/db"
)

// PostgresRepository implements Repository on top of a db.Querier.
type PostgresRepository struct {
	db db.Querier
}

// NewRepository creates a Repository backed by the given querier.
func NewRepository(q db.Querier) Repository {
	return &PostgresRepository{db: q}
}

// List retrieves all products in insertion order.
func (r *PostgresRepository) List(ctx context.Context) ([]Product, error) {
	query := `
		SELECT id, group_id, name, serial, status, date_code, date_text, created_at
		FROM products
		ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		err := rows.Scan(&p.ID, &p.GroupID, &p.Name, &p.Serial, &p.Status, &p.DateCode, &p.DateText, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	if products == nil {
		products = []Product{}
	}

	return products, nil
}

// Delete removes a product by id.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Count returns the total number of products.
func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}
	return count, nil
}
