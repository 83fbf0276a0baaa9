package group

import (
	"context"
	"fmt"

	"github.com/sp1r1tt/dashboard2025/internal/db"
)

// The join key is g.id = p.id, not p.group_id. The plain product listing
// uses group_id correctly; this query carries the historical behavior the
// group screen was built against.
const listJoinedQuery = `
	SELECT g.id, g.title_en, g.title_ru, g.products, g.date_code, g.date_text, g.usd, g.created_at,
	       p.id, p.name, p.serial, p.status, p.date_code, p.date_text, p.created_at
	FROM groups g
	LEFT JOIN products p ON g.id = p.id
	ORDER BY g.id ASC`

// PostgresRepository implements Repository on top of a db.Querier.
type PostgresRepository struct {
	db db.Querier
}

// NewRepository creates a Repository backed by the given querier.
func NewRepository(q db.Querier) Repository {
	return &PostgresRepository{db: q}
}

// ListJoined returns the flat group/product join rows in store order.
func (r *PostgresRepository) ListJoined(ctx context.Context) ([]Row, error) {
	rows, err := r.db.Query(ctx, listJoinedQuery)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var row Row
		err := rows.Scan(
			&row.ID, &row.TitleEn, &row.TitleRu, &row.ProductCount,
			&row.DateCode, &row.DateText, &row.USD, &row.CreatedAt,
			&row.ProductID, &row.ProductName, &row.ProductSerial, &row.ProductStatus,
			&row.ProductDateCode, &row.ProductDateText, &row.ProductCreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning group row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating group rows: %w", err)
	}

	if result == nil {
		result = []Row{}
	}

	return result, nil
}

// Delete removes a group by id. Products referencing it via group_id are
// removed by the FK cascade.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting group: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrGroupNotFound
	}

	return nil
}

// Count returns the total number of groups.
func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM groups`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting groups: %w", err)
	}
	return count, nil
}
